package repositories

import (
	"testing"
	pb "tx-lab/proto/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

func encode(t *testing.T, id uuid.UUID, text string) []byte {
	t.Helper()
	b, err := encodeRecord(id, text)
	require.NoError(t, err)
	return b
}

func TestRecord_EncodeDecode(t *testing.T) {
	req := require.New(t)
	id := uuid.New()

	message, err := decodeRecord(encode(t, id, "hello"))

	req.NoError(err)
	got, ok := message.ID()
	req.True(ok)
	req.Equal(id, got)
	req.Equal("hello", message.Text())
}

func TestRecord_IsStoredMessageOnTheWire(t *testing.T) {
	req := require.New(t)
	id := uuid.New()

	var messagePb pb.StoredMessage
	req.NoError(proto.Unmarshal(encode(t, id, "hello"), &messagePb))

	req.Equal(id.String(), messagePb.GetId())
	req.Equal("hello", messagePb.GetMessage())
}

func TestRecord_SkipsUnknownFields(t *testing.T) {
	req := require.New(t)
	id := uuid.New()
	b := encode(t, id, "hello")
	b = protowire.AppendTag(b, 7, protowire.VarintType)
	b = protowire.AppendVarint(b, 1234)

	message, err := decodeRecord(b)

	req.NoError(err)
	req.Equal("hello", message.Text())
}

func TestRecord_RejectsCorruptValues(t *testing.T) {
	req := require.New(t)

	_, err := decodeRecord([]byte{0xff})
	req.Error(err)

	b, err := proto.Marshal(&pb.StoredMessage{Id: "not-a-uuid", Message: "hello"})
	req.NoError(err)
	_, err = decodeRecord(b)
	req.Error(err)

	_, err = decodeRecord(encode(t, uuid.New(), ""))
	req.Error(err)
}
