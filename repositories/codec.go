//go:generate protoc -I ../proto --go_out=../proto --go_opt=paths=source_relative ../proto/storage/message.proto
package repositories

import (
	"fmt"
	"tx-lab/domain"
	pb "tx-lab/proto/storage"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
)

func encodeRecord(id uuid.UUID, text string) ([]byte, error) {
	return proto.Marshal(&pb.StoredMessage{Id: id.String(), Message: text})
}

// decodeRecord reads a stored message back. Unknown fields are ignored.
func decodeRecord(b []byte) (domain.Message, error) {
	var messagePb pb.StoredMessage
	if err := proto.Unmarshal(b, &messagePb); err != nil {
		return domain.Message{}, err
	}

	id, err := uuid.Parse(messagePb.GetId())
	if err != nil {
		return domain.Message{}, fmt.Errorf("invalid stored id %q: %w", messagePb.GetId(), err)
	}
	if messagePb.GetMessage() == "" {
		return domain.Message{}, fmt.Errorf("stored message %s has no text", id)
	}
	return domain.RestoreMessage(id, messagePb.GetMessage()), nil
}
