package domain

import (
	"testing"
	"tx-lab/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewMessage_RejectsEmptyText(t *testing.T) {
	req := require.New(t)

	_, err := NewMessage("")

	req.ErrorIs(err, errors.ErrInvalidInput)
}

func TestNewMessage_IsUnsaved(t *testing.T) {
	req := require.New(t)

	msg, err := NewMessage("hello")
	req.NoError(err)

	id, ok := msg.ID()
	req.False(ok)
	req.Equal(uuid.Nil, id)
	req.False(msg.Persisted())
	req.Equal("hello", msg.Text())
}

func TestMessage_AssignID_OnlyOnce(t *testing.T) {
	req := require.New(t)
	msg, err := NewMessage("hello")
	req.NoError(err)

	first := uuid.New()
	req.NoError(msg.AssignID(first))

	// Given an identity is already set, a second one is refused
	err = msg.AssignID(uuid.New())
	req.ErrorIs(err, errors.ErrIdentityAlreadyAssigned)

	id, ok := msg.ID()
	req.True(ok)
	req.Equal(first, id)
}

func TestRestoreMessage(t *testing.T) {
	req := require.New(t)
	id := uuid.New()

	msg := RestoreMessage(id, "stored")

	got, ok := msg.ID()
	req.True(ok)
	req.Equal(id, got)
	req.Equal("stored", msg.Text())
	req.Contains(msg.String(), id.String())
}
