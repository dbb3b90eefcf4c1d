// Package domain contains the core concepts of the message service.
// This file defines the Message entity and its construction rules.
// Messages are immutable once built; only the store assigns their identity.
package domain

import (
	"fmt"
	"tx-lab/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type messageInput struct {
	Text string `validate:"required"`
}

// Message is the only persisted entity.
// The identifier stays unset until the store inserts the message.
type Message struct {
	id   *uuid.UUID
	text string
}

// NewMessage builds an unsaved message. Text must not be empty.
func NewMessage(text string) (Message, error) {
	if err := validate.Struct(messageInput{Text: text}); err != nil {
		return Message{}, fmt.Errorf("%w: message text is required", errors.ErrInvalidInput)
	}
	return Message{text: text}, nil
}

// RestoreMessage rebuilds a message read back from a store.
func RestoreMessage(id uuid.UUID, text string) Message {
	return Message{id: &id, text: text}
}

// AssignID sets the store generated identifier. It can only happen once.
func (m *Message) AssignID(id uuid.UUID) error {
	if m.id != nil {
		return errors.ErrIdentityAlreadyAssigned
	}
	m.id = &id
	return nil
}

// ID returns the identifier and whether it has been assigned yet.
func (m Message) ID() (uuid.UUID, bool) {
	if m.id == nil {
		return uuid.Nil, false
	}
	return *m.id, true
}

func (m Message) Text() string {
	return m.text
}

func (m Message) Persisted() bool {
	return m.id != nil
}

func (m Message) String() string {
	id, ok := m.ID()
	if !ok {
		return fmt.Sprintf("Message(id=<unassigned>, text=%q)", m.text)
	}
	return fmt.Sprintf("Message(id=%s, text=%q)", id, m.text)
}
