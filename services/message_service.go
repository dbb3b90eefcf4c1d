//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"tx-lab/contract"
	"tx-lab/domain"
	"tx-lab/errors"
	"tx-lab/observability"
	"tx-lab/repositories"
	"tx-lab/runtime"

	"github.com/samber/lo"
)

// MsgKey is the payload field holding the message text.
const MsgKey = "msg"

// Payload is a decoded submit request. A nil value stands for an explicit null.
type Payload map[string]*string

// Text returns the message text or errors.ErrInvalidInput when the field is absent or null.
func (p Payload) Text() (string, error) {
	value, ok := p[MsgKey]
	if !ok || value == nil {
		return "", fmt.Errorf("%w: field %q is required", errors.ErrInvalidInput, MsgKey)
	}
	return *value, nil
}

type IMessageService interface {
	Submit(ctx context.Context, payload Payload) *runtime.Future[domain.Message]
	List(ctx context.Context) *runtime.Future[[]domain.Message]
}

// MessageService hands every request to the executor and runs it as one
// transaction on the store. Callers only ever wait on the returned future.
type MessageService struct {
	log        *slog.Logger
	executor   *runtime.Executor
	transactor contract.Transactor
	monitoring *observability.MonitoringManager
}

func NewMessageService(
	log *slog.Logger,
	executor *runtime.Executor,
	transactor contract.Transactor,
	monitoring *observability.MonitoringManager) IMessageService {
	return &MessageService{
		log:        log,
		executor:   executor,
		transactor: transactor,
		monitoring: monitoring,
	}
}

// Submit persists payload["msg"] as a new message.
// Validation happens inside the transaction, so an invalid payload rolls it
// back like any other failure.
func (s *MessageService) Submit(ctx context.Context, payload Payload) *runtime.Future[domain.Message] {
	s.log.Debug("Submit received, out of transaction", "fields", lo.Keys(payload))
	s.monitoring.IncrSubmitted()
	// Callers may stop waiting, the scheduled work still runs to completion
	workCtx := context.WithoutCancel(ctx)

	return runtime.Async(s.executor, func() (domain.Message, error) {
		s.log.Debug("Submit on worker, out of transaction")
		message, err := repositories.Execute(workCtx, s.transactor, contract.ReadWrite,
			func(tx contract.Tx) (domain.Message, error) {
				text, err := payload.Text()
				if err != nil {
					return domain.Message{}, err
				}
				message, err := domain.NewMessage(text)
				if err != nil {
					return domain.Message{}, err
				}
				if err = tx.Persist(workCtx, &message); err != nil {
					return domain.Message{}, err
				}
				s.log.Debug("Message persisted, in transaction", "message", message.String())
				return message, nil
			})
		if err != nil {
			s.monitoring.IncrRejected()
			s.log.Warn("Submit failed", "error", err)
			return domain.Message{}, err
		}
		s.monitoring.IncrPersisted()
		return message, nil
	})
}

// List returns every stored message, in whatever order the store scans them.
func (s *MessageService) List(ctx context.Context) *runtime.Future[[]domain.Message] {
	s.log.Debug("List received, out of transaction")
	workCtx := context.WithoutCancel(ctx)

	return runtime.Async(s.executor, func() ([]domain.Message, error) {
		messages, err := repositories.Execute(workCtx, s.transactor, contract.ReadOnly,
			func(tx contract.Tx) ([]domain.Message, error) {
				messages, err := tx.FindAll(workCtx)
				if err != nil {
					return nil, err
				}
				s.log.Debug("Messages read, in transaction", "count", len(messages))
				return messages, nil
			})
		if err != nil {
			s.monitoring.IncrRejected()
			s.log.Warn("List failed", "error", err)
			return nil, err
		}
		s.monitoring.IncrListed()
		return messages, nil
	})
}
