package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"tx-lab/contract"
	"tx-lab/domain"
	"tx-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const messagePrefix = "msg:"

var _ contract.Transactor = (*BadgerStore)(nil)

// BadgerStore is the embedded message store.
// Each message lives under "msg:{uuid}", so a prefix scan returns them in
// key order, which is unrelated to insertion order.
type BadgerStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: log}
}

func (s *BadgerStore) Begin(_ context.Context, mode contract.TxMode) (contract.Tx, error) {
	txn := s.db.NewTransaction(mode == contract.ReadWrite)
	return &badgerTx{txn: txn, log: s.log}, nil
}

type badgerTx struct {
	txn *badger.Txn
	log *slog.Logger
}

// Persist stores the message under a freshly generated UUID and hands that
// UUID back to the message. Nothing is visible to others before Commit.
func (t *badgerTx) Persist(_ context.Context, message *domain.Message) error {
	if message.Persisted() {
		return errors.ErrIdentityAlreadyAssigned
	}
	id := uuid.New()
	value, err := encodeRecord(id, message.Text())
	if err != nil {
		return fmt.Errorf("%w: encode message %s: %w", errors.ErrStore, id, err)
	}
	if err := t.txn.Set(messageKey(id), value); err != nil {
		return fmt.Errorf("%w: set message %s: %w", errors.ErrStore, id, err)
	}
	return message.AssignID(id)
}

func (t *badgerTx) FindAll(_ context.Context) ([]domain.Message, error) {
	messages := make([]domain.Message, 0)
	prefix := []byte(messagePrefix)

	it := t.txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		value, err := item.ValueCopy(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", errors.ErrStore, item.Key(), err)
		}
		message, err := decodeRecord(value)
		if err != nil {
			return nil, fmt.Errorf("%w: decode %s: %w", errors.ErrStore, item.Key(), err)
		}
		messages = append(messages, message)
	}
	t.log.Debug("Scanned messages", "count", len(messages))
	return messages, nil
}

func (t *badgerTx) Commit(_ context.Context) error {
	if err := t.txn.Commit(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrStore, err)
	}
	return nil
}

// Rollback discards pending writes. Discarding a committed transaction is a no-op.
func (t *badgerTx) Rollback(_ context.Context) error {
	t.txn.Discard()
	return nil
}

func messageKey(id uuid.UUID) []byte {
	return []byte(messagePrefix + id.String())
}
