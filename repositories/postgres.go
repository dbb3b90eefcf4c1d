package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"tx-lab/contract"
	"tx-lab/domain"
	"tx-lab/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The table is owned by the operator:
//
//	CREATE TABLE messages (
//	    id      uuid PRIMARY KEY DEFAULT gen_random_uuid(),
//	    message text NOT NULL
//	);
const (
	insertMessageQuery  = "INSERT INTO messages (message) VALUES ($1) RETURNING id::text"
	selectMessagesQuery = "SELECT id::text, message FROM messages"
)

var _ contract.Transactor = (*PostgresStore)(nil)

// PostgresStore is the relational message store. Identifiers are generated
// by the database column default.
type PostgresStore struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPostgresStore(pool *pgxpool.Pool, log *slog.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, log: log}
}

func (s *PostgresStore) Begin(ctx context.Context, mode contract.TxMode) (contract.Tx, error) {
	opts := pgx.TxOptions{AccessMode: pgx.ReadWrite}
	if mode == contract.ReadOnly {
		opts.AccessMode = pgx.ReadOnly
	}
	tx, err := s.pool.BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", errors.ErrStore, err)
	}
	return &postgresTx{tx: tx, log: s.log}, nil
}

type postgresTx struct {
	tx  pgx.Tx
	log *slog.Logger
}

func (t *postgresTx) Persist(ctx context.Context, message *domain.Message) error {
	if message.Persisted() {
		return errors.ErrIdentityAlreadyAssigned
	}
	var rawID string
	if err := t.tx.QueryRow(ctx, insertMessageQuery, message.Text()).Scan(&rawID); err != nil {
		return fmt.Errorf("%w: failed to insert message: %w", errors.ErrStore, err)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("%w: invalid generated id %q: %w", errors.ErrStore, rawID, err)
	}
	return message.AssignID(id)
}

func (t *postgresTx) FindAll(ctx context.Context) ([]domain.Message, error) {
	rows, err := t.tx.Query(ctx, selectMessagesQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query messages: %w", errors.ErrStore, err)
	}
	defer rows.Close()

	messages := make([]domain.Message, 0)
	for rows.Next() {
		var rawID, text string
		if err := rows.Scan(&rawID, &text); err != nil {
			return nil, fmt.Errorf("%w: failed to scan message row: %w", errors.ErrStore, err)
		}
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid stored id %q: %w", errors.ErrStore, rawID, err)
		}
		messages = append(messages, domain.RestoreMessage(id, text))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating message rows: %w", errors.ErrStore, err)
	}

	t.log.Debug("Scanned messages", "count", len(messages))
	return messages, nil
}

func (t *postgresTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %w", errors.ErrStore, err)
	}
	return nil
}

func (t *postgresTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err == nil || stderrors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return fmt.Errorf("%w: failed to rollback transaction: %w", errors.ErrStore, err)
}
