package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"tx-lab/contract"
	"tx-lab/errors"
)

// Execute runs work inside one transaction opened on transactor.
// The transaction is committed when work returns normally and rolled back
// on any error or panic, so no partial write survives a failure.
// Errors that carry no kind yet are reported as errors.ErrUnexpected.
// A failed rollback is joined to the returned error.
func Execute[T any](ctx context.Context, transactor contract.Transactor, mode contract.TxMode, work func(tx contract.Tx) (T, error)) (result T, err error) {
	var zero T
	tx, err := transactor.Begin(ctx, mode)
	if err != nil {
		return zero, asStoreFailure(fmt.Errorf("begin %s transaction: %w", mode, err))
	}

	done := false
	defer func() {
		if r := recover(); r != nil {
			result, err = zero, fmt.Errorf("%w: panic in unit of work: %v", errors.ErrUnexpected, r)
		}
		if !done {
			// The unit of work error stays first, its kind drives the caller.
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				err = stderrors.Join(err, fmt.Errorf("rollback %s transaction: %w", mode, rbErr))
			}
		}
	}()

	result, err = work(tx)
	if err != nil {
		return zero, classify(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return zero, asStoreFailure(fmt.Errorf("commit %s transaction: %w", mode, err))
	}
	done = true
	return result, nil
}

func classify(err error) error {
	switch {
	case stderrors.Is(err, errors.ErrInvalidInput),
		stderrors.Is(err, errors.ErrStore),
		stderrors.Is(err, errors.ErrUnexpected):
		return err
	default:
		return fmt.Errorf("%w: %w", errors.ErrUnexpected, err)
	}
}

// asStoreFailure tags transaction lifecycle failures as store errors.
func asStoreFailure(err error) error {
	if stderrors.Is(err, errors.ErrStore) {
		return err
	}
	return fmt.Errorf("%w: %w", errors.ErrStore, err)
}
