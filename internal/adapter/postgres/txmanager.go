package postgres

import (
	"context"
	"errors"
	"fmt"
)

// TxManager runs callbacks in a transaction carried through the context.
// Repositories pick the transaction up with QuerierFromCtx.
type TxManager struct {
	db Beginner
}

func NewTxManager(db Beginner) *TxManager {
	return &TxManager{db: db}
}

// RunInTx commits when fn returns nil and rolls back otherwise, including on
// panic, which is re-raised. A call made while ctx already carries a
// transaction joins it: the outermost call owns commit and rollback.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", MapError(err, "transaction", nil))
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", MapError(err, "transaction", nil))
	}
	committed = true
	return nil
}
