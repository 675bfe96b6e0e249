package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todo-bridge/internal/domain"
)

// TxFn runs inside a transaction. Returning an error rolls back every write
// made through the given Space.
type TxFn func(ctx context.Context, space *Space) error

// Transaction runs fn in one engine transaction. It commits when fn returns
// nil and rolls back when fn returns an error or panics; a panic is re-raised
// after the rollback.
func (d *DB) Transaction(ctx context.Context, fn TxFn) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w: %w", domain.ErrEngineFailure, err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				d.logger.ErrorContext(ctx, "failed to roll back transaction after panic",
					slog.Any("panic", p),
					slog.Any("error", rbErr),
				)
			}
			panic(p)
		}
	}()

	if err := fn(ctx, &Space{q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			d.logger.ErrorContext(ctx, "failed to roll back transaction",
				slog.Any("error", rbErr),
				slog.Any("cause", err),
			)
			return fmt.Errorf("rollback after %w: %w: %w", err, domain.ErrEngineFailure, rbErr)
		}
		d.logger.DebugContext(ctx, "rolled back transaction", slog.Any("cause", err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w: %w", domain.ErrEngineFailure, err)
	}
	return nil
}
