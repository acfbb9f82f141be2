package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/quickcache/internal/platform/logger"
	"github.com/phrazzld/quickcache/internal/redact"
)

// TxFn is the unit of work run by RunInTransaction.
type TxFn func(ctx context.Context, tx *sqlx.Tx) error

// RunInTransaction runs fn inside a transaction on db. The transaction is
// committed when fn returns nil and rolled back when fn fails or panics; a
// panic is re-raised after the rollback. Begin and commit failures wrap
// ErrTransactionFailed.
func RunInTransaction(ctx context.Context, db *sqlx.DB, fn TxFn) (err error) {
	log := logger.FromContext(ctx).With(slog.String("component", "transaction"))

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		log.Error("could not begin transaction", slog.String("error", redact.Error(err)))
		return fmt.Errorf("%w: begin: %w", ErrTransactionFailed, err)
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		p := recover()
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("could not roll back transaction",
				slog.String("error", redact.Error(rbErr)),
				slog.Bool("panicked", p != nil))
			if p == nil {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
		if p != nil {
			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		log.Debug("rolling back transaction", slog.String("error", redact.Error(err)))
		return err
	}

	finished = true
	if err = tx.Commit(); err != nil {
		log.Error("could not commit transaction", slog.String("error", redact.Error(err)))
		return fmt.Errorf("%w: commit: %w", ErrTransactionFailed, err)
	}
	return nil
}
