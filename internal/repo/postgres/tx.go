package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// rollback — откат из defer. После Commit откат вернёт ErrTxClosed, это не ошибка;
// любая другая ошибка отката присоединяется к результату операции.
func rollback(ctx context.Context, tx pgx.Tx, errp *error) {
	if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		*errp = errors.Join(*errp, fmt.Errorf("rollback: %w", rbErr))
	}
}
