package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier subconjunto de lectura común a *pgxpool.Pool y pgx.Tx.
// Todos los adaptadores del Toolbox son de solo lectura: no exponemos Exec.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
