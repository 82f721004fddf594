package counter

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Next(ctx context.Context, name string) (int64, error) {
	const q = `
INSERT INTO counters (name, value)
VALUES ($1, 1)
ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
RETURNING value
`
	var value int64
	if err := r.pool.QueryRow(ctx, q, name).Scan(&value); err != nil {
		return 0, err
	}
	return value, nil
}
