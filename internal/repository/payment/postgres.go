package payment

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/Godson026/sic-agent-app/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *logrus.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *logrus.Logger) Repository {
	if logger == nil {
		logger = logrus.New()
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const paymentColumns = `id, policy_number, client_name, amount, payment_mode, collected_at, synced`

func (r *postgresRepo) Create(ctx context.Context, p domain.Payment) (*domain.Payment, error) {
	const q = `
INSERT INTO payments (policy_number, client_name, amount, payment_mode, collected_at, synced)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + paymentColumns
	ts := p.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return r.scanPayment(r.pool.QueryRow(
		ctx,
		q,
		p.PolicyNumber,
		p.ClientName,
		p.Amount,
		string(p.PaymentMode),
		ts,
		p.Synced,
	))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Payment, error) {
	const q = `
SELECT ` + paymentColumns + `
FROM payments
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *postgresRepo) ListByDate(ctx context.Context, day time.Time) ([]domain.Payment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	const q = `
SELECT ` + paymentColumns + `
FROM payments
WHERE collected_at >= $1 AND collected_at < $2
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *postgresRepo) collect(rows pgx.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		p, err := r.scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

func (r *postgresRepo) scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	var mode string
	err := row.Scan(
		&p.ID,
		&p.PolicyNumber,
		&p.ClientName,
		&p.Amount,
		&mode,
		&p.Timestamp,
		&p.Synced,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.WithError(err).Error("payment repo: scan failed")
		return nil, err
	}
	p.PaymentMode = domain.PaymentMode(mode)
	return &p, nil
}
