package client

import (
	"context"
	"errors"

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

const clientColumns = `id, full_name, age, gender, occupation, contact_number, payment_frequency, premium_amount, policy_number, is_temporary, created_at`

func (r *postgresRepo) Upsert(ctx context.Context, c domain.Client) (*domain.Client, error) {
	const q = `
INSERT INTO clients (
    full_name, age, gender, occupation, contact_number, payment_frequency,
    premium_amount, policy_number, is_temporary
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (policy_number) DO UPDATE SET
    full_name = EXCLUDED.full_name,
    age = EXCLUDED.age,
    gender = EXCLUDED.gender,
    occupation = EXCLUDED.occupation,
    contact_number = EXCLUDED.contact_number,
    payment_frequency = EXCLUDED.payment_frequency,
    premium_amount = EXCLUDED.premium_amount,
    is_temporary = EXCLUDED.is_temporary
RETURNING ` + clientColumns
	return r.scanClient(r.pool.QueryRow(
		ctx,
		q,
		c.FullName,
		c.Age,
		string(c.Gender),
		c.Occupation,
		c.ContactNumber,
		string(c.PaymentFrequency),
		c.PremiumAmount,
		c.PolicyNumber,
		c.IsTemporary,
	))
}

func (r *postgresRepo) GetByPolicyNumber(ctx context.Context, policyNumber string) (*domain.Client, error) {
	const q = `
SELECT ` + clientColumns + `
FROM clients
WHERE policy_number = $1
LIMIT 1
`
	return r.scanClient(r.pool.QueryRow(ctx, q, policyNumber))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Client, error) {
	const q = `
SELECT ` + clientColumns + `
FROM clients
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := r.scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

func (r *postgresRepo) scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	var gender, frequency string
	err := row.Scan(
		&c.ID,
		&c.FullName,
		&c.Age,
		&gender,
		&c.Occupation,
		&c.ContactNumber,
		&frequency,
		&c.PremiumAmount,
		&c.PolicyNumber,
		&c.IsTemporary,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.WithError(err).Error("client repo: scan failed")
		return nil, err
	}
	c.Gender = domain.Gender(gender)
	c.PaymentFrequency = domain.PaymentFrequency(frequency)
	return &c, nil
}
