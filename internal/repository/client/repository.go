package client

import (
	"context"

	"github.com/Godson026/sic-agent-app/internal/domain"
)

// Repository persists and fetches clients at the office.
type Repository interface {
	// Upsert stores c keyed by policy number, overwriting any prior
	// record at that key. The office assigns id and createdAt; values
	// submitted by the agent are ignored.
	Upsert(ctx context.Context, c domain.Client) (*domain.Client, error)
	GetByPolicyNumber(ctx context.Context, policyNumber string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
}
