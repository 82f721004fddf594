package payment

import (
	"context"
	"time"

	"github.com/Godson026/sic-agent-app/internal/domain"
)

// Repository persists and fetches payments at the office. Payments are
// append-only: there is no update or delete, and resubmitted records
// create new rows (the sync contract does not deduplicate).
type Repository interface {
	Create(ctx context.Context, p domain.Payment) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ListByDate(ctx context.Context, day time.Time) ([]domain.Payment, error)
}
