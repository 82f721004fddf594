package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/Godson026/sic-agent-app/internal/domain"
	paymentrepo "github.com/Godson026/sic-agent-app/internal/repository/payment"
)

// Service handles payment recording and queries at the office.
type Service struct {
	repo paymentrepo.Repository
	now  func() time.Time
}

// New creates a Service over the payment repository.
func New(repo paymentrepo.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SetClock overrides the service's notion of now. Tests only.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// Record validates and stores a payment. The office is the store of
// record, so a payment it accepts is synced by definition.
func (s *Service) Record(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	ts := in.Timestamp
	if ts.IsZero() {
		ts = s.now()
	}
	return s.repo.Create(ctx, domain.Payment{
		PolicyNumber: in.PolicyNumber,
		ClientName:   in.ClientName,
		Amount:       in.Amount,
		PaymentMode:  in.PaymentMode,
		Timestamp:    ts,
		Synced:       true,
	})
}

// List returns every stored payment in insertion order.
func (s *Service) List(ctx context.Context) ([]domain.Payment, error) {
	return s.repo.List(ctx)
}

// ByDate returns payments collected on the given ISO date (YYYY-MM-DD).
func (s *Service) ByDate(ctx context.Context, date string) ([]domain.Payment, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, &domain.FieldError{Field: "date", Reason: fmt.Sprintf("%q is not a valid ISO date", date)}
	}
	return s.repo.ListByDate(ctx, day)
}
