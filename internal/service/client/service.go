package client

import (
	"context"
	"fmt"
	"time"

	"github.com/Godson026/sic-agent-app/internal/domain"
	"github.com/Godson026/sic-agent-app/internal/policy"
	clientrepo "github.com/Godson026/sic-agent-app/internal/repository/client"
	counterrepo "github.com/Godson026/sic-agent-app/internal/repository/counter"
)

// tempCounterName is the office-side counter that mints temporary
// policy numbers for registrations submitted without one.
const tempCounterName = "temp-policy"

// Service handles client registration and lookup at the office.
type Service struct {
	repo     clientrepo.Repository
	counters counterrepo.Repository
	gen      policy.Generator
	now      func() time.Time
}

// New creates a Service over the client and counter repositories.
func New(repo clientrepo.Repository, counters counterrepo.Repository) *Service {
	return &Service{
		repo:     repo,
		counters: counters,
		gen:      policy.NewGenerator(""),
		now:      time.Now,
	}
}

// SetClock overrides the service's notion of now. Tests only.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// Register validates the registration, mints a temporary policy number
// when none was supplied, and stores the client. Registrations are
// keyed by policy number with last-write-wins, mirroring the agent's
// local store.
func (s *Service) Register(ctx context.Context, in domain.ClientInput) (*domain.Client, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.PolicyNumber == "" {
		counter, err := s.counters.Next(ctx, tempCounterName)
		if err != nil {
			return nil, fmt.Errorf("allocate temporary policy number: %w", err)
		}
		in.PolicyNumber = s.gen.Number(s.now(), int(counter))
		in.IsTemporary = true
	}
	return s.repo.Upsert(ctx, domain.Client{
		FullName:         in.FullName,
		Age:              in.Age,
		Gender:           in.Gender,
		Occupation:       in.Occupation,
		ContactNumber:    in.ContactNumber,
		PaymentFrequency: in.PaymentFrequency,
		PremiumAmount:    in.PremiumAmount,
		PolicyNumber:     in.PolicyNumber,
		IsTemporary:      in.IsTemporary,
	})
}

// List returns every stored client.
func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.List(ctx)
}

// ByPolicyNumber looks up one client; a miss is domain.ErrNotFound.
func (s *Service) ByPolicyNumber(ctx context.Context, policyNumber string) (*domain.Client, error) {
	return s.repo.GetByPolicyNumber(ctx, policyNumber)
}
