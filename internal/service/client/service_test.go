package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Godson026/sic-agent-app/internal/domain"
)

type stubRepo struct {
	upserted  *domain.Client
	upsertErr error
	lastInput domain.Client
	byNumber  *domain.Client
	list      []domain.Client
}

func (s *stubRepo) Upsert(_ context.Context, c domain.Client) (*domain.Client, error) {
	s.lastInput = c
	if s.upsertErr != nil {
		return nil, s.upsertErr
	}
	if s.upserted != nil {
		return s.upserted, nil
	}
	out := c
	out.ID = 1
	out.CreatedAt = time.Now()
	return &out, nil
}

func (s *stubRepo) GetByPolicyNumber(_ context.Context, _ string) (*domain.Client, error) {
	if s.byNumber == nil {
		return nil, domain.ErrNotFound
	}
	return s.byNumber, nil
}

func (s *stubRepo) List(_ context.Context) ([]domain.Client, error) {
	return s.list, nil
}

type stubCounters struct {
	next int64
	err  error
}

func (s *stubCounters) Next(_ context.Context, _ string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.next++
	return s.next, nil
}

func registration() domain.ClientInput {
	return domain.ClientInput{
		FullName:         "Kofi Mensah",
		Age:              42,
		Gender:           domain.GenderMale,
		Occupation:       "Taxi Driver",
		ContactNumber:    "0244123456",
		PaymentFrequency: domain.FrequencyDaily,
		PremiumAmount:    500,
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := New(&stubRepo{}, &stubCounters{})
	in := registration()
	in.Age = 12
	_, err := svc.Register(context.Background(), in)
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegisterMintsTemporaryNumber(t *testing.T) {
	repo := &stubRepo{}
	counters := &stubCounters{next: 2} // two allocations already taken today
	svc := New(repo, counters)
	svc.SetClock(func() time.Time {
		return time.Date(2025, 4, 11, 9, 0, 0, 0, time.Local)
	})

	got, err := svc.Register(context.Background(), registration())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PolicyNumber != "TEMP20250411003" {
		t.Fatalf("expected TEMP20250411003, got %s", got.PolicyNumber)
	}
	if !repo.lastInput.IsTemporary {
		t.Fatalf("expected temporary flag on minted registration")
	}
}

func TestRegisterKeepsAgencyNumber(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, &stubCounters{})

	in := registration()
	in.PolicyNumber = "SKP20250411002"
	got, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PolicyNumber != "SKP20250411002" || repo.lastInput.IsTemporary {
		t.Fatalf("unexpected client %+v", got)
	}
}

func TestRegisterCounterFailure(t *testing.T) {
	svc := New(&stubRepo{}, &stubCounters{err: errors.New("db down")})
	_, err := svc.Register(context.Background(), registration())
	if err == nil {
		t.Fatalf("expected error when counter allocation fails")
	}
}

func TestByPolicyNumberMiss(t *testing.T) {
	svc := New(&stubRepo{}, &stubCounters{})
	_, err := svc.ByPolicyNumber(context.Background(), "SKP00000000000")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
