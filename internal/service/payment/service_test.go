package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Godson026/sic-agent-app/internal/domain"
)

type stubRepo struct {
	created   []domain.Payment
	createErr error
	list      []domain.Payment
	byDate    []domain.Payment
	lastDay   time.Time
}

func (s *stubRepo) Create(_ context.Context, p domain.Payment) (*domain.Payment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := p
	out.ID = int64(len(s.created) + 1)
	s.created = append(s.created, out)
	return &out, nil
}

func (s *stubRepo) List(_ context.Context) ([]domain.Payment, error) {
	return s.list, nil
}

func (s *stubRepo) ListByDate(_ context.Context, day time.Time) ([]domain.Payment, error) {
	s.lastDay = day
	return s.byDate, nil
}

func collection() domain.PaymentInput {
	return domain.PaymentInput{
		PolicyNumber: "SKP20250411002",
		ClientName:   "Kofi Mensah",
		Amount:       500,
		PaymentMode:  domain.ModeCash,
	}
}

func TestRecordValidation(t *testing.T) {
	svc := New(&stubRepo{})
	in := collection()
	in.Amount = 0
	_, err := svc.Record(context.Background(), in)
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRecordMarksSynced(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	got, err := svc.Record(context.Background(), collection())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !got.Synced {
		t.Fatal("stored payment should be synced")
	}
	if got.Timestamp.IsZero() {
		t.Fatal("zero timestamp should be defaulted")
	}
}

func TestRecordKeepsProvidedTimestamp(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	ts := time.Date(2025, 4, 11, 9, 30, 0, 0, time.Local)
	in := collection()
	in.Timestamp = ts
	got, err := svc.Record(context.Background(), in)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !got.Timestamp.Equal(ts) {
		t.Fatalf("timestamp = %v, want %v", got.Timestamp, ts)
	}
}

func TestRecordRepoFailure(t *testing.T) {
	repo := &stubRepo{createErr: errors.New("connection reset")}
	svc := New(repo)
	if _, err := svc.Record(context.Background(), collection()); err == nil {
		t.Fatal("expected repository error")
	}
}

func TestByDateParsesISODate(t *testing.T) {
	repo := &stubRepo{byDate: []domain.Payment{{ID: 1}}}
	svc := New(repo)
	got, err := svc.ByDate(context.Background(), "2025-04-11")
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(got))
	}
	want := time.Date(2025, 4, 11, 0, 0, 0, 0, time.Local)
	if !repo.lastDay.Equal(want) {
		t.Fatalf("day = %v, want %v", repo.lastDay, want)
	}
}

func TestByDateRejectsBadDate(t *testing.T) {
	svc := New(&stubRepo{})
	_, err := svc.ByDate(context.Background(), "11/04/2025")
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
