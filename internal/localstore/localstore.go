// Package localstore is the typed facade over the device-local store:
// clients keyed by policy number, payments as an ordered sequence, and
// the counter that mints temporary policy numbers.
package localstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Godson026/sic-agent-app/internal/domain"
	"github.com/Godson026/sic-agent-app/internal/kvstore"
	"github.com/Godson026/sic-agent-app/internal/policy"
)

// Keys within each partition. The whole client book and payment
// sequence live under a single key each, mirroring how the store is
// read back in full at session start.
const (
	clientsKey     = "clients"
	paymentsKey    = "payments"
	tempCounterKey = "temp-policy"
)

// Store layers domain operations on the key-value store. Reads through
// the public accessors degrade to empty defaults on I/O failure (logged,
// not surfaced); writes always propagate failure. Read-modify-write
// sequences are serialized per partition, which is sufficient for the
// single-device, single-agent model.
type Store struct {
	kv  *kvstore.Store
	gen policy.Generator
	log *logrus.Logger
	now func() time.Time

	clientsMu  sync.Mutex
	paymentsMu sync.Mutex
	countersMu sync.Mutex

	idMu   sync.Mutex
	lastID int64
}

// New builds a Store over kv using gen for temporary policy numbers.
func New(kv *kvstore.Store, gen policy.Generator, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.New()
	}
	return &Store{kv: kv, gen: gen, log: log, now: time.Now}
}

// SetClock overrides the store's notion of now. Tests only.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

// Clients returns the full client book keyed by policy number. Absence
// and read failure both degrade to an empty map; failures are logged.
func (s *Store) Clients(ctx context.Context) map[string]domain.Client {
	clients, err := s.readClients(ctx)
	if err != nil {
		s.log.WithError(err).Warn("failed to read clients, returning empty book")
		return map[string]domain.Client{}
	}
	return clients
}

// ClientByPolicyNumber looks up one client. A miss returns
// domain.ErrNotFound.
func (s *Store) ClientByPolicyNumber(ctx context.Context, policyNumber string) (*domain.Client, error) {
	clients := s.Clients(ctx)
	c, ok := clients[policyNumber]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// SaveClient validates in, assigns identity and createdAt, mints a
// temporary policy number when none was supplied, and persists the
// client keyed by its policy number (last-write-wins). Persistence
// failure propagates.
func (s *Store) SaveClient(ctx context.Context, in domain.ClientInput) (*domain.Client, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if in.PolicyNumber == "" {
		counter, err := s.NextCounter(ctx)
		if err != nil {
			return nil, fmt.Errorf("allocate temporary policy number: %w", err)
		}
		in.PolicyNumber = s.gen.Number(s.now(), counter)
		in.IsTemporary = true
	}

	clients, err := s.readClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("read client book: %w", err)
	}

	client := domain.Client{
		ID:               s.nextID(),
		FullName:         in.FullName,
		Age:              in.Age,
		Gender:           in.Gender,
		Occupation:       in.Occupation,
		ContactNumber:    in.ContactNumber,
		PaymentFrequency: in.PaymentFrequency,
		PremiumAmount:    in.PremiumAmount,
		PolicyNumber:     in.PolicyNumber,
		IsTemporary:      in.IsTemporary,
		CreatedAt:        s.now(),
	}
	clients[client.PolicyNumber] = client

	if err := s.kv.Put(ctx, kvstore.PartitionClients, clientsKey, clients); err != nil {
		return nil, err
	}
	return &client, nil
}

// Payments returns the ordered payment sequence. Absence and read
// failure both degrade to an empty sequence; failures are logged.
func (s *Store) Payments(ctx context.Context) []domain.Payment {
	payments, err := s.readPayments(ctx)
	if err != nil {
		s.log.WithError(err).Warn("failed to read payments, returning empty sequence")
		return []domain.Payment{}
	}
	return payments
}

// SavePayment validates in, assigns identity, stamps capture time if
// missing, sets synced=false and appends to the persisted sequence.
// Payments are financial records: persistence failure always propagates.
func (s *Store) SavePayment(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.paymentsMu.Lock()
	defer s.paymentsMu.Unlock()

	payments, err := s.readPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("read payment sequence: %w", err)
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = s.now()
	}
	payment := domain.Payment{
		ID:           s.nextID(),
		PolicyNumber: in.PolicyNumber,
		ClientName:   in.ClientName,
		Amount:       in.Amount,
		PaymentMode:  in.PaymentMode,
		Timestamp:    ts,
		Synced:       false,
	}
	payments = append(payments, payment)

	if err := s.kv.Put(ctx, kvstore.PartitionPayments, paymentsKey, payments); err != nil {
		return nil, err
	}
	return &payment, nil
}

// MarkPaymentsSynced flips the synced flag on every stored payment and
// persists the sequence, returning the updated payments. The flag only
// ever transitions false to true.
func (s *Store) MarkPaymentsSynced(ctx context.Context) ([]domain.Payment, error) {
	s.paymentsMu.Lock()
	defer s.paymentsMu.Unlock()

	payments, err := s.readPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("read payment sequence: %w", err)
	}
	for i := range payments {
		payments[i].Synced = true
	}
	if err := s.kv.Put(ctx, kvstore.PartitionPayments, paymentsKey, payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// NextCounter atomically increments and persists the temporary-number
// counter, returning the new value. The first allocation returns 1.
func (s *Store) NextCounter(ctx context.Context) (int, error) {
	s.countersMu.Lock()
	defer s.countersMu.Unlock()

	var current int
	err := s.kv.Get(ctx, kvstore.PartitionCounters, tempCounterKey, &current)
	if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		return 0, fmt.Errorf("read counter: %w", err)
	}
	next := current + 1
	if err := s.kv.Put(ctx, kvstore.PartitionCounters, tempCounterKey, next); err != nil {
		return 0, err
	}
	return next, nil
}

// readClients is the strict read used by write paths: an I/O failure
// must not be mistaken for an empty book, or a save would wipe it.
func (s *Store) readClients(ctx context.Context) (map[string]domain.Client, error) {
	clients := map[string]domain.Client{}
	err := s.kv.Get(ctx, kvstore.PartitionClients, clientsKey, &clients)
	if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		return nil, err
	}
	return clients, nil
}

func (s *Store) readPayments(ctx context.Context) ([]domain.Payment, error) {
	payments := []domain.Payment{}
	err := s.kv.Get(ctx, kvstore.PartitionPayments, paymentsKey, &payments)
	if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		return nil, err
	}
	return payments, nil
}

// nextID derives a record id from the clock, strictly increasing within
// the process even when two assignments land in the same millisecond.
func (s *Store) nextID() int64 {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
