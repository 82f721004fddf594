// Package session holds the in-memory state an agent's UI works
// against for the day: the client book, the payment sequence, the
// connectivity flag, and the sync trigger. The session is an owned
// object constructed at startup, not a process-wide singleton.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"github.com/sirupsen/logrus"

	"github.com/Godson026/sic-agent-app/internal/domain"
	"github.com/Godson026/sic-agent-app/internal/localstore"
)

// TopicConnectivity is the bus topic connectivity transitions arrive on.
// The payload is a single bool: true when the device came online.
const TopicConnectivity = "connectivity.changed"

// DefaultSyncTimeout bounds a single sync attempt.
const DefaultSyncTimeout = 15 * time.Second

// Pusher sends locally captured records to the office. Implemented by
// the sync client; stubbed in tests.
type Pusher interface {
	Push(ctx context.Context, clients []domain.Client, payments []domain.Payment) error
}

// Session mirrors the local store in memory. Every successful
// write-through updates the mirror under the same lock, so a reader
// never observes the store and the mirror disagreeing.
type Session struct {
	mu       sync.RWMutex
	clients  map[string]domain.Client
	payments []domain.Payment
	online   bool

	store       *localstore.Store
	pusher      Pusher
	log         *logrus.Logger
	now         func() time.Time
	syncTimeout time.Duration

	// syncMu serializes sync attempts; a concurrent call collapses to a
	// no-op rather than racing a second push.
	syncMu sync.Mutex
}

// New builds a Session over store, pushing through pusher when online.
func New(store *localstore.Store, pusher Pusher, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.New()
	}
	return &Session{
		clients:     map[string]domain.Client{},
		payments:    []domain.Payment{},
		store:       store,
		pusher:      pusher,
		log:         log,
		now:         time.Now,
		syncTimeout: DefaultSyncTimeout,
	}
}

// SetClock overrides the session's notion of now. Tests only.
func (s *Session) SetClock(now func() time.Time) { s.now = now }

// SetSyncTimeout overrides the per-attempt sync deadline.
func (s *Session) SetSyncTimeout(d time.Duration) {
	if d > 0 {
		s.syncTimeout = d
	}
}

// Load refreshes the in-memory mirror from the local store. Called once
// at startup; reads degrade to empty defaults on store failure.
func (s *Session) Load(ctx context.Context) {
	clients := s.store.Clients(ctx)
	payments := s.store.Payments(ctx)

	s.mu.Lock()
	s.clients = clients
	s.payments = payments
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"clients":  len(clients),
		"payments": len(payments),
	}).Info("session loaded from local store")
}

// AddClient writes the registration through the store and mirrors the
// result in memory.
func (s *Session) AddClient(ctx context.Context, in domain.ClientInput) (*domain.Client, error) {
	client, err := s.store.SaveClient(ctx, in)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.clients[client.PolicyNumber] = *client
	s.mu.Unlock()
	return client, nil
}

// AddPayment writes the collection through the store and mirrors the
// result in memory.
func (s *Session) AddPayment(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error) {
	payment, err := s.store.SavePayment(ctx, in)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.payments = append(s.payments, *payment)
	s.mu.Unlock()
	return payment, nil
}

// Clients returns a copy of the in-memory client book.
func (s *Session) Clients() map[string]domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Client, len(s.clients))
	for k, v := range s.clients {
		out[k] = v
	}
	return out
}

// Payments returns a copy of the in-memory payment sequence.
func (s *Session) Payments() []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// TodayRegistrations returns clients registered offline today,
// recomputed on each call against the device-local calendar day.
func (s *Session) TodayRegistrations() []domain.Client {
	today := s.now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Client{}
	for _, c := range s.clients {
		if c.IsTemporary && sameDay(c.CreatedAt, today) {
			out = append(out, c)
		}
	}
	return out
}

// TodayPayments returns payments captured today, recomputed on each
// call against the device-local calendar day.
func (s *Session) TodayPayments() []domain.Payment {
	today := s.now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Payment{}
	for _, p := range s.payments {
		if sameDay(p.Timestamp, today) {
			out = append(out, p)
		}
	}
	return out
}

// SetOnline records the connectivity flag.
func (s *Session) SetOnline(online bool) {
	s.mu.Lock()
	s.online = online
	s.mu.Unlock()
}

// Online reports the last known connectivity state.
func (s *Session) Online() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.online
}

// SyncData pushes pending records (temporary clients, unsynced
// payments) to the office. Offline it is a no-op, as is a call that
// finds another sync already in flight. On success every payment's
// synced flag flips, in the store and in the mirror; on failure the
// flags are untouched so a retry resends the same records.
func (s *Session) SyncData(ctx context.Context) error {
	if !s.Online() {
		return nil
	}
	if !s.syncMu.TryLock() {
		return nil
	}
	defer s.syncMu.Unlock()

	s.mu.RLock()
	clients := make([]domain.Client, 0, len(s.clients))
	for _, c := range s.clients {
		if c.IsTemporary {
			clients = append(clients, c)
		}
	}
	payments := make([]domain.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		if !p.Synced {
			payments = append(payments, p)
		}
	}
	s.mu.RUnlock()

	if len(clients) == 0 && len(payments) == 0 {
		return nil
	}

	pushCtx, cancel := context.WithTimeout(ctx, s.syncTimeout)
	defer cancel()

	if err := s.pusher.Push(pushCtx, clients, payments); err != nil {
		s.log.WithError(err).Warn("sync failed, local records left pending")
		return fmt.Errorf("sync: %w", err)
	}

	updated, err := s.store.MarkPaymentsSynced(ctx)
	if err != nil {
		return fmt.Errorf("mark payments synced: %w", err)
	}
	s.mu.Lock()
	s.payments = updated
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"clients":  len(clients),
		"payments": len(payments),
	}).Info("sync complete")
	return nil
}

// BindBus subscribes the session to connectivity transitions. Going
// online triggers a sync attempt.
func (s *Session) BindBus(bus evbus.Bus) error {
	return bus.SubscribeAsync(TopicConnectivity, func(online bool) {
		s.SetOnline(online)
		if !online {
			return
		}
		if err := s.SyncData(context.Background()); err != nil {
			s.log.WithError(err).Warn("sync on reconnect failed")
		}
	}, false)
}

func sameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
