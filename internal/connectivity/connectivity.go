// Package connectivity watches whether the office is reachable and
// publishes transitions on the event bus. It is the concrete form of
// the "external connectivity signal" the session consumes.
package connectivity

import (
	"context"
	"net/http"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"github.com/sirupsen/logrus"

	"github.com/Godson026/sic-agent-app/internal/session"
)

// Monitor probes a health endpoint on an interval and publishes a bool
// on session.TopicConnectivity whenever the reachable state flips.
type Monitor struct {
	url      string
	interval time.Duration
	http     *http.Client
	bus      evbus.Bus
	log      *logrus.Logger

	online bool
	seeded bool
}

// New builds a Monitor probing healthURL every interval.
func New(healthURL string, interval time.Duration, bus evbus.Bus, log *logrus.Logger) *Monitor {
	if log == nil {
		log = logrus.New()
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Monitor{
		url:      healthURL,
		interval: interval,
		http:     &http.Client{Timeout: 5 * time.Second},
		bus:      bus,
		log:      log,
	}
}

// Run probes until ctx is cancelled. The first probe always publishes
// so subscribers learn the initial state.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *Monitor) check(ctx context.Context) {
	online := m.probe(ctx)
	if m.seeded && online == m.online {
		return
	}
	m.online = online
	m.seeded = true
	m.log.WithField("online", online).Info("connectivity changed")
	m.bus.Publish(session.TopicConnectivity, online)
}

func (m *Monitor) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.url, nil)
	if err != nil {
		return false
	}
	resp, err := m.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
