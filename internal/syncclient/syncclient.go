// Package syncclient pushes locally captured records to the office
// store of record. The push is one-directional: the office assigns its
// own identities and does not deduplicate resubmissions.
package syncclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Godson026/sic-agent-app/internal/domain"
)

// Batch is the sync wire payload. BatchID exists for tracing a
// submission through office logs; it does not make the push idempotent.
type Batch struct {
	BatchID  string           `json:"batchId"`
	Clients  []domain.Client  `json:"clients"`
	Payments []domain.Payment `json:"payments"`
}

// Client posts sync batches to the office REST surface.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

// New builds a Client against baseURL (e.g. http://office:8080).
// timeout bounds each request on top of any caller context deadline.
func New(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.New()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Push submits the batch to POST /api/sync. Any transport error or
// non-2xx status is returned to the caller; nothing is marked synced
// here.
func (c *Client) Push(ctx context.Context, clients []domain.Client, payments []domain.Payment) error {
	batch := Batch{
		BatchID:  uuid.NewString(),
		Clients:  clients,
		Payments: payments,
	}
	body, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("encode sync batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/sync", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.WithFields(logrus.Fields{
		"batch":    batch.BatchID,
		"clients":  len(clients),
		"payments": len(payments),
	}).Info("pushing sync batch")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("push sync batch %s: %w", batch.BatchID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push sync batch %s: office returned %d", batch.BatchID, resp.StatusCode)
	}
	return nil
}
