package syncclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Godson026/sic-agent-app/internal/domain"
)

func TestPushSendsBatch(t *testing.T) {
	var got Batch
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	clients := []domain.Client{{PolicyNumber: "TEMP20250411001", FullName: "Kofi Mensah", IsTemporary: true}}
	payments := []domain.Payment{{PolicyNumber: "SKP20250411005", Amount: 1000, PaymentMode: domain.ModeMoMo}}

	require.NoError(t, c.Push(context.Background(), clients, payments))
	assert.NotEmpty(t, got.BatchID)
	require.Len(t, got.Clients, 1)
	assert.Equal(t, "TEMP20250411001", got.Clients[0].PolicyNumber)
	require.Len(t, got.Payments, 1)
	assert.Equal(t, int64(1000), got.Payments[0].Amount)
}

func TestPushDistinctBatchIDs(t *testing.T) {
	var ids []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var b Batch
		_ = json.NewDecoder(r.Body).Decode(&b)
		ids = append(ids, b.BatchID)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	require.NoError(t, c.Push(context.Background(), nil, nil))
	require.NoError(t, c.Push(context.Background(), nil, nil))
	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestPushServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	err := c.Push(context.Background(), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestPushTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := New(srv.URL, 50*time.Millisecond, nil)
	err := c.Push(context.Background(), nil, nil)
	require.Error(t, err)
}

func TestPushUnreachableOffice(t *testing.T) {
	c := New("http://127.0.0.1:1", 100*time.Millisecond, nil)
	err := c.Push(context.Background(), nil, nil)
	require.Error(t, err)
}
