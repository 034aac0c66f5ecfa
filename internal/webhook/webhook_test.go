package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/relief_coordination_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestRedisPublisher_PushesJSON(t *testing.T) {
	mr, client := newTestRedis(t)
	publisher := NewRedisPublisher(client)

	event := Event{Type: EventSOSSubmitted, EntityID: "1", TrackingID: "SOS-2026-0001", Status: "submitted", Timestamp: time.Now().UTC()}
	require.NoError(t, publisher.Publish(context.Background(), event))

	items, err := mr.List(webhookQueueKey)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var got Event
	require.NoError(t, json.Unmarshal([]byte(items[0]), &got))
	assert.Equal(t, "SOS-2026-0001", got.TrackingID)
}

func TestWorker_DeliverSignsPayload(t *testing.T) {
	var received atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received.Store(r.Header.Get("X-Webhook-Signature") + "|" + string(body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	cfg := &config.Config{WebhookURL: server.URL, WebhookSecret: "s3cret", WebhookTimeout: time.Second, WebhookMaxRetries: 1}
	worker := NewWorker(nil, quietLogger(), cfg)

	payload := `{"type":"sos.submitted"}`
	ok := worker.deliver(context.Background(), Event{Type: EventSOSSubmitted}, payload)

	require.True(t, ok)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret")+"|"+payload, received.Load())
}

func TestWorker_DeliverRetriesOnFailure(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{WebhookURL: server.URL, WebhookTimeout: time.Second, WebhookMaxRetries: 3, WebhookBaseDelay: time.Millisecond}
	worker := NewWorker(nil, quietLogger(), cfg)

	assert.True(t, worker.deliver(context.Background(), Event{}, `{}`))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestWorker_NoURLSkipsDelivery(t *testing.T) {
	worker := NewWorker(nil, quietLogger(), &config.Config{WebhookTimeout: time.Second})
	assert.False(t, worker.deliver(context.Background(), Event{}, `{}`))
}

func TestWorker_ConsumesQueue(t *testing.T) {
	_, client := newTestRedis(t)
	delivered := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		delivered <- string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{WebhookURL: server.URL, WebhookTimeout: time.Second, WebhookMaxRetries: 1}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	NewWorker(client, quietLogger(), cfg).Start(ctx)

	require.NoError(t, NewRedisPublisher(client).Publish(ctx, Event{Type: EventAllocationSubmitted, EntityID: "abc"}))

	select {
	case body := <-delivered:
		assert.Contains(t, body, `"entityId":"abc"`)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not delivered")
	}
}
