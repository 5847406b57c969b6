package narrator_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/npcgen/internal/config"
	"github.com/cory-johannsen/npcgen/internal/narrator"
)

const messageReply = `{
  "id": "msg_01",
  "type": "message",
  "role": "assistant",
  "model": "claude-sonnet-4-5",
  "content": [
    {"type": "text", "text": "She keeps the ledgers "},
    {"type": "text", "text": "of a Venetian warehouse."}
  ],
  "stop_reason": "end_turn",
  "stop_sequence": null,
  "usage": {"input_tokens": 120, "output_tokens": 12}
}`

type capturedRequest struct {
	mu   sync.Mutex
	path string
	key  string
	body map[string]any
}

func newMessagesServer(t *testing.T, status int, reply string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	got := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got.mu.Lock()
		got.path = r.URL.Path
		got.key = r.Header.Get("X-Api-Key")
		_ = json.Unmarshal(raw, &got.body)
		got.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func testNarratorConfig() config.NarratorConfig {
	return config.NarratorConfig{
		Enabled:   true,
		APIKey:    "sk-test",
		Model:     "claude-sonnet-4-5",
		MaxTokens: 256,
		Timeout:   5 * time.Second,
	}
}

func TestClient_Complete(t *testing.T) {
	srv, got := newMessagesServer(t, http.StatusOK, messageReply)
	c := narrator.NewClient(testNarratorConfig(), zaptest.NewLogger(t),
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))

	text, err := c.Complete(context.Background(), "system text", "user text")
	require.NoError(t, err)
	assert.Equal(t, "She keeps the ledgers of a Venetian warehouse.", text)

	got.mu.Lock()
	defer got.mu.Unlock()
	assert.True(t, strings.HasSuffix(got.path, "/v1/messages"), got.path)
	assert.Equal(t, "sk-test", got.key)
	assert.Equal(t, "claude-sonnet-4-5", got.body["model"])
	assert.EqualValues(t, 256, got.body["max_tokens"])
	assert.Contains(t, string(mustJSON(t, got.body["system"])), "system text")
	assert.Contains(t, string(mustJSON(t, got.body["messages"])), "user text")
}

func TestClient_APIError(t *testing.T) {
	srv, _ := newMessagesServer(t, http.StatusBadRequest,
		`{"type":"error","error":{"type":"invalid_request_error","message":"bad"}}`)
	c := narrator.NewClient(testNarratorConfig(), zaptest.NewLogger(t),
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))

	_, err := c.Complete(context.Background(), "s", "p")
	assert.Error(t, err)
}

func TestClient_NoTextBlocks(t *testing.T) {
	srv, _ := newMessagesServer(t, http.StatusOK, `{
	  "id": "msg_02", "type": "message", "role": "assistant", "model": "claude-sonnet-4-5",
	  "content": [], "stop_reason": "end_turn", "stop_sequence": null,
	  "usage": {"input_tokens": 1, "output_tokens": 0}
	}`)
	c := narrator.NewClient(testNarratorConfig(), zaptest.NewLogger(t),
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))

	_, err := c.Complete(context.Background(), "s", "p")
	assert.Error(t, err)
}

func TestBiographer_OverClient(t *testing.T) {
	srv, got := newMessagesServer(t, http.StatusOK, messageReply)
	c := narrator.NewClient(testNarratorConfig(), zaptest.NewLogger(t),
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	b := narrator.NewBiographer(c, zaptest.NewLogger(t))
	p := sampleProfile(t)

	text, err := b.Narrate(context.Background(), p)
	require.NoError(t, err)
	assert.Contains(t, text, "Venetian")

	got.mu.Lock()
	defer got.mu.Unlock()
	assert.Contains(t, string(mustJSON(t, got.body["messages"])), p.Name)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
