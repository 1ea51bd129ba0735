package claude

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = body

		resp := map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": "Tent,1\nSleeping bag,2"},
			},
			"model":       "claude-3-5-haiku-latest",
			"stop_reason": "end_turn",
			"usage":       map[string]int{"input_tokens": 10, "output_tokens": 10},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	n := NewNormalizer("sk-test", "claude-3-5-haiku-latest", WithBaseURL(server.URL))

	out, err := n.Normalize(context.Background(), "one tent and a couple of sleeping bags")
	require.NoError(t, err)
	assert.Equal(t, "Tent,1\nSleeping bag,2", out)

	// The prompt and the raw text both reach the model.
	assert.Contains(t, string(gotBody), "one tent and a couple of sleeping bags")
	assert.True(t, strings.Contains(string(gotBody), "Name,Quantity"))
}

func TestNormalizeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"rate limited"}}`))
	}))
	defer server.Close()

	n := NewNormalizer("sk-test", "claude-3-5-haiku-latest", WithBaseURL(server.URL))

	_, err := n.Normalize(context.Background(), "anything")
	assert.Error(t, err)
}
