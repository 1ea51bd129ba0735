// Package claude implements assist.Normalizer on the Anthropic Messages API.
package claude

import (
	"context"
	"fmt"
	"strings"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/vbonduro/boxqr/internal/assist"
)

// maxTokens is well above the expected response for a pasted inventory list
// (a few hundred short lines at most).
const maxTokens = 1024

type Normalizer struct {
	client *anthropic.Client
	model  anthropic.Model
}

// Option configures the Normalizer; currently only used by tests to point
// the client at a mock server.
type Option func(*options)

type options struct {
	baseURL string
}

// WithBaseURL overrides the Anthropic API endpoint.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

func NewNormalizer(apiKey, model string, opts ...Option) *Normalizer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var clientOpts []anthropic.ClientOption
	if o.baseURL != "" {
		clientOpts = append(clientOpts, anthropic.WithBaseURL(o.baseURL))
	}

	return &Normalizer{
		client: anthropic.NewClient(apiKey, clientOpts...),
		model:  anthropic.Model(model),
	}
}

func (n *Normalizer) Normalize(ctx context.Context, text string) (string, error) {
	resp, err := n.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     n.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(assist.NormalizePrompt + text),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call claude: %w", err)
	}

	var out strings.Builder
	for _, block := range resp.Content {
		out.WriteString(block.GetText())
	}
	return out.String(), nil
}
