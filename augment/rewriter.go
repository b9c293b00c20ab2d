// Package augment provides optional collaborators that plug into
// radisense.Config.QueryRewriter. Rewriter is grounded directly on the
// teacher's rag.RAGLLM: both wire an openai.Client in front of a BM25
// matcher. Rewriter itself does no matching; it only rewrites the query.
package augment

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/okasi/radisense"
)

// Rewriter expands a raw search query into a wider set of related terms
// using a chat-completion model, the way rag.NewRAGLLM builds an
// openai.Client from a base URL and API key.
type Rewriter struct {
	client *openai.Client
	model  string
}

// NewRewriter builds a Rewriter against apiBaseURL/apiKey. apiBaseURL may
// be empty to use the OpenAI-hosted default.
func NewRewriter(apiBaseURL, apiKey, model string) *Rewriter {
	cfg := openai.DefaultConfig(apiKey)
	if apiBaseURL != "" {
		cfg.BaseURL = apiBaseURL
	}
	return &Rewriter{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Rewrite asks the model for a short list of related search terms and
// appends them to query, widening what radisense.Engine.Search tokenizes.
// On any API error it returns that error wrapped with an "augment: query
// rewrite" prefix; an empty completion
// falls back to the original query rather than failing the search.
func (r *Rewriter) Rewrite(ctx context.Context, query string) (string, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "List up to five closely related search terms for the user's query, space separated, no punctuation, no explanation.",
			},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
	})
	if err != nil {
		return "", fmt.Errorf("augment: query rewrite: %w", err)
	}
	if len(resp.Choices) == 0 {
		return query, nil
	}

	expansion := strings.TrimSpace(resp.Choices[0].Message.Content)
	if expansion == "" {
		return query, nil
	}
	return query + " " + expansion, nil
}

// AsOption adapts Rewriter.Rewrite for use as a radisense.Option, so a host
// can wire it in with radisense.NewConfig(..., rewriter.AsOption()).
func (r *Rewriter) AsOption() radisense.Option {
	return radisense.WithQueryRewriter(r.Rewrite)
}
