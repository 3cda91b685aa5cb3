// Package openai implements pagesum.Summarizer against an OpenAI-compatible
// chat-completions endpoint.
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fwojciec/pagesum"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Defaults point at the Venice chat-completions API.
const (
	DefaultBaseURL = "https://api.venice.ai/api/v1/"
	DefaultModel   = "nous-hermes-8b"
)

// Ensure Summarizer implements pagesum.Summarizer at compile time.
var _ pagesum.Summarizer = (*Summarizer)(nil)

// Summarizer sends a pagesum.Summary to a chat-completions endpoint and
// returns the first generated message. Requests are never retried.
type Summarizer struct {
	client openai.Client
	model  string
}

type settings struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Option configures a Summarizer.
type Option func(*settings)

// WithBaseURL sets the API base URL. The chat-completions path is appended to it.
// Defaults to DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(s *settings) {
		s.baseURL = u
	}
}

// WithModel sets the model identifier sent with each request.
// Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(s *settings) {
		s.model = model
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) {
		s.httpClient = c
	}
}

// NewSummarizer creates a Summarizer that authenticates with the given bearer token.
func NewSummarizer(apiKey string, opts ...Option) *Summarizer {
	s := settings{
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
	}
	for _, opt := range opts {
		opt(&s)
	}

	baseURL := s.baseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	if s.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(s.httpClient))
	}

	return &Summarizer{
		client: openai.NewClient(reqOpts...),
		model:  s.model,
	}
}

// Model returns the model identifier sent with each request.
func (s *Summarizer) Model() string {
	return s.model
}

// Summarize sends the summary as a two-message chat transcript and returns
// choices[0].message.content verbatim.
func (s *Summarizer) Summarize(ctx context.Context, summary *pagesum.Summary) (string, error) {
	content, err := pagesum.FormatSummary(summary)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Chat.Completions.New(ctx, BuildParams(s.model, content))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", pagesum.Errorf(pagesum.ESUMMARIZE, "Error calling summarization API: HTTP %d", apiErr.StatusCode)
		}
		return "", pagesum.Errorf(pagesum.ESUMMARIZE, "Error calling summarization API: %v", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", pagesum.Errorf(pagesum.ESUMMARIZE, "Error calling summarization API: response has no choices")
	}

	choice := resp.Choices[0]
	if !choice.JSON.Message.Valid() || !choice.Message.JSON.Content.Valid() {
		return "", pagesum.Errorf(pagesum.ESUMMARIZE, "Error calling summarization API: response has no message")
	}

	return choice.Message.Content, nil
}

// BuildParams returns the chat-completion request: the fixed system
// instruction followed by the formatted summary as the user message.
func BuildParams(model, content string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(pagesum.SystemInstruction),
			openai.UserMessage(content),
		},
	}
}
