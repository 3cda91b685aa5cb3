// Package gemini implements pagesum.Summarizer using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/pagesum"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Summarizer implements pagesum.Summarizer at compile time.
var _ pagesum.Summarizer = (*Summarizer)(nil)

// Summarizer implements pagesum.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer. An empty model selects DefaultModel.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Model returns the Gemini model used for generation.
func (s *Summarizer) Model() string {
	return s.model
}

// Summarize sends the formatted summary to Gemini and returns the generated text.
func (s *Summarizer) Summarize(ctx context.Context, summary *pagesum.Summary) (string, error) {
	content, err := pagesum.FormatSummary(summary)
	if err != nil {
		return "", err
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, BuildContents(content), BuildConfig())
	if err != nil {
		return "", pagesum.Errorf(pagesum.ESUMMARIZE, "Error calling Gemini API: %v", err)
	}
	if result == nil {
		return "", pagesum.Errorf(pagesum.ESUMMARIZE, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", pagesum.Errorf(pagesum.ESUMMARIZE, "gemini returned no candidates")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig carrying the fixed system instruction.
func BuildConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: pagesum.SystemInstruction}},
		},
	}
}

// BuildContents wraps the formatted summary as the single user turn.
func BuildContents(content string) []*genai.Content {
	return []*genai.Content{
		genai.NewContentFromText(content, genai.RoleUser),
	}
}
