package mock

import (
	"context"

	"github.com/fwojciec/pagesum"
)

var _ pagesum.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of pagesum.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, summary *pagesum.Summary) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, summary *pagesum.Summary) (string, error) {
	return s.SummarizeFn(ctx, summary)
}
