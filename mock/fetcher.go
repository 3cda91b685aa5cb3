package mock

import (
	"context"

	"github.com/fwojciec/pagesum"
)

var _ pagesum.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagesum.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*pagesum.Page, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagesum.Page, error) {
	return f.FetchFn(ctx, url)
}
