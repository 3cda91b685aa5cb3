package pagesum

import "context"

// Page holds the raw markup of a fetched webpage.
type Page struct {
	URL  string
	HTML string
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET request for the URL and returns the decoded body.
	// Returns EFETCH on transport failures and non-2xx responses.
	Fetch(ctx context.Context, url string) (*Page, error)
}
