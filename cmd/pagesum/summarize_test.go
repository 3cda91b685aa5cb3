package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/pagesum"
	main "github.com/fwojciec/pagesum/cmd/pagesum"
	"github.com/fwojciec/pagesum/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDeps returns Dependencies reading input. fetch, when set, can fail a
// URL; the returned counter tracks fetch calls.
func newDeps(input string, fetch func(url string) error) (*main.Dependencies, *bytes.Buffer, *int) {
	calls := 0
	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdin:  strings.NewReader(input),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
		Pipeline: &main.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (*pagesum.Page, error) {
					calls++
					if fetch != nil {
						if err := fetch(url); err != nil {
							return nil, err
						}
					}
					return &pagesum.Page{URL: url, HTML: "<title>T</title>"}, nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(string) *pagesum.Summary { return pagesum.NewSummary() },
			},
			Summarizer: &mock.Summarizer{
				SummarizeFn: func(context.Context, *pagesum.Summary) (string, error) {
					return "It is a page.", nil
				},
			},
			Model: "test-model",
		},
	}
	return deps, stdout, &calls
}

func TestSummarizeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("quit exits without fetching", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"quit\n", "QUIT\n", "  Quit  \n"} {
			deps, stdout, calls := newDeps(input, nil)

			err := (&main.SummarizeCmd{}).Run(deps)

			require.NoError(t, err)
			assert.Equal(t, 0, *calls)
			assert.Contains(t, stdout.String(), "Welcome to the Webpage Content Extractor and Summarizer!")
			assert.Contains(t, stdout.String(), "Goodbye!")
		}
	})

	t.Run("end of input exits like quit", func(t *testing.T) {
		t.Parallel()

		deps, stdout, calls := newDeps("", nil)

		err := (&main.SummarizeCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 0, *calls)
		assert.Contains(t, stdout.String(), "Goodbye!")
	})

	t.Run("empty lines re-prompt", func(t *testing.T) {
		t.Parallel()

		deps, stdout, calls := newDeps("\n   \nquit\n", nil)

		err := (&main.SummarizeCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 0, *calls)
		assert.Equal(t, 3, strings.Count(stdout.String(), "Please enter a URL (or 'quit' to exit): "))
	})

	t.Run("prints summary on success", func(t *testing.T) {
		t.Parallel()

		deps, stdout, calls := newDeps("https://example.com\nquit\n", nil)

		err := (&main.SummarizeCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 1, *calls)
		out := stdout.String()
		assert.Contains(t, out, "Fetching webpage content...")
		assert.Contains(t, out, "Preprocessing HTML content...")
		assert.Contains(t, out, "Sending preprocessed data to test-model...")
		assert.Contains(t, out, "Webpage Summary:\nIt is a page.\n")
		assert.Contains(t, out, strings.Repeat("=", 50))
	})

	t.Run("reports error and continues", func(t *testing.T) {
		t.Parallel()

		deps, stdout, calls := newDeps("https://bad.example\nhttps://good.example\nquit\n", func(url string) error {
			if url == "https://bad.example" {
				return pagesum.Errorf(pagesum.EFETCH, "Error fetching the webpage: HTTP 404 for %s", url)
			}
			return nil
		})

		err := (&main.SummarizeCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 2, *calls)
		out := stdout.String()
		assert.Contains(t, out, "An error occurred: Error fetching the webpage: HTTP 404 for https://bad.example")
		assert.Contains(t, out, "Please try again with a different URL.")
		assert.Contains(t, out, "Webpage Summary:\nIt is a page.")
	})

	t.Run("rejects non-web URLs", func(t *testing.T) {
		t.Parallel()

		deps, stdout, calls := newDeps("not a url\nftp://example.com/file\nexample.com\nquit\n", nil)

		err := (&main.SummarizeCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 0, *calls)
		assert.Equal(t, 3, strings.Count(stdout.String(), "Please try again with a different URL."))
		assert.Contains(t, stdout.String(), `An error occurred: "not a url" is not an http or https URL`)
	})

	t.Run("fetches URLs ending in punctuation as typed", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		deps, _, calls := newDeps("https://example.com/a.\nhttps://example.com/path,\nquit\n", func(url string) error {
			fetched = append(fetched, url)
			return nil
		})

		err := (&main.SummarizeCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 2, *calls)
		assert.Equal(t, []string{"https://example.com/a.", "https://example.com/path,"}, fetched)
	})

	t.Run("rejects URL followed by other words", func(t *testing.T) {
		t.Parallel()

		deps, stdout, calls := newDeps("https://example.com please\nquit\n", nil)

		err := (&main.SummarizeCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 0, *calls)
		assert.Contains(t, stdout.String(), "Please try again with a different URL.")
	})

	t.Run("survives lines longer than the default scanner buffer", func(t *testing.T) {
		t.Parallel()

		long := "https://example.com/?q=" + strings.Repeat("a", 100*1024)
		deps, stdout, calls := newDeps(long+"\nhttps://example.com\nquit\n", nil)

		err := (&main.SummarizeCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 2, *calls)
		assert.Contains(t, stdout.String(), "Goodbye!")
	})

	t.Run("processes final line without newline", func(t *testing.T) {
		t.Parallel()

		deps, stdout, calls := newDeps("https://example.com", nil)

		err := (&main.SummarizeCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 1, *calls)
		assert.Contains(t, stdout.String(), "Webpage Summary:")
		assert.Contains(t, stdout.String(), "Goodbye!")
	})

	t.Run("does not print internal error details", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("https://example.com\nquit\n", nil)
		deps.Pipeline.Summarizer = &mock.Summarizer{
			SummarizeFn: func(context.Context, *pagesum.Summary) (string, error) {
				return "", assert.AnError
			},
		}

		err := (&main.SummarizeCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "An error occurred: Internal error.")
		assert.NotContains(t, stdout.String(), assert.AnError.Error())
	})
}
