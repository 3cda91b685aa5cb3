package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/mock"
	psslog "github.com/fwojciec/pagesum/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs element counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := pagesum.NewSummary()
		want.Title = "Home"
		want.MainContent = "hello"
		want.Buttons = append(want.Buttons, pagesum.Button{Text: "Go"}, pagesum.Button{Text: "Stop"})
		want.Audios = append(want.Audios, pagesum.Media{Src: "a.mp3"})
		inner := &mock.Extractor{
			ExtractFn: func(html string) *pagesum.Summary { return want },
		}

		got := psslog.NewLoggingExtractor(inner, logger).Extract("<html></html>")

		assert.Equal(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "title=Home")
		assert.Contains(t, output, "text_bytes=5")
		assert.Contains(t, output, "buttons=2")
		assert.Contains(t, output, "videos=0")
		assert.Contains(t, output, "audios=1")
		assert.Contains(t, output, "interactive=0")
	})
}
