package pagesum

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
)

// SystemInstruction is the fixed instruction sent ahead of every Summary.
const SystemInstruction = "Please summarize the content of the webpage."

// Summarizer turns a Summary into natural-language text using a remote
// language model.
type Summarizer interface {
	// Summarize sends the Summary to the model and returns the first
	// generated response.
	// Returns EINVALID for a nil Summary and ESUMMARIZE on transport
	// failures, non-2xx responses, and responses without a generated message.
	Summarize(ctx context.Context, summary *Summary) (string, error)
}

// FormatSummary renders the Summary as indented JSON for the user message.
// HTML characters are left unescaped so markup in text stays readable.
func FormatSummary(s *Summary) (string, error) {
	if s == nil {
		return "", Errorf(EINVALID, "summary required")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return "", Errorf(EINTERNAL, "encode summary: %v", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
