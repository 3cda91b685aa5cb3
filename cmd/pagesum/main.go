package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/gemini"
	"github.com/fwojciec/pagesum/goquery"
	pshttp "github.com/fwojciec/pagesum/http"
	"github.com/fwojciec/pagesum/openai"
	"github.com/fwojciec/pagesum/rod"
	psslog "github.com/fwojciec/pagesum/slog"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Environ replaces the process environment when non-nil. Set before calling Run().
	Environ map[string]string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run parses flags, wires the pipeline, and runs the interactive loop
// until the user quits or stdin is exhausted.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesum"),
		kong.Description("Summarize webpages interactively with a language model"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := LoadConfig(m.Environ)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set PAGESUM_API_KEY, or PAGESUM_PROVIDER=gemini with GEMINI_API_KEY")
		return err
	}
	cfg = cli.apply(cfg)

	logger := newLogger(stderr, cli.Verbose)

	summarizer, model, err := newSummarizer(ctx, cfg)
	if err != nil {
		return err
	}

	var fetcher pagesum.Fetcher = pshttp.NewFetcher()
	if cli.Render {
		f, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: --render requires Chrome or Chromium")
			return err
		}
		defer func() { _ = f.Close() }()
		fetcher = f
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Pipeline: &Pipeline{
			Fetcher:    psslog.NewLoggingFetcher(fetcher, logger),
			Extractor:  psslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
			Summarizer: psslog.NewLoggingSummarizer(summarizer, logger),
			Model:      model,
		},
	}

	return (&SummarizeCmd{}).Run(deps)
}

// newLogger returns a text logger on w. Decorators log at Info, so they are
// silent unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newSummarizer builds the Summarizer for the configured provider and
// returns the model name it will use.
func newSummarizer(ctx context.Context, cfg Config) (pagesum.Summarizer, string, error) {
	switch cfg.Provider {
	case ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, "", fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		s := gemini.NewSummarizer(client, cfg.GeminiModel)
		return s, s.Model(), nil
	default:
		s := openai.NewSummarizer(cfg.APIKey,
			openai.WithBaseURL(cfg.BaseURL),
			openai.WithModel(cfg.Model),
		)
		return s, s.Model(), nil
	}
}
