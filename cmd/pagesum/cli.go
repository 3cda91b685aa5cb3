package main

import (
	"context"
	"io"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Pipeline *Pipeline
}

// CLI defines the command-line interface structure for Kong.
// Every flag is optional; with none set the interactive loop runs on the
// environment configuration.
type CLI struct {
	Verbose bool   `short:"v" help:"Log fetch, extract and summarize steps to stderr"`
	Render  bool   `help:"Fetch pages with headless Chrome so script-built content is included"`
	Model   string `help:"Model identifier (overrides PAGESUM_MODEL or GEMINI_MODEL)"`
	BaseURL string `name:"base-url" help:"Chat-completions base URL (overrides PAGESUM_BASE_URL)"`
}

// apply overrides cfg with any flags that were set.
func (c *CLI) apply(cfg Config) Config {
	if c.Model != "" {
		cfg.Model = c.Model
		cfg.GeminiModel = c.Model
	}
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	return cfg
}
