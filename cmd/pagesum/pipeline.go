package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagesum"
)

// StepFunc is called with a short message before each pipeline stage.
type StepFunc func(msg string)

// Pipeline runs one URL through fetching, extraction and summarization.
// It keeps no state between runs.
type Pipeline struct {
	Fetcher    pagesum.Fetcher
	Extractor  pagesum.Extractor
	Summarizer pagesum.Summarizer

	// Model names the summarization model in progress messages.
	Model string
}

// Run fetches the URL, extracts its Summary and returns the model's
// description of it. A fetch error is returned before extraction starts.
func (p *Pipeline) Run(ctx context.Context, url string, step StepFunc) (string, error) {
	if step == nil {
		step = func(string) {}
	}

	step("Fetching webpage content...")
	page, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	step("Preprocessing HTML content...")
	summary := p.Extractor.Extract(page.HTML)

	target := "the summarization API"
	if p.Model != "" {
		target = p.Model
	}
	step(fmt.Sprintf("Sending preprocessed data to %s...", target))

	return p.Summarizer.Summarize(ctx, summary)
}
