package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fwojciec/pagesum"
	"mvdan.cc/xurls/v2"
)

const (
	welcome   = "Welcome to the Webpage Content Extractor and Summarizer!"
	prompt    = "Please enter a URL (or 'quit' to exit): "
	goodbye   = "Thank you for using the Webpage Content Extractor and Summarizer. Goodbye!"
	quitToken = "quit"
)

var separator = strings.Repeat("=", 50)

// webURL matches http and https URLs.
var webURL = mustWebURL()

func mustWebURL() *regexp.Regexp {
	re, err := xurls.StrictMatchingScheme(`https?://`)
	if err != nil {
		panic(err)
	}
	return re
}

// SummarizeCmd is the interactive loop: one URL per line until "quit".
type SummarizeCmd struct{}

// Run prompts for URLs and prints a summary for each. Errors are reported
// and the loop continues; only "quit" or the end of input stops it.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, welcome)

	// Lines are read without a length limit; a long line is still one input.
	r := bufio.NewReader(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, prompt)
		raw, err := r.ReadString('\n')
		if err != nil && raw == "" {
			fmt.Fprintln(deps.Stdout)
			fmt.Fprintln(deps.Stdout, goodbye)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line := strings.TrimSpace(raw)
		if strings.EqualFold(line, quitToken) {
			fmt.Fprintln(deps.Stdout, goodbye)
			return nil
		}
		if line == "" {
			continue
		}

		c.summarize(deps, line)
		fmt.Fprintln(deps.Stdout)
	}
}

func (c *SummarizeCmd) summarize(deps *Dependencies, line string) {
	step := func(msg string) {
		fmt.Fprintln(deps.Stdout, msg)
	}

	summary, err := func() (string, error) {
		if err := validateURL(line); err != nil {
			return "", err
		}
		return deps.Pipeline.Run(deps.Ctx, line, step)
	}()
	if err != nil {
		fmt.Fprintf(deps.Stdout, "An error occurred: %s\n", pagesum.ErrorMessage(err))
		fmt.Fprintln(deps.Stdout, "Please try again with a different URL.")
		return
	}

	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, "Webpage Summary:")
	fmt.Fprintln(deps.Stdout, summary)
	fmt.Fprintf(deps.Stdout, "\n%s\n", separator)
}

// validateURL returns EINVALID unless s is a single token starting with an
// http(s) URL. Trailing punctuation that xurls trims stays part of the URL.
func validateURL(s string) error {
	loc := webURL.FindStringIndex(s)
	if loc == nil || loc[0] != 0 || strings.ContainsAny(s, " \t") {
		return pagesum.Errorf(pagesum.EINVALID, "%q is not an http or https URL", s)
	}
	return nil
}
