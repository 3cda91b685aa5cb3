// Package goquery implements pagesum.Extractor on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagesum"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagesum.Extractor at compile time.
var _ pagesum.Extractor = (*Extractor)(nil)

// Extractor builds a pagesum.Summary from raw HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML and collects the title, visible text, and the
// button, video, audio and form elements of the page.
// Script and style elements are removed before anything is read.
func (e *Extractor) Extract(rawHTML string) *pagesum.Summary {
	summary := pagesum.NewSummary()

	// Scripting off so noscript content parses as elements, not raw text.
	root, err := html.ParseWithOptions(strings.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return summary
	}
	doc := goquery.NewDocumentFromNode(root)
	doc.Find("script, style").Remove()

	summary.Title = strings.TrimSpace(doc.Find("title").First().Text())
	summary.MainContent = collapsedText(doc.Nodes...)
	summary.Buttons = extractButtons(doc)
	summary.Videos = extractVideos(doc)
	summary.Audios = extractMedia(doc.Find("audio"))
	summary.InteractiveElements = extractInteractive(doc)

	return summary
}

// Native elements come before pattern-matched links, regardless of their
// relative position in the document.
func extractButtons(doc *goquery.Document) []pagesum.Button {
	buttons := []pagesum.Button{}

	add := func(el element) {
		buttons = append(buttons, pagesum.Button{
			Text:  el.text(),
			Href:  el.attr("href"),
			ID:    el.attr("id"),
			Class: el.class(),
		})
	}

	doc.Find("button").Each(func(_ int, sel *goquery.Selection) {
		add(element{sel})
	})
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		if isButtonClass(sel.AttrOr("class", "")) {
			add(element{sel})
		}
	})

	return buttons
}

// Same two-pass ordering as extractButtons: video tags, then embeds.
func extractVideos(doc *goquery.Document) []pagesum.Media {
	videos := extractMedia(doc.Find("video"))

	embeds := doc.Find("iframe").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return isVideoHost(sel.AttrOr("src", ""))
	})

	return append(videos, extractMedia(embeds)...)
}

func extractMedia(sel *goquery.Selection) []pagesum.Media {
	media := []pagesum.Media{}
	sel.Each(func(_ int, s *goquery.Selection) {
		el := element{s}
		media = append(media, pagesum.Media{
			Src:   el.attr("src"),
			Title: el.attr("title"),
			ID:    el.attr("id"),
			Class: el.class(),
		})
	})
	return media
}

func extractInteractive(doc *goquery.Document) []pagesum.InteractiveElement {
	elements := []pagesum.InteractiveElement{}
	doc.Find("input, select, textarea").Each(func(_ int, s *goquery.Selection) {
		el := element{s}
		elements = append(elements, pagesum.InteractiveElement{
			Type:  el.tag(),
			ID:    el.attr("id"),
			Name:  el.attr("name"),
			Class: el.class(),
		})
	})
	return elements
}

// isButtonClass reports whether a class attribute marks a link as a button.
func isButtonClass(class string) bool {
	class = strings.ToLower(class)
	return strings.Contains(class, "btn") || strings.Contains(class, "button")
}

// isVideoHost reports whether an embed source points at a video host.
func isVideoHost(src string) bool {
	src = strings.ToLower(src)
	return strings.Contains(src, "youtube") || strings.Contains(src, "vimeo")
}

// element is the fixed view of a document node that descriptors are built
// from. Missing attributes read as "".
type element struct {
	sel *goquery.Selection
}

func (e element) tag() string {
	return goquery.NodeName(e.sel)
}

func (e element) attr(name string) string {
	return e.sel.AttrOr(name, "")
}

// class returns the class tokens joined by single spaces, in source order.
func (e element) class() string {
	return strings.Join(strings.Fields(e.attr("class")), " ")
}

func (e element) text() string {
	return collapsedText(e.sel.Nodes...)
}

// collapsedText returns the text under the given nodes with every run of
// whitespace, including element boundaries, reduced to one space.
// Comments and any remaining script or style content are skipped.
func collapsedText(nodes ...*html.Node) string {
	var words []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			words = append(words, strings.Fields(n.Data)...)
			return
		case html.CommentNode:
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return strings.Join(words, " ")
}
