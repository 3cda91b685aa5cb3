package pagesum

// Summary is the structured record extracted from a page's HTML.
// It is serialized to JSON and sent to the summarization model.
type Summary struct {
	Title               string               `json:"title"`
	MainContent         string               `json:"mainContent"`
	Buttons             []Button             `json:"buttons"`
	Videos              []Media              `json:"videos"`
	Audios              []Media              `json:"audios"`
	InteractiveElements []InteractiveElement `json:"interactiveElements"`
}

// NewSummary returns an empty Summary whose element lists are non-nil,
// so they serialize as [] rather than null.
func NewSummary() *Summary {
	return &Summary{
		Buttons:             []Button{},
		Videos:              []Media{},
		Audios:              []Media{},
		InteractiveElements: []InteractiveElement{},
	}
}

// Button describes a clickable control: a native button, or a link styled
// as one.
type Button struct {
	Text  string `json:"text"`
	Href  string `json:"href"`
	ID    string `json:"id"`
	Class string `json:"class"`
}

// Media describes a video or audio element.
type Media struct {
	Src   string `json:"src"`
	Title string `json:"title"`
	ID    string `json:"id"`
	Class string `json:"class"`
}

// InteractiveElement describes a form control. Type holds the tag name
// (input, select or textarea).
type InteractiveElement struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

// Extractor builds a Summary from raw HTML.
type Extractor interface {
	// Extract parses the HTML and returns its Summary.
	// Parsing is best-effort: malformed or empty input yields empty fields,
	// never an error.
	Extract(html string) *Summary
}
