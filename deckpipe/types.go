package deckpipe

// Format identifies a source-document type.
type Format string

const (
	FormatPPTX Format = "pptx"
	FormatODP  Format = "odp"
	FormatPDF  Format = "pdf"
	FormatTXT  Format = "txt"
)

// Slide is one slide's worth of extracted text lines, in reading order.
type Slide struct {
	Number int      `json:"number"`
	Lines  []string `json:"lines"`
}

// Deck is the result of extracting text from a source document. RawText joins
// all lines with newlines, preserving line breaks: the menu parser classifies
// text line by line.
type Deck struct {
	Path    string  `json:"path"`
	Format  Format  `json:"format"`
	Slides  []Slide `json:"slides"`
	RawText string  `json:"raw_text"`
}
