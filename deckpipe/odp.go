package deckpipe

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractODP parses an .odp file by reading content.xml from the ZIP archive.
// Each draw:page becomes a Slide; each text:p or text:h inside it a line.
func extractODP(path string) ([]Slide, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	var contentFile *zip.File
	for _, f := range r.File {
		if f.Name == "content.xml" {
			contentFile = f
			break
		}
	}
	if contentFile == nil {
		return nil, fmt.Errorf("content.xml not found in archive")
	}

	rc, err := contentFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open content.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var slides []Slide
	var lines []string
	var current strings.Builder
	var inText bool
	pageNr := 0

	flushLine := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			lines = append(lines, text)
		}
		current.Reset()
	}
	flushPage := func() {
		if len(lines) > 0 {
			slides = append(slides, Slide{Number: pageNr, Lines: lines})
			lines = nil
		}
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "page": // <draw:page>
				flushPage()
				pageNr++
			case "p", "h": // <text:p>, <text:h>
				inText = true
				current.Reset()
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}

		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "h" {
				inText = false
				flushLine()
			}
		}
	}
	flushPage()

	if len(slides) == 0 {
		return nil, fmt.Errorf("no text content in presentation")
	}
	return slides, nil
}
