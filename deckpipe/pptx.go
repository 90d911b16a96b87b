package deckpipe

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var slideNameRe = regexp.MustCompile(`^ppt/slides/slide([0-9]+)\.xml$`)

// extractPPTX parses a .pptx file by reading ppt/slides/slideN.xml from the
// ZIP archive, in slide order.
func extractPPTX(path string) ([]Slide, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	type numbered struct {
		nr   int
		file *zip.File
	}
	var slideFiles []numbered
	for _, f := range r.File {
		m := slideNameRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		nr, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slideFiles = append(slideFiles, numbered{nr: nr, file: f})
	}
	if len(slideFiles) == 0 {
		return nil, fmt.Errorf("no ppt/slides/slideN.xml entries in archive")
	}
	sort.Slice(slideFiles, func(i, j int) bool { return slideFiles[i].nr < slideFiles[j].nr })

	var slides []Slide
	for _, sf := range slideFiles {
		rc, err := sf.file.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", sf.file.Name, err)
		}
		lines, err := slideLines(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", sf.file.Name, err)
		}
		slides = append(slides, Slide{Number: sf.nr, Lines: lines})
	}
	return slides, nil
}

// slideLines parses one slide's DrawingML: each <a:p> paragraph becomes a
// line, assembled from its <a:t> text runs; <a:br> breaks a paragraph into
// two lines.
func slideLines(rc io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(rc)
	var lines []string
	var current strings.Builder
	var inRun bool

	flush := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			lines = append(lines, text)
		}
		current.Reset()
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
			case "t":
				inRun = true
			case "br":
				flush()
			}

		case xml.CharData:
			if inRun {
				current.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				flush()
			}
		}
	}
	flush()
	return lines, nil
}
