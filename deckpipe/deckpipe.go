// Package deckpipe extracts line-oriented text from uploaded menu decks.
//
// Supported formats:
//   - .pptx — PowerPoint (archive/zip → ppt/slides/slideN.xml)
//   - .odp  — OpenDocument Presentation (archive/zip → content.xml)
//   - .pdf  — PDF text extraction via pdfcpu content streams
//   - .txt  — Plain text (passthrough, line breaks preserved)
//
// Extracted text is NFC-normalized so that decomposed Norwegian characters
// from office exports compare equal to their composed forms.
package deckpipe

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Pipeline is the deck extraction engine.
type Pipeline struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a Pipeline with the given configuration.
func New(cfg Config) *Pipeline {
	cfg.defaults()
	return &Pipeline{
		cfg:    cfg,
		logger: cfg.Logger,
	}
}

// Detect returns the deck format based on file extension.
func (p *Pipeline) Detect(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pptx":
		return FormatPPTX, nil
	case ".odp":
		return FormatODP, nil
	case ".pdf":
		return FormatPDF, nil
	case ".txt", ".text":
		return FormatTXT, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", ext)
	}
}

// Extract parses a deck file and returns its text, one line per text
// paragraph, grouped by slide.
func (p *Pipeline) Extract(ctx context.Context, path string) (*Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > p.cfg.MaxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), p.cfg.MaxFileSize)
	}

	format, err := p.Detect(path)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("extracting deck", "path", path, "format", format)

	var slides []Slide
	switch format {
	case FormatPPTX:
		slides, err = extractPPTX(path)
	case FormatODP:
		slides, err = extractODP(path)
	case FormatPDF:
		slides, err = extractPDF(path)
	case FormatTXT:
		slides, err = extractTXT(path)
	default:
		return nil, fmt.Errorf("no parser for format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("extract %s (%s): %w", path, format, err)
	}

	var sb strings.Builder
	for _, s := range slides {
		for _, line := range s.Lines {
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(line)
		}
	}

	return &Deck{
		Path:    path,
		Format:  format,
		Slides:  slides,
		RawText: norm.NFC.String(sb.String()),
	}, nil
}

// SupportedFormats returns all supported format extensions.
func SupportedFormats() []string {
	return []string{"pptx", "odp", "pdf", "txt"}
}
