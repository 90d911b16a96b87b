package deckpipe

import (
	"os"
	"strings"
)

// extractTXT reads a plain text file as a single slide, preserving line
// breaks. Windows and classic Mac line endings are normalized first.
func extractTXT(path string) ([]Slide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return []Slide{}, nil
	}
	return []Slide{{Number: 1, Lines: lines}}, nil
}
