// Package output handles file naming and writing for charsheet outputs.
// The file is named after the user's choice, or after the character when no
// name was given (e.g. "Bob the Baker" → Bob_the_Baker.md).
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultName is used when neither a file name nor a usable character name
// is available.
const defaultName = "output"

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data as <name><ext> in the output directory and returns the
// written path.
func (w *Writer) Write(name string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, Filename(name, ext))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Filename builds a flat, filesystem-safe file name from name and ext. A
// trailing ext already present in name is not doubled.
func Filename(name, ext string) string {
	name = strings.TrimSuffix(strings.TrimSpace(name), ext)
	name = strings.Trim(sanitize(name), "_")
	if name == "" {
		name = defaultName
	}
	return name + ext
}

// sanitize replaces every run of characters other than letters (including
// non-ASCII), digits and '-' with a single underscore.
func sanitize(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, ch := range s {
		if isWordRune(ch) || ch == '-' {
			b.WriteRune(ch)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteRune('_')
			lastUnderscore = true
		}
	}
	return b.String()
}

func isWordRune(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch > 0x7f
}
