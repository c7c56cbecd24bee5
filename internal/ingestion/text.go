// Package ingestion reads and cleans job description and CV text before scoring.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// MaxDocumentBytes caps the size of a JD or CV file.
const MaxDocumentBytes = 1 << 20

var (
	spaceRunRe       = regexp.MustCompile(`[ \t\f\v]+`)
	excessiveBlankRe = regexp.MustCompile(`\n\n\n+`)

	// Invisible characters pasted in from PDFs and web pages
	invisibleReplacer = strings.NewReplacer(
		"\ufeff", "",
		"\u200b", "",
		"\u200c", "",
		"\u200d", "",
		"\u00ad", "",
		"\u00a0", " ",
		"\u202f", " ",
	)

	// Bullet glyphs rewritten to "- " so downstream section parsing sees one form
	bulletGlyphs = []string{"•", "·", "▪", "◦", "●", "■", "‣", "–", "+"}
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = invisibleReplacer.Replace(content)

	// 2. Process each line
	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	// 3. Remove excessive blank lines (max 1 empty line between blocks)
	result := excessiveBlankRe.ReplaceAllString(strings.Join(cleanedLines, "\n"), "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	if glyph, ok := bulletGlyph(trimmed); ok {
		trimmed = "- " + strings.TrimSpace(strings.TrimPrefix(trimmed, glyph))
	}

	return spaceRunRe.ReplaceAllString(trimmed, " ")
}

func bulletGlyph(line string) (string, bool) {
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(line, glyph+" ") || strings.HasPrefix(line, glyph+"\t") {
			return glyph, true
		}
	}
	return "", false
}

// isBulletLine checks if a cleaned line is a bullet list item
func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}

// CountBullets returns the number of bullet lines in cleaned text.
func CountBullets(cleaned string) int {
	n := 0
	for _, line := range strings.Split(cleaned, "\n") {
		if isBulletLine(line) {
			n++
		}
	}
	return n
}

// IngestFromFile reads a text file, cleans it, and returns cleaned text with metadata
func IngestFromFile(path string) (string, *Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}
	if info.IsDir() {
		return "", nil, fmt.Errorf("failed to read file: %s is a directory", path)
	}
	if info.Size() > MaxDocumentBytes {
		return "", nil, fmt.Errorf("file %s is too large: %d bytes (max %d)", path, info.Size(), MaxDocumentBytes)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	cleanedText := CleanText(string(content))
	return cleanedText, NewMetadata(cleanedText, path), nil
}

// IngestFromString cleans in-memory text and describes it
func IngestFromString(content, source string) (string, *Metadata) {
	cleanedText := CleanText(content)
	return cleanedText, NewMetadata(cleanedText, source)
}
