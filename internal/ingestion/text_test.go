package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	input := "# Title\n## Subtitle\nContent here"
	result := CleanText(input)

	assert.Equal(t, "# Title\n## Subtitle\nContent here", result)
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n- Item 2\n* Item 3"
	result := CleanText(input)

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "- Item 2")
	assert.Contains(t, result, "* Item 3")
}

func TestCleanText_RewritesBulletGlyphs(t *testing.T) {
	input := "Requirements:\n  • React\n· TypeScript\n▪   Docker\n+ Go"
	result := CleanText(input)

	assert.Equal(t, "Requirements:\n- React\n- TypeScript\n- Docker\n- Go", result)
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with \t  multiple    spaces   "
	result := CleanText(input)

	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_RemovesInvisibleCharacters(t *testing.T) {
	input := "\ufeffReact\u200b developer\u00a0with Go"
	result := CleanText(input)

	assert.Equal(t, "React developer with Go", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_Idempotent(t *testing.T) {
	input := "  Test content   with   spaces\n\n\n• Multiple   blank   lines\r\n"
	once := CleanText(input)

	assert.Equal(t, once, CleanText(once))
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_KeepsDiacritics(t *testing.T) {
	input := "Kỹ sư phần mềm   🚀  Đại học Bách khoa"
	result := CleanText(input)

	assert.Equal(t, "Kỹ sư phần mềm 🚀 Đại học Bách khoa", result)
}

func TestCountBullets(t *testing.T) {
	assert.Equal(t, 3, CountBullets(CleanText("Must have:\n• Go\n- SQL\n* Docker\nNice to have AWS")))
	assert.Equal(t, 0, CountBullets(""))
}

func TestIngestFromFile_Success(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "jd.txt")
	err := os.WriteFile(testFile, []byte("# Frontend Engineer\r\n\r\nMust have:\r\n• React"), 0644)
	require.NoError(t, err)

	cleanedText, metadata, err := IngestFromFile(testFile)
	require.NoError(t, err)

	assert.Equal(t, "# Frontend Engineer\n\nMust have:\n- React", cleanedText)
	require.NotNil(t, metadata)
	assert.Equal(t, testFile, metadata.Source)
	assert.Len(t, metadata.Hash, 64)
	assert.Equal(t, 4, metadata.Lines)
	assert.Equal(t, 1, metadata.Bullets)
}

func TestIngestFromFile_FileNotFound(t *testing.T) {
	cleanedText, metadata, err := IngestFromFile("/nonexistent/file.txt")

	assert.Error(t, err)
	assert.Empty(t, cleanedText)
	assert.Nil(t, metadata)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIngestFromFile_Directory(t *testing.T) {
	_, _, err := IngestFromFile(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestIngestFromFile_TooLarge(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "huge.txt")
	err := os.WriteFile(testFile, []byte(strings.Repeat("a", MaxDocumentBytes+1)), 0644)
	require.NoError(t, err)

	_, _, err = IngestFromFile(testFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestIngestFromFile_HashStableAcrossLineEndings(t *testing.T) {
	dir := t.TempDir()
	unix := filepath.Join(dir, "unix.txt")
	windows := filepath.Join(dir, "windows.txt")
	require.NoError(t, os.WriteFile(unix, []byte("Go\nSQL\n"), 0644))
	require.NoError(t, os.WriteFile(windows, []byte("Go\r\nSQL\r\n"), 0644))

	_, m1, err := IngestFromFile(unix)
	require.NoError(t, err)
	_, m2, err := IngestFromFile(windows)
	require.NoError(t, err)

	assert.Equal(t, m1.Hash, m2.Hash)
}

func TestIngestFromString(t *testing.T) {
	cleaned, metadata := IngestFromString("  React   developer ", "inline")

	assert.Equal(t, "React developer", cleaned)
	assert.Equal(t, "inline", metadata.Source)
	assert.Equal(t, 1, metadata.Lines)
}
