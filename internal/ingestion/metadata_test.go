package ingestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeHash(t *testing.T) {
	hash1 := computeHash("test content")
	hash2 := computeHash("different content")

	// Hash should be 64 hex characters (SHA256)
	assert.Len(t, hash1, 64)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, computeHash("test content"))
}

func TestNewMetadata(t *testing.T) {
	content := "line one\n- line two"

	metadata := NewMetadata(content, "cv.txt")

	assert.Equal(t, "cv.txt", metadata.Source)
	assert.Equal(t, computeHash(content), metadata.Hash)
	assert.Equal(t, len(content), metadata.Bytes)
	assert.Equal(t, 2, metadata.Lines)
	assert.Equal(t, 1, metadata.Bullets)

	_, err := time.Parse(time.RFC3339, metadata.Timestamp)
	assert.NoError(t, err)
}

func TestNewMetadata_Empty(t *testing.T) {
	metadata := NewMetadata("", "")

	assert.Empty(t, metadata.Source)
	assert.Equal(t, 0, metadata.Lines)
	assert.Len(t, metadata.Hash, 64)
}

func TestMetadata_ShortHash(t *testing.T) {
	metadata := NewMetadata("React", "")
	assert.Equal(t, metadata.Hash[:12], metadata.ShortHash())

	assert.Equal(t, "abc", (&Metadata{Hash: "abc"}).ShortHash())
}
