package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreLanguage(t *testing.T) {
	tests := []struct {
		name     string
		jd       string
		cv       string
		expected float64
	}{
		{"no requirement", "Go developer", "English, IELTS 8.0", 60},
		{"single language with bonus clamps", "English required", "English, IELTS 7.5", 100},
		{"half of two languages", "English and Japanese", "English", 50},
		{"half plus proficiency", "English and Japanese", "English (fluent)", 60},
		{"missing language", "Japanese", "Korean", 0},
		{"proficiency only", "English", "TOEIC 850", 10},
		{"vietnamese alias", "Yêu cầu tiếng Anh", "Tiếng Anh giao tiếp tốt", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreLanguage(doc(tt.jd), doc(tt.cv))
			assert.InDelta(t, tt.expected, got.Score, 1e-9)
		})
	}
}

func TestScoreLanguage_ReportsSignals(t *testing.T) {
	got := ScoreLanguage(doc("English and German"), doc("German B2, English native"))

	assert.Equal(t, []string{"english", "german"}, got.Required)
	assert.Equal(t, []string{"english", "german"}, got.Present)
	assert.Equal(t, []string{"native", "cefr"}, got.Proficiencies)
	assert.InDelta(t, 100.0, got.Score, 1e-9)
}
