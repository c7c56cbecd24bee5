package candidates

import (
	"testing"

	"github.com/jonathan/jd-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_CleansText(t *testing.T) {
	list := []types.Candidate{
		{ID: " a ", Name: "  Minh ", CV: "• React\r\n• Go   developer"},
	}

	require.NoError(t, Normalize(list))

	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "Minh", list[0].Name)
	assert.Equal(t, "- React\n- Go developer", list[0].CV)
}

func TestNormalize_AllowsMissingIDs(t *testing.T) {
	list := []types.Candidate{{CV: "React"}, {CV: "Go"}}
	assert.NoError(t, Normalize(list))
}

func TestNormalize_Empty(t *testing.T) {
	assert.NoError(t, Normalize(nil))
}

func TestNormalizeEducation(t *testing.T) {
	tests := []struct {
		name  string
		input []types.EducationEntry
		want  []types.EducationEntry
	}{
		{name: "nil", input: nil, want: nil},
		{name: "all empty", input: []types.EducationEntry{{}, {School: " "}}, want: []types.EducationEntry{}},
		{
			name:  "trims",
			input: []types.EducationEntry{{School: " FTU ", Major: " Economics"}},
			want:  []types.EducationEntry{{School: "FTU", Major: "Economics"}},
		},
		{
			name:  "degree only",
			input: []types.EducationEntry{{Degree: "MBA"}},
			want:  []types.EducationEntry{{Degree: "MBA"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEducation(tt.input))
		})
	}
}
