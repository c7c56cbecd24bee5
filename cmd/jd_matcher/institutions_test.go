package main

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/jd-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstitutionsCommand_Line(t *testing.T) {
	stdout, _, err := executeCommand(t, "institutions", "--line", "HUST")
	require.NoError(t, err)

	var match types.InstitutionMatch
	require.NoError(t, json.Unmarshal([]byte(stdout), &match))
	require.NotNil(t, match.Matched)
	assert.Equal(t, "Đại học Bách khoa Hà Nội", match.Matched.CanonicalName)
	assert.Equal(t, "HUST", match.Raw)
}

func TestInstitutionsCommand_LineIsCleaned(t *testing.T) {
	stdout, _, err := executeCommand(t, "institutions", "--line", "\u200b HUST\u00a0\u00a0 Hà Nội ")
	require.NoError(t, err)

	var match types.InstitutionMatch
	require.NoError(t, json.Unmarshal([]byte(stdout), &match))
	require.NotNil(t, match.Matched)
	assert.Equal(t, "Đại học Bách khoa Hà Nội", match.Matched.CanonicalName)
	assert.Equal(t, "HUST Hà Nội", match.Raw)
	assert.False(t, match.NeedsVerification)
}

func TestInstitutionsCommand_LineVerbose(t *testing.T) {
	_, stderr, err := executeCommand(t, "-v", "institutions", "--line", "Đại học TOP CV Việt Nam")
	require.NoError(t, err)

	assert.Contains(t, stderr, "INSTITUTION MATCH")
	assert.Contains(t, stderr, "Matched:  (none)")
}

func TestInstitutionsCommand_Education(t *testing.T) {
	dir := t.TempDir()
	edu := writeTestFile(t, dir, "education.json", `[
		{"school": "Đại học Bách khoa Hà Nội", "degree": "Bachelor of Engineering"},
		{"school": "Đại học Kinh tế"}
	]`)

	stdout, _, err := executeCommand(t, "institutions", "--education", edu)
	require.NoError(t, err)

	var eval types.InstitutionEvaluation
	require.NoError(t, json.Unmarshal([]byte(stdout), &eval))
	require.Len(t, eval.Matches, 1)
	assert.True(t, eval.VerificationNeeded)
	assert.Len(t, eval.VerificationReasons, 1)
}

func TestInstitutionsCommand_FlagsValidation(t *testing.T) {
	_, _, err := executeCommand(t, "institutions")
	require.Error(t, err)

	_, _, err = executeCommand(t, "institutions", "--line", "HUST", "--education", "x.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "jd_matcher version: dev\n", stdout)
}
