package ranking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-5, 0, 100))
	assert.Equal(t, 100.0, clamp(150, 0, 100))
	assert.Equal(t, 42.5, clamp(42.5, 0, 100))
	assert.Equal(t, 0.0, clamp(math.NaN(), 0, 100))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, clampInt(-3, 0, 10))
	assert.Equal(t, 10, clampInt(12, 0, 10))
	assert.Equal(t, 7, clampInt(7, 0, 10))
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 47, roundScore(46.6666))
	assert.Equal(t, 100, roundScore(100.4))
	assert.Equal(t, 0, roundScore(-1))
	assert.Equal(t, 51, roundScore(50.5))
}
