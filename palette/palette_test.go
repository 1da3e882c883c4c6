package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHasNineColours(t *testing.T) {
	p := Default()
	assert.Len(t, p, Size)
	assert.Equal(t, RGB{1, 0, 0}, p[0])
	assert.Equal(t, RGB{0.72, 0.52, 0.04}, p[8])
}

func TestButtonOrderIsPermutation(t *testing.T) {
	seen := map[int]bool{}
	for _, i := range ButtonOrder {
		assert.True(t, Valid(i))
		seen[i] = true
	}
	assert.Len(t, seen, Size)
}

func TestParseOverridesPrefix(t *testing.T) {
	p, err := Parse([]string{"#000000", "#ffffff"})
	require.NoError(t, err)

	assert.Equal(t, RGB{0, 0, 0}, p[0])
	assert.Equal(t, RGB{1, 1, 1}, p[1])
	assert.Equal(t, Default()[2], p[2])
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]string{"#00ff00", "green"})
	assert.ErrorContains(t, err, "entry 1")

	_, err = Parse(make([]string, Size+1))
	assert.ErrorContains(t, err, "at most 9")
}

func TestAtClampsIndex(t *testing.T) {
	p := Default()
	assert.Equal(t, p[0], p.At(-5))
	assert.Equal(t, p[Size-1], p.At(10))
	assert.Equal(t, p[4], p.At(4))
}

func TestSetClampsChannels(t *testing.T) {
	p := Default()
	p.Set(3, RGB{R: -1, G: 0.5, B: 2})
	assert.Equal(t, RGB{R: 0, G: 0.5, B: 1}, p[3])

	before := p
	p.Set(Size, RGB{})
	assert.Equal(t, before, p)
}

func TestHexRoundTripsThroughParse(t *testing.T) {
	want := []string{"#ff0000", "#00ff00", "#0000ff"}
	p, err := Parse(want)
	require.NoError(t, err)
	assert.Equal(t, want, p.Hex()[:3])
}
