package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFace(t *testing.T) {
	for _, name := range FontNames() {
		face, err := LoadFace(name, 28)
		require.NoError(t, err, name)
		assert.Equal(t, 28.0, face.Size)
		assert.Greater(t, face.MeasureText("Claude Code"), face.MeasureText("Hi"), name)
	}

	_, err := LoadFace("comic-sans", 28)
	assert.Error(t, err)
}

func TestMeasureText(t *testing.T) {
	face, err := LoadFace(FontGoBold, 28)
	require.NoError(t, err)

	assert.Equal(t, 0.0, face.MeasureText(""))
	assert.Greater(t, face.MeasureText("Hi"), 0.0)

	bigger, err := LoadFace(FontGoBold, 56)
	require.NoError(t, err)
	assert.Greater(t, bigger.MeasureText("Hi"), face.MeasureText("Hi"))
}

func TestMonoFaceWidthScalesWithLength(t *testing.T) {
	face, err := LoadFace(FontGoMonoBold, 20)
	require.NoError(t, err)
	assert.InDelta(t, 2*face.MeasureText("abcd"), face.MeasureText("abcdefgh"), 0.01)
}

func TestFauxBoldAddsStroke(t *testing.T) {
	face, err := LoadFace(FontMPlus, 28)
	require.NoError(t, err)
	assert.Equal(t, 1, face.Stroke)

	face, err = LoadFace(FontGoBold, 28)
	require.NoError(t, err)
	assert.Equal(t, 0, face.Stroke)
}

func TestMeasureTextUsesWidestLine(t *testing.T) {
	face, err := LoadFace(FontGoBold, 28)
	require.NoError(t, err)

	assert.Equal(t, face.MeasureText("Hi"), face.MeasureText("Hi\nHi"))
	assert.Equal(t, face.MeasureText("Claude Code"), face.MeasureText("Hi\nClaude Code\n"))
	assert.Equal(t, 0.0, face.MeasureText("\n\n"))
}
