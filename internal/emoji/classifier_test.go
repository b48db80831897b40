package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMatchesBaseEmoji(t *testing.T) {
	span, ok := Classify("👋", 0)
	require.True(t, ok)
	assert.Equal(t, 0, span.Offset)
	assert.Equal(t, 4, span.Bytes)
	assert.Equal(t, 1, span.Runes)
}

func TestClassifyConsumesWholeSequence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		runes int
	}{
		{"skin tone modifier", "👍🏽", 2},
		{"zwj family", "👨‍👩‍👧‍👦", 7},
		{"flag pair", "🇺🇸", 2},
		{"text-default heart with presentation selector", "❤️", 2},
		{"zwj sequence on text-default base", "❤️‍🔥", 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			span, ok := Classify(tc.input, 0)
			require.True(t, ok)
			assert.Equal(t, tc.runes, span.Runes, "span should cover the maximal sequence")
			assert.Equal(t, len(tc.input), span.Bytes, "span should cover every byte of the cluster")
		})
	}
}

func TestClassifyRejectsNonEmoji(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"ascii letter", "a"},
		{"accented letter", "é"},
		{"cjk", "日本語"},
		{"math symbol", "∑"},
		{"markdown syntax", "#"},
		{"trade mark without selector", "™"},
		{"copyright without selector", "©"},
		{"text-default heart without selector", "❤"},
		{"bare skin tone modifier", "🏽"},
		{"bare zwj", "‍"},
		{"bare variation selector", "️"},
		{"digit keycap", "1️⃣"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := Classify(tc.input, 0)
			assert.False(t, ok)
		})
	}
}

func TestClassifyOffsets(t *testing.T) {
	s := "hi 🎉!"

	_, ok := Classify(s, 0)
	assert.False(t, ok, "offset at 'h'")

	span, ok := Classify(s, 3)
	require.True(t, ok, "offset at the emoji")
	assert.Equal(t, 3, span.Offset)
	assert.Equal(t, 4, span.Bytes)

	_, ok = Classify(s, len(s))
	assert.False(t, ok, "offset past the end")

	_, ok = Classify(s, -1)
	assert.False(t, ok, "negative offset")

	_, ok = Classify("", 0)
	assert.False(t, ok, "empty input")
}
