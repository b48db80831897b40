// Package emoji detects and removes emoji sequences from UTF-8 text.
//
// Classification works on whole grapheme clusters, so multi-code-point
// sequences (skin tones, ZWJ families, flag pairs, keycaps) are matched
// maximally and removed atomically, never leaving orphaned modifiers or
// truncated scalar values behind.
package emoji

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// emoji presentation selector (VS16)
const presentationSelector = '\uFE0F'

// Span describes one matched emoji unit in a source string.
type Span struct {
	Offset int // byte offset of the first scalar value
	Bytes  int // length in bytes
	Runes  int // length in scalar values
}

// Classify reports whether the text at the given byte offset begins an emoji
// sequence. offset must lie on a rune boundary. On a match the span covers
// the entire grapheme cluster starting there, which by UAX #29 already
// includes any skin tone modifiers, variation selectors, ZWJ continuations,
// regional indicator pairing and combining keycap marks attached to the base.
//
// Classification is total: it never fails, it only declines to match. A
// modifier, ZWJ or variation selector with no emoji base forms a cluster
// whose first scalar value is not emoji, so such strays are left untouched.
func Classify(s string, offset int) (Span, bool) {
	if offset < 0 || offset >= len(s) {
		return Span{}, false
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[offset:], -1)
	if cluster == "" || !isEmojiCluster(cluster) {
		return Span{}, false
	}
	return Span{
		Offset: offset,
		Bytes:  len(cluster),
		Runes:  utf8.RuneCountInString(cluster),
	}, true
}

// isEmojiCluster decides membership for one grapheme cluster. The first
// scalar value is the base: default-emoji-presentation bases always match,
// text-default bases (™, ©, ❤, …) match only when the cluster carries the
// U+FE0F presentation selector.
func isEmojiCluster(cluster string) bool {
	base, _ := utf8.DecodeRuneInString(cluster)
	if base == utf8.RuneError {
		return false
	}
	if inRanges(base, presentationRanges) {
		return true
	}
	return inRanges(base, textDefaultRanges) &&
		strings.ContainsRune(cluster, presentationSelector)
}
