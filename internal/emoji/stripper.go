package emoji

import (
	"regexp"
	"strings"
	"unicode/utf8"

	shortcodes "github.com/kyokomi/emoji/v2"
)

// StripResult is the outcome of removing emoji from one text buffer.
// It is immutable once returned.
type StripResult struct {
	Text  string
	Spans int // emoji sequences removed
	Runes int // scalar values removed
}

// Strip returns s with every emoji sequence removed. The scan advances
// scalar value by scalar value; on a classifier match the whole span is
// dropped and the scan resumes after it, otherwise the scalar value is
// copied verbatim. Non-emoji content is byte-identical in the output.
// An empty input yields an empty result with zero removals.
func Strip(s string) StripResult {
	var b strings.Builder
	b.Grow(len(s))
	res := StripResult{}
	for i := 0; i < len(s); {
		if span, ok := Classify(s, i); ok {
			res.Spans++
			res.Runes += span.Runes
			i += span.Bytes
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[i : i+size])
		i += size
	}
	res.Text = b.String()
	return res
}

// GitHub-style emoji shortcode, e.g. :tada: or :+1:
var shortcodePattern = regexp.MustCompile(`:[A-Za-z0-9_+\-]+:`)

// StripShortcodes removes :alias: emoji shortcodes from s. Only aliases
// present in the emoji shortcode table are removed; other colon-delimited
// words (":warning text:", ":not_an_emoji:") pass through unchanged.
func StripShortcodes(s string) StripResult {
	codes := shortcodes.CodeMap()
	res := StripResult{}
	res.Text = shortcodePattern.ReplaceAllStringFunc(s, func(m string) string {
		if _, known := codes[m]; !known {
			return m
		}
		res.Spans++
		res.Runes += utf8.RuneCountInString(m)
		return ""
	})
	return res
}
