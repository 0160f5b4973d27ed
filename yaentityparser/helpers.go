package yaentityparser

import (
	"unicode"
	"unicode/utf8"
)

// utf16Len counts the UTF-16 code units needed to encode s.
func utf16Len(s string) int {
	size := 0

	for _, r := range s {
		if r > maxOneUTF16CURune {
			size += 2
		} else {
			size++
		}
	}

	return size
}

// unitCounter converts increasing byte offsets of one string into UTF-16 offsets
// without rescanning the prefix every time.
type unitCounter struct {
	text  string
	byteN int
	units int
}

func (c *unitCounter) at(byteOffset int) int {
	if byteOffset < c.byteN {
		c.byteN, c.units = 0, 0
	}

	c.units += utf16Len(c.text[c.byteN:byteOffset])
	c.byteN = byteOffset

	return c.units
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// precededByWordOrSlash reports whether the rune right before byte offset i is '/' or a word rune.
func precededByWordOrSlash(s string, i int) bool {
	if i == 0 {
		return false
	}

	r, _ := utf8.DecodeLastRuneInString(s[:i])

	return r == '/' || isWordRune(r)
}

// wordBoundaryEnd returns the largest end in (start+1, limit] at which s has a word
// boundary, counting non-ASCII letters and digits as word runes. Go's \b only knows
// ASCII word characters, so "@alicé" would otherwise yield "@alic". All bytes of
// s[start:limit] must be ASCII.
func wordBoundaryEnd(s string, start, limit int) (int, bool) {
	for end := limit; end > start+1; end-- {
		if isWordBoundary(s, end) {
			return end, true
		}
	}

	return 0, false
}

func isWordBoundary(s string, i int) bool {
	before, after := false, false

	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}

	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}

	return before != after
}
