// Package codec holds the lossy text conversions used on both sides of the
// wire. Neither conversion can fail: the request side drops what ASCII cannot
// represent and the response side substitutes U+FFFD for malformed input.
package codec

import (
	"unicode"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// nonASCII matches every rune outside 7-bit ASCII. Invalid UTF-8 reaches the
// predicate as utf8.RuneError and is dropped with the rest.
var nonASCII = runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })

// EncodeASCII returns s as ASCII bytes, silently dropping anything else.
func EncodeASCII(s string) []byte {
	// Remove cannot fail on complete input.
	out, _, _ := transform.String(runes.Remove(nonASCII), s)
	return []byte(out)
}

// DecodeUTF8 returns b as text, replacing every malformed byte with U+FFFD.
// Replacement is per byte: a truncated multibyte sequence such as
// "\xe2\x82" yields two U+FFFD, not one for the whole invalid run.
func DecodeUTF8(b []byte) string {
	out, _, err := transform.Bytes(xunicode.UTF8.NewDecoder(), b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
