package argon

import (
	"strings"
	"unicode"
)

// normalizeBullet rewrites a recognized leading list marker to the canonical
// bullet character while keeping the line's indentation intact. A marker only
// counts as a bullet when it sits immediately after leading whitespace and is
// followed by whitespace; markers appearing mid-line pass through untouched.
func normalizeBullet(line string, canonical rune, recognized []rune) string {
	marker, at, ok := leadingBullet(line, recognized)
	if !ok || marker == canonical {
		return line
	}
	var sb strings.Builder
	sb.Grow(len(line))
	sb.WriteString(line[:at])
	sb.WriteRune(canonical)
	sb.WriteString(line[at+len(string(marker)):])
	return sb.String()
}

// leadingBullet reports the marker rune and its byte offset when the line
// starts (after indentation) with a recognized bullet followed by whitespace.
func leadingBullet(line string, recognized []rune) (rune, int, bool) {
	at := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		at += len(string(r))
	}
	rest := line[at:]
	if rest == "" {
		return 0, 0, false
	}
	runes := []rune(rest)
	for _, marker := range recognized {
		if runes[0] != marker {
			continue
		}
		if len(runes) < 2 || !unicode.IsSpace(runes[1]) {
			continue
		}
		return marker, at, true
	}
	return 0, 0, false
}
