// Package escape replaces the HTML reserved characters <, >, & and " by their named character references.
//
// All functions measure the input first and allocate the output exactly once at its final size. Input that contains nothing to
// escape is returned as is, sharing its storage with the result, so results must be treated as read-only.
package escape // import "github.com/tdewolff/escape"

import "unsafe"

// unit is a fixed-width code unit: a byte, a UCS-2 unit or a full code point.
type unit interface {
	~uint8 | ~uint16 | ~int32
}

// extra returns the number of code units that escaping adds to the code unit c.
func extra[T unit](c T) int {
	switch c {
	case '<', '>':
		return 3
	case '&':
		return 4
	case '"':
		return 5
	}
	return 0
}

// measure returns the number of code units added by escaping src and the largest code point in src.
func measure[T unit](src []T) (n int, maxc rune) {
	for _, c := range src {
		n += extra(c)
		if rune(c) > maxc {
			maxc = rune(c)
		}
	}
	return n, maxc
}

// put writes the ASCII string s to dst and returns the number of units written.
func put[D unit](dst []D, s string) int {
	for i := 0; i < len(s); i++ {
		dst[i] = D(s[i])
	}
	return len(s)
}

// transform writes the escaped src into dst, which must be exactly len(src) plus the measured extra units long.
func transform[S, D unit](dst []D, src []S) {
	j := 0
	for _, c := range src {
		switch c {
		case '<':
			j += put(dst[j:], "&lt;")
		case '>':
			j += put(dst[j:], "&gt;")
		case '&':
			j += put(dst[j:], "&amp;")
		case '"':
			j += put(dst[j:], "&quot;")
		default:
			dst[j] = D(c)
			j++
		}
	}
}

// transformBytes is transform specialized for bytes, copying the runs between reserved characters.
func transformBytes(dst, src []byte) {
	j := 0
	start := 0
	for i, c := range src {
		if !IsEscapable(c) {
			continue
		}
		j += copy(dst[j:], src[start:i])
		j += copy(dst[j:], entities[c])
		start = i + 1
	}
	copy(dst[j:], src[start:])
}

// HTML escapes raw bytes byte by byte, without interpreting multi-byte sequences.
// It returns b itself when nothing needs escaping.
func HTML(b []byte) []byte {
	if len(b) == 0 {
		return b
	}
	n := Extra(b)
	if n == 0 {
		return b
	}
	t := make([]byte, len(b)+n)
	transformBytes(t, b)
	return t
}

// HTMLString escapes a UTF-8 string. The reserved characters are ASCII and never occur inside a multi-byte sequence,
// so the string is escaped byte-wise. It returns s itself when nothing needs escaping.
func HTMLString(s string) string {
	if len(s) == 0 {
		return s
	}
	b := unsafe.Slice(unsafe.StringData(s), len(s)) // read-only view
	n := Extra(b)
	if n == 0 {
		return s
	}
	t := make([]byte, len(s)+n)
	transformBytes(t, b)
	return unsafe.String(&t[0], len(t)) // t is never written again
}
