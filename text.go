package escape // import "github.com/tdewolff/escape"

import (
	"strconv"
	"unicode/utf8"
)

// Kind is the storage width of a Text in bytes per code point.
type Kind uint8

// Kinds from narrowest to widest.
const (
	Latin1 Kind = 1 // code points below U+0100
	UCS2   Kind = 2 // code points below U+10000
	UCS4   Kind = 4 // all code points
)

// KindOf returns the narrowest kind that can hold code point r.
func KindOf(r rune) Kind {
	if r < 0x100 {
		return Latin1
	} else if r < 0x10000 {
		return UCS2
	}
	return UCS4
}

func (k Kind) String() string {
	switch k {
	case Latin1:
		return "Latin1"
	case UCS2:
		return "UCS2"
	case UCS4:
		return "UCS4"
	}
	return "Invalid(" + strconv.Itoa(int(k)) + ")"
}

////////////////////////////////////////////////////////////////

// Text is an immutable sequence of code points stored at a fixed width of one, two or four bytes each.
// The zero value is the empty Latin1 text.
type Text struct {
	kind Kind
	b    []byte
	u2   []uint16
	u4   []rune
}

// NewText decodes a UTF-8 string into a Text of the narrowest kind. Invalid UTF-8 is decoded as U+FFFD.
func NewText(s string) Text {
	maxc := rune(0)
	for _, r := range s {
		if r > maxc {
			maxc = r
		}
	}
	return NewTextKind(s, KindOf(maxc))
}

// NewTextKind decodes a UTF-8 string into a Text of kind k. It panics if a code point does not fit in k.
func NewTextKind(s string, k Kind) Text {
	t := Text{kind: k}
	n := utf8.RuneCountInString(s)
	switch k {
	case Latin1:
		t.b = make([]byte, 0, n)
		for _, r := range s {
			checkFits(r, k)
			t.b = append(t.b, byte(r))
		}
	case UCS2:
		t.u2 = make([]uint16, 0, n)
		for _, r := range s {
			checkFits(r, k)
			t.u2 = append(t.u2, uint16(r))
		}
	case UCS4:
		t.u4 = make([]rune, 0, n)
		for _, r := range s {
			t.u4 = append(t.u4, r)
		}
	default:
		panic("escape: invalid text kind " + k.String())
	}
	return t
}

// NewTextRunes returns a Text of the narrowest kind holding a copy of rs. Invalid code points are replaced by U+FFFD.
func NewTextRunes(rs []rune) Text {
	u4 := make([]rune, len(rs))
	maxc := rune(0)
	for i, r := range rs {
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		if r > maxc {
			maxc = r
		}
		u4[i] = r
	}

	t := Text{kind: KindOf(maxc)}
	switch t.kind {
	case Latin1:
		t.b = make([]byte, len(u4))
		for i, r := range u4 {
			t.b[i] = byte(r)
		}
	case UCS2:
		t.u2 = make([]uint16, len(u4))
		for i, r := range u4 {
			t.u2[i] = uint16(r)
		}
	default:
		t.u4 = u4
	}
	return t
}

func checkFits(r rune, k Kind) {
	if KindOf(r) > k {
		panic("escape: code point " + strconv.QuoteRune(r) + " does not fit in " + k.String())
	}
}

// Kind returns the storage width of t.
func (t Text) Kind() Kind {
	if t.kind == 0 {
		return Latin1
	}
	return t.kind
}

// Len returns the number of code points in t.
func (t Text) Len() int {
	switch t.kind {
	case UCS2:
		return len(t.u2)
	case UCS4:
		return len(t.u4)
	}
	return len(t.b)
}

// At returns the code point at index i.
func (t Text) At(i int) rune {
	switch t.kind {
	case UCS2:
		return rune(t.u2[i])
	case UCS4:
		return t.u4[i]
	}
	return rune(t.b[i])
}

// Runes returns a copy of the code points in t.
func (t Text) Runes() []rune {
	switch t.kind {
	case UCS2:
		return runes(t.u2)
	case UCS4:
		return runes(t.u4)
	}
	return runes(t.b)
}

// String encodes t as UTF-8.
func (t Text) String() string {
	switch t.kind {
	case UCS2:
		return encode(t.u2)
	case UCS4:
		return encode(t.u4)
	}
	return encode(t.b)
}

func runes[T unit](src []T) []rune {
	rs := make([]rune, len(src))
	for i, c := range src {
		rs[i] = rune(c)
	}
	return rs
}

func encode[T unit](src []T) string {
	b := make([]byte, 0, len(src))
	for _, c := range src {
		if c < utf8.RuneSelf {
			b = append(b, byte(c))
		} else {
			b = utf8.AppendRune(b, rune(c))
		}
	}
	return string(b)
}

////////////////////////////////////////////////////////////////

// HTMLText escapes t code point by code point. The result is stored in the narrowest kind that holds the largest code point
// of t, which can be narrower than the kind of t. It returns t itself when nothing needs escaping.
func HTMLText(t Text) Text {
	switch t.kind {
	case UCS2:
		return escapeText(t, t.u2)
	case UCS4:
		return escapeText(t, t.u4)
	}
	return escapeText(t, t.b)
}

func escapeText[S unit](t Text, src []S) Text {
	if len(src) == 0 {
		return t
	}
	n, maxc := measure(src)
	if n == 0 {
		return t
	}

	r := Text{kind: KindOf(maxc)}
	switch r.kind {
	case Latin1:
		r.b = make([]byte, len(src)+n)
		transform(r.b, src)
	case UCS2:
		r.u2 = make([]uint16, len(src)+n)
		transform(r.u2, src)
	default:
		r.u4 = make([]rune, len(src)+n)
		transform(r.u4, src)
	}
	return r
}
