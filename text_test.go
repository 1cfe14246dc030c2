package escape

import (
	"testing"
	"unsafe"

	"github.com/tdewolff/test"
)

func TestKindOf(t *testing.T) {
	var tests = []struct {
		r    rune
		kind Kind
	}{
		{0, Latin1},
		{'a', Latin1},
		{0xFF, Latin1},
		{0x100, UCS2},
		{'Ω', UCS2},
		{0xFFFF, UCS2},
		{0x10000, UCS4},
		{'𠀋', UCS4},
		{0x10FFFF, UCS4},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			test.T(t, KindOf(tt.r), tt.kind)
		})
	}
	test.String(t, Kind(3).String(), "Invalid(3)")
}

func TestNewText(t *testing.T) {
	var tests = []struct {
		s    string
		kind Kind
		n    int
	}{
		{"", Latin1, 0},
		{"abc", Latin1, 3},
		{"ÿé", Latin1, 2},
		{"aΩb", UCS2, 3},
		{"あいう", UCS2, 3},
		{"a𠀋b", UCS4, 3},
		{"\xff", UCS2, 1}, // U+FFFD
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			text := NewText(tt.s)
			test.T(t, text.Kind(), tt.kind)
			test.T(t, text.Len(), tt.n)
			if tt.s != "\xff" {
				test.String(t, text.String(), tt.s)
				test.T(t, text.Runes(), []rune(tt.s))
			}
		})
	}

	var zero Text
	test.T(t, zero.Kind(), Latin1)
	test.T(t, zero.Len(), 0)
	test.String(t, zero.String(), "")
}

func TestNewTextRunes(t *testing.T) {
	text := NewTextRunes([]rune("aΩ<"))
	test.T(t, text.Kind(), UCS2)
	test.T(t, text.At(1), 'Ω')
	test.String(t, text.String(), "aΩ<")

	text = NewTextRunes([]rune{'a', -1, 0xD800})
	test.T(t, text.Kind(), UCS2)
	test.String(t, text.String(), "a\uFFFD\uFFFD")

	text = NewTextRunes([]rune("é"))
	test.T(t, text.Kind(), Latin1)

	rs := []rune{'a', 0x110000, 'b'}
	text = NewTextRunes(rs)
	test.T(t, text.Kind(), UCS2)
	test.T(t, text.Runes(), []rune{'a', 0xFFFD, 'b'})

	rs = []rune("a𠀋")
	text = NewTextRunes(rs)
	rs[0] = 'z'
	test.T(t, text.Kind(), UCS4)
	test.String(t, text.String(), "a𠀋", "must copy its input")
}

func TestNewTextKind(t *testing.T) {
	text := NewTextKind("ab", UCS4)
	test.T(t, text.Kind(), UCS4)
	test.T(t, text.At(1), 'b')
	test.String(t, text.String(), "ab")

	panics := func(f func()) (panicked bool) {
		defer func() {
			panicked = recover() != nil
		}()
		f()
		return false
	}
	test.That(t, panics(func() { NewTextKind("Ω", Latin1) }), "must panic when a code point does not fit")
	test.That(t, panics(func() { NewTextKind("𠀋", UCS2) }), "must panic when a code point does not fit")
	test.That(t, panics(func() { NewTextKind("a", Kind(3)) }), "must panic on invalid kind")
}

////////////////////////////////////////////////////////////////

func TestHTMLText(t *testing.T) {
	var tests = []struct {
		text     Text
		expected string
		kind     Kind
	}{
		{NewText(""), "", Latin1},
		{NewText("abc"), "abc", Latin1},
		{NewText("<a href=\"x\">&</a>"), "&lt;a href=&quot;x&quot;&gt;&amp;&lt;/a&gt;", Latin1},
		{NewText("é<ü"), "é&lt;ü", Latin1},
		{NewText("Ω&Ж"), "Ω&amp;Ж", UCS2},
		{NewText("\"𠀋\""), "&quot;𠀋&quot;", UCS4},
		{NewTextKind("a&b", UCS4), "a&amp;b", Latin1},
		{NewTextKind("a&Ω", UCS4), "a&amp;Ω", UCS2},
		{NewTextKind("<ÿ>", UCS2), "&lt;ÿ&gt;", Latin1},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			e := HTMLText(tt.text)
			test.String(t, e.String(), tt.expected)
			test.T(t, e.Kind(), tt.kind)
		})
	}
}

func TestHTMLTextUnchanged(t *testing.T) {
	text := NewTextKind("abc Ω", UCS4)
	e := HTMLText(text)
	test.T(t, e.Kind(), UCS4, "unchanged text keeps its kind")
	test.That(t, unsafe.SliceData(e.u4) == unsafe.SliceData(text.u4), "must share storage")

	text = NewText("abc")
	e = HTMLText(text)
	test.That(t, unsafe.SliceData(e.b) == unsafe.SliceData(text.b), "must share storage")
}

func TestHTMLTextLength(t *testing.T) {
	for _, b := range helperRandStrings(1000, 20, []string{"a", " ", "<", ">", "&", "\"", "é", "Ж", "𠂢"}) {
		s := string(b)
		text := NewText(s)
		e := HTMLText(text)
		test.T(t, e.Len(), text.Len()+Extra(b), s)
		test.String(t, e.String(), HTMLString(s), s)
		test.T(t, e.Kind(), text.Kind(), s)
	}
}

func TestHTMLTextNotIdempotent(t *testing.T) {
	test.String(t, HTMLText(HTMLText(NewText("&"))).String(), "&amp;amp;")
}
