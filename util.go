package escape // import "github.com/tdewolff/escape"

var entities = [...]string{
	'"': "&quot;",
	'&': "&amp;",
	'<': "&lt;",
	'>': "&gt;",
}

// IsEscapable returns true if c is replaced by a named character reference.
func IsEscapable(c byte) bool {
	return c == '<' || c == '>' || c == '&' || c == '"'
}

// Extra returns the number of bytes that escaping adds to b, so that len(HTML(b)) == len(b)+Extra(b).
func Extra(b []byte) int {
	n := 0
	for _, c := range b {
		n += extra(c)
	}
	return n
}
