//go:build gofuzz
// +build gofuzz

package fuzz

import "github.com/tdewolff/escape"

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	orig := append([]byte{}, data...)
	e := escape.HTML(data)
	if len(e) != len(data)+escape.Extra(data) {
		panic("output length does not match measured length")
	}
	if string(data) != string(orig) {
		panic("input was modified")
	}
	if s := escape.HTMLString(string(data)); s != string(e) {
		panic("string and byte escaping differ")
	}
	return 1
}
