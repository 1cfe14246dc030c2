package escape

// Value escapes a dynamically typed value. A []byte is escaped by HTML, a string by HTMLString and a Text by HTMLText, each
// returning the same type. A nil value returns the empty string. Any other type, including types defined on top of string or
// []byte, returns an *InvalidInputTypeError.
func Value(v interface{}) (interface{}, error) {
	switch s := v.(type) {
	case string:
		return HTMLString(s), nil
	case []byte:
		return HTML(s), nil
	case Text:
		return HTMLText(s), nil
	case nil:
		return "", nil
	}
	return nil, NewInvalidInputTypeError(v)
}
