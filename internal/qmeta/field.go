package qmeta

import "strings"

// Field is an optional metadata value. Set reports whether the parser
// produced the field at all; a set Field may still hold an empty Value when
// the input contained an empty span.
type Field struct {
	Value string
	Set   bool
}

// newField wraps a parsed span, trimming surrounding whitespace.
func newField(value string) Field {
	return Field{Value: strings.TrimSpace(value), Set: true}
}

// Or returns the field's value, or fallback when the field is absent.
func (f Field) Or(fallback string) string {
	if f.Set {
		return f.Value
	}
	return fallback
}

// Record holds the structured metadata extracted from one question's
// metadata string. Any subset of the fields may be absent.
type Record struct {
	Category       Field
	Subcategory    Field
	Subsubcategory Field
	Author         Field
	Editor         Field
}
