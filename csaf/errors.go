package csaf

import "fmt"

// SyntaxError reports malformed JSON input.
type SyntaxError struct {
	Offset int64
	msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.msg)
}

// MissingFieldError reports a mandatory field that is absent. Path is the
// dotted location of the field within the document, e.g.
// "document.tracking.id".
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("'%s' is missing", e.Path)
}

// TypeMismatchError reports a field whose JSON value has the wrong type.
type TypeMismatchError struct {
	Path     string
	Expected string
	Found    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("'%s' must be %s, found %s", e.Path, e.Expected, e.Found)
}

// UnknownVariantError reports enum text outside the specified value set.
// It is only returned when parsing with WithStrict.
type UnknownVariantError struct {
	Path  string
	Value string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("'%s' has unknown value %q", e.Path, e.Value)
}
