// Package csaf models Common Security Advisory Framework (CSAF) version 2.0
// documents: https://docs.oasis-open.org/csaf/csaf/v2.0/os/csaf-v2.0-os.html
//
// The model is deliberately less strict than the CSAF specification: a valid
// document always decodes, and documents using enum values or object keys
// this package does not know about decode as well, with unrecognized enum
// text preserved verbatim. Strict variant checking is opt-in via WithStrict.
package csaf

import (
	"encoding/json"
	"errors"
	"io"

	"golang.org/x/xerrors"
)

// Advisory is the top level CSAF structure.
type Advisory struct {
	// Document contains metadata about the advisory itself.
	Document Document `json:"document"` // required

	// ProductTree contains product names that can be referenced elsewhere
	// in the document.
	ProductTree *ProductTree `json:"product_tree,omitempty"`

	// Vulnerabilities holds one entry per vulnerability described by the
	// advisory, in document order. An advisory without vulnerabilities
	// omits the key entirely.
	Vulnerabilities []Vulnerability `json:"vulnerabilities,omitempty"`
}

type options struct {
	strict bool
}

type Option func(*options)

// WithStrict makes Parse reject enum values outside the sets the CSAF
// specification defines. The default is to carry unrecognized values
// through unchanged.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// Parse decodes a CSAF document. Object keys the model does not know about
// are ignored. The returned advisory is normalized so that serializing it
// and parsing the result yields an equal value: optional collections that
// decoded empty are treated as absent, and product status lists have
// duplicates collapsed.
func Parse(data []byte, opts ...Option) (*Advisory, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	advisory := &Advisory{}
	if err := json.Unmarshal(data, advisory); err != nil {
		return nil, xerrors.Errorf("csaf: failed to decode document: %w", decodeError(err))
	}
	if err := advisory.Validate(); err != nil {
		return nil, xerrors.Errorf("csaf: invalid document: %w", err)
	}
	if o.strict {
		if err := advisory.checkVariants(); err != nil {
			return nil, xerrors.Errorf("csaf: invalid document: %w", err)
		}
	}
	advisory.normalize()
	return advisory, nil
}

// Serialize encodes the advisory as indented JSON. Field order follows the
// model's declared order, so serializing the same value twice produces the
// same bytes.
func Serialize(advisory *Advisory) ([]byte, error) {
	b, err := json.MarshalIndent(advisory, "", "  ")
	if err != nil {
		return nil, xerrors.Errorf("csaf: failed to encode document: %w", err)
	}
	return b, nil
}

// decodeError maps encoding/json failures onto this package's error types.
func decodeError(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &SyntaxError{Offset: syntaxErr.Offset, msg: syntaxErr.Error()}
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return &SyntaxError{msg: "unexpected end of input"}
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &TypeMismatchError{
			Path:     typeErr.Field,
			Expected: typeErr.Type.String(),
			Found:    typeErr.Value,
		}
	}
	return err
}

// FindRemediation returns the first remediation that applies to the given
// product ID, or nil.
func (advisory *Advisory) FindRemediation(productID ProductID) *Remediation {
	for _, v := range advisory.Vulnerabilities {
		for i, r := range v.Remediations {
			if r.ProductIDs != nil && containsProduct(*r.ProductIDs, productID) {
				return &v.Remediations[i]
			}
		}
	}
	return nil
}

// FindScore returns the first score that applies to the given product ID,
// or nil.
func (advisory *Advisory) FindScore(productID ProductID) *Score {
	for _, v := range advisory.Vulnerabilities {
		for i, s := range v.Scores {
			if s.Products != nil && containsProduct(*s.Products, productID) {
				return &v.Scores[i]
			}
		}
	}
	return nil
}

func containsProduct(products Products, productID ProductID) bool {
	for _, p := range products {
		if p == productID {
			return true
		}
	}
	return false
}
