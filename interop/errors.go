package interop

import "fmt"

// MultipleVulnerabilitiesError is returned by ToAdvisory when the document
// describes more than one vulnerability: the minimal format can only carry
// one.
type MultipleVulnerabilitiesError struct {
	Count int
}

func (e *MultipleVulnerabilitiesError) Error() string {
	return fmt.Sprintf("document describes %d vulnerabilities, the minimal format carries exactly one", e.Count)
}

// MissingRequiredFieldError is returned by ToAdvisory when a field the
// minimal format requires cannot be recovered from the document.
type MissingRequiredFieldError struct {
	Name string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("cannot recover required field '%s'", e.Name)
}
