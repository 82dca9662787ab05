// Package rustsec models the minimal single-vulnerability advisory format
// used by the RustSec advisory database.
package rustsec

import (
	"strings"

	"github.com/Masterminds/semver"
)

// Severity is a qualitative severity rating.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Versions partitions the package's version space by requirement strings
// such as ">= 0.5.2" or "^1.2, < 1.2.4".
type Versions struct {
	Patched    []string `json:"patched,omitempty" yaml:"patched,omitempty"`
	Unaffected []string `json:"unaffected,omitempty" yaml:"unaffected,omitempty"`
}

// FirstFixed extracts a concrete version from the patched requirements: the
// first requirement whose leading bound names a parseable version, e.g.
// ">= 0.5.2" yields "0.5.2". The second return is false when no patched
// requirement carries one.
func (v Versions) FirstFixed() (string, bool) {
	for _, req := range v.Patched {
		// Take the first clause of a comma-separated requirement.
		clause, _, _ := strings.Cut(req, ",")
		candidate := strings.TrimLeft(strings.TrimSpace(clause), "><=^~ ")
		if candidate == "" {
			continue
		}
		if _, err := semver.NewVersion(candidate); err != nil {
			continue
		}
		return candidate, true
	}
	return "", false
}

// Advisory is one minimal advisory. Fields with no value stay absent; the
// format never writes empty strings for missing data.
type Advisory struct {
	ID          string   `json:"id" yaml:"id"`
	Package     string   `json:"package" yaml:"package"`
	Collection  string   `json:"collection,omitempty" yaml:"collection,omitempty"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Date        string   `json:"date" yaml:"date"`
	Severity    Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
	CVSS        string   `json:"cvss,omitempty" yaml:"cvss,omitempty"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Related     []string `json:"related,omitempty" yaml:"related,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	References  []string `json:"references,omitempty" yaml:"references,omitempty"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Categories  []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Withdrawn   string   `json:"withdrawn,omitempty" yaml:"withdrawn,omitempty"`
	Versions    Versions `json:"versions" yaml:"versions"`
}

// CVEIDs returns the aliases that are CVE identifiers, in order.
func (adv *Advisory) CVEIDs() []string {
	var ids []string
	for _, a := range adv.Aliases {
		if strings.HasPrefix(a, "CVE-") {
			ids = append(ids, a)
		}
	}
	return ids
}
