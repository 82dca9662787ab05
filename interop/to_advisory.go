package interop

import (
	"strings"

	"golang.org/x/xerrors"

	"github.com/aquasecurity/go-csaf/csaf"
	"github.com/aquasecurity/go-csaf/rustsec"
)

// ToAdvisory projects a CSAF document onto the minimal advisory format.
// The document must describe exactly one vulnerability and carry a tracking
// ID, title, and release date; everything else is recovered best-effort.
// Synthesized scaffolding from FromAdvisory (generated product identifiers,
// the revision history) is not reversed, only the original minimal fields
// are.
func ToAdvisory(document *csaf.Advisory) (*rustsec.Advisory, error) {
	switch n := len(document.Vulnerabilities); {
	case n == 0:
		return nil, xerrors.Errorf("interop: cannot convert document: %w",
			&MissingRequiredFieldError{Name: "vulnerabilities"})
	case n > 1:
		return nil, xerrors.Errorf("interop: cannot convert document: %w",
			&MultipleVulnerabilitiesError{Count: n})
	}
	vuln := &document.Vulnerabilities[0]

	advisory := &rustsec.Advisory{
		ID:          recoverID(document, vuln),
		Title:       document.Document.Title,
		Description: document.Document.FindNote(csaf.NoteCategoryDescription),
		Date:        recoverDate(document),
	}
	if advisory.ID == "" {
		return nil, xerrors.Errorf("interop: cannot convert document: %w",
			&MissingRequiredFieldError{Name: "id"})
	}
	if advisory.Title == "" {
		return nil, xerrors.Errorf("interop: cannot convert document: %w",
			&MissingRequiredFieldError{Name: "title"})
	}
	if advisory.Date == "" {
		return nil, xerrors.Errorf("interop: cannot convert document: %w",
			&MissingRequiredFieldError{Name: "date"})
	}

	if vuln.CVE != nil {
		advisory.Aliases = append(advisory.Aliases, *vuln.CVE)
	}
	for _, ref := range vuln.References {
		advisory.References = append(advisory.References, ref.URL)
	}
	if len(document.Document.References) > 0 {
		advisory.URL = document.Document.References[0].URL
	}

	advisory.Severity, advisory.CVSS = recoverSeverity(vuln)
	advisory.Package, advisory.Versions = recoverVersions(document, vuln)

	if document.Document.Tracking.Status == csaf.TrackingStatusWithdrawn {
		advisory.Withdrawn = dayOf(document.Document.Tracking.CurrentReleaseDate)
	}

	return advisory, nil
}

// recoverID prefers the vulnerability ID entry the forward conversion
// writes, then falls back to the tracking ID.
func recoverID(document *csaf.Advisory, vuln *csaf.Vulnerability) string {
	for _, id := range vuln.IDs {
		if strings.Contains(id.SystemName, "RustSec") {
			return id.Text
		}
	}
	return string(document.Document.Tracking.ID)
}

func recoverDate(document *csaf.Advisory) string {
	if d := dayOf(document.Document.Tracking.InitialReleaseDate); d != "" {
		return d
	}
	if history := document.Document.Tracking.RevisionHistory; len(history) > 0 {
		return dayOf(history[0].Date)
	}
	return ""
}

// dayOf truncates a canonical timestamp to its date part.
func dayOf(ts csaf.Timestamp) string {
	t, err := ts.Time()
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// recoverSeverity takes the first score carrying a severity rating.
func recoverSeverity(vuln *csaf.Vulnerability) (rustsec.Severity, string) {
	for _, score := range vuln.Scores {
		switch {
		case score.CVSSV3 != nil:
			return rustsec.Severity(strings.ToLower(score.CVSSV3.BaseSeverity)), score.CVSSV3.VectorString
		case score.CVSSV4 != nil:
			return rustsec.Severity(strings.ToLower(score.CVSSV4.BaseSeverity)), score.CVSSV4.VectorString
		case score.CVSSV2 != nil:
			return "", score.CVSSV2.VectorString
		}
	}
	return "", ""
}

// recoverVersions rebuilds the package name and version requirements from
// the synthesized "<package>:<requirement>" product identifiers, falling
// back to the first product_name branch for the package name.
func recoverVersions(document *csaf.Advisory, vuln *csaf.Vulnerability) (string, rustsec.Versions) {
	var pkg string
	var versions rustsec.Versions

	split := func(products *csaf.Products) []string {
		if products == nil {
			return nil
		}
		var requirements []string
		for _, id := range *products {
			name, requirement, ok := strings.Cut(string(id), ":")
			if !ok {
				continue
			}
			if pkg == "" {
				pkg = name
			}
			requirements = append(requirements, requirement)
		}
		return requirements
	}

	if vuln.ProductStatus != nil {
		versions.Patched = split(vuln.ProductStatus.Fixed)
		versions.Unaffected = split(vuln.ProductStatus.KnownNotAffected)
	}

	if pkg == "" && document.ProductTree != nil {
		pkg = firstProductName(document.ProductTree.Branches)
	}
	return pkg, versions
}

func firstProductName(branches []csaf.Branch) string {
	for i := range branches {
		if branches[i].Category == csaf.BranchCategoryProductName {
			return branches[i].Name
		}
		if name := firstProductName(branches[i].Branches); name != "" {
			return name
		}
	}
	return ""
}
