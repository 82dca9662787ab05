// Package interop converts between RustSec-style minimal advisories and
// full CSAF documents.
//
// The forward direction synthesizes the structure CSAF mandates but the
// minimal format omits (tracking, revision history, product tree). The
// reverse direction is a lossy projection: it recovers the minimal format's
// own fields, not the synthesized scaffolding, so converting forward and
// back is not the identity on the CSAF side.
package interop

import (
	"fmt"

	"github.com/package-url/packageurl-go"
	"github.com/samber/lo"
	"golang.org/x/xerrors"

	"github.com/aquasecurity/go-csaf/csaf"
	"github.com/aquasecurity/go-csaf/rustsec"
)

// defaultPublisher is used when the caller supplies none. The minimal
// format has no publisher notion at all, while CSAF requires one.
var defaultPublisher = csaf.DocumentPublisher{
	Category:  csaf.PublisherCategoryCoordinator,
	Name:      "RustSec Advisory Database",
	Namespace: "https://rustsec.org",
}

type options struct {
	publisher csaf.DocumentPublisher
}

type Option func(*options)

// WithPublisher sets the publisher recorded on converted documents.
func WithPublisher(p csaf.DocumentPublisher) Option {
	return func(o *options) { o.publisher = p }
}

// FromAdvisory builds a CSAF document from a minimal advisory. Fields the
// minimal format does not carry are left absent, never defaulted to empty
// values.
func FromAdvisory(advisory *rustsec.Advisory, opts ...Option) (*csaf.Advisory, error) {
	if err := advisory.Validate(); err != nil {
		return nil, xerrors.Errorf("interop: cannot convert advisory: %w", err)
	}

	o := options{publisher: defaultPublisher}
	for _, opt := range opts {
		opt(&o)
	}

	date := csaf.Timestamp(advisory.Date + "T00:00:00Z")
	status := csaf.TrackingStatusFinal
	releaseDate := date
	if advisory.Withdrawn != "" {
		status = csaf.TrackingStatusWithdrawn
		releaseDate = csaf.Timestamp(advisory.Withdrawn + "T00:00:00Z")
	}

	doc := csaf.Document{
		Category:    csaf.DocumentCategorySecurityAdvisory,
		CSAFVersion: csaf.CSAFVersion20,
		Publisher:   o.publisher,
		Title:       advisory.Title,
		Tracking: csaf.Tracking{
			CurrentReleaseDate: releaseDate,
			ID:                 csaf.TrackingID(advisory.ID),
			InitialReleaseDate: date,
			RevisionHistory: []csaf.Revision{
				{Date: date, Number: "1", Summary: "Initial advisory."},
			},
			Status:  status,
			Version: "1",
		},
	}
	if advisory.Description != "" {
		doc.Notes = []csaf.Note{
			{Category: csaf.NoteCategoryDescription, Text: advisory.Description},
		}
	}
	if advisory.URL != "" {
		doc.References = []csaf.Reference{
			{Summary: advisory.URL, URL: advisory.URL},
		}
	}

	vuln := csaf.Vulnerability{
		IDs: []csaf.VulnerabilityID{
			{SystemName: "RustSec Advisory Database", Text: advisory.ID},
		},
	}
	if cves := advisory.CVEIDs(); len(cves) > 0 {
		vuln.CVE = &cves[0]
	}
	for _, ref := range advisory.References {
		vuln.References = append(vuln.References, csaf.Reference{Summary: ref, URL: ref})
	}

	tree, productStatus := productScaffolding(advisory)
	vuln.ProductStatus = productStatus

	if fixed, ok := advisory.Versions.FirstFixed(); ok {
		details := fmt.Sprintf("Upgrade %s to version %s or later.", advisory.Package, fixed)
		vuln.Remediations = []csaf.Remediation{
			{
				Category:   csaf.RemediationCategoryVendorFix,
				Details:    details,
				ProductIDs: lo.ToPtr(patchedProductIDs(advisory)),
			},
		}
	}

	return &csaf.Advisory{
		Document:        doc,
		ProductTree:     tree,
		Vulnerabilities: []csaf.Vulnerability{vuln},
	}, nil
}

// productScaffolding synthesizes the product tree and product status for
// the affected package: one product for the package itself (known
// affected) and one per patched/unaffected requirement.
func productScaffolding(advisory *rustsec.Advisory) (*csaf.ProductTree, *csaf.ProductStatus) {
	pkgBranch := csaf.Branch{
		Category: csaf.BranchCategoryProductName,
		Name:     advisory.Package,
		Product: &csaf.FullProductName{
			Name:                        advisory.Package,
			ProductID:                   csaf.ProductID(advisory.Package),
			ProductIdentificationHelper: identificationHelper(advisory.Package),
		},
	}

	status := &csaf.ProductStatus{
		KnownAffected: &csaf.Products{csaf.ProductID(advisory.Package)},
	}

	appendRange := func(requirement string) csaf.ProductID {
		id := productID(advisory.Package, requirement)
		pkgBranch.Branches = append(pkgBranch.Branches, csaf.Branch{
			Category: csaf.BranchCategoryProductVersionRange,
			Name:     requirement,
			Product: &csaf.FullProductName{
				Name:      fmt.Sprintf("%s %s", advisory.Package, requirement),
				ProductID: id,
			},
		})
		return id
	}

	if len(advisory.Versions.Patched) > 0 {
		fixed := csaf.Products(lo.Map(advisory.Versions.Patched, func(req string, _ int) csaf.ProductID {
			return appendRange(req)
		}))
		status.Fixed = &fixed
	}
	if len(advisory.Versions.Unaffected) > 0 {
		unaffected := csaf.Products(lo.Map(advisory.Versions.Unaffected, func(req string, _ int) csaf.ProductID {
			return appendRange(req)
		}))
		status.KnownNotAffected = &unaffected
	}

	return &csaf.ProductTree{Branches: []csaf.Branch{pkgBranch}}, status
}

func identificationHelper(pkg string) *csaf.ProductIdentificationHelper {
	purl := packageurl.NewPackageURL(packageurl.TypeCargo, "", pkg, "", nil, "").ToString()
	return &csaf.ProductIdentificationHelper{PURL: &purl}
}

// productID derives the synthesized identifier for one package version
// range: "<package>:<requirement>".
func productID(pkg, requirement string) csaf.ProductID {
	return csaf.ProductID(fmt.Sprintf("%s:%s", pkg, requirement))
}

func patchedProductIDs(advisory *rustsec.Advisory) csaf.Products {
	return lo.Map(advisory.Versions.Patched, func(req string, _ int) csaf.ProductID {
		return productID(advisory.Package, req)
	})
}
