package csaf

import "github.com/samber/lo"

// normalize rewrites the decoded document into its canonical in-memory
// form: optional collections that decoded as empty become absent, and the
// product status buckets collapse duplicates, keeping first occurrence.
// Parse runs this so that the serialize-parse loop is the identity.
//
// Pointer-to-slice fields (product_ids and friends) are left alone: for
// those an explicit empty list is a representable state distinct from an
// absent one.
func (advisory *Advisory) normalize() {
	advisory.Document.normalize()
	if advisory.ProductTree != nil {
		advisory.ProductTree.normalize()
	}
	if len(advisory.Vulnerabilities) == 0 {
		advisory.Vulnerabilities = nil
	}
	for i := range advisory.Vulnerabilities {
		advisory.Vulnerabilities[i].normalize()
	}
}

func (doc *Document) normalize() {
	doc.Acknowledgements = dropEmpty(doc.Acknowledgements)
	for i := range doc.Acknowledgements {
		doc.Acknowledgements[i].normalize()
	}
	doc.Notes = dropEmpty(doc.Notes)
	doc.References = dropEmpty(doc.References)
	doc.Tracking.Aliases = dropEmpty(doc.Tracking.Aliases)
}

func (a *Acknowledgement) normalize() {
	a.Names = dropEmpty(a.Names)
	a.URLs = dropEmpty(a.URLs)
}

func (tree *ProductTree) normalize() {
	tree.Branches = dropEmpty(tree.Branches)
	for i := range tree.Branches {
		tree.Branches[i].normalize()
	}
	tree.FullProductNames = dropEmpty(tree.FullProductNames)
	for i := range tree.FullProductNames {
		tree.FullProductNames[i].normalize()
	}
	tree.ProductGroups = dropEmpty(tree.ProductGroups)
	tree.Relationships = dropEmpty(tree.Relationships)
	for i := range tree.Relationships {
		tree.Relationships[i].FullProductName.normalize()
	}
}

func (branch *Branch) normalize() {
	branch.Branches = dropEmpty(branch.Branches)
	for i := range branch.Branches {
		branch.Branches[i].normalize()
	}
	if branch.Product != nil {
		branch.Product.normalize()
	}
}

func (p *FullProductName) normalize() {
	h := p.ProductIdentificationHelper
	if h == nil {
		return
	}
	h.Hashes = dropEmpty(h.Hashes)
	h.ModelNumbers = dropEmpty(h.ModelNumbers)
	h.SBOMURLs = dropEmpty(h.SBOMURLs)
	h.SerialNumbers = dropEmpty(h.SerialNumbers)
	h.SKUs = dropEmpty(h.SKUs)
	h.XGenericURIs = dropEmpty(h.XGenericURIs)
}

func (v *Vulnerability) normalize() {
	v.Acknowledgements = dropEmpty(v.Acknowledgements)
	for i := range v.Acknowledgements {
		v.Acknowledgements[i].normalize()
	}
	v.Flags = dropEmpty(v.Flags)
	v.IDs = dropEmpty(v.IDs)
	v.Involvements = dropEmpty(v.Involvements)
	v.Notes = dropEmpty(v.Notes)
	v.References = dropEmpty(v.References)
	v.Remediations = dropEmpty(v.Remediations)
	for i := range v.Remediations {
		v.Remediations[i].Entitlements = dropEmpty(v.Remediations[i].Entitlements)
	}
	v.Scores = dropEmpty(v.Scores)
	v.Threats = dropEmpty(v.Threats)
	if v.ProductStatus != nil {
		v.ProductStatus.normalize()
	}
}

func (ps *ProductStatus) normalize() {
	for _, bucket := range []*Products{
		ps.FirstAffected,
		ps.FirstFixed,
		ps.Fixed,
		ps.KnownAffected,
		ps.KnownNotAffected,
		ps.LastAffected,
		ps.Recommended,
		ps.UnderInvestigation,
	} {
		if bucket != nil {
			*bucket = lo.Uniq(*bucket)
		}
	}
}

// dropEmpty turns a decoded-but-empty slice into an absent one.
func dropEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
