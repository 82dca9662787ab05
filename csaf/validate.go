package csaf

import "fmt"

// Validate checks that every mandatory field of the document is present.
// It returns a MissingFieldError naming the first absent field, or nil.
// Structural typing only: referential integrity of product IDs and the
// profile's cross-field mandatory tests are outside this package.
func (advisory *Advisory) Validate() error {
	if err := advisory.Document.validate("document"); err != nil {
		return err
	}
	if advisory.ProductTree != nil {
		if err := advisory.ProductTree.validate("product_tree"); err != nil {
			return err
		}
	}
	for i := range advisory.Vulnerabilities {
		if err := advisory.Vulnerabilities[i].validate(fmt.Sprintf("vulnerabilities[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (doc *Document) validate(path string) error {
	if doc.Category == "" {
		return &MissingFieldError{Path: path + ".category"}
	}
	if doc.CSAFVersion == "" {
		return &MissingFieldError{Path: path + ".csaf_version"}
	}
	if doc.Title == "" {
		return &MissingFieldError{Path: path + ".title"}
	}
	if doc.Publisher.Category == "" {
		return &MissingFieldError{Path: path + ".publisher.category"}
	}
	if doc.Publisher.Name == "" {
		return &MissingFieldError{Path: path + ".publisher.name"}
	}
	if doc.Publisher.Namespace == "" {
		return &MissingFieldError{Path: path + ".publisher.namespace"}
	}
	if err := doc.Tracking.validate(path + ".tracking"); err != nil {
		return err
	}
	for i, n := range doc.Notes {
		if err := n.validate(fmt.Sprintf("%s.notes[%d]", path, i)); err != nil {
			return err
		}
	}
	for i, r := range doc.References {
		if err := r.validate(fmt.Sprintf("%s.references[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tracking) validate(path string) error {
	if t.ID == "" {
		return &MissingFieldError{Path: path + ".id"}
	}
	if t.CurrentReleaseDate == "" {
		return &MissingFieldError{Path: path + ".current_release_date"}
	}
	if t.InitialReleaseDate == "" {
		return &MissingFieldError{Path: path + ".initial_release_date"}
	}
	if len(t.RevisionHistory) == 0 {
		return &MissingFieldError{Path: path + ".revision_history"}
	}
	for i, rev := range t.RevisionHistory {
		p := fmt.Sprintf("%s.revision_history[%d]", path, i)
		if rev.Date == "" {
			return &MissingFieldError{Path: p + ".date"}
		}
		if rev.Number == "" {
			return &MissingFieldError{Path: p + ".number"}
		}
		if rev.Summary == "" {
			return &MissingFieldError{Path: p + ".summary"}
		}
	}
	if t.Status == "" {
		return &MissingFieldError{Path: path + ".status"}
	}
	if t.Version == "" {
		return &MissingFieldError{Path: path + ".version"}
	}
	return nil
}

func (n *Note) validate(path string) error {
	if n.Category == "" {
		return &MissingFieldError{Path: path + ".category"}
	}
	if n.Text == "" {
		return &MissingFieldError{Path: path + ".text"}
	}
	return nil
}

func (r *Reference) validate(path string) error {
	if r.Summary == "" {
		return &MissingFieldError{Path: path + ".summary"}
	}
	if r.URL == "" {
		return &MissingFieldError{Path: path + ".url"}
	}
	return nil
}

func (tree *ProductTree) validate(path string) error {
	for i := range tree.Branches {
		if err := tree.Branches[i].validate(fmt.Sprintf("%s.branches[%d]", path, i)); err != nil {
			return err
		}
	}
	for i, p := range tree.FullProductNames {
		if err := p.validate(fmt.Sprintf("%s.full_product_names[%d]", path, i)); err != nil {
			return err
		}
	}
	for i, g := range tree.ProductGroups {
		p := fmt.Sprintf("%s.product_groups[%d]", path, i)
		if g.GroupID == "" {
			return &MissingFieldError{Path: p + ".group_id"}
		}
		if len(g.ProductIDs) == 0 {
			return &MissingFieldError{Path: p + ".product_ids"}
		}
	}
	for i, r := range tree.Relationships {
		p := fmt.Sprintf("%s.relationships[%d]", path, i)
		if r.Category == "" {
			return &MissingFieldError{Path: p + ".category"}
		}
		if err := r.FullProductName.validate(p + ".full_product_name"); err != nil {
			return err
		}
		if r.ProductReference == "" {
			return &MissingFieldError{Path: p + ".product_reference"}
		}
		if r.RelatesToProductReference == "" {
			return &MissingFieldError{Path: p + ".relates_to_product_reference"}
		}
	}
	return nil
}

func (branch *Branch) validate(path string) error {
	if branch.Category == "" {
		return &MissingFieldError{Path: path + ".category"}
	}
	if branch.Name == "" {
		return &MissingFieldError{Path: path + ".name"}
	}
	if branch.Product != nil {
		if err := branch.Product.validate(path + ".product"); err != nil {
			return err
		}
	}
	for i := range branch.Branches {
		if err := branch.Branches[i].validate(fmt.Sprintf("%s.branches[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (p *FullProductName) validate(path string) error {
	if p.Name == "" {
		return &MissingFieldError{Path: path + ".name"}
	}
	if p.ProductID == "" {
		return &MissingFieldError{Path: path + ".product_id"}
	}
	return nil
}

func (v *Vulnerability) validate(path string) error {
	if v.CWE != nil {
		if v.CWE.ID == "" {
			return &MissingFieldError{Path: path + ".cwe.id"}
		}
		if v.CWE.Name == "" {
			return &MissingFieldError{Path: path + ".cwe.name"}
		}
	}
	for i, id := range v.IDs {
		p := fmt.Sprintf("%s.ids[%d]", path, i)
		if id.SystemName == "" {
			return &MissingFieldError{Path: p + ".system_name"}
		}
		if id.Text == "" {
			return &MissingFieldError{Path: p + ".text"}
		}
	}
	for i, inv := range v.Involvements {
		p := fmt.Sprintf("%s.involvements[%d]", path, i)
		if inv.Party == "" {
			return &MissingFieldError{Path: p + ".party"}
		}
		if inv.Status == "" {
			return &MissingFieldError{Path: p + ".status"}
		}
	}
	for i, f := range v.Flags {
		if f.Label == "" {
			return &MissingFieldError{Path: fmt.Sprintf("%s.flags[%d].label", path, i)}
		}
	}
	for i, n := range v.Notes {
		if err := n.validate(fmt.Sprintf("%s.notes[%d]", path, i)); err != nil {
			return err
		}
	}
	for i, r := range v.References {
		if err := r.validate(fmt.Sprintf("%s.references[%d]", path, i)); err != nil {
			return err
		}
	}
	for i, r := range v.Remediations {
		p := fmt.Sprintf("%s.remediations[%d]", path, i)
		if r.Category == "" {
			return &MissingFieldError{Path: p + ".category"}
		}
		if r.Details == "" {
			return &MissingFieldError{Path: p + ".details"}
		}
	}
	for i, s := range v.Scores {
		if s.Products == nil {
			return &MissingFieldError{Path: fmt.Sprintf("%s.scores[%d].products", path, i)}
		}
	}
	for i, t := range v.Threats {
		p := fmt.Sprintf("%s.threats[%d]", path, i)
		if t.Category == "" {
			return &MissingFieldError{Path: p + ".category"}
		}
		if t.Details == "" {
			return &MissingFieldError{Path: p + ".details"}
		}
	}
	return nil
}

// checkVariants verifies every enum-typed field against the value sets the
// CSAF specification defines. Document categories are producer-defined and
// are not checked.
func (advisory *Advisory) checkVariants() error {
	doc := &advisory.Document
	if !knownCSAFVersion(string(doc.CSAFVersion)) {
		return &UnknownVariantError{Path: "document.csaf_version", Value: string(doc.CSAFVersion)}
	}
	if !knownPublisherCategory(string(doc.Publisher.Category)) {
		return &UnknownVariantError{Path: "document.publisher.category", Value: string(doc.Publisher.Category)}
	}
	if !knownTrackingStatus(string(doc.Tracking.Status)) {
		return &UnknownVariantError{Path: "document.tracking.status", Value: string(doc.Tracking.Status)}
	}
	if doc.Distribution != nil && doc.Distribution.TLP != nil {
		if !knownTLPLabel(string(doc.Distribution.TLP.Label)) {
			return &UnknownVariantError{Path: "document.distribution.tlp.label", Value: string(doc.Distribution.TLP.Label)}
		}
	}
	for i, n := range doc.Notes {
		if !knownNoteCategory(string(n.Category)) {
			return &UnknownVariantError{Path: fmt.Sprintf("document.notes[%d].category", i), Value: string(n.Category)}
		}
	}
	for i, r := range doc.References {
		if r.Category != nil && !knownReferenceCategory(string(*r.Category)) {
			return &UnknownVariantError{Path: fmt.Sprintf("document.references[%d].category", i), Value: string(*r.Category)}
		}
	}
	if advisory.ProductTree != nil {
		if err := advisory.ProductTree.checkVariants("product_tree"); err != nil {
			return err
		}
	}
	for i := range advisory.Vulnerabilities {
		if err := advisory.Vulnerabilities[i].checkVariants(fmt.Sprintf("vulnerabilities[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (tree *ProductTree) checkVariants(path string) error {
	for i := range tree.Branches {
		if err := tree.Branches[i].checkVariants(fmt.Sprintf("%s.branches[%d]", path, i)); err != nil {
			return err
		}
	}
	for i, r := range tree.Relationships {
		if !knownRelationshipCategory(string(r.Category)) {
			return &UnknownVariantError{Path: fmt.Sprintf("%s.relationships[%d].category", path, i), Value: string(r.Category)}
		}
	}
	return nil
}

func (branch *Branch) checkVariants(path string) error {
	if !knownBranchCategory(string(branch.Category)) {
		return &UnknownVariantError{Path: path + ".category", Value: string(branch.Category)}
	}
	for i := range branch.Branches {
		if err := branch.Branches[i].checkVariants(fmt.Sprintf("%s.branches[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (v *Vulnerability) checkVariants(path string) error {
	for i, f := range v.Flags {
		if !knownFlagLabel(string(f.Label)) {
			return &UnknownVariantError{Path: fmt.Sprintf("%s.flags[%d].label", path, i), Value: string(f.Label)}
		}
	}
	for i, inv := range v.Involvements {
		p := fmt.Sprintf("%s.involvements[%d]", path, i)
		if !knownInvolvementParty(string(inv.Party)) {
			return &UnknownVariantError{Path: p + ".party", Value: string(inv.Party)}
		}
		if !knownInvolvementStatus(string(inv.Status)) {
			return &UnknownVariantError{Path: p + ".status", Value: string(inv.Status)}
		}
	}
	for i, n := range v.Notes {
		if !knownNoteCategory(string(n.Category)) {
			return &UnknownVariantError{Path: fmt.Sprintf("%s.notes[%d].category", path, i), Value: string(n.Category)}
		}
	}
	for i, r := range v.References {
		if r.Category != nil && !knownReferenceCategory(string(*r.Category)) {
			return &UnknownVariantError{Path: fmt.Sprintf("%s.references[%d].category", path, i), Value: string(*r.Category)}
		}
	}
	for i, r := range v.Remediations {
		p := fmt.Sprintf("%s.remediations[%d]", path, i)
		if !knownRemediationCategory(string(r.Category)) {
			return &UnknownVariantError{Path: p + ".category", Value: string(r.Category)}
		}
		if r.RestartRequired != nil && !knownRestartRequiredCategory(string(r.RestartRequired.Category)) {
			return &UnknownVariantError{Path: p + ".restart_required.category", Value: string(r.RestartRequired.Category)}
		}
	}
	for i, t := range v.Threats {
		if !knownThreatCategory(string(t.Category)) {
			return &UnknownVariantError{Path: fmt.Sprintf("%s.threats[%d].category", path, i), Value: string(t.Category)}
		}
	}
	return nil
}
