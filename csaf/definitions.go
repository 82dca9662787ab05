package csaf

import "github.com/samber/lo"

// knownSet builds a membership check over the canonical forms of an enum.
// Decoding never consults these; they back the strict-mode variant checks.
func knownSet(values ...string) func(string) bool {
	return func(s string) bool {
		return lo.Contains(values, s)
	}
}

// ProductID is a reference token for product instances. There is no
// predefined format as long as it uniquely identifies a product in the
// context of the current document.
type ProductID string

// Products is a list of one or more unique ProductID elements.
type Products []ProductID

// ProductGroupID is a reference token for product group instances.
type ProductGroupID string

// ProductGroupIDs is a list of ProductGroupID elements.
type ProductGroupIDs []ProductGroupID

// Acknowledgement recognizes parties that contributed to the advisory.
// It must carry at least one property.
type Acknowledgement struct {
	Names        []string `json:"names,omitempty"`
	Organization *string  `json:"organization,omitempty"`
	Summary      *string  `json:"summary,omitempty"`
	URLs         []string `json:"urls,omitempty"`
}

// NoteCategory is the category of a note.
type NoteCategory string

const (
	NoteCategoryDescription     NoteCategory = "description"
	NoteCategoryDetails         NoteCategory = "details"
	NoteCategoryFAQ             NoteCategory = "faq"
	NoteCategoryGeneral         NoteCategory = "general"
	NoteCategoryLegalDisclaimer NoteCategory = "legal_disclaimer"
	NoteCategoryOther           NoteCategory = "other"
	NoteCategorySummary         NoteCategory = "summary"
)

var knownNoteCategory = knownSet(
	string(NoteCategoryDescription),
	string(NoteCategoryDetails),
	string(NoteCategoryFAQ),
	string(NoteCategoryGeneral),
	string(NoteCategoryLegalDisclaimer),
	string(NoteCategoryOther),
	string(NoteCategorySummary))

// Note holds additional text specific to the object it is attached to.
type Note struct {
	Audience *string      `json:"audience,omitempty"`
	Category NoteCategory `json:"category"` // required
	Text     string       `json:"text"`     // required
	Title    *string      `json:"title,omitempty"`
}

// ReferenceCategory is the category of a reference.
type ReferenceCategory string

const (
	ReferenceCategoryExternal ReferenceCategory = "external"
	ReferenceCategorySelf     ReferenceCategory = "self"
)

var knownReferenceCategory = knownSet(
	string(ReferenceCategoryExternal),
	string(ReferenceCategorySelf))

// Reference holds a pointer to a resource related to either the surrounding
// part of the document or the document as a whole.
type Reference struct {
	Category *ReferenceCategory `json:"category,omitempty"` // default: external
	Summary  string             `json:"summary"`            // required
	URL      string             `json:"url"`                // required
}

// FileHash is a single checksum of a distributed file.
type FileHash struct {
	Algorithm string `json:"algorithm"` // required
	Value     string `json:"value"`     // required
}

// Hashes lists checksums of one distributed file.
type Hashes struct {
	FileHashes []FileHash `json:"file_hashes"` // required
	FileName   string     `json:"filename"`    // required
}

// XGenericURI is a namespaced identifier for a product.
type XGenericURI struct {
	Namespace string `json:"namespace"` // required
	URI       string `json:"uri"`       // required
}

// ProductIdentificationHelper bundles identifiers for a product, such as
// CPEs, package URLs, or serial numbers.
type ProductIdentificationHelper struct {
	CPE           *string       `json:"cpe,omitempty"`
	Hashes        []Hashes      `json:"hashes,omitempty"`
	ModelNumbers  []string      `json:"model_numbers,omitempty"`
	PURL          *string       `json:"purl,omitempty"`
	SBOMURLs      []string      `json:"sbom_urls,omitempty"`
	SerialNumbers []string      `json:"serial_numbers,omitempty"`
	SKUs          []string      `json:"skus,omitempty"`
	XGenericURIs  []XGenericURI `json:"x_generic_uris,omitempty"`
}

// FullProductName identifies one product.
type FullProductName struct {
	Name                        string                       `json:"name"`       // required
	ProductID                   ProductID                    `json:"product_id"` // required
	ProductIdentificationHelper *ProductIdentificationHelper `json:"product_identification_helper,omitempty"`
}
