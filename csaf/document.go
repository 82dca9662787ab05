package csaf

// DocumentCategory names the profile a document follows. The CSAF
// specification reserves the "csaf_" prefix for its own profiles but allows
// arbitrary producer-defined categories, so this is an open value with a few
// well-known forms.
type DocumentCategory string

const (
	DocumentCategoryBase             DocumentCategory = "csaf_base"
	DocumentCategorySecurityAdvisory DocumentCategory = "csaf_security_advisory"
	DocumentCategoryVEX              DocumentCategory = "csaf_vex"
)

// CSAFVersion is the version of the CSAF specification a document conforms to.
type CSAFVersion string

// CSAFVersion20 is the only version this package models.
const CSAFVersion20 CSAFVersion = "2.0"

var knownCSAFVersion = knownSet(string(CSAFVersion20))

// PublisherCategory is the category of a publisher.
type PublisherCategory string

const (
	PublisherCategoryCoordinator PublisherCategory = "coordinator"
	PublisherCategoryDiscoverer  PublisherCategory = "discoverer"
	PublisherCategoryOther       PublisherCategory = "other"
	PublisherCategoryTranslator  PublisherCategory = "translator"
	PublisherCategoryUser        PublisherCategory = "user"
	PublisherCategoryVendor      PublisherCategory = "vendor"
)

var knownPublisherCategory = knownSet(
	string(PublisherCategoryCoordinator),
	string(PublisherCategoryDiscoverer),
	string(PublisherCategoryOther),
	string(PublisherCategoryTranslator),
	string(PublisherCategoryUser),
	string(PublisherCategoryVendor))

// DocumentPublisher provides information about the publishing entity.
type DocumentPublisher struct {
	Category         PublisherCategory `json:"category"` // required
	ContactDetails   *string           `json:"contact_details,omitempty"`
	IssuingAuthority *string           `json:"issuing_authority,omitempty"`
	Name             string            `json:"name"`      // required
	Namespace        string            `json:"namespace"` // required
}

// TLPLabel is a Traffic Light Protocol distribution label.
type TLPLabel string

const (
	TLPLabelAmber TLPLabel = "AMBER"
	TLPLabelGreen TLPLabel = "GREEN"
	TLPLabelRed   TLPLabel = "RED"
	TLPLabelWhite TLPLabel = "WHITE"
)

var knownTLPLabel = knownSet(
	string(TLPLabelAmber),
	string(TLPLabelGreen),
	string(TLPLabelRed),
	string(TLPLabelWhite))

// TLP details the Traffic Light Protocol classification of the document.
type TLP struct {
	Label TLPLabel `json:"label"` // required
	URL   *string  `json:"url,omitempty"`
}

// DocumentDistribution describes rules for sharing the document.
type DocumentDistribution struct {
	Text *string `json:"text,omitempty"`
	TLP  *TLP    `json:"tlp,omitempty"`
}

// AggregateSeverity is the urgency with which the vulnerabilities of an
// advisory, not any specific one, should be addressed.
type AggregateSeverity struct {
	Namespace *string `json:"namespace,omitempty"`
	Text      string  `json:"text"` // required
}

// Engine identifies the software that generated the document.
type Engine struct {
	Name    string  `json:"name"` // required
	Version *string `json:"version,omitempty"`
}

// Generator records when and by what the document was generated.
type Generator struct {
	Date   *Timestamp `json:"date,omitempty"`
	Engine Engine     `json:"engine"` // required
}

// TrackingID is the unique identifier of the document within its
// publisher's namespace.
type TrackingID string

// Version denotes the evolution of the document. Either an integer or
// semantic versioning, per the publisher's choice.
type Version string

// Revision is one entry of the revision history. The history is kept in
// the order it appears in the document; callers maintain chronological
// order themselves.
type Revision struct {
	Date          Timestamp `json:"date"` // required
	LegacyVersion *string   `json:"legacy_version,omitempty"`
	Number        Version   `json:"number"`  // required
	Summary       string    `json:"summary"` // required
}

// TrackingStatus is the lifecycle state of the document.
type TrackingStatus string

const (
	TrackingStatusDraft   TrackingStatus = "draft"
	TrackingStatusFinal   TrackingStatus = "final"
	TrackingStatusInterim TrackingStatus = "interim"
	// TrackingStatusWithdrawn marks an advisory retracted by its
	// publisher. Not part of the CSAF 2.0 value set, but emitted when
	// converting withdrawn advisories from other ecosystems.
	TrackingStatusWithdrawn TrackingStatus = "withdrawn"
)

var knownTrackingStatus = knownSet(
	string(TrackingStatusDraft),
	string(TrackingStatusFinal),
	string(TrackingStatusInterim),
	string(TrackingStatusWithdrawn))

// Tracking holds the information necessary to track a document through its
// lifecycle.
type Tracking struct {
	Aliases            []string       `json:"aliases,omitempty"`
	CurrentReleaseDate Timestamp      `json:"current_release_date"` // required
	Generator          *Generator     `json:"generator,omitempty"`
	ID                 TrackingID     `json:"id"`                   // required
	InitialReleaseDate Timestamp      `json:"initial_release_date"` // required
	RevisionHistory    []Revision     `json:"revision_history"`     // required
	Status             TrackingStatus `json:"status"`               // required
	Version            Version        `json:"version"`              // required
}

// Lang is an IETF BCP 47 language identifier.
type Lang string

// Document contains metadata about an advisory.
type Document struct {
	Acknowledgements  []Acknowledgement     `json:"acknowledgements,omitempty"`
	AggregateSeverity *AggregateSeverity    `json:"aggregate_severity,omitempty"`
	Category          DocumentCategory      `json:"category"`     // required
	CSAFVersion       CSAFVersion           `json:"csaf_version"` // required
	Distribution      *DocumentDistribution `json:"distribution,omitempty"`
	Lang              *Lang                 `json:"lang,omitempty"`
	Notes             []Note                `json:"notes,omitempty"`
	Publisher         DocumentPublisher     `json:"publisher"` // required
	References        []Reference           `json:"references,omitempty"`
	SourceLang        *Lang                 `json:"source_lang,omitempty"`
	Title             string                `json:"title"`    // required
	Tracking          Tracking              `json:"tracking"` // required
}

// FindNote returns the text of the first document note with the given
// category, or "".
func (doc *Document) FindNote(category NoteCategory) string {
	for _, n := range doc.Notes {
		if n.Category == category {
			return n.Text
		}
	}
	return ""
}
