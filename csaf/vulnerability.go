package csaf

// CWE holds the MITRE Common Weakness Enumeration entry associated with a
// vulnerability.
type CWE struct {
	ID   string `json:"id"`   // required
	Name string `json:"name"` // required
}

// VulnerabilityID is a unique label or tracking ID for the vulnerability in
// some other system.
type VulnerabilityID struct {
	SystemName string `json:"system_name"` // required
	Text       string `json:"text"`        // required
}

// InvolvementParty is the party of an involvement.
type InvolvementParty string

const (
	InvolvementPartyCoordinator InvolvementParty = "coordinator"
	InvolvementPartyDiscoverer  InvolvementParty = "discoverer"
	InvolvementPartyOther       InvolvementParty = "other"
	InvolvementPartyUser        InvolvementParty = "user"
	InvolvementPartyVendor      InvolvementParty = "vendor"
)

var knownInvolvementParty = knownSet(
	string(InvolvementPartyCoordinator),
	string(InvolvementPartyDiscoverer),
	string(InvolvementPartyOther),
	string(InvolvementPartyUser),
	string(InvolvementPartyVendor))

// InvolvementStatus is the status of an involvement.
type InvolvementStatus string

const (
	InvolvementStatusCompleted        InvolvementStatus = "completed"
	InvolvementStatusContactAttempted InvolvementStatus = "contact_attempted"
	InvolvementStatusDisputed         InvolvementStatus = "disputed"
	InvolvementStatusInProgress       InvolvementStatus = "in_progress"
	InvolvementStatusNotContacted     InvolvementStatus = "not_contacted"
	InvolvementStatusOpen             InvolvementStatus = "open"
)

var knownInvolvementStatus = knownSet(
	string(InvolvementStatusCompleted),
	string(InvolvementStatusContactAttempted),
	string(InvolvementStatusDisputed),
	string(InvolvementStatusInProgress),
	string(InvolvementStatusNotContacted),
	string(InvolvementStatusOpen))

// Involvement comments on the engagement of a party in the vulnerability
// handling process.
type Involvement struct {
	Date    *Timestamp        `json:"date,omitempty"`
	Party   InvolvementParty  `json:"party"`  // required
	Status  InvolvementStatus `json:"status"` // required
	Summary *string           `json:"summary,omitempty"`
}

// FlagLabel is a machine readable justification label.
type FlagLabel string

const (
	FlagLabelComponentNotPresent              FlagLabel = "component_not_present"
	FlagLabelInlineMitigationsAlreadyExist    FlagLabel = "inline_mitigations_already_exist"
	FlagLabelVulnerableCodeCannotBeControlled FlagLabel = "vulnerable_code_cannot_be_controlled_by_adversary"
	FlagLabelVulnerableCodeNotInExecutePath   FlagLabel = "vulnerable_code_not_in_execute_path"
	FlagLabelVulnerableCodeNotPresent         FlagLabel = "vulnerable_code_not_present"
)

var knownFlagLabel = knownSet(
	string(FlagLabelComponentNotPresent),
	string(FlagLabelInlineMitigationsAlreadyExist),
	string(FlagLabelVulnerableCodeCannotBeControlled),
	string(FlagLabelVulnerableCodeNotInExecutePath),
	string(FlagLabelVulnerableCodeNotPresent))

// Flag attaches a machine readable flag to a set of products.
type Flag struct {
	Date       *Timestamp       `json:"date,omitempty"`
	GroupIDs   *ProductGroupIDs `json:"group_ids,omitempty"`
	Label      FlagLabel        `json:"label"` // required
	ProductIDs *Products        `json:"product_ids,omitempty"`
}

// ProductStatus sorts the referenced products into status buckets. Each
// bucket is a set: order carries no meaning and duplicates are collapsed on
// parse. An empty but present bucket round-trips as an empty array,
// distinct from an absent one.
type ProductStatus struct {
	FirstAffected      *Products `json:"first_affected,omitempty"`
	FirstFixed         *Products `json:"first_fixed,omitempty"`
	Fixed              *Products `json:"fixed,omitempty"`
	KnownAffected      *Products `json:"known_affected,omitempty"`
	KnownNotAffected   *Products `json:"known_not_affected,omitempty"`
	LastAffected       *Products `json:"last_affected,omitempty"`
	Recommended        *Products `json:"recommended,omitempty"`
	UnderInvestigation *Products `json:"under_investigation,omitempty"`
}

// RemediationCategory is the category of a remediation.
type RemediationCategory string

const (
	RemediationCategoryMitigation    RemediationCategory = "mitigation"
	RemediationCategoryNoFixPlanned  RemediationCategory = "no_fix_planned"
	RemediationCategoryNoneAvailable RemediationCategory = "none_available"
	RemediationCategoryVendorFix     RemediationCategory = "vendor_fix"
	RemediationCategoryWorkaround    RemediationCategory = "workaround"
)

var knownRemediationCategory = knownSet(
	string(RemediationCategoryMitigation),
	string(RemediationCategoryNoFixPlanned),
	string(RemediationCategoryNoneAvailable),
	string(RemediationCategoryVendorFix),
	string(RemediationCategoryWorkaround))

// RestartRequiredCategory is the category of a restart requirement.
type RestartRequiredCategory string

const (
	RestartRequiredCategoryConnected           RestartRequiredCategory = "connected"
	RestartRequiredCategoryDependencies        RestartRequiredCategory = "dependencies"
	RestartRequiredCategoryMachine             RestartRequiredCategory = "machine"
	RestartRequiredCategoryNone                RestartRequiredCategory = "none"
	RestartRequiredCategoryParent              RestartRequiredCategory = "parent"
	RestartRequiredCategoryService             RestartRequiredCategory = "service"
	RestartRequiredCategorySystem              RestartRequiredCategory = "system"
	RestartRequiredCategoryVulnerableComponent RestartRequiredCategory = "vulnerable_component"
	RestartRequiredCategoryZone                RestartRequiredCategory = "zone"
)

var knownRestartRequiredCategory = knownSet(
	string(RestartRequiredCategoryConnected),
	string(RestartRequiredCategoryDependencies),
	string(RestartRequiredCategoryMachine),
	string(RestartRequiredCategoryNone),
	string(RestartRequiredCategoryParent),
	string(RestartRequiredCategoryService),
	string(RestartRequiredCategorySystem),
	string(RestartRequiredCategoryVulnerableComponent),
	string(RestartRequiredCategoryZone))

// RestartRequired states what must be restarted for a remediation to take
// effect.
type RestartRequired struct {
	Category RestartRequiredCategory `json:"category"` // required
	Details  *string                 `json:"details,omitempty"`
}

// Remediation details how to handle a vulnerability for a set of products.
type Remediation struct {
	Category        RemediationCategory `json:"category"` // required
	Date            *Timestamp          `json:"date,omitempty"`
	Details         string              `json:"details"` // required
	Entitlements    []string            `json:"entitlements,omitempty"`
	GroupIDs        *ProductGroupIDs    `json:"group_ids,omitempty"`
	ProductIDs      *Products           `json:"product_ids,omitempty"`
	RestartRequired *RestartRequired    `json:"restart_required,omitempty"`
	URL             *string             `json:"url,omitempty"`
}

// CVSSV2 carries a CVSS v2.0 score. Only the fields required by the CVSS
// JSON schema are modeled.
type CVSSV2 struct {
	Version      string  `json:"version"`      // required
	VectorString string  `json:"vectorString"` // required
	BaseScore    float64 `json:"baseScore"`    // required
}

// CVSSV3 carries a CVSS v3.0 or v3.1 score. Only the fields required by the
// CVSS JSON schema are modeled.
type CVSSV3 struct {
	Version      string  `json:"version"`      // required
	VectorString string  `json:"vectorString"` // required
	BaseScore    float64 `json:"baseScore"`    // required
	BaseSeverity string  `json:"baseSeverity"` // required
}

// CVSSV4 carries a CVSS v4.0 score. Only the fields required by the CVSS
// JSON schema are modeled.
type CVSSV4 struct {
	Version      string  `json:"version"`      // required
	VectorString string  `json:"vectorString"` // required
	BaseScore    float64 `json:"baseScore"`    // required
	BaseSeverity string  `json:"baseSeverity"` // required
}

// Score ties one or more CVSS values to a set of products.
type Score struct {
	CVSSV2   *CVSSV2   `json:"cvss_v2,omitempty"`
	CVSSV3   *CVSSV3   `json:"cvss_v3,omitempty"`
	CVSSV4   *CVSSV4   `json:"cvss_v4,omitempty"`
	Products *Products `json:"products"` // required
}

// ThreatCategory is the category of a threat.
type ThreatCategory string

const (
	ThreatCategoryExploitStatus ThreatCategory = "exploit_status"
	ThreatCategoryImpact        ThreatCategory = "impact"
	ThreatCategoryTargetSet     ThreatCategory = "target_set"
)

var knownThreatCategory = knownSet(
	string(ThreatCategoryExploitStatus),
	string(ThreatCategoryImpact),
	string(ThreatCategoryTargetSet))

// Threat describes a transient aspect of a vulnerability.
type Threat struct {
	Category   ThreatCategory   `json:"category"` // required
	Date       *Timestamp       `json:"date,omitempty"`
	Details    string           `json:"details"` // required
	GroupIDs   *ProductGroupIDs `json:"group_ids,omitempty"`
	ProductIDs *Products        `json:"product_ids,omitempty"`
}

// Vulnerability holds everything related to a single vulnerability in the
// document.
type Vulnerability struct {
	Acknowledgements []Acknowledgement `json:"acknowledgements,omitempty"`
	CVE              *string           `json:"cve,omitempty"`
	CWE              *CWE              `json:"cwe,omitempty"`
	DiscoveryDate    *Timestamp        `json:"discovery_date,omitempty"`
	Flags            []Flag            `json:"flags,omitempty"`
	IDs              []VulnerabilityID `json:"ids,omitempty"`
	Involvements     []Involvement     `json:"involvements,omitempty"`
	Notes            []Note            `json:"notes,omitempty"`
	ProductStatus    *ProductStatus    `json:"product_status,omitempty"`
	References       []Reference       `json:"references,omitempty"`
	ReleaseDate      *Timestamp        `json:"release_date,omitempty"`
	Remediations     []Remediation     `json:"remediations,omitempty"`
	Scores           []Score           `json:"scores,omitempty"`
	Threats          []Threat          `json:"threats,omitempty"`
	Title            *string           `json:"title,omitempty"`
}

// FindNote returns the text of the first vulnerability note with the given
// category, or "".
func (v *Vulnerability) FindNote(category NoteCategory) string {
	for _, n := range v.Notes {
		if n.Category == category {
			return n.Text
		}
	}
	return ""
}
