package csaf

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip parses data, serializes the result, parses that again and
// requires the two in-memory values to be equal. It returns the first
// parse result.
func roundTrip(t *testing.T, data []byte) *Advisory {
	t.Helper()

	advisory, err := Parse(data)
	require.NoError(t, err)

	b, err := Serialize(advisory)
	require.NoError(t, err)

	reparsed, err := Parse(b)
	require.NoError(t, err, "re-serialized document failed to parse:\n%s", string(b))

	if diff := pretty.Compare(advisory, reparsed); diff != "" {
		t.Errorf("document changed through serialize/parse (-first +second):\n%s", diff)
	}

	// A second serialization must be byte-identical.
	b2, err := Serialize(reparsed)
	require.NoError(t, err)
	assert.Equal(t, string(b), string(b2))

	return advisory
}

func TestParse_GenericTemplate(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "generic-template.json"))
	require.NoError(t, err)

	advisory := roundTrip(t, data)

	assert.Equal(t, DocumentCategory("generic_csaf"), advisory.Document.Category)
	assert.Equal(t, CSAFVersion20, advisory.Document.CSAFVersion)
	assert.Equal(t, TrackingID("OASIS_CSAF_TC-CSAF_2.0-2021-TEMPLATE"), advisory.Document.Tracking.ID)
	require.Len(t, advisory.Document.Tracking.RevisionHistory, 1)

	assert.Nil(t, advisory.ProductTree)
	assert.Nil(t, advisory.Vulnerabilities)

	// Sub-second zeros normalize away.
	assert.Equal(t, Timestamp("2021-07-21T10:00:00Z"), advisory.Document.Tracking.CurrentReleaseDate)
}

func TestParse_SecurityAdvisory(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "security-advisory.json"))
	require.NoError(t, err)

	advisory := roundTrip(t, data)

	require.Len(t, advisory.Vulnerabilities, 1)
	v := advisory.Vulnerabilities[0]
	require.NotNil(t, v.CVE)
	assert.Equal(t, "CVE-2022-2964", *v.CVE)
	assert.Equal(t, "A use-after-free flaw was found in the Linux kernel network subdriver.",
		v.FindNote(NoteCategoryDescription))

	require.NotNil(t, advisory.ProductTree)
	p := advisory.ProductTree.FindProductByID("RHEL-9")
	require.NotNil(t, p)
	assert.Equal(t, "Red Hat Enterprise Linux 9", p.Name)

	rel := advisory.ProductTree.FindRelationship("RHEL-9:kernel-0:5.14.0-162.12.1.el9_1", RelationshipCategoryDefaultComponentOf)
	require.NotNil(t, rel)
	assert.Equal(t, ProductID("kernel-0:5.14.0-162.12.1.el9_1"), rel.ProductReference)

	rem := advisory.FindRemediation("RHEL-9:kernel-0:5.14.0-162.12.1.el9_1")
	require.NotNil(t, rem)
	assert.Equal(t, RemediationCategoryVendorFix, rem.Category)

	score := advisory.FindScore("RHEL-9:kernel-0:5.14.0-162.12.1.el9_1")
	require.NotNil(t, score)
	require.NotNil(t, score.CVSSV3)
	assert.Equal(t, 7.8, score.CVSSV3.BaseScore)

	// An explicitly empty status bucket survives as empty, not absent.
	require.NotNil(t, v.ProductStatus)
	require.NotNil(t, v.ProductStatus.KnownNotAffected)
	assert.Empty(t, *v.ProductStatus.KnownNotAffected)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		opts    []Option
		wantErr string
	}{
		{
			name:    "malformed syntax",
			input:   `{"document":`,
			wantErr: "syntax error",
		},
		{
			name:    "missing title",
			input:   `{"document": {"category": "generic_csaf", "csaf_version": "2.0", "publisher": {"category": "other", "name": "x", "namespace": "https://example.com"}}}`,
			wantErr: "'document.title' is missing",
		},
		{
			name:    "missing tracking id",
			input:   `{"document": {"category": "generic_csaf", "csaf_version": "2.0", "title": "t", "publisher": {"category": "other", "name": "x", "namespace": "https://example.com"}, "tracking": {}}}`,
			wantErr: "'document.tracking.id' is missing",
		},
		{
			name:    "type mismatch",
			input:   `{"document": {"category": "generic_csaf", "csaf_version": "2.0", "title": 42}}`,
			wantErr: "must be string, found number",
		},
		{
			name: "unknown tracking status in strict mode",
			input: `{"document": {"category": "generic_csaf", "csaf_version": "2.0", "title": "t",
				"publisher": {"category": "other", "name": "x", "namespace": "https://example.com"},
				"tracking": {"id": "ID-1", "current_release_date": "2021-01-01T00:00:00Z", "initial_release_date": "2021-01-01T00:00:00Z",
					"revision_history": [{"date": "2021-01-01T00:00:00Z", "number": "1", "summary": "s"}],
					"status": "superseded", "version": "1"}}}`,
			opts:    []Option{WithStrict()},
			wantErr: `'document.tracking.status' has unknown value "superseded"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), tt.opts...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParse_UnknownKeysIgnored(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "security-advisory.json"))
	require.NoError(t, err)

	want, err := Parse(data)
	require.NoError(t, err)

	// Inject unmodeled keys at several nesting levels.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	raw["x_extension"] = "ignored"
	raw["document"].(map[string]any)["x_vendor_data"] = map[string]any{"a": 1}
	raw["vulnerabilities"].([]any)[0].(map[string]any)["x_exploited"] = true
	injected, err := json.Marshal(raw)
	require.NoError(t, err)

	got, err := Parse(injected)
	require.NoError(t, err)

	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("unknown keys changed the parsed value (-want +got):\n%s", diff)
	}
}

func TestParse_UnrecognizedEnumTextPreserved(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "generic-template.json"))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	doc := raw["document"].(map[string]any)
	doc["publisher"].(map[string]any)["category"] = "artificial_intelligence"
	input, err := json.Marshal(raw)
	require.NoError(t, err)

	// Lenient by default.
	advisory := roundTrip(t, input)
	assert.Equal(t, PublisherCategory("artificial_intelligence"), advisory.Document.Publisher.Category)

	b, err := Serialize(advisory)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"category": "artificial_intelligence"`)

	// Strict mode rejects the same document.
	_, err = Parse(input, WithStrict())
	assert.ErrorContains(t, err, "'document.publisher.category' has unknown value")

	var unknownErr *UnknownVariantError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "artificial_intelligence", unknownErr.Value)
}

func TestParse_EmptyVulnerabilitiesIsAbsent(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "generic-template.json"))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	raw["vulnerabilities"] = []any{}
	input, err := json.Marshal(raw)
	require.NoError(t, err)

	advisory := roundTrip(t, input)
	assert.Nil(t, advisory.Vulnerabilities)

	b, err := Serialize(advisory)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "vulnerabilities")
}

func TestSerialize_AbsentVsEmptyBucket(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "generic-template.json"))
	require.NoError(t, err)

	advisory, err := Parse(data)
	require.NoError(t, err)

	advisory.Vulnerabilities = []Vulnerability{
		{ProductStatus: &ProductStatus{Fixed: &Products{}}},
	}
	withEmpty, err := Serialize(advisory)
	require.NoError(t, err)
	assert.Contains(t, string(withEmpty), `"fixed": []`)

	advisory.Vulnerabilities[0].ProductStatus.Fixed = nil
	withAbsent, err := Serialize(advisory)
	require.NoError(t, err)
	assert.NotContains(t, string(withAbsent), `"fixed"`)
	assert.NotEqual(t, string(withEmpty), string(withAbsent))
}

func TestParse_ProductStatusDeduplicates(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "security-advisory.json"))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	vuln := raw["vulnerabilities"].([]any)[0].(map[string]any)
	vuln["product_status"].(map[string]any)["fixed"] = []any{"a", "b", "a", "a", "c", "b"}
	input, err := json.Marshal(raw)
	require.NoError(t, err)

	advisory := roundTrip(t, input)
	require.NotNil(t, advisory.Vulnerabilities[0].ProductStatus.Fixed)
	assert.Equal(t, Products{"a", "b", "c"}, *advisory.Vulnerabilities[0].ProductStatus.Fixed)
}

func TestSerialize_NoNullForAbsentFields(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "generic-template.json"))
	require.NoError(t, err)

	advisory, err := Parse(data)
	require.NoError(t, err)

	b, err := Serialize(advisory)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "null")
}

func TestTimestamp_Normalization(t *testing.T) {
	tests := []struct {
		input string
		want  Timestamp
	}{
		{`"2021-07-21T10:00:00.000Z"`, "2021-07-21T10:00:00Z"},
		{`"2021-07-21T10:00:00Z"`, "2021-07-21T10:00:00Z"},
		{`"2021-07-21T10:00:00.123Z"`, "2021-07-21T10:00:00.123Z"},
		{`"2021-01-01"`, "2021-01-01T00:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.Equal(t, tt.want, ts)

			// Canonical form is a fixed point.
			var again Timestamp
			b, err := json.Marshal(ts)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(b, &again))
			assert.Equal(t, ts, again)
		})
	}

	var ts Timestamp
	err := json.Unmarshal([]byte(`"not a date"`), &ts)
	assert.Error(t, err)
}
