package rustsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Advisory
		wantErr string
	}{
		{
			name: "happy path",
			input: `{
				"id": "RUSTSEC-2021-0001",
				"package": "smallvec",
				"title": "Buffer overflow in insert_many",
				"description": "Affected versions miscalculated capacity.",
				"date": "2021-01-08",
				"aliases": ["CVE-2021-25900"],
				"url": "https://github.com/servo/rust-smallvec/issues/252",
				"versions": {
					"patched": [">= 0.6.14, < 1.0.0", ">= 1.6.1"],
					"unaffected": ["< 0.6.3"]
				}
			}`,
			want: &Advisory{
				ID:          "RUSTSEC-2021-0001",
				Package:     "smallvec",
				Title:       "Buffer overflow in insert_many",
				Description: "Affected versions miscalculated capacity.",
				Date:        "2021-01-08",
				Aliases:     []string{"CVE-2021-25900"},
				URL:         "https://github.com/servo/rust-smallvec/issues/252",
				Versions: Versions{
					Patched:    []string{">= 0.6.14, < 1.0.0", ">= 1.6.1"},
					Unaffected: []string{"< 0.6.3"},
				},
			},
		},
		{
			name:    "missing package",
			input:   `{"id": "RUSTSEC-2021-0001", "title": "t", "date": "2021-01-08"}`,
			wantErr: "'package' is missing",
		},
		{
			name:    "bad id format",
			input:   `{"id": "GHSA-xxxx-yyyy-zzzz", "package": "p", "title": "t", "date": "2021-01-08"}`,
			wantErr: "invalid advisory ID format",
		},
		{
			name:    "bad date",
			input:   `{"id": "RUSTSEC-2021-0001", "package": "p", "title": "t", "date": "yesterday"}`,
			wantErr: "invalid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseYAML(t *testing.T) {
	input := `
id: RUSTSEC-2020-0036
package: failure
title: Type confusion in failure
date: 2020-05-02
severity: critical
aliases:
  - CVE-2020-25575
versions:
  patched: []
`
	advisory, err := ParseYAML([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, "RUSTSEC-2020-0036", advisory.ID)
	assert.Equal(t, "failure", advisory.Package)
	assert.Equal(t, SeverityCritical, advisory.Severity)
	assert.Equal(t, []string{"CVE-2020-25575"}, advisory.Aliases)

	_, ok := advisory.Versions.FirstFixed()
	assert.False(t, ok)
}

func TestVersions_FirstFixed(t *testing.T) {
	tests := []struct {
		name    string
		patched []string
		want    string
		wantOK  bool
	}{
		{name: "simple lower bound", patched: []string{">= 1.6.1"}, want: "1.6.1", wantOK: true},
		{name: "compound requirement", patched: []string{">= 0.6.14, < 1.0.0"}, want: "0.6.14", wantOK: true},
		{name: "caret requirement", patched: []string{"^2.3.0"}, want: "2.3.0", wantOK: true},
		{name: "skips unparseable", patched: []string{">= not.a.version", ">= 1.2.3"}, want: "1.2.3", wantOK: true},
		{name: "none", patched: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Versions{Patched: tt.patched}.FirstFixed()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdvisory_CVEIDs(t *testing.T) {
	adv := Advisory{Aliases: []string{"GHSA-aaaa-bbbb-cccc", "CVE-2021-25900", "CVE-2021-25901"}}
	assert.Equal(t, []string{"CVE-2021-25900", "CVE-2021-25901"}, adv.CVEIDs())
}
