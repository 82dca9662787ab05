package rustsec

import (
	"encoding/json"
	"regexp"

	"github.com/araddon/dateparse"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"
)

// idRe matches advisory identifiers like "RUSTSEC-2021-0001".
var idRe = regexp.MustCompile(`^RUSTSEC-\d{4}-\d{4}$`)

const dateFormat = "2006-01-02"

// Parse decodes a JSON advisory and validates it.
func Parse(data []byte) (*Advisory, error) {
	var advisory Advisory
	if err := json.Unmarshal(data, &advisory); err != nil {
		return nil, xerrors.Errorf("rustsec: failed to decode advisory: %w", err)
	}
	if err := advisory.Validate(); err != nil {
		return nil, xerrors.Errorf("rustsec: invalid advisory: %w", err)
	}
	return &advisory, nil
}

// ParseYAML decodes a YAML advisory, the form advisory databases commonly
// store on disk, and validates it.
func ParseYAML(data []byte) (*Advisory, error) {
	var advisory Advisory
	if err := yaml.Unmarshal(data, &advisory); err != nil {
		return nil, xerrors.Errorf("rustsec: failed to decode advisory: %w", err)
	}
	if err := advisory.Validate(); err != nil {
		return nil, xerrors.Errorf("rustsec: invalid advisory: %w", err)
	}
	return &advisory, nil
}

// Validate checks the mandatory fields and normalizes the dates to
// YYYY-MM-DD form.
func (adv *Advisory) Validate() error {
	if adv.ID == "" {
		return xerrors.New("'id' is missing")
	}
	if !idRe.MatchString(adv.ID) {
		return xerrors.Errorf("invalid advisory ID format: %s", adv.ID)
	}
	if adv.Package == "" {
		return xerrors.New("'package' is missing")
	}
	if adv.Title == "" {
		return xerrors.New("'title' is missing")
	}
	if adv.Date == "" {
		return xerrors.New("'date' is missing")
	}

	date, err := dateparse.ParseAny(adv.Date)
	if err != nil {
		return xerrors.Errorf("invalid date %q: %w", adv.Date, err)
	}
	adv.Date = date.Format(dateFormat)

	if adv.Withdrawn != "" {
		withdrawn, err := dateparse.ParseAny(adv.Withdrawn)
		if err != nil {
			return xerrors.Errorf("invalid withdrawn date %q: %w", adv.Withdrawn, err)
		}
		adv.Withdrawn = withdrawn.Format(dateFormat)
	}
	return nil
}
