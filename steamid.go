package steamquery

import (
	"regexp"

	"github.com/leighmacdonald/steamid/v4/steamid"
)

// legacyIDPattern matches the old STEAM_X:Y:Z textual account format.
var legacyIDPattern = regexp.MustCompile(`^STEAM_\d+:\d+:\d+$`)

// NormalizeID converts a legacy STEAM_X:Y:Z id into its steam64 decimal form.
// Anything else, including already-canonical ids and junk, passes through
// verbatim; validating canonical ids is the API's job, not ours. Idempotent.
func NormalizeID(id string) string {
	if !legacyIDPattern.MatchString(id) {
		return id
	}

	sid := steamid.New(id)
	if !sid.Valid() {
		return id
	}

	return sid.String()
}

// normalizeIDs returns a new slice with every id normalized. The input is
// never mutated.
func normalizeIDs(ids []string) []string {
	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		normalized = append(normalized, NormalizeID(id))
	}

	return normalized
}
