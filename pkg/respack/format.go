package respack

import (
	"fmt"
	"strings"

	"github.com/kosmolot/coloredsubs/pkg/respack/errors"
)

// JSONFormatMin is the first pack format whose language files are JSON
// objects. Everything below it uses the legacy key=value representation.
const JSONFormatMin = 4

// formatEntry maps a game version family (by prefix) to a pack format.
type formatEntry struct {
	VersionPrefix string
	Format        int
}

// packFormats is the known version-family → pack-format table. Order matters:
// entries are scanned top to bottom and the last matching prefix wins, so
// more specific families (1.16.2, 1.16.5) sit below their base family.
// Supporting a new game version is a new row here, nothing else.
var packFormats = []formatEntry{
	{"1.6", 1},
	{"1.7", 1},
	{"1.8", 1},
	{"1.9", 2},
	{"1.10", 2},
	{"1.11", 3},
	{"1.12", 3},
	{"1.13", 4},
	{"1.14", 4},
	{"1.15", 5},
	{"1.16", 5},
	{"1.16.2", 6},
	{"1.16.5", 6},
	{"1.17", 7},
	{"1.17.1", 7},
	{"1.18", 8},
	{"1.19", 9},
}

// ResolveFormat returns the pack format for a game version string.
//
// A version belongs to a family when it equals the family prefix or extends
// it at a dot boundary ("1.9" covers "1.9.4" but not "1.99"); the last
// matching entry decides. A version with no matching entry is a
// configuration error: no format can be assumed for it.
func ResolveFormat(version string) (int, error) {
	format := -1
	for _, entry := range packFormats {
		if version == entry.VersionPrefix || strings.HasPrefix(version, entry.VersionPrefix+".") {
			format = entry.Format
		}
	}
	if format < 0 {
		return 0, fmt.Errorf("%w: %s", errors.ErrUnknownVersion, version)
	}
	return format, nil
}
