package respack

import (
	"errors"
	"testing"

	rperrors "github.com/kosmolot/coloredsubs/pkg/respack/errors"
)

func TestResolveFormat(t *testing.T) {
	testCases := []struct {
		version string
		format  int
	}{
		{"1.6.4", 1},
		{"1.8", 1},
		{"1.12", 3},
		{"1.12.2", 3},
		{"1.13", 4},
		{"1.15.2", 5},
		{"1.16", 5},
		{"1.16.1", 5},
		{"1.16.2", 6},
		// "1.16.5" matches 1.16 and 1.16.5; the later, more specific row wins.
		{"1.16.5", 6},
		{"1.17.1", 7},
		{"1.18.2", 8},
		{"1.19", 9},
	}

	for _, tc := range testCases {
		t.Run(tc.version, func(t *testing.T) {
			format, err := ResolveFormat(tc.version)
			if err != nil {
				t.Fatalf("ResolveFormat(%q): %v", tc.version, err)
			}
			if format != tc.format {
				t.Errorf("ResolveFormat(%q) = %d, want %d", tc.version, format, tc.format)
			}
		})
	}
}

func TestResolveFormatUnknownVersion(t *testing.T) {
	for _, version := range []string{"1.99", "2.0", "banana", ""} {
		t.Run(version, func(t *testing.T) {
			if _, err := ResolveFormat(version); !errors.Is(err, rperrors.ErrUnknownVersion) {
				t.Errorf("ResolveFormat(%q) err = %v, want ErrUnknownVersion", version, err)
			}
		})
	}
}
