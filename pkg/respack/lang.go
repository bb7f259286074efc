package respack

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/kosmolot/coloredsubs/pkg/respack/errors"
)

// Translation is an in-memory language file: translation key → display text.
type Translation map[string]string

// LanguageAsset is one raw language file as retrieved from the game assets.
// Path is the asset-relative path (e.g. "minecraft/lang/en_us.json").
type LanguageAsset struct {
	Path    string
	Content string
}

// DecodeLanguage parses language file content in the representation used by
// the given pack format: a JSON object for format >= JSONFormatMin, otherwise
// the legacy newline-delimited key=value format.
func DecodeLanguage(content string, packFormat int) (Translation, error) {
	if packFormat >= JSONFormatMin {
		var translation Translation
		if err := json.Unmarshal([]byte(content), &translation); err != nil {
			return nil, fmt.Errorf("parsing JSON language file: %w", err)
		}
		return translation, nil
	}

	// Legacy format: one key=value per line, values may contain further '='.
	translation := Translation{}
	lines := strings.Split(strings.ReplaceAll(strings.TrimRight(content, "\n"), "\r", ""), "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errors.ErrMalformedLine, line)
		}
		translation[key] = value
	}
	return translation, nil
}

// EncodeLanguage serializes a translation back to the representation used by
// the given pack format. JSON output is pretty-printed with 2-space indent;
// legacy output is one key=value line per entry with keys sorted.
func EncodeLanguage(translation Translation, packFormat int) (string, error) {
	if packFormat >= JSONFormatMin {
		data, err := json.MarshalIndent(translation, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding JSON language file: %w", err)
		}
		return string(data), nil
	}

	keys := make([]string, 0, len(translation))
	for key := range translation {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(translation[key])
		b.WriteByte('\n')
	}
	return b.String(), nil
}
