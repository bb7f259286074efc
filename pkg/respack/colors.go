package respack

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kosmolot/coloredsubs/pkg/respack/errors"
)

// SubtitlePrefix marks the translation keys that carry spoken/sound
// subtitles. A subtitle key that no rule colors is reported as unresolved.
const SubtitlePrefix = "subtitles."

// ColorCodes maps color names to the game's two-character formatting codes.
var ColorCodes = map[string]string{
	"dark_red":     "§4",
	"red":          "§c",
	"gold":         "§6",
	"yellow":       "§e",
	"dark_green":   "§2",
	"green":        "§a",
	"aqua":         "§b",
	"dark_aqua":    "§3",
	"dark_blue":    "§1",
	"blue":         "§9",
	"light_purple": "§d",
	"dark_purple":  "§5",
	"white":        "§f",
	"gray":         "§7",
	"dark_gray":    "§8",
	"black":        "§0",
	"reset":        "§r",
	"bold":         "§l",
	"italic":       "§o",
	"underline":    "§n",
	"strike":       "§m",
	"zalgo":        "§k",
}

// ColorRule colors every translation key starting with Prefix using the
// named color. Rules are evaluated in order and the last match wins, so
// appending a rule overrides earlier ones with the same or broader prefix.
type ColorRule struct {
	Prefix string
	Color  string
}

// ParseColorRule parses a "prefix=color" flag value into a rule.
func ParseColorRule(s string) (ColorRule, error) {
	prefix, color, ok := strings.Cut(s, "=")
	if !ok || prefix == "" || color == "" {
		return ColorRule{}, fmt.Errorf("%w: %q (want prefix=color)", errors.ErrBadColorRule, s)
	}
	return ColorRule{Prefix: prefix, Color: color}, nil
}

// LoadColorRules reads the default rule file: a JSON array of
// [prefix, color] pairs, kept in file order.
func LoadColorRules(path string) ([]ColorRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading color rules: %w", err)
	}
	var pairs [][]string
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("parsing color rules %s: %w", path, err)
	}
	rules := make([]ColorRule, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: %v in %s", errors.ErrBadColorRule, pair, path)
		}
		rules = append(rules, ColorRule{Prefix: pair[0], Color: pair[1]})
	}
	return rules, nil
}

// ApplyColorRules colors a translation in place. For every key the rules are
// scanned in order and the last rule whose prefix matches the key decides the
// color; the resolved code is prepended to the existing value. Subtitle keys
// that match no rule are returned as the unresolved set. A rule naming a
// color absent from ColorCodes is a configuration defect and fails the build.
func ApplyColorRules(translation Translation, rules []ColorRule) (map[string]struct{}, error) {
	unresolved := map[string]struct{}{}
	for key, value := range translation {
		color := ""
		for _, rule := range rules {
			if strings.HasPrefix(key, rule.Prefix) {
				color = rule.Color
			}
		}
		if color == "" {
			if strings.HasPrefix(key, SubtitlePrefix) {
				unresolved[key] = struct{}{}
			}
			continue
		}
		code, ok := ColorCodes[color]
		if !ok {
			return nil, fmt.Errorf("%w: %s (rule for %s)", errors.ErrUnknownColor, color, key)
		}
		translation[key] = code + value
	}
	return unresolved, nil
}
