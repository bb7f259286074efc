package respack

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	rperrors "github.com/kosmolot/coloredsubs/pkg/respack/errors"
)

func TestApplyColorRulesLastMatchWins(t *testing.T) {
	translation := Translation{"subtitles.block.anvil.land": "Anvil lands"}
	rules := []ColorRule{
		{Prefix: "subtitles.", Color: "white"},
		{Prefix: "subtitles.block.", Color: "red"},
	}

	unresolved, err := ApplyColorRules(translation, rules)
	if err != nil {
		t.Fatalf("ApplyColorRules: %v", err)
	}
	if got, want := translation["subtitles.block.anvil.land"], "§cAnvil lands"; got != want {
		t.Errorf("value = %q, want %q (last matching rule must win)", got, want)
	}
	if len(unresolved) != 0 {
		t.Errorf("unresolved = %v, want empty", unresolved)
	}
}

func TestApplyColorRulesOrderBeatsSpecificity(t *testing.T) {
	// Same rules, reversed: the broad rule is last, so it wins even though
	// the specific one also matches. Precedence is positional, not by length.
	translation := Translation{"subtitles.block.anvil.land": "Anvil lands"}
	rules := []ColorRule{
		{Prefix: "subtitles.block.", Color: "red"},
		{Prefix: "subtitles.", Color: "white"},
	}

	if _, err := ApplyColorRules(translation, rules); err != nil {
		t.Fatalf("ApplyColorRules: %v", err)
	}
	if got, want := translation["subtitles.block.anvil.land"], "§fAnvil lands"; got != want {
		t.Errorf("value = %q, want %q", got, want)
	}
}

func TestApplyColorRulesOverrideAppendedAfterDefault(t *testing.T) {
	// A caller override with the identical prefix is appended after the
	// default list, so it takes effect under last-match-wins.
	translation := Translation{"subtitles.entity.cow.ambient": "Cow moos"}
	defaults := []ColorRule{{Prefix: "subtitles.entity.", Color: "yellow"}}
	override := ColorRule{Prefix: "subtitles.entity.", Color: "green"}

	if _, err := ApplyColorRules(translation, append(defaults, override)); err != nil {
		t.Fatalf("ApplyColorRules: %v", err)
	}
	if got, want := translation["subtitles.entity.cow.ambient"], "§aCow moos"; got != want {
		t.Errorf("value = %q, want %q (override must beat default)", got, want)
	}
}

func TestApplyColorRulesUnresolvedSubtitleKey(t *testing.T) {
	translation := Translation{
		"subtitles.entity.cow.ambient": "Cow moos",
		"gui.done":                     "Done",
	}

	unresolved, err := ApplyColorRules(translation, []ColorRule{{Prefix: "subtitles.block.", Color: "red"}})
	if err != nil {
		t.Fatalf("ApplyColorRules: %v", err)
	}

	if _, ok := unresolved["subtitles.entity.cow.ambient"]; !ok {
		t.Error("uncolored subtitle key missing from unresolved set")
	}
	if len(unresolved) != 1 {
		t.Errorf("unresolved = %v, want exactly one key", unresolved)
	}
	// Non-subtitle keys are never flagged and stay byte-identical.
	if _, ok := unresolved["gui.done"]; ok {
		t.Error("gui.done must not be flagged as unresolved")
	}
	if got := translation["gui.done"]; got != "Done" {
		t.Errorf("gui.done = %q, want untouched %q", got, "Done")
	}
	if got := translation["subtitles.entity.cow.ambient"]; got != "Cow moos" {
		t.Errorf("unresolved value = %q, want untouched %q", got, "Cow moos")
	}
}

func TestApplyColorRulesUnknownColor(t *testing.T) {
	translation := Translation{"subtitles.block.anvil.land": "Anvil lands"}
	rules := []ColorRule{{Prefix: "subtitles.", Color: "chartreuse"}}

	if _, err := ApplyColorRules(translation, rules); !errors.Is(err, rperrors.ErrUnknownColor) {
		t.Errorf("err = %v, want ErrUnknownColor", err)
	}
}

func TestParseColorRule(t *testing.T) {
	rule, err := ParseColorRule("subtitles.block.=red")
	if err != nil {
		t.Fatalf("ParseColorRule: %v", err)
	}
	if rule.Prefix != "subtitles.block." || rule.Color != "red" {
		t.Errorf("rule = %+v", rule)
	}

	for _, bad := range []string{"no-separator", "=red", "subtitles.=", ""} {
		if _, err := ParseColorRule(bad); !errors.Is(err, rperrors.ErrBadColorRule) {
			t.Errorf("ParseColorRule(%q) err = %v, want ErrBadColorRule", bad, err)
		}
	}
}

func TestLoadColorRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.json")
	content := `[["subtitles.block.", "gold"], ["subtitles.entity.", "yellow"]]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadColorRules(path)
	if err != nil {
		t.Fatalf("LoadColorRules: %v", err)
	}
	want := []ColorRule{
		{Prefix: "subtitles.block.", Color: "gold"},
		{Prefix: "subtitles.entity.", Color: "yellow"},
	}
	if len(rules) != len(want) {
		t.Fatalf("rules = %v, want %v", rules, want)
	}
	for i := range want {
		if rules[i] != want[i] {
			t.Errorf("rules[%d] = %+v, want %+v", i, rules[i], want[i])
		}
	}
}

func TestLoadColorRulesBadPair(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.json")
	if err := os.WriteFile(path, []byte(`[["only-prefix"]]`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadColorRules(path); !errors.Is(err, rperrors.ErrBadColorRule) {
		t.Errorf("err = %v, want ErrBadColorRule", err)
	}
}

func TestColorCodesCoverDefaultRules(t *testing.T) {
	// The shipped default rule file must only reference known colors.
	rules, err := LoadColorRules(filepath.Join("..", "..", "default_colors.json"))
	if err != nil {
		t.Fatalf("LoadColorRules: %v", err)
	}
	if len(rules) == 0 {
		t.Fatal("default rule file is empty")
	}
	for _, rule := range rules {
		if _, ok := ColorCodes[rule.Color]; !ok {
			t.Errorf("default rule %q references unknown color %q", rule.Prefix, rule.Color)
		}
	}
}
