package respack

import (
	"encoding/json"
	"fmt"
	"path"
	"sort"

	"github.com/hashicorp/go-hclog"
)

// DefaultDescription is the pack.mcmeta description used when none is given.
const DefaultDescription = "By Kosmolot"

// PackEntry is one file inside the output archive.
type PackEntry struct {
	Path string
	Data []byte
}

// Pack is a fully assembled resource pack for a single game version: the
// metadata entry plus one transformed language file per input asset. It is
// built in memory; archive serialization lives in archive.go.
type Pack struct {
	Version string
	Format  int
	Entries []PackEntry
}

// BuildOptions tunes pack assembly.
type BuildOptions struct {
	// Description overrides DefaultDescription in pack.mcmeta.
	Description string

	// Icon, when non-nil, is stored verbatim as pack.png.
	Icon []byte
}

type packMeta struct {
	Pack packMetaSection `json:"pack"`
}

type packMetaSection struct {
	PackFormat  int    `json:"pack_format"`
	Description string `json:"description"`
}

// BuildPack assembles the resource pack for one game version.
//
// It resolves the pack format, writes pack.mcmeta (and pack.png when an icon
// is supplied), then for every language asset: decode → apply color rules →
// encode → store under assets/<original path>. Subtitle keys no rule colored
// are deduplicated across the version's assets and reported as warnings once
// the version is done; they never fail the build. Configuration errors
// (unresolvable version, unknown color, malformed legacy line) do.
func BuildPack(logger hclog.Logger, version string, assets []LanguageAsset, rules []ColorRule, opts BuildOptions) (*Pack, error) {
	logger.Info("🎨 Generating pack", "version", version)

	packFormat, err := ResolveFormat(version)
	if err != nil {
		return nil, err
	}
	logger.Info("🗺️ Resolved pack format", "version", version, "format", packFormat)

	description := opts.Description
	if description == "" {
		description = DefaultDescription
	}
	meta, err := json.Marshal(packMeta{Pack: packMetaSection{PackFormat: packFormat, Description: description}})
	if err != nil {
		return nil, fmt.Errorf("encoding pack.mcmeta: %w", err)
	}

	pack := &Pack{Version: version, Format: packFormat}
	pack.Entries = append(pack.Entries, PackEntry{Path: "pack.mcmeta", Data: meta})
	if opts.Icon != nil {
		pack.Entries = append(pack.Entries, PackEntry{Path: "pack.png", Data: opts.Icon})
	}

	// One unresolved set per version, shared across its assets.
	unresolved := map[string]struct{}{}

	for _, asset := range assets {
		logger.Debug("🗣️ Mapping language file", "version", version, "path", asset.Path)

		translation, err := DecodeLanguage(asset.Content, packFormat)
		if err != nil {
			return nil, fmt.Errorf("language file %s: %w", asset.Path, err)
		}

		missing, err := ApplyColorRules(translation, rules)
		if err != nil {
			return nil, fmt.Errorf("language file %s: %w", asset.Path, err)
		}
		for key := range missing {
			unresolved[key] = struct{}{}
		}

		encoded, err := EncodeLanguage(translation, packFormat)
		if err != nil {
			return nil, fmt.Errorf("language file %s: %w", asset.Path, err)
		}

		pack.Entries = append(pack.Entries, PackEntry{
			Path: path.Join("assets", asset.Path),
			Data: []byte(encoded),
		})
	}

	keys := make([]string, 0, len(unresolved))
	for key := range unresolved {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		logger.Warn("⚠️ No color code found", "key", key)
	}

	logger.Info("✅ Generated pack", "version", version, "format", packFormat,
		"languages", len(assets), "unresolved", len(keys))
	return pack, nil
}
