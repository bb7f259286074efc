package pkg

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/kosmolot/coloredsubs/internal/fetch"
	"github.com/kosmolot/coloredsubs/pkg/logging"
	"github.com/kosmolot/coloredsubs/pkg/respack"
)

// RunOptions is the full configuration of one builder run.
type RunOptions struct {
	// Versions are the game versions to build packs for. At least one.
	Versions []string

	// Colors are extra "prefix=color" rules appended after the defaults,
	// so they win ties under last-match-wins.
	Colors []string

	// ColorsFile is the JSON file of default [prefix, color] pairs.
	ColorsFile string

	OutputDir string
	CacheDir  string

	// Description overrides the pack.mcmeta description.
	Description string

	// IconPath, when set, names a PNG to embed as pack.png.
	IconPath string

	// Dist, when set, bundles the built packs (tar.gz or tar.bz2).
	Dist string
}

// BuildPacksWithLogLevel runs a full build with explicit log level control.
//
// Level resolution: CLI value, then COLOREDSUBS_LOG_LEVEL, then "info".
// Every fatal condition is logged and terminates the process; unresolved
// subtitle keys only warn.
func BuildPacksWithLogLevel(opts RunOptions, cliLogLevel string) {
	logLevel := cliLogLevel
	logSource := "CLI --log-level"
	if logLevel == "" {
		logLevel = logging.GetLogLevel()
		logSource = "COLOREDSUBS_LOG_LEVEL"
	}

	logger := logging.NewLogger("coloredsubs-builder", logLevel, logging.OpenLogOutput())

	logger.Info("🎨🎨🎨 Hello from the ColoredSubtitles builder 🎨🎨🎨")
	logger.Debug("Log level", "level", logLevel, "source", logSource)

	doBuild(logger, opts)
}

// doBuild performs the actual build run.
func doBuild(logger hclog.Logger, opts RunOptions) {
	if len(opts.Versions) == 0 {
		logger.Error("❌ At least one game version must be requested")
		os.Exit(1)
	}

	// 📁 Bootstrap the cache and output directories.
	for _, dir := range []string{opts.CacheDir, opts.OutputDir} {
		logger.Debug("📁 Ensuring directory exists", "dir", dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Error("❌ Failed to create directory", "error", err, "dir", dir)
			os.Exit(1)
		}
	}

	// Validate the dist format before doing any work.
	var distName string
	if opts.Dist != "" {
		name, err := respack.DistFileName(opts.Dist)
		if err != nil {
			logger.Error("❌ Invalid dist format", "error", err)
			os.Exit(1)
		}
		distName = name
	}

	// 🗺️ Default color rules, then CLI overrides appended after them.
	rules, err := respack.LoadColorRules(opts.ColorsFile)
	if err != nil {
		logger.Error("❌ Failed to load default color rules", "error", err, "path", opts.ColorsFile)
		os.Exit(1)
	}
	for _, flag := range opts.Colors {
		rule, err := respack.ParseColorRule(flag)
		if err != nil {
			logger.Error("❌ Invalid color rule", "error", err)
			os.Exit(1)
		}
		rules = append(rules, rule)
	}
	logger.Debug("🗺️ Color rules loaded", "defaults", opts.ColorsFile, "overrides", len(opts.Colors), "total", len(rules))

	// 🖼️ Optional pack artwork.
	var icon []byte
	if opts.IconPath != "" {
		icon, err = respack.LoadPackIcon(opts.IconPath)
		if err != nil {
			logger.Error("❌ Failed to load pack icon", "error", err, "path", opts.IconPath)
			os.Exit(1)
		}
		logger.Debug("🖼️ Pack icon ready", "path", opts.IconPath, "size", len(icon))
	}

	client := fetch.NewClient(opts.CacheDir, logger)
	buildOpts := respack.BuildOptions{Description: opts.Description, Icon: icon}

	// Versions are fully independent of one another and built in order.
	var packPaths []string
	for _, version := range opts.Versions {
		assets, err := client.LanguageAssets(version)
		if err != nil {
			logger.Error("❌ Failed to retrieve language assets", "error", err, "version", version)
			os.Exit(1)
		}

		pack, err := respack.BuildPack(logger, version, assets, rules, buildOpts)
		if err != nil {
			logger.Error("❌ Failed to build pack", "error", err, "version", version)
			os.Exit(1)
		}

		outPath, err := pack.WriteFile(opts.OutputDir)
		if err != nil {
			logger.Error("❌ Failed to write pack archive", "error", err, "version", version)
			os.Exit(1)
		}
		logger.Info("💾 Wrote pack archive", "version", version, "path", outPath)
		packPaths = append(packPaths, outPath)
	}

	// 📦 Optional release bundle of everything just built.
	if distName != "" {
		distPath := filepath.Join(opts.OutputDir, distName)
		out, err := os.Create(distPath)
		if err != nil {
			logger.Error("❌ Failed to create dist bundle", "error", err, "path", distPath)
			os.Exit(1)
		}
		if err := respack.BundlePacks(out, opts.Dist, packPaths); err != nil {
			out.Close()
			os.Remove(distPath)
			logger.Error("❌ Failed to write dist bundle", "error", err, "path", distPath)
			os.Exit(1)
		}
		if err := out.Close(); err != nil {
			logger.Error("❌ Failed to close dist bundle", "error", err, "path", distPath)
			os.Exit(1)
		}
		logger.Info("📦 Wrote dist bundle", "path", distPath, "packs", len(packPaths))
	}

	logger.Info("✅ All packs generated", "count", len(packPaths))
}
