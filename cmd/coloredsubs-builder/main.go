package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kosmolot/coloredsubs/pkg"
)

const version = "1.0.0"

var (
	releases    []string
	colorFlags  []string
	logLevel    string
	versionFlag bool
	rootCmd     *cobra.Command
)

func getBuilderTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd = &cobra.Command{
		Use:   "coloredsubs-builder",
		Short: "Build ColoredSubtitles resource packs",
		Long:  `Build ColoredSubtitles resource packs`,
		Run:   buildPacks,
	}

	rootCmd.Flags().StringArrayVarP(&releases, "release", "r", nil, "Game version to build a pack for (repeatable, required)")
	rootCmd.Flags().StringArrayVarP(&colorFlags, "color", "c", nil, "Extra color rule as prefix=color (repeatable, overrides defaults)")
	rootCmd.Flags().String("colors-file", "default_colors.json", "JSON file of default [prefix, color] pairs")
	rootCmd.Flags().StringP("output-dir", "o", "output", "Directory for generated pack archives")
	rootCmd.Flags().String("cache-dir", "cache", "Directory for the content-addressed download cache")
	rootCmd.Flags().String("description", "", "pack.mcmeta description (default \"By Kosmolot\")")
	rootCmd.Flags().String("icon", "", "PNG to embed as pack.png (scaled to 128x128)")
	rootCmd.Flags().String("dist", "", "Bundle built packs as tar.gz or tar.bz2")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	if err := rootCmd.MarkFlagRequired("release"); err != nil {
		panic(err)
	}

	for _, name := range []string{"colors-file", "output-dir", "cache-dir", "description", "icon", "dist"} {
		if err := viper.BindPFlag(name, rootCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig lets COLOREDSUBS_* environment variables stand in for flags,
// e.g. COLOREDSUBS_CACHE_DIR or COLOREDSUBS_OUTPUT_DIR.
func initConfig() {
	viper.SetEnvPrefix("COLOREDSUBS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("coloredsubs-builder %s\n", version)
		fmt.Printf("Built: %s\n", getBuilderTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildPacks(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("coloredsubs-builder %s\n", version)
		fmt.Printf("Built: %s\n", getBuilderTimestamp())
		return
	}

	pkg.BuildPacksWithLogLevel(pkg.RunOptions{
		Versions:    releases,
		Colors:      colorFlags,
		ColorsFile:  viper.GetString("colors-file"),
		OutputDir:   viper.GetString("output-dir"),
		CacheDir:    viper.GetString("cache-dir"),
		Description: viper.GetString("description"),
		IconPath:    viper.GetString("icon"),
		Dist:        viper.GetString("dist"),
	}, logLevel)
}
