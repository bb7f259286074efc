// Package fetch retrieves per-version language assets from the game's
// official distribution: the master version manifest, the version manifest,
// the client jar and the loose asset index. Downloads carrying a known
// content hash are cached on disk under that hash, so rebuilding a version
// touches the network only for content it has never seen.
package fetch

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/kosmolot/coloredsubs/pkg/respack"
	"github.com/kosmolot/coloredsubs/pkg/respack/errors"
)

// Default endpoints of the official distribution.
const (
	DefaultManifestURL  = "https://launchermeta.mojang.com/mc/game/version_manifest.json"
	DefaultResourceBase = "http://resources.download.minecraft.net"
)

// langAssetPrefix selects language entries inside the client jar.
const langAssetPrefix = "assets/minecraft/lang"

// langObjectPrefix selects language entries in the loose asset index.
const langObjectPrefix = "minecraft/lang/"

// Client downloads game assets with a content-addressed disk cache.
type Client struct {
	// ManifestURL and ResourceBase default to the official endpoints and
	// exist so tests can point the client at a local server.
	ManifestURL  string
	ResourceBase string

	HTTP     *http.Client
	CacheDir string

	logger hclog.Logger
}

// NewClient creates a fetch client caching into cacheDir.
func NewClient(cacheDir string, logger hclog.Logger) *Client {
	return &Client{
		ManifestURL:  DefaultManifestURL,
		ResourceBase: DefaultResourceBase,
		HTTP:         http.DefaultClient,
		CacheDir:     cacheDir,
		logger:       logger,
	}
}

// Download fetches a URL. When sha1 is non-empty the cache file named by the
// hash is consulted first and populated after a successful download; the
// cache key is the content hash, so hits never need revalidation.
func (c *Client) Download(url, sha1 string) ([]byte, error) {
	var cachePath string
	if sha1 != "" {
		cachePath = filepath.Join(c.CacheDir, sha1)
		if content, err := os.ReadFile(cachePath); err == nil {
			c.logger.Debug("💾 Cache hit", "sha1", sha1)
			return content, nil
		}
	}

	c.logger.Info("⬇️ Downloading asset", "url", url)
	resp, err := c.HTTP.Get(url)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading %s: unexpected status %s", url, resp.Status)
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}

	if cachePath != "" {
		if err := os.WriteFile(cachePath, content, 0644); err != nil {
			return nil, fmt.Errorf("caching %s: %w", sha1, err)
		}
	}
	return content, nil
}

func (c *Client) downloadJSON(url, sha1 string, v any) error {
	content, err := c.Download(url, sha1)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("parsing %s: %w", url, err)
	}
	return nil
}

// LanguageAssets returns every language file of a game version: the ones
// bundled in the client jar plus the loose ones from the asset index. Asset
// paths are jar-relative with the leading "assets/" stripped, matching the
// layout the pack builder recreates.
func (c *Client) LanguageAssets(version string) ([]respack.LanguageAsset, error) {
	c.logger.Info("🌐 Downloading master version manifest", "url", c.ManifestURL)
	var master masterManifest
	if err := c.downloadJSON(c.ManifestURL, "", &master); err != nil {
		return nil, err
	}

	c.logger.Info("🔍 Finding version in master manifest", "version", version)
	manifestURL := ""
	for _, entry := range master.Versions {
		if entry.ID == version {
			manifestURL = entry.URL
			break
		}
	}
	if manifestURL == "" {
		return nil, fmt.Errorf("%w: %s", errors.ErrVersionNotFound, version)
	}

	c.logger.Info("📜 Downloading version manifest", "version", version)
	var manifest versionManifest
	if err := c.downloadJSON(manifestURL, "", &manifest); err != nil {
		return nil, err
	}

	var assets []respack.LanguageAsset

	// Language files bundled in the client jar.
	jarData, err := c.Download(manifest.Downloads.Client.URL, manifest.Downloads.Client.SHA1)
	if err != nil {
		return nil, err
	}
	jar, err := zip.NewReader(bytes.NewReader(jarData), int64(len(jarData)))
	if err != nil {
		return nil, fmt.Errorf("opening client jar for %s: %w", version, err)
	}
	for _, file := range jar.File {
		if !strings.HasPrefix(file.Name, langAssetPrefix) || file.FileInfo().IsDir() {
			continue
		}
		c.logger.Debug("🗣️ Found lang asset in jar", "path", file.Name)
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("opening jar entry %s: %w", file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading jar entry %s: %w", file.Name, err)
		}
		assets = append(assets, respack.LanguageAsset{
			Path:    strings.TrimPrefix(file.Name, "assets/"),
			Content: string(content),
		})
	}

	// Loose language files from the asset index.
	var index assetIndex
	if err := c.downloadJSON(manifest.AssetIndex.URL, manifest.AssetIndex.SHA1, &index); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(index.Objects))
	for key := range index.Objects {
		if strings.HasPrefix(key, langObjectPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		object := index.Objects[key]
		c.logger.Info("🗣️ Retrieving language", "version", version, "path", key)
		url := fmt.Sprintf("%s/%s/%s", c.ResourceBase, object.Hash[:2], object.Hash)
		content, err := c.Download(url, object.Hash)
		if err != nil {
			return nil, err
		}
		assets = append(assets, respack.LanguageAsset{Path: key, Content: string(content)})
	}

	c.logger.Info("✅ Languages downloaded", "version", version, "count", len(assets))
	return assets, nil
}
