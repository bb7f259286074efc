package fetch

// masterManifest is the launcher's master version manifest.
type masterManifest struct {
	Versions []masterManifestEntry `json:"versions"`
}

type masterManifestEntry struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// versionManifest is the per-version manifest referenced from the master.
type versionManifest struct {
	Downloads struct {
		Client manifestDownload `json:"client"`
	} `json:"downloads"`
	AssetIndex manifestDownload `json:"assetIndex"`
}

type manifestDownload struct {
	URL  string `json:"url"`
	SHA1 string `json:"sha1"`
}

// assetIndex lists the loose assets of a version by content hash.
type assetIndex struct {
	Objects map[string]assetObject `json:"objects"`
}

type assetObject struct {
	Hash string `json:"hash"`
}
