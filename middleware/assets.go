package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Assets whose URLs carry a content hash. Paths are relative to the static dir.
var versionedAssets = []string{
	"css/style.css",
	"js/app.js",
	"images/favicon.svg",
}

var (
	assetVersions = make(map[string]string)
	assetMu       sync.RWMutex
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	assetMu.Lock()
	defer assetMu.Unlock()

	for _, asset := range versionedAssets {
		version := computeFileHash(filepath.Join(staticDir, asset))
		if version == "" {
			version = "1"
		}
		assetVersions[asset] = version
		log.Printf("[INFO] Asset version initialized: %s (%s)", asset, version)
	}
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the hash of asset, or "1" when it was never hashed
func AssetVersion(asset string) string {
	assetMu.RLock()
	defer assetMu.RUnlock()
	if version, ok := assetVersions[asset]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the public URL of asset with its version query
func AssetURL(asset string) string {
	return "/static/" + asset + "?v=" + AssetVersion(asset)
}
