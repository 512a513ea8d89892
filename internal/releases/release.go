package releases

import "strings"

// Asset is a single downloadable file attached to a release.
type Asset struct {
	Name        string
	DownloadURL string
}

// Release is a tagged publication and its assets in the order the API returned them.
type Release struct {
	Tag    string
	Assets []Asset
}

// SelectAsset returns the first asset whose name contains every pattern
// (case-sensitive). With no patterns the first asset is returned.
// There is no ranking: callers that need to tell a Windows installer from a
// macOS image pass more patterns, e.g. "Windows", ".exe".
func SelectAsset(release Release, patterns ...string) (Asset, bool) {
	for _, asset := range release.Assets {
		if matchesAll(asset.Name, patterns) {
			return asset, true
		}
	}
	return Asset{}, false
}

// FindAsset scans releases in order, skipping those whose tag does not contain
// tagContains, and returns the first release that has a matching asset.
// An empty tagContains accepts every release.
func FindAsset(releases []Release, tagContains string, patterns ...string) (Release, Asset, bool) {
	for _, release := range releases {
		if !strings.Contains(release.Tag, tagContains) {
			continue
		}
		if asset, ok := SelectAsset(release, patterns...); ok {
			return release, asset, true
		}
	}
	return Release{}, Asset{}, false
}

func matchesAll(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if !strings.Contains(name, pattern) {
			return false
		}
	}
	return true
}
