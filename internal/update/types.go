package update

import (
	"fmt"
	"strings"
)

// Release describes the latest published release as reported by the feed.
// The tag has its leading "v" already stripped.
type Release struct {
	TagName string
	Notes   string
	Assets  []Asset
}

// Asset is a single downloadable file attached to a release.
// ArchiveURL is set only on the synthetic source-archive entry.
type Asset struct {
	Name        string `json:"name" yaml:"name"`
	DownloadURL string `json:"download_url" yaml:"download_url"`
	ArchiveURL  string `json:"archive_url,omitempty" yaml:"archive_url,omitempty"`
}

// URL returns the address to download this asset from.
func (a *Asset) URL() string {
	if a.ArchiveURL != "" {
		return a.ArchiveURL
	}
	return a.DownloadURL
}

// Decision is the outcome of a single update check.
type Decision struct {
	Available     bool   `json:"available" yaml:"available"`
	LatestVersion string `json:"latest_version" yaml:"latest_version"`
	ChosenAsset   *Asset `json:"chosen_asset,omitempty" yaml:"chosen_asset,omitempty"`
	Notes         string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// String renders the decision for human-readable output.
func (d *Decision) String() string {
	if !d.Available {
		return fmt.Sprintf("Already up to date (latest release: %s)", d.LatestVersion)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Update available: %s", d.LatestVersion)
	if d.ChosenAsset != nil {
		fmt.Fprintf(&b, "\nAsset: %s", d.ChosenAsset.Name)
	} else {
		b.WriteString("\nNo automatic artifact for this platform; update manually.")
	}
	if d.Notes != "" {
		fmt.Fprintf(&b, "\n\nRelease notes:\n%s", d.Notes)
	}
	return b.String()
}

// Feed fetches latest-release metadata from the remote registry.
type Feed interface {
	FetchLatest() (*Release, error)
}

// Fetcher streams a release artifact to local temporary storage.
type Fetcher interface {
	Download(url string, onProgress func(percent int)) (string, error)
}

// Installer replaces the running executable with a downloaded binary
// and restarts it.
type Installer interface {
	InstallAndRestart(newBinary string, ctx ExecutionContext) error
}

// Syncer brings a source checkout up to date in place.
type Syncer interface {
	// HasUncommittedChanges reports whether the checkout has local edits
	// that could make the sync fail.
	HasUncommittedChanges() (bool, error)
	Sync() error
}
