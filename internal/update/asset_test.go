package update

import (
	"testing"
)

func releaseAssets() []Asset {
	return []Asset{
		{Name: "app-windows.exe", DownloadURL: "https://example.com/app-windows.exe"},
		{Name: "app-macos.tar.gz", DownloadURL: "https://example.com/app-macos.tar.gz"},
		{Name: "app-linux.tar.gz", DownloadURL: "https://example.com/app-linux.tar.gz"},
		{Name: SourceArchiveName, ArchiveURL: "https://example.com/zipball"},
	}
}

func TestSelectAsset(t *testing.T) {
	tests := []struct {
		name   string
		assets []Asset
		ctx    ExecutionContext
		want   string // expected asset name, "" for nil
	}{
		{
			name:   "packaged windows picks exe",
			assets: releaseAssets(),
			ctx:    ExecutionContext{Packaged: true, OS: "windows"},
			want:   "app-windows.exe",
		},
		{
			name:   "packaged macos matches substring",
			assets: releaseAssets(),
			ctx:    ExecutionContext{Packaged: true, OS: "darwin"},
			want:   "app-macos.tar.gz",
		},
		{
			name:   "packaged linux matches substring",
			assets: releaseAssets(),
			ctx:    ExecutionContext{Packaged: true, OS: "linux"},
			want:   "app-linux.tar.gz",
		},
		{
			name:   "darwin matching is case-insensitive",
			assets: []Asset{{Name: "App-MacOS.zip"}},
			ctx:    ExecutionContext{Packaged: true, OS: "darwin"},
			want:   "App-MacOS.zip",
		},
		{
			name:   "darwin substring accepted too",
			assets: []Asset{{Name: "app-darwin-arm64.tar.gz"}},
			ctx:    ExecutionContext{Packaged: true, OS: "darwin"},
			want:   "app-darwin-arm64.tar.gz",
		},
		{
			name: "linux skips cross-listed exe",
			assets: []Asset{
				{Name: "app-linux.exe"},
				{Name: "app-linux.tar.gz"},
			},
			ctx:  ExecutionContext{Packaged: true, OS: "linux"},
			want: "app-linux.tar.gz",
		},
		{
			name:   "not packaged falls back to source archive",
			assets: releaseAssets(),
			ctx:    ExecutionContext{Packaged: false, OS: "linux"},
			want:   SourceArchiveName,
		},
		{
			name:   "not packaged on windows also picks source archive",
			assets: releaseAssets(),
			ctx:    ExecutionContext{Packaged: false, OS: "windows"},
			want:   SourceArchiveName,
		},
		{
			name: "packaged with no platform match falls back to source archive",
			assets: []Asset{
				{Name: "app-windows.exe"},
				{Name: SourceArchiveName, ArchiveURL: "https://example.com/zipball"},
			},
			ctx:  ExecutionContext{Packaged: true, OS: "linux"},
			want: SourceArchiveName,
		},
		{
			name:   "no match at all",
			assets: []Asset{{Name: "checksums.txt"}},
			ctx:    ExecutionContext{Packaged: true, OS: "linux"},
			want:   "",
		},
		{
			name:   "empty asset list",
			assets: nil,
			ctx:    ExecutionContext{Packaged: true, OS: "windows"},
			want:   "",
		},
		{
			name: "first match wins",
			assets: []Asset{
				{Name: "a-linux.tar.gz"},
				{Name: "b-linux.tar.gz"},
			},
			ctx:  ExecutionContext{Packaged: true, OS: "linux"},
			want: "a-linux.tar.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectAsset(tt.assets, tt.ctx)
			if tt.want == "" {
				if got != nil {
					t.Errorf("SelectAsset() = %q, want nil", got.Name)
				}
				return
			}
			if got == nil {
				t.Fatalf("SelectAsset() = nil, want %q", tt.want)
			}
			if got.Name != tt.want {
				t.Errorf("SelectAsset() = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestAssetURL(t *testing.T) {
	direct := Asset{Name: "app-linux.tar.gz", DownloadURL: "https://example.com/direct"}
	if direct.URL() != "https://example.com/direct" {
		t.Errorf("URL() = %s, want direct URL", direct.URL())
	}

	source := Asset{Name: SourceArchiveName, ArchiveURL: "https://example.com/zipball"}
	if source.URL() != "https://example.com/zipball" {
		t.Errorf("URL() = %s, want archive URL", source.URL())
	}
}
