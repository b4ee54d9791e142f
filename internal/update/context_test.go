package update

import (
	"path/filepath"
	"testing"
)

func TestIsPackagedBinary(t *testing.T) {
	tests := []struct {
		name string
		exe  string
		want bool
	}{
		{
			name: "installed binary",
			exe:  "/usr/local/bin/worklogger",
			want: true,
		},
		{
			name: "go run scratch build",
			exe:  filepath.Join("/tmp", "go-build2847563921", "b001", "exe", "worklogger"),
			want: false,
		},
		{
			name: "unknown executable path",
			exe:  "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPackagedBinary(tt.exe); got != tt.want {
				t.Errorf("isPackagedBinary(%q) = %v, want %v", tt.exe, got, tt.want)
			}
		})
	}
}

func TestDetectContext(t *testing.T) {
	ctx := DetectContext()

	if ctx.OS == "" {
		t.Error("OS not populated")
	}
	if ctx.ExecutablePath == "" {
		t.Error("ExecutablePath not populated")
	}
}
