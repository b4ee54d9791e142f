package update

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ExecutionContext captures how the current process is running. It is built
// once at startup and passed around read-only; nothing mutates it afterwards.
type ExecutionContext struct {
	Packaged       bool   // true when running as an installed binary
	ExecutablePath string // resolved path of the running executable
	OS             string // runtime.GOOS value: windows, darwin, linux
}

// DetectContext inspects the running process.
func DetectContext() ExecutionContext {
	exe, err := os.Executable()
	if err != nil {
		exe = ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return ExecutionContext{
		Packaged:       isPackagedBinary(exe),
		ExecutablePath: exe,
		OS:             runtime.GOOS,
	}
}

// isPackagedBinary reports whether the executable is an installed binary
// rather than a "go run" scratch build under the build cache.
func isPackagedBinary(exe string) bool {
	if exe == "" {
		return false
	}
	return !strings.Contains(exe, string(filepath.Separator)+"go-build")
}
