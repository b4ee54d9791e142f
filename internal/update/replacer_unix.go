//go:build !windows

package update

import (
	"os"
	"os/exec"
	"syscall"
)

const helperSuffix = ".sh"

func helperScript(newBinary, currentExe string) string {
	return shellScript(newBinary, currentExe)
}

// launchHelper starts the helper in its own session so it survives the
// caller's exit.
func launchHelper(path string) error {
	if err := os.Chmod(path, 0o755); err != nil {
		return err
	}

	cmd := exec.Command("/bin/sh", path)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd.Start()
}
