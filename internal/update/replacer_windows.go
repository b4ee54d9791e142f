//go:build windows

package update

import (
	"os/exec"
	"syscall"
)

const helperSuffix = ".bat"

// CREATE_NO_WINDOW keeps the batch helper from flashing a console.
const createNoWindow = 0x08000000

func helperScript(newBinary, currentExe string) string {
	return batchScript(newBinary, currentExe)
}

func launchHelper(path string) error {
	cmd := exec.Command("cmd.exe", "/c", path)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: createNoWindow,
	}
	return cmd.Start()
}
