package update

import (
	"fmt"
	"os"
)

// Replacer swaps the running executable for a downloaded binary.
//
// A process cannot safely overwrite its own backing file while it runs, so
// the swap is delegated to a small generated helper script launched as a
// detached process. The helper sleeps until the caller has exited and
// released the executable, copies the new binary over the old path, removes
// the downloaded temp file, relaunches the executable, and deletes itself.
// The caller must terminate immediately after InstallAndRestart returns;
// nothing waits on the helper, and a failure inside it is unobservable.
type Replacer struct{}

// NewReplacer creates a replacer.
func NewReplacer() *Replacer {
	return &Replacer{}
}

// InstallAndRestart writes the platform helper script and launches it
// detached. It returns once the helper has started; it does not wait for
// the swap. Failures to write or start the helper surface as
// ErrInstallFailed.
func (r *Replacer) InstallAndRestart(newBinary string, ctx ExecutionContext) error {
	script := helperScript(newBinary, ctx.ExecutablePath)

	f, err := os.CreateTemp("", "worklogger-swap-*"+helperSuffix)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInstallFailed, err)
	}
	path := f.Name()

	if _, err := f.WriteString(script); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("%w: %v", ErrInstallFailed, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("%w: %v", ErrInstallFailed, err)
	}

	if err := launchHelper(path); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("%w: %v", ErrInstallFailed, err)
	}

	return nil
}

// shellScript renders the POSIX helper. Step order matters: wait for the
// caller to exit, swap, restore the executable bit, drop the temp artifact,
// relaunch, self-delete.
func shellScript(newBinary, currentExe string) string {
	return fmt.Sprintf(`#!/bin/sh
sleep 2
cp %q %q
chmod +x %q
rm %q
%q &
rm -- "$0"
`, newBinary, currentExe, currentExe, newBinary, currentExe)
}

// batchScript renders the Windows helper. Same steps as the shell variant
// minus the permission restore, which Windows does not need.
func batchScript(newBinary, currentExe string) string {
	return fmt.Sprintf("@echo off\r\n"+
		"timeout /t 2 /nobreak > nul\r\n"+
		"copy /y \"%s\" \"%s\"\r\n"+
		"del \"%s\"\r\n"+
		"start \"\" \"%s\"\r\n"+
		"del \"%%~f0\"\r\n",
		newBinary, currentExe, newBinary, currentExe)
}
