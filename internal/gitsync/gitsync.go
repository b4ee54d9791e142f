// Package gitsync updates a source checkout by syncing it with the upstream
// release branch. It is the install path used when the application is not
// running as a packaged binary.
package gitsync

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Install-phase errors for the source-checkout path.
var (
	ErrToolNotInstalled = errors.New("git is not installed")
	ErrNotARepository   = errors.New("not a git checkout")
	ErrSyncFailed       = errors.New("git sync failed")
)

// CommandRunner is an interface for running external commands.
// This allows for mocking in tests.
type CommandRunner interface {
	Run(name string, args ...string) ([]byte, error)
	RunInDir(dir, name string, args ...string) ([]byte, error)
}

// DefaultCommandRunner uses os/exec to run commands.
type DefaultCommandRunner struct{}

// Run executes a command in the current directory.
func (r *DefaultCommandRunner) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// RunInDir executes a command in the specified directory.
func (r *DefaultCommandRunner) RunInDir(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Syncer fetches and merges a fixed remote branch into a working copy.
type Syncer struct {
	runner CommandRunner
	dir    string // working copy location; empty means the process cwd
	remote string
	branch string
}

// NewSyncer creates a syncer for the checkout at dir tracking origin/branch.
func NewSyncer(dir, branch string) *Syncer {
	return &Syncer{
		runner: &DefaultCommandRunner{},
		dir:    dir,
		remote: "origin",
		branch: branch,
	}
}

// NewSyncerWithRunner creates a Syncer with a custom command runner (for testing).
func NewSyncerWithRunner(dir, branch string, runner CommandRunner) *Syncer {
	s := NewSyncer(dir, branch)
	s.runner = runner
	return s
}

// GitAvailable checks if git is available on the system.
func (s *Syncer) GitAvailable() bool {
	_, err := s.runner.Run("git", "--version")
	return err == nil
}

// IsRepository checks whether the working copy is a git checkout.
func (s *Syncer) IsRepository() bool {
	output, err := s.runner.RunInDir(s.dir, "git", "rev-parse", "--git-dir")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) != ""
}

// HasUncommittedChanges checks for uncommitted or unstaged changes.
// Used as a pre-sync warning; local edits may make the merge fail.
func (s *Syncer) HasUncommittedChanges() (bool, error) {
	output, err := s.runner.RunInDir(s.dir, "git", "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("git status failed: %w", err)
	}
	return strings.TrimSpace(string(output)) != "", nil
}

// Sync fetches the remote and merges the release branch into the working
// copy. On merge failure the working copy is left in whatever state git
// left it; no rollback is attempted.
func (s *Syncer) Sync() error {
	if !s.GitAvailable() {
		return ErrToolNotInstalled
	}
	if !s.IsRepository() {
		return ErrNotARepository
	}

	if output, err := s.runner.RunInDir(s.dir, "git", "fetch", s.remote); err != nil {
		return fmt.Errorf("%w: git fetch: %s", ErrSyncFailed, firstLine(output, err))
	}

	ref := s.remote + "/" + s.branch
	if output, err := s.runner.RunInDir(s.dir, "git", "merge", ref); err != nil {
		return fmt.Errorf("%w: git merge %s: %s", ErrSyncFailed, ref, firstLine(output, err))
	}

	return nil
}

// firstLine reduces noisy git output to something fit for an error message.
func firstLine(output []byte, err error) string {
	s := strings.TrimSpace(string(output))
	if s == "" {
		return err.Error()
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
