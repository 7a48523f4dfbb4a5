// Package git resolves a directory to its repository identity: the
// repository root, the current branch, and a display name.
//
// Every query shells out to the git CLI under a bounded timeout and is
// treated as advisory. Any failure mode (not a repository, missing
// directory, git not installed, timeout) collapses to "information
// unavailable" so callers always degrade to a defined fallback instead of
// aborting.
package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/Iron-Ham/tmux-peacock/internal/util"
)

// DefaultTimeout bounds every git subprocess invocation.
const DefaultTimeout = 5 * time.Second

// maxSubpathLen is the longest relative subpath shown in a pane title
// before head truncation kicks in.
const maxSubpathLen = 20

// CommandExecutor abstracts command execution for testability.
// Production code uses CLIExecutor, while tests inject mocks.
type CommandExecutor interface {
	// Output executes a command in dir and returns its stdout.
	Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
}

// CLIExecutor executes commands using os/exec.
type CLIExecutor struct{}

// NewCLIExecutor creates a new CLI command executor.
func NewCLIExecutor() *CLIExecutor {
	return &CLIExecutor{}
}

// Output executes a command in dir and returns its stdout.
func (e *CLIExecutor) Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.Output()
}

var _ CommandExecutor = (*CLIExecutor)(nil)

// Client queries repository identity for directories.
type Client struct {
	executor CommandExecutor
	timeout  time.Duration
}

// NewClient creates a Client with the given subprocess timeout.
// A timeout of 0 or less falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	return NewClientWithExecutor(timeout, NewCLIExecutor())
}

// NewClientWithExecutor creates a Client with a custom executor.
// This is primarily useful for testing.
func NewClientWithExecutor(timeout time.Duration, executor CommandExecutor) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{executor: executor, timeout: timeout}
}

// run executes a git query in dir and returns its trimmed stdout.
// ok=false covers non-zero exit, timeout, and a missing git binary alike.
func (c *Client) run(dir string, args ...string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	out, err := c.executor.Output(ctx, dir, "git", args...)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(out)), true
}

// Toplevel returns the root of the repository containing dir.
// ok=false if dir does not exist or is not inside a repository.
func (c *Client) Toplevel(dir string) (string, bool) {
	if dir == "" || !isDir(dir) {
		return "", false
	}
	root, ok := c.run(dir, "rev-parse", "--show-toplevel")
	if !ok || root == "" {
		return "", false
	}
	return root, true
}

// Branch returns the current branch name for dir. In a detached-HEAD state
// it falls back to the short commit SHA. ok=false if dir is not inside a
// repository or the query fails.
func (c *Client) Branch(dir string) (string, bool) {
	if dir == "" || !isDir(dir) {
		return "", false
	}
	branch, ok := c.run(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if !ok || branch == "" {
		return "", false
	}
	if branch == "HEAD" {
		if sha, ok := c.run(dir, "rev-parse", "--short", "HEAD"); ok && sha != "" {
			return sha, true
		}
	}
	return branch, true
}

// RepoName derives a display name for the repository rooted at root.
// Linked worktrees (a .git entry that is a file rather than a directory)
// are named after the worktree directory so each worktree keeps its own
// identity. Otherwise the name comes from the origin remote URL, falling
// back to the root directory's basename. Never fails.
func (c *Client) RepoName(dir, root string) string {
	if fi, err := os.Stat(filepath.Join(root, ".git")); err == nil && !fi.IsDir() {
		return filepath.Base(root)
	}

	if url, ok := c.run(dir, "remote", "get-url", "origin"); ok && url != "" {
		url = strings.TrimSuffix(url, "/")
		url = strings.TrimSuffix(url, ".git")
		if idx := strings.LastIndex(url, "/"); idx >= 0 {
			url = url[idx+1:]
		}
		if url != "" {
			return url
		}
	}

	return filepath.Base(root)
}

// WorktreeInfo returns the repository display name and dir's subpath
// relative to root. The subpath is empty when dir is the root itself or
// lies outside it, and is head-truncated when longer than 20 characters
// to keep pane titles short.
func (c *Client) WorktreeInfo(dir, root string) (name, subpath string) {
	name = c.RepoName(dir, root)

	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return name, ""
	}
	return name, util.TruncateHead(rel, maxSubpathLen)
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
