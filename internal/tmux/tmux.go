// Package tmux provides helpers for invoking tmux and pushing resolved
// project colors into its pane and window styling options.
//
// tmux-peacock talks to the default tmux server of the attached session;
// all styling updates are best-effort and advisory. A failed set-option
// never fails the invocation, it only forgoes the visual update.
package tmux

import (
	"context"
	"os"
	"os/exec"
	"time"
)

// EnvVar is the environment marker tmux sets inside its sessions.
// Styling commands are skipped entirely when it is absent.
const EnvVar = "TMUX"

// optionTimeout bounds each set-option invocation.
const optionTimeout = 2 * time.Second

// InsideTmux reports whether the current process runs inside a tmux session.
func InsideTmux() bool {
	return os.Getenv(EnvVar) != ""
}

// CommandContext creates a context-aware exec.Cmd for tmux on the default server.
func CommandContext(ctx context.Context, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, "tmux", args...)
}

// Runner abstracts tmux invocation for testability.
type Runner interface {
	// Run executes a tmux command and returns its error.
	Run(ctx context.Context, args ...string) error
}

// CLIRunner executes tmux commands using os/exec.
type CLIRunner struct{}

// Run executes a tmux command and returns its error.
func (CLIRunner) Run(ctx context.Context, args ...string) error {
	return CommandContext(ctx, args...).Run()
}

var _ Runner = CLIRunner{}
