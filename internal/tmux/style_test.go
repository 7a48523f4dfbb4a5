package tmux

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Iron-Ham/tmux-peacock/internal/logging"
)

// fakeRunner records every tmux invocation.
type fakeRunner struct {
	calls [][]string
	err   error
}

func (r *fakeRunner) Run(_ context.Context, args ...string) error {
	r.calls = append(r.calls, args)
	return r.err
}

func callStrings(r *fakeRunner) []string {
	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, strings.Join(c, " "))
	}
	return out
}

func TestApply(t *testing.T) {
	runner := &fakeRunner{}
	s := NewStylerWithRunner(runner, logging.NopLogger())

	if err := s.Apply("#d86826", DefaultFactors()); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := []string{
		"set-option pane-border-style fg=#813e16",
		"set-option pane-active-border-style fg=#ac531e",
		"set-option window-style bg=#2c231e",
		"set-option window-active-style bg=default",
	}
	got := callStrings(runner)
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestApplyMalformedColorResets(t *testing.T) {
	runner := &fakeRunner{}
	s := NewStylerWithRunner(runner, logging.NopLogger())

	if err := s.Apply("not-a-color", DefaultFactors()); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := []string{
		"set-option pane-border-style fg=colour240",
		"set-option pane-active-border-style fg=colour250",
		"set-option window-style bg=default",
		"set-option window-active-style bg=default",
	}
	got := callStrings(runner)
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReset(t *testing.T) {
	runner := &fakeRunner{}
	s := NewStylerWithRunner(runner, logging.NopLogger())

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(runner.calls) != 4 {
		t.Fatalf("Reset issued %d calls, want 4", len(runner.calls))
	}
}

func TestApplyCollectsErrors(t *testing.T) {
	wantErr := errors.New("no server running")
	runner := &fakeRunner{err: wantErr}
	s := NewStylerWithRunner(runner, logging.NopLogger())

	err := s.Apply("#d86826", DefaultFactors())
	if !errors.Is(err, wantErr) {
		t.Fatalf("Apply error = %v, want wrapped %v", err, wantErr)
	}
	// All four options are still attempted.
	if len(runner.calls) != 4 {
		t.Errorf("Apply issued %d calls, want 4", len(runner.calls))
	}
}

func TestCommandArgs(t *testing.T) {
	cmd := CommandContext(context.Background(), "set-option", "pane-border-style", "fg=colour240")
	if cmd.Args[0] != "tmux" {
		t.Errorf("args[0] = %q, want %q", cmd.Args[0], "tmux")
	}
	if cmd.Args[1] != "set-option" {
		t.Errorf("args[1] = %q, want %q", cmd.Args[1], "set-option")
	}
}

func TestInsideTmux(t *testing.T) {
	t.Setenv(EnvVar, "")
	if InsideTmux() {
		t.Error("InsideTmux() = true with empty TMUX, want false")
	}

	t.Setenv(EnvVar, "/tmp/tmux-1000/default,1234,0")
	if !InsideTmux() {
		t.Error("InsideTmux() = false with TMUX set, want true")
	}
}
