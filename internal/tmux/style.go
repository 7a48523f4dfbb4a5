package tmux

import (
	"context"
	"errors"

	"github.com/Iron-Ham/tmux-peacock/internal/color"
	"github.com/Iron-Ham/tmux-peacock/internal/logging"
)

// Neutral style values restored when no color is available.
const (
	neutralBorder       = "fg=colour240"
	neutralActiveBorder = "fg=colour250"
	neutralBackground   = "bg=default"
)

// StyleFactors controls how the base color is derived into the individual
// tmux style options.
type StyleFactors struct {
	// MuteInactive dims the base color for inactive pane borders.
	MuteInactive float64
	// MuteActive dims the base color for the active pane border.
	MuteActive float64
	// BackgroundTint washes the window background with the base color.
	BackgroundTint float64
}

// DefaultFactors returns the factors the reference styling uses.
func DefaultFactors() StyleFactors {
	return StyleFactors{
		MuteInactive:   0.6,
		MuteActive:     0.8,
		BackgroundTint: 0.08,
	}
}

// Styler applies project colors to tmux pane and window style options.
type Styler struct {
	runner Runner
	log    *logging.Logger
}

// NewStyler creates a Styler that invokes the tmux CLI.
func NewStyler(log *logging.Logger) *Styler {
	return NewStylerWithRunner(CLIRunner{}, log)
}

// NewStylerWithRunner creates a Styler with a custom runner.
// This is primarily useful for testing.
func NewStylerWithRunner(runner Runner, log *logging.Logger) *Styler {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Styler{runner: runner, log: log}
}

// Apply sets the pane border and window background options from the base
// color. A malformed color falls back to Reset. Individual set-option
// failures are logged and joined into the returned error, but callers
// treat them as advisory.
func (s *Styler) Apply(baseColor string, factors StyleFactors) error {
	muted, okMuted := color.Mute(baseColor, factors.MuteInactive)
	bright, okBright := color.Mute(baseColor, factors.MuteActive)
	tint, okTint := color.BackgroundTint(baseColor, factors.BackgroundTint)
	if !okMuted || !okBright || !okTint {
		s.log.Warn("malformed color, resetting styles", "color", baseColor)
		return s.Reset()
	}

	return errors.Join(
		s.setOption("pane-border-style", "fg="+muted),
		s.setOption("pane-active-border-style", "fg="+bright),
		s.setOption("window-style", "bg="+tint),
		s.setOption("window-active-style", neutralBackground),
	)
}

// Reset restores the neutral style defaults.
func (s *Styler) Reset() error {
	return errors.Join(
		s.setOption("pane-border-style", neutralBorder),
		s.setOption("pane-active-border-style", neutralActiveBorder),
		s.setOption("window-style", neutralBackground),
		s.setOption("window-active-style", neutralBackground),
	)
}

func (s *Styler) setOption(name, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), optionTimeout)
	defer cancel()

	if err := s.runner.Run(ctx, "set-option", name, value); err != nil {
		s.log.Warn("set-option failed", "option", name, "value", value, "error", err)
		return err
	}
	return nil
}
