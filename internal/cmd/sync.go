package cmd

import (
	"github.com/Iron-Ham/tmux-peacock/internal/config"
	"github.com/Iron-Ham/tmux-peacock/internal/lock"
	"github.com/Iron-Ham/tmux-peacock/internal/logging"
	"github.com/Iron-Ham/tmux-peacock/internal/tmux"
	"github.com/spf13/cobra"
)

// paneStyler is the slice of tmux.Styler that sync drives.
type paneStyler interface {
	Apply(baseColor string, factors tmux.StyleFactors) error
	Reset() error
}

// newStyler is swappable in tests.
var newStyler = func(log *logging.Logger) paneStyler {
	return tmux.NewStyler(log)
}

var syncCmd = &cobra.Command{
	Use:   "sync [dir]",
	Short: "Push the project color into the tmux pane styling",
	Long: `Resolve the project color for a directory (default: current directory)
and apply it to the surrounding tmux session: pane borders take muted
variants of the color and the window background takes a subtle tint.

Sync is built to run on every pane focus change without stepping on
itself: outside tmux it exits quietly, and when another sync already
holds the style lock it yields instead of racing. Hook it up with:
  set-hook -g pane-focus-in "run-shell 'peacock sync'"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

var syncReset bool

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().BoolVar(&syncReset, "reset", false, "Restore neutral tmux styling instead of applying a color")
}

func runSync(cmd *cobra.Command, args []string) error {
	// No tmux, nothing to style. Quiet success keeps shell hooks clean.
	if !tmux.InsideTmux() {
		return nil
	}

	cfg := config.Get()
	log := newLogger(cfg)
	defer log.Close()

	fl := lock.NewFileLock(cfg.Lock.Path)
	acquired, err := fl.TryLock()
	if err != nil {
		log.Warn("style lock unavailable", "path", cfg.Lock.Path, "error", err)
		return nil
	}
	if !acquired {
		// Another sync is mid-flight; it will win anyway.
		log.Debug("style lock held elsewhere, yielding", "path", cfg.Lock.Path)
		return nil
	}
	defer fl.Unlock()

	styler := newStyler(log)
	factors := tmux.StyleFactors{
		MuteInactive:   cfg.Style.MuteInactive,
		MuteActive:     cfg.Style.MuteActive,
		BackgroundTint: cfg.Style.BackgroundTint,
	}

	// Styling failures are advisory: a pane without fresh colors beats a
	// broken tmux hook, so sync always exits 0 once past argument parsing.
	if syncReset {
		if err := styler.Reset(); err != nil {
			log.Warn("style reset failed", "error", err)
		}
		return nil
	}

	resolver := newResolver(cfg, log)
	baseColor := resolver.ResolveColor(targetDir(args))
	if err := styler.Apply(baseColor, factors); err != nil {
		log.Warn("style apply failed", "color", baseColor, "error", err)
	}
	return nil
}
