package cmd

import (
	"fmt"
	"sort"

	"github.com/Iron-Ham/tmux-peacock/internal/cache"
	"github.com/Iron-Ham/tmux-peacock/internal/color"
	"github.com/Iron-Ham/tmux-peacock/internal/config"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

var colorsCmd = &cobra.Command{
	Use:   "colors [name...]",
	Short: "Show the color palette",
	Long: `Show the persisted color assignments as terminal swatches.

With name arguments, preview the color each name would derive instead.
Previews are pure: nothing is written to the cache.

Examples:
  # Show every cached project color
  peacock colors

  # Preview colors for names before using them
  peacock colors myproject api frontend`,
	RunE: runColors,
}

func init() {
	rootCmd.AddCommand(colorsCmd)
}

func runColors(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	entries := make(map[string]string)
	if len(args) > 0 {
		for _, name := range args {
			entries[name] = color.Generate(name)
		}
	} else {
		store := cache.NewStore(cfg.Cache.ResolvePath(), cfg.Cache.MaxSizeBytes)
		entries = store.Load()
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No colors assigned yet.")
			return nil
		}
	}

	keys := make([]string, 0, len(entries))
	width := 0
	for key := range entries {
		keys = append(keys, key)
		if len(key) > width {
			width = len(key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "%-*s  %s\n", width, key, swatch(entries[key]))
	}
	return nil
}

// swatch renders a colored chip for a hex color, choosing black or white
// text for contrast against the background.
func swatch(hex string) string {
	validated, ok := color.ValidateHex(hex)
	if !ok {
		return fmt.Sprintf("%s (invalid)", hex)
	}

	fg := lipgloss.Color("#ffffff")
	if c, err := colorful.Hex(validated); err == nil {
		if l, _, _ := c.Lab(); l > 0.5 {
			fg = lipgloss.Color("#000000")
		}
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color(validated)).
		Foreground(fg).
		Padding(0, 1)
	return style.Render(validated)
}
