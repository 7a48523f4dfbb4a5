package cmd

import (
	"fmt"

	"github.com/Iron-Ham/tmux-peacock/internal/config"
	"github.com/spf13/cobra"
)

var colorCmd = &cobra.Command{
	Use:   "color [dir]",
	Short: "Print the project color for a directory",
	Long: `Print the hex color assigned to a directory (default: current directory).

The color is resolved with the usual precedence: a "peacock.color" declared
in the project's .vscode/settings.json, then the persisted cache, then a
fresh deterministic derivation from the repository name. Newly derived
colors are persisted so later invocations agree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runColor,
}

func init() {
	rootCmd.AddCommand(colorCmd)
}

func runColor(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	log := newLogger(cfg)
	defer log.Close()

	resolver := newResolver(cfg, log)
	fmt.Fprintln(cmd.OutOrStdout(), resolver.ResolveColor(targetDir(args)))
	return nil
}
