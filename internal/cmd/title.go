package cmd

import (
	"fmt"

	"github.com/Iron-Ham/tmux-peacock/internal/config"
	"github.com/spf13/cobra"
)

var titleCmd = &cobra.Command{
	Use:   "title [dir]",
	Short: "Print the pane label for a directory",
	Long: `Print the pane label for a directory (default: current directory).

Inside a git repository the label is "repo@branch:subdir", with the branch
and subdirectory parts omitted when they don't apply. Outside a repository
the label is the directory's basename, with the home directory shown as ~.

Intended for tmux's pane-border-format:
  set -g pane-border-format "#(peacock title --colored '#{pane_current_path}')"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTitle,
}

var titleColored bool

func init() {
	rootCmd.AddCommand(titleCmd)

	titleCmd.Flags().BoolVar(&titleColored, "colored", false, "Wrap the label in tmux foreground color markers")
}

func runTitle(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	log := newLogger(cfg)
	defer log.Close()

	resolver := newResolver(cfg, log)
	dir := targetDir(args)

	if titleColored {
		fmt.Fprintln(cmd.OutOrStdout(), resolver.ColoredTitle(dir))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), resolver.Title(dir))
	return nil
}
