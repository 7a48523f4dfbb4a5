package cmd

import (
	"os"
	"strings"

	"github.com/Iron-Ham/tmux-peacock/internal/cache"
	"github.com/Iron-Ham/tmux-peacock/internal/config"
	"github.com/Iron-Ham/tmux-peacock/internal/git"
	"github.com/Iron-Ham/tmux-peacock/internal/logging"
	"github.com/Iron-Ham/tmux-peacock/internal/peacock"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "peacock",
	Short: "Deterministic colors and labels for tmux panes",
	Long: `Peacock assigns every project a stable color derived from its git
identity and pushes it into tmux pane borders, window backgrounds, and
pane titles. The same directory always gets the same color, on every
machine, with no coordination.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/tmux-peacock/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/tmux-peacock")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PEACOCK")
	// Replace dots with underscores for nested keys in env vars
	// e.g., PEACOCK_GIT_TIMEOUT_SECONDS for git.timeout_seconds
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// newLogger builds the configured debug logger. Logging is off by default;
// stdout stays reserved for pane labels either way.
func newLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}
	log, err := logging.NewLogger(config.ConfigDir(), cfg.Logging.Level)
	if err != nil {
		return logging.NopLogger()
	}
	return log
}

// newResolver wires a resolver from the active configuration.
func newResolver(cfg *config.Config, log *logging.Logger) *peacock.Resolver {
	gitClient := git.NewClient(cfg.Git.Timeout())
	store := cache.NewStore(cfg.Cache.ResolvePath(), cfg.Cache.MaxSizeBytes)
	return peacock.NewResolver(gitClient, store, log)
}

// targetDir interprets an optional positional directory argument. A missing
// or nonexistent argument falls back to the current working directory, which
// the resolver already treats as the default.
func targetDir(args []string) string {
	if len(args) == 0 {
		return ""
	}
	info, err := os.Stat(args[0])
	if err != nil || !info.IsDir() {
		return ""
	}
	return args[0]
}
