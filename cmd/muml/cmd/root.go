package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/mUML/foundation/core/log"
	"github.com/msto63/mUML/internal/history"
	"github.com/msto63/mUML/pkg/core/config"
	"github.com/msto63/mUML/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "muml",
	Short: "mUML - UML class diagram shell",
	Long: `mUML builds UML class diagrams from a small command language.

Classes, fields, methods, parameters and relationships are edited one
command at a time, every change can be undone and redone, and diagrams
are saved as JSON or YAML.

Without a subcommand the interactive shell is started. Type 'help'
inside the shell for the list of commands.`,
	SilenceUsage: true,
	RunE:         runREPL,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MUML_CONFIG, ./configs/muml.toml, ./muml.toml, ~/.config/muml/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// environment bundles what the subcommands share
type environment struct {
	cfg     *config.Config
	logger  *log.Logger
	store   history.Store
	watcher *config.Watcher
}

type setupOptions struct {
	history bool
	watch   bool
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

func setup(opts setupOptions) (*environment, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	env := &environment{cfg: cfg, logger: logging.FromConfig(cfg, verbose)}
	env.logger.Debug("Configuration loaded", log.Fields{"path": cfg.Path()})

	if opts.history && cfg.History.Enabled {
		store, err := history.NewSQLiteStore(history.Config{
			Path:       cfg.History.Path,
			MaxEntries: cfg.History.MaxEntries,
		})
		if err != nil {
			// recall still works for the current process
			env.logger.WarnWithErr("Command history not persisted", err)
			env.store = history.NewMemoryStore(cfg.History.MaxEntries)
		} else {
			env.store = store
		}
	}

	if opts.watch && cfg.Path() != "" {
		w, err := config.NewWatcher(cfg, env.logger)
		if err != nil {
			env.logger.WarnWithErr("Configuration reload disabled", err)
		} else {
			logging.Watch(w, env.logger, verbose)
			env.watcher = w
		}
	}
	return env, nil
}

func (e *environment) Close() {
	if e.watcher != nil {
		e.watcher.Stop()
	}
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.WarnWithErr("Failed to close history", err)
		}
	}
	_ = e.logger.Sync()
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "Error: %s: %v\n", msg, err)
}
