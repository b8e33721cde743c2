package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/msto63/mUML/internal/session"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive shell",
	Long: `Start the line-oriented shell reading commands from stdin.

Errors are printed to stderr and the shell continues. The shell ends on
'exit', end of input or Ctrl+C. Entered lines are kept in the history
database when [history] is enabled.`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	env, err := setup(setupOptions{history: true, watch: true})
	if err != nil {
		return err
	}
	defer env.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := session.New(session.Options{
		Out:          cmd.OutOrStdout(),
		Err:          cmd.ErrOrStderr(),
		Logger:       env.logger,
		History:      env.store,
		Prompt:       env.cfg.REPL.Prompt,
		AutosavePath: env.cfg.REPL.AutosavePath,
	})

	err = s.Run(ctx, session.NewScannerSource(cmd.InOrStdin()))
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(cmd.OutOrStdout())
		err = nil
	}
	if saveErr := s.Autosave(); saveErr != nil {
		printError(cmd.ErrOrStderr(), "autosave failed", saveErr)
	}
	return err
}
