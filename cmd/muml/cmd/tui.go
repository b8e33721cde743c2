package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/mUML/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the full-screen shell",
	Long: `Start the terminal user interface.

Keys:
  Enter       Run the command line
  Tab         Complete commands, class names, fields, signatures
  Up/Down     Recall earlier lines
  PgUp/PgDn   Scroll the transcript
  Ctrl+C      Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	env, err := setup(setupOptions{history: true, watch: true})
	if err != nil {
		return err
	}
	defer env.Close()

	model := tui.New(tui.Options{
		Styles:       tui.NewStyles(env.cfg.TUI),
		Logger:       env.logger,
		History:      env.store,
		Prompt:       env.cfg.REPL.Prompt,
		AutosavePath: env.cfg.REPL.AutosavePath,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		printError(cmd.ErrOrStderr(), "TUI", err)
		return err
	}

	if m, ok := final.(tui.Model); ok {
		if err := m.Session().Autosave(); err != nil {
			printError(cmd.ErrOrStderr(), "autosave failed", err)
		}
	}
	return nil
}
