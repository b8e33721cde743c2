package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
	"github.com/msto63/mUML/internal/session"
)

var (
	runStrict bool
	runOutput string
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Replay a command script",
	Long: `Run every line of a script file as a shell command.

Failing lines are reported on stderr. With --strict the script stops at
the first failing line and the command exits non-zero. With --output the
resulting diagram is saved when the script finishes.

Examples:
  muml run build.uml
  muml run --strict --output diagram.json build.uml`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runStrict, "strict", false, "stop at the first failing line")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "save the diagram to this file afterwards")
}

func runScript(cmd *cobra.Command, args []string) error {
	env, err := setup(setupOptions{})
	if err != nil {
		return err
	}
	defer env.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return mumlerr.Wrap(err, "open script").WithCode(mumlerr.CodeIO)
	}
	defer f.Close()

	s := session.New(session.Options{
		Out:    cmd.OutOrStdout(),
		Err:    cmd.ErrOrStderr(),
		Logger: env.logger.WithField("script", args[0]),
		Strict: runStrict,
	})
	if err := s.Run(context.Background(), session.NewScannerSource(f)); err != nil {
		return err
	}

	if runOutput != "" {
		return s.Diagram().Save(runOutput)
	}
	return nil
}
