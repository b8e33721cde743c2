package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mUML/internal/model"
)

var checkRender bool

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a saved diagram",
	Long: `Load a JSON or YAML diagram file and report whether it is valid.

A file is valid when every name and type parses, no class, field,
method signature or relationship is duplicated and every relationship
connects existing classes.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkRender, "render", false, "print the diagram after a successful check")
}

func runCheck(cmd *cobra.Command, args []string) error {
	d := model.New()
	if err := d.Load(args[0]); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: invalid\n", args[0])
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d classes, %d relationships)\n",
		args[0], len(d.ClassNames()), len(d.Relationships()))
	if checkRender && !d.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), d.Render())
	}
	return nil
}
