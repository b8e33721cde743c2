package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
	"github.com/msto63/mUML/internal/history"
)

var (
	historyLimit   int
	historyFailed  bool
	historySession string
	historyStats   bool
	historyPrune   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently entered shell lines",
	Long: `List lines recorded by the shell, newest first.

Examples:
  muml history                  # last 20 lines
  muml history --failed         # only lines that failed
  muml history --stats          # entry counts
  muml history --prune 100      # keep the newest 100 lines`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of lines to show")
	historyCmd.Flags().BoolVar(&historyFailed, "failed", false, "only show failed lines")
	historyCmd.Flags().StringVar(&historySession, "session", "", "only show lines of one session")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "show entry counts instead of lines")
	historyCmd.Flags().IntVar(&historyPrune, "prune", -1, "delete all but the newest N lines")
}

func runHistory(cmd *cobra.Command, args []string) error {
	env, err := setup(setupOptions{history: true})
	if err != nil {
		return err
	}
	defer env.Close()

	if env.store == nil {
		return mumlerr.New("command history is disabled").WithCode(mumlerr.CodeHistory)
	}
	ctx := context.Background()
	out := cmd.OutOrStdout()

	if historyPrune >= 0 {
		deleted, err := env.store.Prune(ctx, historyPrune)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d entries\n", deleted)
		return nil
	}

	if historyStats {
		stats, err := env.store.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Entries:  %d\n", stats["total_entries"])
		fmt.Fprintf(out, "Failed:   %d\n", stats["failed_entries"])
		fmt.Fprintf(out, "Sessions: %d\n", stats["sessions"])
		if last, ok := stats["last_entry"].(time.Time); ok {
			fmt.Fprintf(out, "Last:     %s\n", last.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	}

	entries, err := env.store.Query(ctx, history.Filter{
		SessionID:  historySession,
		FailedOnly: historyFailed,
		Limit:      historyLimit,
	})
	if err != nil {
		return err
	}
	for _, e := range entries {
		status := "ok "
		if !e.Succeeded {
			status = "err"
		}
		fmt.Fprintf(out, "%s  %s  %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"), status, e.Line)
		if e.Error != "" {
			fmt.Fprintf(out, "                          %s\n", e.Error)
		}
	}
	return nil
}
