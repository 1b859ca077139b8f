package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/inovacc/feedr/internal/store"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past feeds",
	Long: `List the feeds performed by the controller, newest first.

Examples:
  feedr history
  feedr history --limit 50 --json`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of feeds to list (0 for all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")
}

func runHistory(_ *cobra.Command, _ []string) error {
	return withStore(func(st store.Store) error {
		events, err := st.ListEvents(historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list feed history: %w", err)
		}

		if historyJSON {
			if events == nil {
				_, _ = fmt.Fprintln(os.Stdout, "[]")
				return nil
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			return enc.Encode(events)
		}

		if len(events) == 0 {
			_, _ = fmt.Fprintln(os.Stdout, "No feeds recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

		_, _ = fmt.Fprintln(w, "FED AT\tSOURCE\tROTATIONS\tAUTO FEEDS")
		_, _ = fmt.Fprintln(w, "------\t------\t---------\t----------")

		for _, ev := range events {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\n",
				ev.FedAt.Format("02/01/2006 15:04:05"),
				ev.Source,
				ev.Rotations,
				ev.AutoFeedsDone)
		}

		return w.Flush()
	})
}
