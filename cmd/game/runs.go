package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tatianab/budget-survival/internal/config"
	"github.com/tatianab/budget-survival/internal/journal"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recently finished runs",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 10, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	j, err := journal.Open(cfg.JournalPath)
	if err != nil {
		return err
	}
	defer j.Close()

	runs, err := j.RecentRuns(cmd.Context(), runsLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	printRuns(cmd.OutOrStdout(), runs)
	return nil
}

func printRuns(w io.Writer, runs []journal.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return
	}
	for _, r := range runs {
		reason := string(r.Reason)
		if reason == "" {
			reason = "survived"
		}
		fmt.Fprintf(w, "%s  %-17s months=%d days=%d budget=%.2f happiness=%d comfort=%d  (%s)\n",
			r.EndedAt.Local().Format("2006-01-02 15:04"), reason,
			r.MonthsCompleted, r.DaysPlayed, r.Budget, r.Happiness, r.Comfort, r.ID)
	}
}
