package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs",
	Long:  `Display recent scramble-and-reverse runs recorded by 'cubesim solve'.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to display")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewRunRepository(db)
	runs, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded. Try: cubesim solve")
		return nil
	}

	total, err := repo.Count()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d of %d runs\n\n", len(runs), total)

	for _, run := range runs {
		level := "-"
		if run.Level != nil {
			level = *run.Level
		}
		status := "solved"
		if !run.Solved {
			status = "NOT SOLVED"
		}
		fmt.Fprintf(out, "%s  %-14s %-8s %3d moves  %s\n",
			shortID(run.RunID),
			humanize.Time(run.CreatedAt),
			level,
			run.MoveCount,
			status,
		)
		fmt.Fprintf(out, "          %s\n", truncate(run.ScrambleText, 60))
	}

	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
