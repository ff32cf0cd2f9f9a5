package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/grknsolak/it-certification-app/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past exam results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		examID, _ := cmd.Flags().GetString("exam")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		results, err := st.ResultRepo().List(ctx, store.QueryOpts{ExamID: examID, Limit: limit})
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No results yet.")
			return nil
		}

		fmt.Printf("%-17s  %-14s  %-9s  %-6s  %-8s  %s\n",
			"Date", "Exam", "Mode", "Score", "Correct", "Time")
		fmt.Println(strings.Repeat("─", 72))

		for _, sr := range results {
			r := sr.Result
			timeStr := "-"
			if r.TimeSpent > 0 {
				timeStr = fmt.Sprintf("%d:%02d", r.TimeSpent/60, r.TimeSpent%60)
			}
			fmt.Printf("%-17s  %-14s  %-9s  %-6s  %-8s  %s\n",
				r.CompletedAt.Local().Format("2006-01-02 15:04"),
				r.ExamID,
				sr.Mode,
				fmt.Sprintf("%d%%", r.Score),
				fmt.Sprintf("%d/%d", r.CorrectAnswers, r.TotalQuestions),
				timeStr,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of results to show")
	historyCmd.Flags().String("exam", "", "Only show results for this exam ID")
}
