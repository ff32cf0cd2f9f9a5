package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var examsCmd = &cobra.Command{
	Use:   "exams",
	Short: "List the exams in the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := resolveCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		fmt.Printf("%-14s  %-38s  %-9s  %-5s  %s\n",
			"ID", "Title", "Questions", "Min", "Pass")
		fmt.Println(strings.Repeat("─", 80))

		for _, e := range catalog.Exams() {
			count := len(e.Questions)
			if e.RealExamQuestionCount > 0 {
				count = e.RealExamQuestionCount
			}
			title := e.Title
			if len(title) > 38 {
				title = title[:38]
			}
			fmt.Printf("%-14s  %-38s  %-9d  %-5d  %d%%\n",
				e.ID, title, count, e.TimeLimit, e.PassingScore)
		}
		return nil
	},
}
