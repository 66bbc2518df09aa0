package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ngthanh/engmaster/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics from the local event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		totals, err := repo.Totals(ctx)
		if err != nil {
			return fmt.Errorf("query totals: %w", err)
		}
		if totals.Answers == 0 {
			fmt.Println("No practice history yet. Run `engmaster practice` first.")
			return nil
		}

		fmt.Printf("Answers graded:    %d\n", totals.Answers)
		fmt.Printf("Batches completed: %d\n", totals.Batches)
		fmt.Printf("Average score:     %.1f / 10\n", totals.AverageScore)
		fmt.Println()

		usage, err := repo.UsageByTopic(ctx)
		if err != nil {
			return fmt.Errorf("query topic usage: %w", err)
		}

		fmt.Println("By Topic")
		fmt.Println(strings.Repeat("─", 44))
		fmt.Printf("%-20s  %8s  %10s\n", "Topic", "Answers", "Avg Score")
		fmt.Println(strings.Repeat("─", 44))
		for _, u := range usage {
			fmt.Printf("%-20s  %8d  %10.1f\n", u.Topic, u.Answers, u.AverageScore)
		}

		limit, _ := cmd.Flags().GetInt("recent")
		if limit > 0 {
			recent, err := repo.RecentAnswers(ctx, limit)
			if err != nil {
				return fmt.Errorf("query recent answers: %w", err)
			}

			fmt.Println()
			fmt.Println("Recent Answers")
			fmt.Println(strings.Repeat("─", 76))
			for _, r := range recent {
				fmt.Printf("%s  %2d/10  %s\n",
					r.Timestamp.Local().Format("2006-01-02 15:04"),
					r.Score,
					truncate(r.QuestionText, 52),
				)
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("recent", "n", 10, "Number of recent answers to show (0 to hide)")
}
