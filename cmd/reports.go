package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Browse archived interview reports",
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rows, err := s.List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list reports: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No reports archived yet.")
			return nil
		}

		fmt.Printf("%-36s  %-18s  %-24s  %-10s  %5s  %6s  %s\n",
			"ID", "Candidate", "Roles", "Date", "Qs", "Avg", "Trend")
		fmt.Println(strings.Repeat("─", 118))
		for _, r := range rows {
			fmt.Printf("%-36s  %-18s  %-24s  %-10s  %5d  %6.2f  %s\n",
				r.ID,
				shorten(r.CandidateName, 18),
				shorten(strings.Join(r.Roles, ", "), 24),
				r.InterviewDate,
				r.Questions,
				r.AverageScore,
				r.ScoreTrend,
			)
		}
		return nil
	},
}

var reportsViewCmd = &cobra.Command{
	Use:   "view <session-id>",
	Short: "Print one archived report as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rep, err := s.Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	reportsListCmd.Flags().IntP("limit", "n", 20, "Number of reports to show")

	reportsCmd.AddCommand(reportsListCmd)
	reportsCmd.AddCommand(reportsViewCmd)
}
