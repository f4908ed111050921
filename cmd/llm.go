package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect logged LLM calls",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		calls, err := st.CallLogRepo().ListCalls(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list calls: %w", err)
		}

		if len(calls) == 0 {
			fmt.Println("No LLM calls logged yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-12s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, c := range calls {
			if purpose != "" && c.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !c.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-12s  %-28s  %-6d  %-6d  %-7d  %s\n",
				c.ID,
				c.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				c.Purpose,
				truncate(c.Model, 28),
				c.InputTokens,
				c.OutputTokens,
				c.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (lesson-plan, worksheets)")

	llmCmd.AddCommand(llmListCmd)
}
