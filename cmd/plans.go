package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Browse saved lesson plans",
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent lesson plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		plans, err := st.PlanRepo().ListPlans(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list plans: %w", err)
		}

		if len(plans) == 0 {
			fmt.Println("No lesson plans saved yet.")
			return nil
		}

		fmt.Printf("%-10s  %-19s  %-24s  %-16s  %-9s  %s\n",
			"ID", "Created", "Topic", "Subject", "Class", "Sessions")
		fmt.Println(strings.Repeat("─", 92))

		for _, p := range plans {
			fmt.Printf("%-10s  %-19s  %-24s  %-16s  %-9s  %d\n",
				p.ID,
				p.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(p.Topic, 24),
				truncate(p.Subject, 16),
				p.ClassLevel,
				p.NumSessions,
			)
		}
		return nil
	},
}

var plansShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a complete lesson plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		plan, err := st.PlanRepo().GetPlan(context.Background(), args[0])
		if err != nil {
			return err
		}

		sep := strings.Repeat("─", 72)

		fmt.Println(sep)
		fmt.Printf("LESSON PLAN: %s\n", plan.Header.Lesson)
		fmt.Println(sep)
		fmt.Printf("Class:      %s\n", plan.Header.Class)
		fmt.Printf("Subject:    %s\n", plan.Header.Subject)
		fmt.Printf("Periods:    %s\n", plan.Header.Periods)
		fmt.Printf("Duration:   %s (total %s)\n", plan.Header.Duration, plan.Header.TotalDuration)
		fmt.Printf("Language:   %s\n", plan.Header.Language)

		fmt.Println()
		fmt.Println(plan.FormattedText)

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("SESSION BREAKDOWN")
		fmt.Println(sep)
		for _, s := range plan.Sessions {
			fmt.Printf("\nSession %d (%s)\n", s.Number, s.Duration)
			fmt.Printf("  Competency:  %s\n", s.Competency)
			fmt.Printf("  Outcome:     %s\n", s.ELO)
			fmt.Printf("  Activities:  %s\n", strings.Join(s.Activities, "; "))
			fmt.Printf("  Resources:   %s\n", s.ResourcesTLM)
			fmt.Printf("  Worksheet:   %s\n", s.WorksheetRef)
			fmt.Printf("  Assessment:  %s\n", s.Assessment)
		}

		for _, w := range plan.Worksheets {
			fmt.Println()
			fmt.Println(sep)
			fmt.Printf("%s (%s)\n", w.Title, w.Duration)
			fmt.Println(sep)
			if w.Objective != "" {
				fmt.Printf("Objective: %s\n\n", w.Objective)
			}
			fmt.Println(w.Content)
		}

		if len(plan.YouTubeLinks) > 0 {
			fmt.Println()
			fmt.Println(sep)
			fmt.Println("VIDEO RESOURCES")
			fmt.Println(sep)
			for _, l := range plan.YouTubeLinks {
				fmt.Printf("- %s (%s)\n  %s\n", l.Title, l.Kind, l.URL)
			}
		}

		if len(plan.WebResources) > 0 {
			fmt.Println()
			fmt.Println(sep)
			fmt.Println("WEB RESOURCES")
			fmt.Println(sep)
			for _, l := range plan.WebResources {
				fmt.Printf("- %s\n  %s\n", l.Title, l.URL)
			}
		}

		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	plansListCmd.Flags().IntP("limit", "n", 20, "Number of plans to show")

	plansCmd.AddCommand(plansListCmd)
	plansCmd.AddCommand(plansShowCmd)
}
