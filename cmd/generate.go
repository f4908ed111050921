package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lessonforge/lessonforge/internal/orchestrator"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a lesson plan directly from flags, skipping the conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		content, _ := cmd.Flags().GetString("content")
		subject, _ := cmd.Flags().GetString("subject")
		class, _ := cmd.Flags().GetString("class")
		language, _ := cmd.Flags().GetString("language")
		duration, _ := cmd.Flags().GetInt("duration")
		sessions, _ := cmd.Flags().GetInt("sessions")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := buildProvider(cmd, st)
		if err != nil {
			return err
		}
		orch := buildOrchestrator(provider, st)

		fmt.Println("Generating lesson plan...")
		resp, err := orch.HandleText(cmd.Context(), orchestrator.TextRequest{
			Topic:           topic,
			Content:         content,
			Subject:         subject,
			ClassLevel:      class,
			Language:        language,
			DurationMinutes: duration,
			NumSessions:     sessions,
		})
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(resp.Text)
		fmt.Println()
		fmt.Printf("View it with: lessonforge plans show %s\n", resp.DownloadID)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Lesson topic, e.g. Photosynthesis")
	generateCmd.Flags().String("content", "", "Raw source material to plan from (used when --topic is empty)")
	generateCmd.Flags().StringP("subject", "s", "", "Subject name, e.g. Science")
	generateCmd.Flags().StringP("class", "c", "", "Class level, e.g. 'Class 7'")
	generateCmd.Flags().StringP("language", "l", "English", "Plan language: English or Hindi")
	generateCmd.Flags().IntP("duration", "d", 40, "Per-session duration in minutes (15-90)")
	generateCmd.Flags().IntP("sessions", "n", 4, "Number of sessions (1-10)")
}
