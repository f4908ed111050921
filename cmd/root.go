package cmd

import (
	"github.com/lessonforge/lessonforge/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lessonforge",
	Short: "AI lesson plan builder for teachers",
	Long:  "LessonForge — terminal assistant that builds complete NCERT-aligned lesson plans and worksheets through a short conversation, in English or Hindi.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LESSONFORGE_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LESSONFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
