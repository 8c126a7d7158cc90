package cmd

import (
	"github.com/spf13/cobra"

	"github.com/frontforge/frontforge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "frontforge",
	Short: "Design-task grading platform",
	Long:  "Frontforge — learners submit HTML/CSS/JS/JSX solutions to design tasks and an external multimodal grader scores them against a reference image.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FRONTFORGE_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then FRONTFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
