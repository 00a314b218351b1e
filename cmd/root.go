package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pathx/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pathx",
	Short: "AI career guidance for Gen Z",
	Long:  "PathX — terminal career discovery app: a seven-part questionnaire scored into an AI-generated Vietnamese career report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// .env is optional; real env vars win over file values.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHX_DB env var)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(resultCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHX_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
