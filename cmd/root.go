package cmd

import (
	"github.com/grknsolak/it-certification-app/internal/bank"
	"github.com/grknsolak/it-certification-app/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "itcert",
	Short: "IT certification exam practice in the terminal",
	Long:  "ITCert — terminal app for practicing AWS, CompTIA, GCP, Kubernetes and Terraform certification exams with timed sessions and answer review.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ITCERT_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a question bank JSON file (defaults to the embedded catalog)")

	rootCmd.AddCommand(examsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ITCERT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveCatalog loads the question bank from --bank, falling back to the
// embedded catalog.
func resolveCatalog(cmd *cobra.Command) (*bank.Catalog, error) {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return bank.LoadFile(p)
	}
	return bank.Default()
}
