package cmd

import (
	"fmt"

	"github.com/grknsolak/it-certification-app/internal/app"
	"github.com/grknsolak/it-certification-app/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads the question bank, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	catalog, err := resolveCatalog(cmd)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		Catalog: catalog,
		Results: st.ResultRepo(),
	})
}
