package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asifr/shikkhok/internal/config"
	"github.com/asifr/shikkhok/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		pool, err := store.NewPool(cmd.Context(), cfg.DB.URL, store.PoolConfig{
			MaxConns:        cfg.DB.MaxConnections,
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer pool.Close()

		if err := store.Migrate(cmd.Context(), pool); err != nil {
			return err
		}

		fmt.Println("migrations applied")
		return nil
	},
}
