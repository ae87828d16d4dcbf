package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations to the configured catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog(cmd.Context(), cfg, logger, true)
		if err != nil {
			return err
		}
		cat.close()
		return nil
	},
}
