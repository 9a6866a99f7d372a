package main

import (
	"github.com/alimikegami/catalog-service/config"
	"github.com/spf13/cobra"
)

func newMigrateCommand(conf *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalog schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore(cmd.Context(), conf)
			if err != nil {
				return err
			}
			return db.Close()
		},
	}
}
