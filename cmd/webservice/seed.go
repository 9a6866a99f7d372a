package main

import (
	"fmt"

	"github.com/alimikegami/catalog-service/config"
	"github.com/alimikegami/catalog-service/internal/repository"
	"github.com/alimikegami/catalog-service/internal/seed"
	"github.com/alimikegami/catalog-service/pkg/clock"
	"github.com/spf13/cobra"
)

func newSeedCommand(conf *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the catalog with demo data",
		Long:  "Deletes every product, subcollection and collection, then inserts the demo catalog.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore(cmd.Context(), conf)
			if err != nil {
				return err
			}
			defer db.Close()

			summary, err := seed.Run(cmd.Context(), repository.CreateNewRepository(db), clock.RealClock{})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d collections, %d subcollections, %d products\n",
				summary.Collections, summary.Subcollections, summary.Products)
			return nil
		},
	}
}
