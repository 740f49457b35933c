package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/laziz/config"
	"github.com/shashiranjanraj/laziz/database/seeders"
	"github.com/shashiranjanraj/laziz/pkg/database"
)

// laziz seed — wipe and refill the menu collections with sample data.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample menu data (destructive)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		ctx := context.Background()
		if err := database.Connect(ctx); err != nil {
			return err
		}
		defer database.Disconnect(ctx) //nolint:errcheck

		if err := database.EnsureIndexes(ctx); err != nil {
			return err
		}

		fmt.Println("Seeding database…")
		return seeders.RunAll(ctx, database.DB)
	},
}
