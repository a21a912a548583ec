package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/plantnet/config"
	"github.com/shashiranjanraj/plantnet/database/seeders"
	"github.com/shashiranjanraj/plantnet/internal/store"
)

// plantnet seed: run every registered seeder against the configured
// database.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		if err := store.Connect(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		defer store.Disconnect(context.Background()) //nolint:errcheck

		fmt.Println("Seeding database…")
		return seeders.RunAll(ctx, store.Database())
	},
}
