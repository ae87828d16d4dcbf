package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"slot-engine/internal/db"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a YAML fixture into the catalog",
	Long: `Load contents, ads, slider ads and pinned headline slots from a YAML
fixture. Without --file the built-in demo catalog is loaded. Rows whose
id already exists are skipped.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixture file (default: built-in demo)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	fixture, err := db.LoadFixture(seedFile)
	if err != nil {
		return err
	}
	cat, err := openCatalog(cmd.Context(), cfg, logger, true)
	if err != nil {
		return err
	}
	defer cat.close()

	if err = cat.seed(cmd.Context(), fixture); err != nil {
		return err
	}
	logger.Info("catalog seeded",
		slog.Int("contents", len(fixture.Contents)),
		slog.Int("ads", len(fixture.Ads)),
		slog.Int("slider_ads", len(fixture.SliderAds)),
		slog.Int("pinned", len(fixture.Pinned)))
	return nil
}
