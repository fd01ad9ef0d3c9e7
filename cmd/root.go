package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geowell-tools/wellextract/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "wellextract",
	Short: "Structured well-construction data extraction",
	Long:  "Extracts trajectory, casing design, and operating conditions from well report text fragments, validates the result against drilling physics, and merges it into a single well profile.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
