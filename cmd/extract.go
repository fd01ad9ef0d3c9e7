package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geowell-tools/wellextract/internal/export"
	"github.com/geowell-tools/wellextract/internal/extract"
)

var (
	extractJSON     bool
	extractXLSXPath string
	extractStore    bool
	extractDefaults bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <bundle.yaml>",
	Short: "Extract well data from a fragment bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		bundle, err := readBundle(args[0])
		if err != nil {
			return err
		}

		p := newPipeline()
		result, report := p.Run(bundle)

		if extractStore {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck

			run, err := st.CreateRun(ctx, bundle.Well)
			if err != nil {
				return err
			}
			if err := st.CompleteRun(ctx, run.ID, result, report); err != nil {
				return err
			}
			zap.L().Info("run stored", zap.String("run_id", run.ID))
		}

		if extractXLSXPath != "" {
			if err := export.WriteXLSX(extractXLSXPath, result, report); err != nil {
				return err
			}
			zap.L().Info("workbook written", zap.String("path", extractXLSXPath))
		}

		if extractJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Result any `json:"result"`
				Report any `json:"report"`
			}{result, report})
		}

		fmt.Print(extract.FormatReport(result, report))

		if extractDefaults {
			d := p.SuggestDefaults(result, cfg.Validation.DefaultFluidDensity)
			fmt.Println("## Suggested Defaults")
			if d.FluidDensity != nil {
				fmt.Printf("- Fluid density: %.0f kg/m³ (%s)\n", *d.FluidDensity, d.FluidDensitySource)
			}
			if d.InterpolationNeeded {
				fmt.Printf("- Interpolation needed: %s\n", d.InterpolationReason)
			}
			fmt.Println()
			fmt.Println(extract.MissingDataPrompt(result))
		}

		return nil
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "emit result and report as JSON")
	extractCmd.Flags().StringVar(&extractXLSXPath, "xlsx", "", "write an XLSX workbook to this path")
	extractCmd.Flags().BoolVar(&extractStore, "store", false, "persist the run to the configured store")
	extractCmd.Flags().BoolVar(&extractDefaults, "suggest-defaults", false, "print suggested defaults for missing data")
	rootCmd.AddCommand(extractCmd)
}
