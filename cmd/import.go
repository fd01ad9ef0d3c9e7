package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geowell-tools/wellextract/internal/extract"
	"github.com/geowell-tools/wellextract/internal/ingest"
	"github.com/geowell-tools/wellextract/internal/model"
)

var (
	importWell     string
	importSheet    string
	importSkipRows int
	importStore    bool
)

var importCmd = &cobra.Command{
	Use:   "import <survey.xlsx|survey.csv>",
	Short: "Import a structured survey file",
	Long:  "Reads trajectory stations from an XLSX or CSV survey (columns: MD, TVD, inclination, azimuth), validates them, and reports like a text extraction.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		points, err := readSurveyFile(args[0])
		if err != nil {
			return err
		}

		p := newPipeline()
		result, report := p.RunSurvey(importWell, points)

		if importStore {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck

			run, err := st.CreateRun(ctx, importWell)
			if err != nil {
				return err
			}
			if err := st.CompleteRun(ctx, run.ID, result, report); err != nil {
				return err
			}
			zap.L().Info("run stored", zap.String("run_id", run.ID))
		}

		fmt.Print(extract.FormatReport(result, report))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importWell, "well", "", "well name for the imported survey")
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "XLSX sheet name (default first sheet)")
	importCmd.Flags().IntVar(&importSkipRows, "skip-rows", 0, "header rows to skip")
	importCmd.Flags().BoolVar(&importStore, "store", false, "persist the run to the configured store")
	rootCmd.AddCommand(importCmd)
}

// readSurveyFile dispatches on extension.
func readSurveyFile(path string) ([]model.SurveyPoint, error) {
	switch {
	case strings.HasSuffix(path, ".xlsx"):
		return ingest.ReadSurveyXLSX(path, ingest.XLSXOptions{
			SheetName: importSheet,
			SkipRows:  importSkipRows,
		})
	case strings.HasSuffix(path, ".csv"):
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "open survey %s", path)
		}
		defer f.Close() //nolint:errcheck
		return ingest.ReadSurveyCSV(f, ingest.CSVOptions{})
	default:
		return nil, eris.Errorf("unsupported survey format: %s", path)
	}
}
