package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geowell-tools/wellextract/internal/export"
	"github.com/geowell-tools/wellextract/internal/model"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <run-id>",
	Short: "Export a stored run to an XLSX workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		run, err := st.GetRun(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "export")
		}
		if run.Result == nil {
			return eris.Errorf("run %s has no result to export", run.ID)
		}

		report := run.Report
		if report == nil {
			report = &model.ValidationReport{}
		}

		if err := export.WriteXLSX(exportOut, run.Result, report); err != nil {
			return err
		}
		zap.L().Info("workbook written",
			zap.String("run_id", run.ID),
			zap.String("path", exportOut),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "well.xlsx", "output workbook path")
	rootCmd.AddCommand(exportCmd)
}
