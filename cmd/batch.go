package main

import (
	"context"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/geowell-tools/wellextract/internal/extract"
	"github.com/geowell-tools/wellextract/internal/store"
)

var batchLimit int

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Extract every fragment bundle in a directory",
	Long:  "Runs the extraction pipeline over every *.yaml bundle in the directory, concurrently, and persists each run to the configured store.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		paths, err := filepath.Glob(filepath.Join(args[0], "*.yaml"))
		if err != nil {
			return eris.Wrap(err, "glob bundles")
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		return processBatch(ctx, paths, batchLimit, cfg.Batch.Concurrency, st, newPipeline())
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max number of bundles to process (0 = all)")
	rootCmd.AddCommand(batchCmd)
}

// processBatch applies limit, then extracts bundles concurrently. An
// unreadable bundle fails its own run without aborting the batch.
func processBatch(ctx context.Context, paths []string, limit, concurrency int, st store.Store, p *extract.Pipeline) error {
	if len(paths) == 0 {
		zap.L().Info("no bundles found")
		return nil
	}

	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}

	zap.L().Info("processing batch",
		zap.Int("bundles", len(paths)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for _, path := range paths {
		g.Go(func() error {
			log := zap.L().With(zap.String("bundle", path))

			bundle, err := readBundle(path)
			if err != nil {
				failed.Add(1)
				log.Error("bundle unreadable", zap.Error(err))
				return nil // don't abort batch on individual failure
			}

			run, err := st.CreateRun(gctx, bundle.Well)
			if err != nil {
				failed.Add(1)
				log.Error("create run failed", zap.Error(err))
				return nil
			}

			result, report := p.Run(bundle)
			if err := st.CompleteRun(gctx, run.ID, result, report); err != nil {
				failed.Add(1)
				log.Error("store run failed", zap.String("run_id", run.ID), zap.Error(err))
				return nil
			}

			succeeded.Add(1)
			log.Info("extraction complete",
				zap.String("run_id", run.ID),
				zap.String("well", bundle.Well),
				zap.Float64("confidence", result.Confidence),
				zap.Bool("valid", report.IsValid),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "batch processing")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return nil
}
