package main

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/geowell-tools/wellextract/internal/extract"
	"github.com/geowell-tools/wellextract/internal/model"
	"github.com/geowell-tools/wellextract/internal/store"
)

// initStore opens the configured store backend and runs migrations.
func initStore(ctx context.Context) (store.Store, error) {
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}

// newPipeline builds the extraction pipeline from the loaded config.
func newPipeline() *extract.Pipeline {
	return extract.New(cfg.Extraction, cfg.Validation)
}

// readBundle loads a fragment bundle from a YAML file.
func readBundle(path string) (model.FragmentBundle, error) {
	var bundle model.FragmentBundle

	data, err := os.ReadFile(path)
	if err != nil {
		return bundle, eris.Wrapf(err, "read bundle %s", path)
	}
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return bundle, eris.Wrapf(err, "parse bundle %s", path)
	}
	if bundle.Well == "" && len(bundle.Trajectory) == 0 && len(bundle.Casing) == 0 && len(bundle.Other) == 0 {
		return bundle, eris.Errorf("bundle %s is empty", path)
	}
	return bundle, nil
}
