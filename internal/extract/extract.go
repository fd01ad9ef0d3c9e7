// Package extract orchestrates the extraction pipeline for one well:
// fragments are scanned for candidate records, deduplicated and sorted,
// merged into a single profile, scored, and validated. Stages run strictly
// sequentially; each consumes the previous stage's full output. The
// pipeline holds no mutable state, so one Pipeline may serve concurrent
// extractions for different wells.
package extract

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/geowell-tools/wellextract/internal/config"
	"github.com/geowell-tools/wellextract/internal/merge"
	"github.com/geowell-tools/wellextract/internal/model"
	"github.com/geowell-tools/wellextract/internal/recognize"
	"github.com/geowell-tools/wellextract/internal/score"
	"github.com/geowell-tools/wellextract/internal/validate"
)

// Pipeline runs the full extraction sequence for one well.
type Pipeline struct {
	rec    *recognize.Recognizer
	val    *validate.Validator
	scorer *score.Scorer
	cfg    config.ExtractionConfig
}

// New wires a Pipeline from the two config value objects.
func New(extCfg config.ExtractionConfig, valCfg config.ValidationConfig) *Pipeline {
	v := validate.New(valCfg)
	return &Pipeline{
		rec:    recognize.New(extCfg),
		val:    v,
		scorer: score.New(v),
		cfg:    extCfg,
	}
}

// Run extracts, merges, scores and validates one fragment bundle. It never
// fails on data-quality grounds: absent data yields an empty result with
// warnings and recommendations in the report.
func (p *Pipeline) Run(bundle model.FragmentBundle) (*model.WellExtraction, *model.ValidationReport) {
	result := &model.WellExtraction{WellName: bundle.Well}

	var trajectory []model.SurveyPoint
	for _, f := range bundle.Trajectory {
		points, relevant := p.rec.Trajectory(f.Text)
		if !relevant {
			continue
		}
		trajectory = append(trajectory, points...)
	}
	result.Trajectory = recognize.DedupeTrajectory(trajectory)

	var casing []model.CasingInterval
	for _, f := range bundle.Casing {
		intervals, relevant := p.rec.Casing(f.Text)
		if !relevant {
			continue
		}
		casing = append(casing, intervals...)
	}
	result.Casing = recognize.DedupeCasing(casing)

	p.scanReadings(bundle, result)

	result.Merged = merge.Profile(result.Trajectory, result.Casing)
	result.Confidence = p.scorer.Confidence(result.Trajectory, result.Casing, result.Merged)

	report := p.buildReport(bundle, result)

	zap.L().Info("extract: pipeline complete",
		zap.String("well", bundle.Well),
		zap.Int("trajectory_points", len(result.Trajectory)),
		zap.Int("casing_intervals", len(result.Casing)),
		zap.Int("merged_points", len(result.Merged)),
		zap.Float64("confidence", result.Confidence),
		zap.Bool("valid", report.IsValid),
	)

	return result, report
}

// RunSurvey validates and scores a trajectory read from a structured
// survey file, bypassing text recognition. Casing and readings stay
// empty; the report flags them as missing.
func (p *Pipeline) RunSurvey(well string, points []model.SurveyPoint) (*model.WellExtraction, *model.ValidationReport) {
	result := &model.WellExtraction{WellName: well}
	result.Trajectory = recognize.DedupeTrajectory(points)
	result.Confidence = p.scorer.Confidence(result.Trajectory, nil, nil)

	report := p.buildReport(model.FragmentBundle{Well: well}, result)

	zap.L().Info("extract: survey import complete",
		zap.String("well", well),
		zap.Int("trajectory_points", len(result.Trajectory)),
		zap.Float64("confidence", result.Confidence),
		zap.Bool("valid", report.IsValid),
	)

	return result, report
}

// scanReadings walks every fragment for pressure and temperature; the
// first recognized reading per category wins.
func (p *Pipeline) scanReadings(bundle model.FragmentBundle, result *model.WellExtraction) {
	all := make([]model.Fragment, 0, len(bundle.Trajectory)+len(bundle.Casing)+len(bundle.Other))
	all = append(all, bundle.Other...)
	all = append(all, bundle.Trajectory...)
	all = append(all, bundle.Casing...)

	for _, f := range all {
		if result.Pressure == nil {
			if pr, ok := p.rec.Pressure(f.Text); ok {
				result.Pressure = &pr
			}
		}
		if result.Temperature == nil {
			if tr, ok := p.rec.Temperature(f.Text); ok {
				result.Temperature = &tr
			}
		}
		if result.Pressure != nil && result.Temperature != nil {
			return
		}
	}
}

// buildReport validates the assembled extraction and produces the
// human-facing report: hard findings, soft warnings, and recommendations
// for absent data categories.
func (p *Pipeline) buildReport(bundle model.FragmentBundle, result *model.WellExtraction) *model.ValidationReport {
	report := &model.ValidationReport{
		IsValid:    true,
		Confidence: result.Confidence,
	}

	if len(result.Trajectory) > 0 {
		res := p.val.Sequence(result.Trajectory)
		result.Validations = append(result.Validations, res)
		if !res.IsValid {
			report.IsValid = false
			for _, e := range res.Errors {
				report.Errors = append(report.Errors, "Trajectory: "+e)
			}
		}
		for _, w := range res.Warnings {
			report.Warnings = append(report.Warnings, "Trajectory: "+w)
		}
	} else {
		report.Warnings = append(report.Warnings, "No trajectory data extracted")
	}

	if len(result.Casing) > 0 {
		for i, iv := range result.Casing {
			res := p.val.Diameter(iv.PipeID)
			result.Validations = append(result.Validations, res)
			if !res.IsValid {
				report.IsValid = false
				for _, e := range res.Errors {
					report.Errors = append(report.Errors, fmt.Sprintf("Casing interval %d: %s", i, e))
				}
			}
			for _, w := range res.Warnings {
				report.Warnings = append(report.Warnings, fmt.Sprintf("Casing interval %d: %s", i, w))
			}
		}
	} else {
		report.Warnings = append(report.Warnings, "No casing data extracted")
	}

	if len(result.Merged) > 0 {
		res := p.val.MergedSequence(result.Merged)
		result.Validations = append(result.Validations, res)
		if !res.IsValid {
			report.IsValid = false
			for _, e := range res.Errors {
				report.Errors = append(report.Errors, "Merged: "+e)
			}
		}
		for _, w := range res.Warnings {
			report.Warnings = append(report.Warnings, "Merged: "+w)
		}
	} else if len(result.Trajectory) > 0 && len(result.Casing) > 0 {
		report.Warnings = append(report.Warnings, "Trajectory and casing data exist but not merged")
	}

	if result.Pressure != nil {
		res := p.val.Pressure(*result.Pressure)
		result.Validations = append(result.Validations, res)
		if !res.IsValid {
			report.IsValid = false
			report.Errors = append(report.Errors, res.Errors...)
		}
		report.Warnings = append(report.Warnings, res.Warnings...)
	}
	if result.Temperature != nil {
		res := p.val.Temperature(result.Temperature.Celsius)
		result.Validations = append(result.Validations, res)
		if !res.IsValid {
			report.IsValid = false
			report.Errors = append(report.Errors, res.Errors...)
		}
		report.Warnings = append(report.Warnings, res.Warnings...)
	}

	p.checkWellNames(bundle, report)

	if result.Confidence < p.cfg.ConfidenceThreshold {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("Confidence (%.2f) below threshold (%.2f)", result.Confidence, p.cfg.ConfidenceThreshold))
		report.Recommendations = append(report.Recommendations,
			"Consider manually reviewing extracted data or providing additional context")
	}

	switch {
	case len(result.Trajectory) == 0 && len(result.Casing) == 0:
		report.Recommendations = append(report.Recommendations,
			"No well data extracted. Check if the report contains trajectory and casing information.")
	case len(result.Trajectory) == 0:
		report.Recommendations = append(report.Recommendations,
			"Missing trajectory data. Look for pages with 'MD', 'TVD', 'Inclination' tables.")
	case len(result.Casing) == 0:
		report.Recommendations = append(report.Recommendations,
			"Missing casing data. Look for pages with 'casing design' or 'tubular schematic'.")
	}

	return report
}

// checkWellNames warns when the fragments name wells but none of them is
// the requested one, a sign the retrieval step picked up a neighbor well.
func (p *Pipeline) checkWellNames(bundle model.FragmentBundle, report *model.ValidationReport) {
	if bundle.Well == "" {
		return
	}

	var mentioned []string
	seen := map[string]struct{}{}
	collect := func(frags []model.Fragment) {
		for _, f := range frags {
			for _, n := range recognize.WellNames(f.Text) {
				if _, ok := seen[n]; !ok {
					seen[n] = struct{}{}
					mentioned = append(mentioned, n)
				}
			}
		}
	}
	collect(bundle.Trajectory)
	collect(bundle.Casing)
	collect(bundle.Other)

	if len(mentioned) == 0 {
		return
	}
	for _, n := range mentioned {
		if n == bundle.Well {
			return
		}
	}
	report.Warnings = append(report.Warnings,
		fmt.Sprintf("Fragments mention wells %v but not requested well %s", mentioned, bundle.Well))
}
