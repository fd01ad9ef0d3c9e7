// Package score produces a single scalar summarizing extraction trust.
// The score is a documented heuristic, not a calibrated probability: it
// rewards data availability and discounts by the fraction of merged rows
// that fail point-level physics checks.
package score

import (
	"github.com/geowell-tools/wellextract/internal/model"
	"github.com/geowell-tools/wellextract/internal/validate"
)

// Availability weights. A full extraction (trajectory + casing + merged)
// reaches base 1.0.
const (
	trajectoryWeight = 0.4
	casingWeight     = 0.3
	mergedWeight     = 0.3
)

// Scorer computes extraction confidence using the validator's point-level
// checks.
type Scorer struct {
	validator *validate.Validator
}

// New creates a Scorer backed by the given validator.
func New(v *validate.Validator) *Scorer {
	return &Scorer{validator: v}
}

// Confidence computes base × validity ratio, clamped to [0, 1]. An empty
// merged series leaves the ratio at 1.0 so a good partial extraction is
// not zeroed by a division guard.
func (s *Scorer) Confidence(trajectory []model.SurveyPoint, casing []model.CasingInterval, merged []model.MergedPoint) float64 {
	base := 0.0
	if len(trajectory) > 0 {
		base += trajectoryWeight
	}
	if len(casing) > 0 {
		base += casingWeight
	}
	if len(merged) > 0 {
		base += mergedWeight
	}

	ratio := 1.0
	if len(merged) > 0 {
		valid := 0
		for _, p := range merged {
			res, err := s.validator.MergedPoint(p)
			if err == nil && res.IsValid {
				valid++
			}
		}
		ratio = float64(valid) / float64(len(merged))
	}

	c := base * ratio
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
