package recognize

import (
	"regexp"
	"strconv"

	"github.com/geowell-tools/wellextract/internal/model"
	"github.com/geowell-tools/wellextract/internal/units"
)

// Casing grammars. Both are tried on every relevant fragment; duplicate
// suppression resolves the overlap where a size like `13.375"` matches the
// decimal grammar while `13 3/8"` in the same sentence matches the
// fractional one.
var (
	// Fractional-inch form: `13 3/8" production casing to 1331m`,
	// optionally with a range: `9 5/8" liner at 1298 - 2500m`.
	casingFractionalRe = regexp.MustCompile(
		`(?i)(\d+)\s+(\d+)/(\d+)\s*(?:"|'')?\s*(?:casing|liner|pipe|conductor|production)\s*(?:casing|liner)?\s*(?:to|@|at)\s*(\d+(?:\.\d+)?)\s*(?:-\s*(\d+(?:\.\d+)?))?\s*m\b`)

	// Decimal-inch form: `13.375" casing to 1331m`, `7 inch liner at 2450 - 3000m`.
	// The leading guard keeps the fraction denominator of `13 3/8"` from
	// matching as a decimal size (RE2 has no lookbehind).
	casingDecimalRe = regexp.MustCompile(
		`(?i)(?:^|[^\d/.])(\d+(?:\.\d+)?)\s*(?:"|inch|in)\s*(?:casing|liner|pipe)?\s*(?:to|@|at)\s*(\d+(?:\.\d+)?)\s*(?:-\s*(\d+(?:\.\d+)?))?\s*m\b`)
)

// Casing-level duplicate thresholds: two candidates describe the same
// physical string when both diameters and shoe depths nearly coincide.
const (
	dupDiameterToleranceM = 0.01
	dupDepthToleranceM    = 1.0
)

// Casing extracts candidate casing intervals from a fragment. Both
// grammars contribute; the first-encountered candidate wins a duplicate
// pair. The second return reports content relevance.
func (r *Recognizer) Casing(text string) ([]model.CasingInterval, bool) {
	text = Normalize(text)
	if !r.IsCasingContent(text) {
		return nil, false
	}

	var intervals []model.CasingInterval

	for _, m := range casingFractionalRe.FindAllStringSubmatch(text, -1) {
		whole, err1 := strconv.Atoi(m[1])
		num, err2 := strconv.Atoi(m[2])
		den, err3 := strconv.Atoi(m[3])
		if err1 != nil || err2 != nil || err3 != nil || den == 0 {
			continue
		}
		nominal := float64(whole) + float64(num)/float64(den)
		if iv, ok := intervalFromDepths(nominal, m[4], m[5]); ok {
			intervals = appendCasing(intervals, iv)
		}
	}

	for _, m := range casingDecimalRe.FindAllStringSubmatch(text, -1) {
		nominal, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if iv, ok := intervalFromDepths(nominal, m[2], m[3]); ok {
			intervals = appendCasing(intervals, iv)
		}
	}

	return intervals, true
}

// intervalFromDepths builds an interval from a nominal size in inches and
// the captured depth clause. With a range the first number is the top and
// the second the shoe; a single depth is the shoe with the top defaulting
// to surface.
func intervalFromDepths(nominalInches float64, first, second string) (model.CasingInterval, bool) {
	d1, err := strconv.ParseFloat(first, 64)
	if err != nil {
		return model.CasingInterval{}, false
	}

	top, bottom := 0.0, d1
	if second != "" {
		d2, err := strconv.ParseFloat(second, 64)
		if err != nil {
			return model.CasingInterval{}, false
		}
		top, bottom = d1, d2
	}
	if bottom < top {
		return model.CasingInterval{}, false
	}

	return model.CasingInterval{
		TopDepth:    top,
		BottomDepth: bottom,
		PipeID:      units.NominalInchesToIDMeters(nominalInches),
		Confidence:  tripleConfidence,
	}, true
}

// appendCasing adds iv unless an existing interval already describes the
// same physical string.
func appendCasing(intervals []model.CasingInterval, iv model.CasingInterval) []model.CasingInterval {
	for _, existing := range intervals {
		if sameCasing(existing, iv) {
			return intervals
		}
	}
	return append(intervals, iv)
}

func sameCasing(a, b model.CasingInterval) bool {
	return abs(a.PipeID-b.PipeID) < dupDiameterToleranceM &&
		abs(a.BottomDepth-b.BottomDepth) < dupDepthToleranceM
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
