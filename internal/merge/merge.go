// Package merge combines a trajectory series and a casing series, sampled
// at different depths, into one profile usable for downstream mechanical
// and hydraulic analysis.
package merge

import (
	"math"

	"github.com/geowell-tools/wellextract/internal/model"
)

// Profile produces one merged row per casing interval, using the casing's
// shoe depth as the row depth and filling TVD/inclination from the nearest
// trajectory point by absolute depth difference (nearest neighbor, no
// interpolation). When two stations are equidistant the shallower one wins,
// deliberately, so output is deterministic regardless of input history.
//
// A terminal row extends the last casing's diameter to total depth, but
// only when the deepest survey station is strictly deeper than the last
// generated row; otherwise the final string already reaches TD and a
// duplicate row would be emitted.
//
// Both inputs must arrive sorted ascending by depth (the recognizer's
// dedupe/sort step does this once per list); Profile does not re-sort.
// Either list empty yields an empty profile, not an error.
func Profile(trajectory []model.SurveyPoint, casing []model.CasingInterval) []model.MergedPoint {
	if len(trajectory) == 0 || len(casing) == 0 {
		return nil
	}

	merged := make([]model.MergedPoint, 0, len(casing)+1)
	for _, iv := range casing {
		nearest := nearestStation(trajectory, iv.BottomDepth)
		merged = append(merged, model.MergedPoint{
			MD:          iv.BottomDepth,
			TVD:         nearest.TVD,
			Inclination: nearest.Inclination,
			PipeID:      iv.PipeID,
		})
	}

	td := trajectory[len(trajectory)-1]
	if td.MD > merged[len(merged)-1].MD {
		merged = append(merged, model.MergedPoint{
			MD:          td.MD,
			TVD:         td.TVD,
			Inclination: td.Inclination,
			PipeID:      casing[len(casing)-1].PipeID,
		})
	}

	return merged
}

// nearestStation returns the trajectory point closest to depth by |ΔMD|.
// On a tie the lower-MD point wins: the input is sorted, so the first of
// the two encountered is the shallower.
func nearestStation(trajectory []model.SurveyPoint, depth float64) model.SurveyPoint {
	best := trajectory[0]
	bestDist := math.Abs(best.MD - depth)
	for _, p := range trajectory[1:] {
		if d := math.Abs(p.MD - depth); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
