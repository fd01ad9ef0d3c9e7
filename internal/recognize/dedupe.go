package recognize

import (
	"math"
	"sort"

	"github.com/geowell-tools/wellextract/internal/model"
)

// depthBucketM is the resolution used to decide that two trajectory points
// are the same physical sample. Exact float equality is too fragile: the
// same station often appears twice with sub-decimeter rounding noise.
const depthBucketM = 0.1

// DedupeTrajectory collapses points that report the same physical sample,
// matched by MD rounded to depthBucketM, keeping the first encountered,
// and returns the result sorted ascending by MD. The sort is stable so
// equal-depth survivors keep their arrival order.
func DedupeTrajectory(points []model.SurveyPoint) []model.SurveyPoint {
	seen := make(map[int64]struct{}, len(points))
	out := make([]model.SurveyPoint, 0, len(points))
	for _, p := range points {
		key := int64(math.Round(p.MD / depthBucketM))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].MD < out[j].MD })
	return out
}

// DedupeCasing collapses intervals describing the same physical string
// (diameter within 0.01 m and shoe depth within 1.0 m), keeping the first
// encountered, and returns the result sorted ascending by shoe depth.
func DedupeCasing(intervals []model.CasingInterval) []model.CasingInterval {
	out := make([]model.CasingInterval, 0, len(intervals))
	for _, iv := range intervals {
		out = appendCasing(out, iv)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].BottomDepth < out[j].BottomDepth })
	return out
}
