// Package recognize scans report text fragments for candidate well
// records using an ordered set of textual grammars. It is a best-effort
// heuristic recognizer: rejected matches are presumed to be unrelated
// numbers (page headers, footnotes) and are dropped silently, never
// reported as errors.
package recognize

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/geowell-tools/wellextract/internal/config"
	"github.com/geowell-tools/wellextract/internal/model"
)

// Grammar provenance confidences. Inline numeric triples are more reliable
// than zipping separately-scanned labeled values.
const (
	tripleConfidence = 0.8
	namedConfidence  = 0.7
)

// trajectoryKeywords gate trajectory extraction: a fragment needs at least
// two of these (or a structural numeric match) to be considered relevant.
var trajectoryKeywords = []string{
	"md", "tvd", "inclination", "inc", "survey", "directional",
	"measured depth", "true vertical depth", "along hole", "ah",
}

// casingKeywords gate casing extraction the same way.
var casingKeywords = []string{
	"casing", "liner", "pipe id", "drift", "tubular", "schematic",
	"inner diameter", "od", "outer diameter",
}

// trajectoryGrammars are tried in fixed priority order; the first grammar
// producing at least one accepted point wins for the whole fragment, and
// all of its non-overlapping matches are kept. The named-field grammar is
// handled separately (see namedFieldPoints).
var trajectoryGrammars = []*regexp.Regexp{
	// Whitespace-separated triple: "1000.5  995.2  1.5"
	regexp.MustCompile(`\b(\d{1,5}(?:\.\d+)?)[ \t]+(\d{1,5}(?:\.\d+)?)[ \t]+(\d{1,2}(?:\.\d+)?)\b`),
	// Tab-separated triple: "1000.5\t995.2\t1.5"
	regexp.MustCompile(`(\d{1,5}(?:\.\d+)?)\t+(\d{1,5}(?:\.\d+)?)\t+(\d{1,2}(?:\.\d+)?)`),
	// Pipe-delimited row: "| 1000.5 | 995.2 | 1.5 |"
	regexp.MustCompile(`\|\s*(\d{1,5}(?:\.\d+)?)\s*\|\s*(\d{1,5}(?:\.\d+)?)\s*\|\s*(\d{1,2}(?:\.\d+)?)\s*\|`),
}

var (
	namedMDRe  = regexp.MustCompile(`(?i)MD[:\s]+(\d+(?:\.\d+)?)\s*m`)
	namedTVDRe = regexp.MustCompile(`(?i)TVD[:\s]+(\d+(?:\.\d+)?)\s*m`)
	namedIncRe = regexp.MustCompile(`(?i)Inc[:\s]+(\d+(?:\.\d+)?)\s*[°d]`)
)

// fractionalCasingGate detects the fractional-inch-plus-casing structural
// pattern used by content gating.
var fractionalCasingGate = regexp.MustCompile(`(?i)\d+\s+\d+/\d+\s*"?\s*(?:casing|liner)`)

// foldMarks rewrites typographic variants regex patterns should not have
// to know about. Applied after NFKC normalization, which already expands
// vulgar fraction characters into digit⁄digit sequences.
var foldMarks = strings.NewReplacer(
	"″", `"`, "”", `"`, "“", `"`,
	"⁄", "/", "∕", "/",
	" ", " ",
)

// Normalize prepares fragment text for grammar matching.
func Normalize(text string) string {
	return foldMarks.Replace(norm.NFKC.String(text))
}

// Recognizer scans text fragments for candidate records. It is stateless
// after construction and safe for concurrent use.
type Recognizer struct {
	cfg config.ExtractionConfig
}

// New creates a Recognizer with the given extraction thresholds.
func New(cfg config.ExtractionConfig) *Recognizer {
	return &Recognizer{cfg: cfg}
}

// countKeywords reports how many of the given keywords occur in text
// (already lower-cased).
func countKeywords(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

// IsTrajectoryContent reports whether a fragment plausibly contains
// trajectory survey data: two or more trajectory keywords, or a structural
// numeric triple.
func (r *Recognizer) IsTrajectoryContent(text string) bool {
	text = Normalize(text)
	if countKeywords(strings.ToLower(text), trajectoryKeywords) >= 2 {
		return true
	}
	for _, g := range trajectoryGrammars {
		if g.MatchString(text) {
			return true
		}
	}
	return false
}

// IsCasingContent reports whether a fragment plausibly contains casing
// design data.
func (r *Recognizer) IsCasingContent(text string) bool {
	text = Normalize(text)
	if countKeywords(strings.ToLower(text), casingKeywords) >= 2 {
		return true
	}
	return fractionalCasingGate.MatchString(text)
}

// Trajectory extracts candidate survey points from a fragment. The second
// return reports content relevance; an irrelevant fragment yields no
// points regardless of its numbers.
func (r *Recognizer) Trajectory(text string) ([]model.SurveyPoint, bool) {
	text = Normalize(text)
	if !r.IsTrajectoryContent(text) {
		return nil, false
	}

	for _, g := range trajectoryGrammars {
		points := r.triplePoints(g, text)
		if len(points) > 0 {
			return points, true
		}
	}

	return r.namedFieldPoints(text), true
}

// triplePoints collects every non-overlapping match of one triple grammar,
// keeping only triples that pass the plausibility filter.
func (r *Recognizer) triplePoints(g *regexp.Regexp, text string) []model.SurveyPoint {
	var points []model.SurveyPoint
	for _, m := range g.FindAllStringSubmatch(text, -1) {
		md, err1 := strconv.ParseFloat(m[1], 64)
		tvd, err2 := strconv.ParseFloat(m[2], 64)
		inc, err3 := strconv.ParseFloat(m[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		if !r.plausibleTriple(md, tvd, inc) {
			continue
		}
		i := inc
		points = append(points, model.SurveyPoint{
			MD:          md,
			TVD:         tvd,
			Inclination: &i,
			Confidence:  tripleConfidence,
		})
	}
	return points
}

// plausibleTriple filters out number triples that cannot be survey
// stations: table headers, page numbers, dates.
func (r *Recognizer) plausibleTriple(md, tvd, inc float64) bool {
	maxDepth := r.cfg.MaxDepthM
	if maxDepth <= 0 {
		maxDepth = config.DefaultExtraction().MaxDepthM
	}
	return md >= tvd && md >= 0 && md <= maxDepth && inc >= 0 && inc <= 90
}

// namedFieldPoints reads explicit "MD: 1000 m" style labels and zips them
// positionally. Zipping across separate label scans is only trusted when
// the MD and TVD counts agree.
func (r *Recognizer) namedFieldPoints(text string) []model.SurveyPoint {
	mds := namedMDRe.FindAllStringSubmatch(text, -1)
	tvds := namedTVDRe.FindAllStringSubmatch(text, -1)
	incs := namedIncRe.FindAllStringSubmatch(text, -1)

	if len(mds) == 0 || len(mds) != len(tvds) {
		return nil
	}

	var points []model.SurveyPoint
	for i := range mds {
		md, err1 := strconv.ParseFloat(mds[i][1], 64)
		tvd, err2 := strconv.ParseFloat(tvds[i][1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		p := model.SurveyPoint{MD: md, TVD: tvd, Confidence: namedConfidence}
		if i < len(incs) {
			if inc, err := strconv.ParseFloat(incs[i][1], 64); err == nil {
				p.Inclination = &inc
			}
		}
		if inc := p.Inclination; !r.plausibleTriple(md, tvd, derefOrZero(inc)) {
			continue
		}
		points = append(points, p)
	}
	return points
}

func derefOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
