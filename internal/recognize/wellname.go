package recognize

import (
	"regexp"
	"sort"
)

// Well naming conventions seen in the report corpus: the Dutch geothermal
// registry format (ADK-GT-01, ADK-GT-01-S1 for sidetracks) and a generic
// prefix-number form.
var wellNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`[A-Z]{2,10}-GT-\d{2}(?:-S\d+)?`),
	regexp.MustCompile(`[A-Z]{3,}-\d{2,}`),
}

// WellNames returns the unique well names found in text, sorted.
func WellNames(text string) []string {
	seen := map[string]struct{}{}
	for _, re := range wellNamePatterns {
		for _, m := range re.FindAllString(Normalize(text), -1) {
			seen[m] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
