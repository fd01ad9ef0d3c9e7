package recognize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/geowell-tools/wellextract/internal/model"
	"github.com/geowell-tools/wellextract/internal/units"
)

var (
	pressureRe = regexp.MustCompile(
		`(?i)(?:reservoir|wellhead|static|bottom.?hole)?\s*pressure[:\s]+(\d+(?:\.\d+)?)\s*(bar|psi|kPa|MPa)`)
	temperatureRe = regexp.MustCompile(
		`(?i)temperature[:\s]+(\d+(?:\.\d+)?)\s*°?\s*([CF])\b`)
)

// Pressure extracts the first pressure reading from a fragment, normalized
// to bar, with its context inferred from the surrounding text. Returns
// false when no pressure is present; a recognized value with an unknown
// unit is also skipped (normalization refuses to guess).
func (r *Recognizer) Pressure(text string) (model.PressureReading, bool) {
	text = Normalize(text)
	m := pressureRe.FindStringSubmatch(text)
	if m == nil {
		return model.PressureReading{}, false
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return model.PressureReading{}, false
	}
	bar, err := units.NormalizePressure(value, m[2])
	if err != nil {
		return model.PressureReading{}, false
	}

	ctx := model.ContextGeneric
	lower := strings.ToLower(text)
	if strings.Contains(lower, "reservoir") {
		ctx = model.ContextReservoir
	} else if strings.Contains(lower, "wellhead") {
		ctx = model.ContextWellhead
	}

	return model.PressureReading{Bar: bar, Context: ctx}, true
}

// Temperature extracts the first temperature reading from a fragment,
// normalized to Celsius.
func (r *Recognizer) Temperature(text string) (model.TemperatureReading, bool) {
	text = Normalize(text)
	m := temperatureRe.FindStringSubmatch(text)
	if m == nil {
		return model.TemperatureReading{}, false
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return model.TemperatureReading{}, false
	}
	celsius, err := units.NormalizeTemperature(value, m[2])
	if err != nil {
		return model.TemperatureReading{}, false
	}

	return model.TemperatureReading{Celsius: celsius}, true
}
