// Package units provides pure, stateless unit conversions for well data.
// Depths and diameters normalize to meters, pressure to bar, temperature
// to Celsius. Unknown unit tokens are hard errors: silently defaulting a
// unit would corrupt every downstream physics check.
package units

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// Conversion factors.
const (
	InchesToMeters = 0.0254
	FeetToMeters   = 0.3048
	PSIToBar       = 0.068948
	KPaToBar       = 0.01
	MPaToBar       = 10.0
	BarToPSI       = 14.5038
)

// NominalIDFactor approximates a casing's inner diameter from its nominal
// outer size. This is a fixed engineering approximation, not a measured
// value: wall thickness varies by weight and grade, but report text rarely
// carries it, so ID is taken as nominal OD × 0.95.
const NominalIDFactor = 0.95

// ErrMalformedUnit indicates a size string that is neither a fraction nor a
// decimal number.
var ErrMalformedUnit = eris.New("units: malformed size string")

// ErrUnknownUnit indicates an unrecognized pressure or temperature unit token.
var ErrUnknownUnit = eris.New("units: unknown unit token")

var fractionalRe = regexp.MustCompile(`^(?:(\d+)\s+)?(\d+)/(\d+)$`)

// ParseFractionalInches converts fractional inch notation to decimal
// inches: "13 3/8" → 13.375, "3/8" → 0.375, "7" → 7.0. Quote and inch
// marks are stripped first.
func ParseFractionalInches(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(`"`, "", "'", "", "″", "", "inch", "", "in.", "").Replace(s)
	s = strings.TrimSpace(s)

	if m := fractionalRe.FindStringSubmatch(s); m != nil {
		whole := 0.0
		if m[1] != "" {
			w, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, eris.Wrapf(ErrMalformedUnit, "parse %q", s)
			}
			whole = float64(w)
		}
		num, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, eris.Wrapf(ErrMalformedUnit, "parse %q", s)
		}
		den, err := strconv.Atoi(m[3])
		if err != nil || den == 0 {
			return 0, eris.Wrapf(ErrMalformedUnit, "parse %q", s)
		}
		return whole + float64(num)/float64(den), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, eris.Wrapf(ErrMalformedUnit, "parse %q", s)
	}
	return v, nil
}

// InchesToM converts inches to meters.
func InchesToM(in float64) float64 { return in * InchesToMeters }

// MToInches converts meters to inches. Exact inverse of InchesToM.
func MToInches(m float64) float64 { return m / InchesToMeters }

// FeetToM converts feet to meters.
func FeetToM(ft float64) float64 { return ft * FeetToMeters }

// MToFeet converts meters to feet.
func MToFeet(m float64) float64 { return m / FeetToMeters }

// NominalInchesToIDMeters applies the 0.95 ID approximation to a nominal
// casing size in inches and converts to meters.
func NominalInchesToIDMeters(nominal float64) float64 {
	return InchesToM(nominal * NominalIDFactor)
}

// NormalizePressure converts a pressure value in the given unit to bar.
// Recognized units: bar, psi, kPa, MPa (case-insensitive).
func NormalizePressure(value float64, unit string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "bar", "bars":
		return value, nil
	case "psi":
		return value * PSIToBar, nil
	case "kpa", "kilopascal":
		return value * KPaToBar, nil
	case "mpa", "megapascal":
		return value * MPaToBar, nil
	default:
		return 0, eris.Wrapf(ErrUnknownUnit, "pressure unit %q", unit)
	}
}

// NormalizeTemperature converts a temperature value in the given unit to
// Celsius. Recognized units: C, Celsius, F, Fahrenheit; a leading degree
// symbol is tolerated.
func NormalizeTemperature(value float64, unit string) (float64, error) {
	u := strings.ToLower(strings.TrimSpace(unit))
	u = strings.TrimPrefix(u, "°")
	switch u {
	case "c", "celsius":
		return value, nil
	case "f", "fahrenheit":
		return (value - 32) / 1.8, nil
	default:
		return 0, eris.Wrapf(ErrUnknownUnit, "temperature unit %q", unit)
	}
}

// BarToPSIValue converts bar to psi.
func BarToPSIValue(bar float64) float64 { return bar * BarToPSI }

// PSIToBarValue converts psi to bar. Inverse of BarToPSIValue within
// rounding of the published factors.
func PSIToBarValue(psi float64) float64 { return psi / BarToPSI }

// CelsiusToFahrenheit converts Celsius to Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 { return c*1.8 + 32 }

// FahrenheitToCelsius converts Fahrenheit to Celsius.
func FahrenheitToCelsius(f float64) float64 { return (f - 32) / 1.8 }
