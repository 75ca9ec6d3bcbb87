// Package bmi computes body mass index from height and weight.
//
// Height may be given with an explicit unit through Calculate, or as a
// free-form string through FromStrings, where the unit is inferred: a foot
// marker (', ′, ft, feet) selects feet, anything else is centimeters.
package bmi

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

type Unit string

const (
	UnitCentimeters Unit = "cm"
	UnitMeters      Unit = "m"
	UnitFeet        Unit = "ft"
	UnitInches      Unit = "in"
)

const (
	metersPerFoot = 0.3048
	metersPerInch = 0.0254
)

var (
	ErrInvalidHeight = errors.New("height must be a positive number")
	ErrInvalidWeight = errors.New("weight must be a positive number")
	ErrUnknownUnit   = errors.New("unknown height unit")
)

var (
	nonNumeric   = regexp.MustCompile(`[^\d.]`)
	feetAndInch  = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*(?:'|′|ft|feet)\s*(\d+(?:\.\d+)?)?\s*(?:"|″|''|in|inch|inches)?\s*$`)
	footMarkers  = []string{"'", "′", "ft", "feet"}
	validUnitSet = map[Unit]bool{UnitCentimeters: true, UnitMeters: true, UnitFeet: true, UnitInches: true}
)

type Height struct {
	Value float64
	Unit  Unit
}

func IsValidUnit(u string) bool {
	return validUnitSet[Unit(strings.ToLower(strings.TrimSpace(u)))]
}

// Meters converts the height into meters.
func (h Height) Meters() (float64, error) {
	if !isPositive(h.Value) {
		return 0, ErrInvalidHeight
	}
	switch Unit(strings.ToLower(string(h.Unit))) {
	case UnitCentimeters, "":
		return h.Value / 100, nil
	case UnitMeters:
		return h.Value, nil
	case UnitFeet:
		return h.Value * metersPerFoot, nil
	case UnitInches:
		return h.Value * metersPerInch, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownUnit, h.Unit)
	}
}

// Calculate returns the unrounded BMI for an explicit height and a weight in kilograms.
func Calculate(height Height, weightKg float64) (float64, error) {
	meters, err := height.Meters()
	if err != nil {
		return 0, err
	}
	if !isPositive(weightKg) {
		return 0, ErrInvalidWeight
	}
	value := weightKg / (meters * meters)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrInvalidHeight
	}
	return value, nil
}

// HasFootMarker reports whether the height string names feet.
func HasFootMarker(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range footMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// ParseHeight infers the unit of a free-form height string.
// Feet-and-inches notation such as 5'8" is folded into decimal feet.
func ParseHeight(s string) (Height, error) {
	if HasFootMarker(s) {
		if m := feetAndInch.FindStringSubmatch(strings.ToLower(s)); m != nil {
			feet, _ := strconv.ParseFloat(m[1], 64)
			var inches float64
			if m[2] != "" {
				inches, _ = strconv.ParseFloat(m[2], 64)
			}
			height := Height{Value: feet + inches/12, Unit: UnitFeet}
			if !isPositive(height.Value) {
				return Height{}, ErrInvalidHeight
			}
			return height, nil
		}
		value, err := ParseMagnitude(s)
		if err != nil {
			return Height{}, ErrInvalidHeight
		}
		return Height{Value: value, Unit: UnitFeet}, nil
	}

	value, err := ParseMagnitude(s)
	if err != nil {
		return Height{}, ErrInvalidHeight
	}
	return Height{Value: value, Unit: UnitCentimeters}, nil
}

// ParseHeightWithUnit honors an explicit unit and falls back to ParseHeight
// when the unit is empty or the string carries feet-and-inches notation.
func ParseHeightWithUnit(s, unit string) (Height, error) {
	unit = strings.ToLower(strings.TrimSpace(unit))
	if unit == "" || HasFootMarker(s) {
		return ParseHeight(s)
	}
	if !IsValidUnit(unit) {
		return Height{}, fmt.Errorf("%w: %s", ErrUnknownUnit, unit)
	}
	value, err := ParseMagnitude(s)
	if err != nil {
		return Height{}, ErrInvalidHeight
	}
	return Height{Value: value, Unit: Unit(unit)}, nil
}

// CalculateFromStrings parses height, unit and weight and returns the unrounded BMI.
func CalculateFromStrings(height, unit, weight string) (float64, error) {
	h, err := ParseHeightWithUnit(height, unit)
	if err != nil {
		return 0, err
	}
	w, err := ParseMagnitude(weight)
	if err != nil {
		return 0, ErrInvalidWeight
	}
	return Calculate(h, w)
}

// ParseMagnitude strips everything except digits and dots and parses the rest.
func ParseMagnitude(s string) (float64, error) {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0, strconv.ErrSyntax
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	if !isPositive(value) {
		return 0, strconv.ErrRange
	}
	return value, nil
}

// FromStrings computes BMI from free-form strings and formats it with one
// decimal. Any unusable input yields the empty string.
func FromStrings(height, weight string) string {
	h, err := ParseHeight(height)
	if err != nil {
		return ""
	}
	w, err := ParseMagnitude(weight)
	if err != nil {
		return ""
	}
	value, err := Calculate(h, w)
	if err != nil {
		return ""
	}
	return Format(value)
}

func Format(value float64) string {
	return strconv.FormatFloat(Round(value), 'f', 1, 64)
}

// Round rounds to one decimal place.
func Round(value float64) float64 {
	return math.Round(value*10) / 10
}

// Category returns the WHO adult classification of a BMI value.
func Category(value float64) string {
	switch {
	case value <= 0:
		return ""
	case value < 18.5:
		return "Underweight"
	case value < 25:
		return "Normal"
	case value < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
