package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// IsFloat checks if the given string can be converted to a finite float64.
func IsFloat(str string) bool {
	_, err := ToFloat64WithError(str)
	return err == nil
}

// ToFloat64WithError parses str as a finite float64, surrounding spaces are ignored.
func ToFloat64WithError(str string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, strconv.ErrRange
	}
	return value, nil
}

// ToFloat64WithDefault converts str to float64, returning defaultVal when it cannot be parsed.
func ToFloat64WithDefault(str string, defaultVal float64) float64 {
	if value, err := ToFloat64WithError(str); err == nil {
		return value
	}
	return defaultVal
}

// Round rounds value to the given number of decimal places, halves away from zero.
func Round(value float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(value*pow) / pow
}

// FormatExact renders value with the fewest digits that parse back to the same float64.
func FormatExact(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// InRange reports whether min <= value <= max.
func InRange(value, min, max float64) bool {
	return value >= min && value <= max
}
