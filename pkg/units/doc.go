// Package units holds the conversion registry: the sixteen fixed unit
// conversions across the temperature, distance, weight and volume
// categories, and the validation and clamping policy applied before any
// transform runs.
//
// A Converter is built once with New and is read-only afterwards:
//
//	conv := units.New()
//	f, err := conv.Convert("CelsiusToFahrenheit", 100) // 212
//
// Convert rejects physically meaningless inputs with coded errors from
// pkg/errors (BELOW_ABSOLUTE_ZERO, NEGATIVE_VALUE, UNKNOWN_CONVERSION,
// NOT_A_NUMBER) and silently clamps magnitudes above 1e6.
//
// Validation picks its rules by scanning the conversion name for unit
// keywords rather than by looking the name up first, so a misspelled
// temperature conversion is still rejected for being below absolute zero
// before it is reported as unknown.
package units
