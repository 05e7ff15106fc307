package units

import (
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/unitconv/pkg/errors"
	"github.com/arthur-debert/unitconv/pkg/logging"
	"github.com/arthur-debert/unitconv/pkg/registry"
)

const (
	// AbsoluteZeroCelsius is the lowest valid temperature, in Celsius
	AbsoluteZeroCelsius = -273.15

	// MaxMagnitude bounds every input value before it is transformed
	MaxMagnitude = 1e6
)

// Messages carried by conversion errors
const (
	MsgBelowAbsoluteZero = "Temperature value below absolute zero is not valid."
	MsgNegativeValue     = "Negative %s values are not valid."
	MsgUnknownConversion = "Invalid conversion type: %s"
	MsgNotANumber        = "Value is not a number."
)

// Converter validates, clamps and applies the built-in conversions.
// The zero value is not usable; create one with New.
type Converter struct {
	entries registry.Registry[Entry]
	logger  zerolog.Logger
}

// New builds a Converter holding the sixteen built-in conversions
func New() *Converter {
	table := builtinEntries()
	entries := make([]registry.Entry[Entry], 0, len(table))
	for _, e := range table {
		entries = append(entries, registry.Entry[Entry]{Name: e.Name(), Item: e})
	}
	return &Converter{
		entries: registry.MustNew(entries),
		logger:  logging.GetLogger("units"),
	}
}

// Convert validates value against the categories implied by name, clamps it
// to [-MaxMagnitude, MaxMagnitude] and applies the named transform.
func (c *Converter) Convert(name string, value float64) (float64, error) {
	clamped, err := c.Validate(name, value)
	if err != nil {
		return 0, err
	}

	entry, err := c.Lookup(name)
	if err != nil {
		return 0, err
	}

	result := entry.Transform(clamped)
	c.logger.Trace().
		Str("conversion", name).
		Float64("value", value).
		Float64("clamped", clamped).
		Float64("result", result).
		Msg("Converted value")

	return result, nil
}

// Apply runs a typed conversion. It behaves exactly like Convert with the
// conversion's name.
func (c *Converter) Apply(conv Conversion, value float64) (float64, error) {
	return c.Convert(conv.String(), value)
}

// Validate runs the checks Convert performs before lookup and returns the
// clamped value. Checks run in a fixed order: temperature, distance,
// weight, volume, then clamping. Names that match no category are only
// clamped, so an unknown name fails at lookup whatever the value.
func (c *Converter) Validate(name string, value float64) (float64, error) {
	cats := DetectCategories(name)
	if len(cats) > 0 && math.IsNaN(value) {
		return 0, errors.New(errors.ErrNotANumber, MsgNotANumber).
			WithDetail("name", name)
	}

	for _, cat := range cats {
		switch cat {
		case Temperature:
			if CelsiusEquivalent(name, value) < AbsoluteZeroCelsius {
				return 0, errors.New(errors.ErrBelowAbsoluteZero, MsgBelowAbsoluteZero).
					WithDetail("name", name).
					WithDetail("value", value)
			}
		default:
			if value < 0 {
				return 0, errors.Newf(errors.ErrNegativeValue, MsgNegativeValue, cat).
					WithDetail("name", name).
					WithDetail("category", cat.String()).
					WithDetail("value", value)
			}
		}
	}

	return Clamp(value), nil
}

// Lookup returns the entry registered under name
func (c *Converter) Lookup(name string) (Entry, error) {
	entry, err := c.entries.Get(name)
	if err != nil {
		return Entry{}, errors.Newf(errors.ErrUnknownConversion, MsgUnknownConversion, name).
			WithDetail("name", name)
	}
	return entry, nil
}

// Entries returns all conversions in table order
func (c *Converter) Entries() []Entry {
	return c.entries.Items()
}

// ByCategory returns the conversions of one category in table order
func (c *Converter) ByCategory(cat Category) []Entry {
	var found []Entry
	for _, e := range c.entries.Items() {
		if e.Category == cat {
			found = append(found, e)
		}
	}
	return found
}

// Names returns every registered conversion name, sorted
func (c *Converter) Names() []string {
	return c.entries.List()
}

// Count returns the number of registered conversions
func (c *Converter) Count() int {
	return c.entries.Count()
}

// Clamp bounds v to the closed range [-MaxMagnitude, MaxMagnitude]
func Clamp(v float64) float64 {
	if v > MaxMagnitude {
		return MaxMagnitude
	}
	if v < -MaxMagnitude {
		return -MaxMagnitude
	}
	return v
}

// CelsiusEquivalent interprets v in the source unit of name and returns it
// in Celsius. The source unit is read from the part of the name before
// "To": Fahrenheit and Kelvin are converted, anything else is taken as
// Celsius already.
func CelsiusEquivalent(name string, v float64) float64 {
	source := SourceSegment(name)
	switch {
	case strings.Contains(source, "Fahrenheit"):
		return (v - 32.0) * 5.0 / 9.0
	case strings.Contains(source, "Kelvin"):
		return v - 273.15
	default:
		return v
	}
}

// SourceSegment returns the part of a conversion name that names the input
// unit: everything before the first "To", or the whole name.
func SourceSegment(name string) string {
	if i := strings.Index(name, "To"); i >= 0 {
		return name[:i]
	}
	return name
}
