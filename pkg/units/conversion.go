package units

// Conversion identifies one of the fixed directional unit conversions
type Conversion int

const (
	CelsiusToFahrenheit Conversion = iota
	FahrenheitToCelsius
	CelsiusToKelvin
	KelvinToCelsius
	KilometersToMiles
	MilesToKilometers
	MetersToFeet
	FeetToMeters
	KilogramsToPounds
	PoundsToKilograms
	GramsToOunces
	OuncesToGrams
	LitersToGallons
	GallonsToLiters
	MillilitersToFluidOunces
	FluidOuncesToMilliliters

	numConversions
)

var conversionNames = [numConversions]string{
	CelsiusToFahrenheit:      "CelsiusToFahrenheit",
	FahrenheitToCelsius:      "FahrenheitToCelsius",
	CelsiusToKelvin:          "CelsiusToKelvin",
	KelvinToCelsius:          "KelvinToCelsius",
	KilometersToMiles:        "KilometersToMiles",
	MilesToKilometers:        "MilesToKilometers",
	MetersToFeet:             "MetersToFeet",
	FeetToMeters:             "FeetToMeters",
	KilogramsToPounds:        "KilogramsToPounds",
	PoundsToKilograms:        "PoundsToKilograms",
	GramsToOunces:            "GramsToOunces",
	OuncesToGrams:            "OuncesToGrams",
	LitersToGallons:          "LitersToGallons",
	GallonsToLiters:          "GallonsToLiters",
	MillilitersToFluidOunces: "MillilitersToFluidOunces",
	FluidOuncesToMilliliters: "FluidOuncesToMilliliters",
}

// String returns the canonical conversion name, e.g. "CelsiusToFahrenheit"
func (c Conversion) String() string {
	if !c.Valid() {
		return "Conversion(invalid)"
	}
	return conversionNames[c]
}

// Valid reports whether c is one of the defined conversions
func (c Conversion) Valid() bool {
	return c >= 0 && c < numConversions
}

// Inverse returns the conversion that undoes c. Conversions are declared in
// forward/inverse pairs.
func (c Conversion) Inverse() Conversion {
	if c%2 == 0 {
		return c + 1
	}
	return c - 1
}

// ParseConversion looks up a conversion by its exact, case-sensitive name
func ParseConversion(name string) (Conversion, bool) {
	for i, n := range conversionNames {
		if n == name {
			return Conversion(i), true
		}
	}
	return 0, false
}

// Conversions returns every conversion in table order
func Conversions() []Conversion {
	all := make([]Conversion, 0, numConversions)
	for c := Conversion(0); c < numConversions; c++ {
		all = append(all, c)
	}
	return all
}
