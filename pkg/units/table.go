package units

// Transform is the pure numeric function behind one conversion
type Transform func(float64) float64

// Entry is one registered conversion. Entries are immutable.
type Entry struct {
	Conversion Conversion
	Category   Category
	Formula    string
	Transform  Transform
}

// Name returns the conversion name the entry is registered under
func (e Entry) Name() string {
	return e.Conversion.String()
}

func temperatureConversions() []Entry {
	return []Entry{
		{CelsiusToFahrenheit, Temperature, "c*9/5+32", func(c float64) float64 { return c*9.0/5.0 + 32.0 }},
		{FahrenheitToCelsius, Temperature, "(f-32)*5/9", func(f float64) float64 { return (f - 32.0) * 5.0 / 9.0 }},
		{CelsiusToKelvin, Temperature, "c+273.15", func(c float64) float64 { return c + 273.15 }},
		{KelvinToCelsius, Temperature, "k-273.15", func(k float64) float64 { return k - 273.15 }},
	}
}

func distanceConversions() []Entry {
	return []Entry{
		{KilometersToMiles, Distance, "km*0.621371", func(km float64) float64 { return km * 0.621371 }},
		{MilesToKilometers, Distance, "mi/0.621371", func(mi float64) float64 { return mi / 0.621371 }},
		{MetersToFeet, Distance, "m*3.28084", func(m float64) float64 { return m * 3.28084 }},
		{FeetToMeters, Distance, "ft/3.28084", func(ft float64) float64 { return ft / 3.28084 }},
	}
}

func weightConversions() []Entry {
	return []Entry{
		{KilogramsToPounds, Weight, "kg*2.20462", func(kg float64) float64 { return kg * 2.20462 }},
		{PoundsToKilograms, Weight, "lb/2.20462", func(lb float64) float64 { return lb / 2.20462 }},
		{GramsToOunces, Weight, "g*0.035274", func(g float64) float64 { return g * 0.035274 }},
		{OuncesToGrams, Weight, "oz/0.035274", func(oz float64) float64 { return oz / 0.035274 }},
	}
}

func volumeConversions() []Entry {
	return []Entry{
		{LitersToGallons, Volume, "l*0.264172", func(l float64) float64 { return l * 0.264172 }},
		{GallonsToLiters, Volume, "gal/0.264172", func(gal float64) float64 { return gal / 0.264172 }},
		{MillilitersToFluidOunces, Volume, "ml*0.033814", func(ml float64) float64 { return ml * 0.033814 }},
		{FluidOuncesToMilliliters, Volume, "floz/0.033814", func(floz float64) float64 { return floz / 0.033814 }},
	}
}

// builtinEntries returns the full table, one category after another.
func builtinEntries() []Entry {
	var all []Entry
	all = append(all, temperatureConversions()...)
	all = append(all, distanceConversions()...)
	all = append(all, weightConversions()...)
	all = append(all, volumeConversions()...)
	return all
}
