package units

import "strings"

// Category groups conversions that share a validation rule
type Category int

const (
	Temperature Category = iota
	Distance
	Weight
	Volume
)

// Categories lists every category in validation order
var Categories = []Category{Temperature, Distance, Weight, Volume}

var categoryNames = [...]string{
	Temperature: "temperature",
	Distance:    "distance",
	Weight:      "weight",
	Volume:      "volume",
}

// keywords are matched case-sensitively as substrings of a conversion name.
var categoryKeywords = [...][]string{
	Temperature: {"Celsius", "Fahrenheit", "Kelvin"},
	Distance:    {"Kilometers", "Miles", "Meters", "Feet"},
	Weight:      {"Kilograms", "Pounds", "Grams", "Ounces"},
	Volume:      {"Liters", "Gallons", "Milliliters", "FluidOunces"},
}

// String returns the lower-case category name
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Keywords returns the unit keywords that mark a name as belonging to c
func (c Category) Keywords() []string {
	if c < 0 || int(c) >= len(categoryKeywords) {
		return nil
	}
	return append([]string(nil), categoryKeywords[c]...)
}

// Matches reports whether name contains any of the category's keywords
func (c Category) Matches(name string) bool {
	if c < 0 || int(c) >= len(categoryKeywords) {
		return false
	}
	for _, kw := range categoryKeywords[c] {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// ParseCategory returns the category with the given name, ignoring case
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(s, c.String()) {
			return c, true
		}
	}
	return 0, false
}

// DetectCategories returns every category whose keywords appear in name, in
// validation order. A name can match none, one, or several categories:
// "FluidOuncesToMilliliters" matches both Weight ("Ounces") and Volume.
func DetectCategories(name string) []Category {
	var found []Category
	for _, c := range Categories {
		if c.Matches(name) {
			found = append(found, c)
		}
	}
	return found
}
