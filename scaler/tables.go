package scaler

// fraction pairs a culinary fraction's text with its value.
type fraction struct {
	text  string
	value float64
}

// fractions is checked in order by both the parser and the formatter. Eighths
// and thirds come first so that a value close to two entries prefers the more
// common kitchen measure.
var fractions = []fraction{
	{"1/8", 1.0 / 8},
	{"1/4", 1.0 / 4},
	{"1/3", 1.0 / 3},
	{"3/8", 3.0 / 8},
	{"1/2", 1.0 / 2},
	{"5/8", 5.0 / 8},
	{"2/3", 2.0 / 3},
	{"3/4", 3.0 / 4},
	{"7/8", 7.0 / 8},
	{"1/16", 1.0 / 16},
	{"3/16", 3.0 / 16},
	{"5/16", 5.0 / 16},
	{"7/16", 7.0 / 16},
	{"9/16", 9.0 / 16},
	{"11/16", 11.0 / 16},
	{"13/16", 13.0 / 16},
	{"15/16", 15.0 / 16},
}

// fractionTolerance is how close a scaled value must be to a tabulated
// fraction to be rendered as that fraction.
const fractionTolerance = 0.01

// units is the recognized vocabulary, matched in order. Within a family the
// longer spellings are listed first so the first hit is also the longest.
var units = []string{
	// Volume
	"cups", "cup", "c",
	"tablespoons", "tablespoon", "tbsp", "tbs", "tb",
	"teaspoons", "teaspoon", "tsp", "ts",
	"fluid ounces", "fluid ounce", "fl oz", "floz",
	"pints", "pint", "pt",
	"quarts", "quart", "qt",
	"gallons", "gallon", "gal",
	"milliliters", "milliliter", "millilitres", "millilitre", "ml",
	"liters", "liter", "litres", "litre", "l",

	// Weight
	"pounds", "pound", "lbs", "lb",
	"ounces", "ounce", "oz",
	"kilograms", "kilogram", "kg",
	"grams", "gram", "g",

	// Other
	"inches", "inch", "in",
	"pieces", "piece", "pc",
	"slices", "slice",
	"cloves", "clove",
	"cans", "can",
	"jars", "jar",
	"bottles", "bottle",
	"packages", "package", "pkg",
	"boxes", "box",
	"bags", "bag",
}

// Units returns a copy of the recognized unit vocabulary in match order.
func Units() []string {
	out := make([]string, len(units))
	copy(out, units)
	return out
}

// IsUnit reports whether s is a recognized unit token, ignoring case.
func IsUnit(s string) bool {
	for _, u := range units {
		if len(u) == len(s) && matchUnitAt(s, u) {
			return true
		}
	}
	return false
}
