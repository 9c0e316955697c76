// Package measure holds the bar measurement policy: how millilitres become
// ounces and how decimal ounces become the fractions a bartender reads.
package measure

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MlPerOz is the bar conversion used throughout: 30 ml to the ounce.
	MlPerOz = 30.0

	// BarspoonMl is the one volume converted to a barspoon instead of ounces.
	BarspoonMl = 5.0

	// Tolerance is how close a value must be to a standard measurement to
	// snap to it directly.
	Tolerance = 0.08
)

// Standard is a common bar measurement in ounces and how it is written.
type Standard struct {
	Oz      float64
	Display string
}

// Standards lists the standard measurements in ascending order.
var Standards = []Standard{
	{0.17, "1/6"},
	{0.25, "1/4"},
	{0.33, "1/3"},
	{0.5, "1/2"},
	{0.75, "3/4"},
	{1.0, "1"},
	{1.5, "1 1/2"},
	{2.0, "2"},
}

// override forces values in [lo, hi] that are not within Tolerance of a
// standard onto a chosen one: 20 ml pours as 3/4, 50 ml as 1 1/2.
type override struct {
	lo, hi  float64
	display string
}

var overrides = []override{
	{0.60, 0.70, "3/4"},
	{1.60, 1.75, "1 1/2"},
	{0.20, 0.30, "1/4"},
}

// MlToOz converts a millilitre amount. 5 ml is one barspoon; anything else
// is divided by 30 and written as an integer when whole, otherwise with two
// decimals.
func MlToOz(ml float64) (amount, unit string) {
	if ml == BarspoonMl {
		return "1", "barspoon"
	}
	oz := ml / MlPerOz
	if oz == math.Trunc(oz) {
		return strconv.FormatInt(int64(oz), 10), "oz"
	}
	return fmt.Sprintf("%.2f", oz), "oz"
}

// ClosestStandard returns the display form of the standard measurement for
// an ounce value. An exact table value maps to its own display; otherwise
// the nearest standard wins when within Tolerance, then the override
// ranges apply, and finally the nearest standard is used regardless of
// distance.
func ClosestStandard(oz float64) string {
	nearest := Standards[0]
	for _, s := range Standards {
		if s.Oz == oz {
			return s.Display
		}
		if math.Abs(s.Oz-oz) < math.Abs(nearest.Oz-oz) {
			nearest = s
		}
	}

	if math.Abs(oz-nearest.Oz) < Tolerance {
		return nearest.Display
	}
	for _, o := range overrides {
		if oz >= o.lo && oz <= o.hi {
			return o.display
		}
	}
	return nearest.Display
}

// NormalizeOz applies ClosestStandard to a textual amount. Text that is not
// a finite number is returned unchanged.
func NormalizeOz(amount string) string {
	f, ok := parseAmount(amount)
	if !ok {
		return amount
	}
	return ClosestStandard(f)
}

// ConvertMl applies MlToOz to a textual amount. ok is false, and the input
// is returned with unit "ml", when the text is not a finite number.
func ConvertMl(amount string) (newAmount, unit string, ok bool) {
	f, ok := parseAmount(amount)
	if !ok {
		return amount, "ml", false
	}
	newAmount, unit = MlToOz(f)
	return newAmount, unit, true
}

func parseAmount(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
