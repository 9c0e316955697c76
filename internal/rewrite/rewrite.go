// Package rewrite runs textual passes over generated seed SQL to fix unit
// formatting after the fact. Each pass touches only the amount/unit pair at
// the end of a drink_ingredients row, written as 'amount', 'unit').
package rewrite

import (
	"regexp"
	"strings"

	"github.com/JonMunkholm/drinkseed/internal/measure"
)

// Stats reports what a pass did. Found and Remaining count occurrences of the
// pass's source pattern before and after the pass; Rewritten counts the
// replacements that changed the text.
type Stats struct {
	Found     int            `json:"found"`
	Rewritten int            `json:"rewritten"`
	Remaining int            `json:"remaining"`
	Units     map[string]int `json:"units,omitempty"` // unit literal counts in the output
}

var (
	mlPairRe    = regexp.MustCompile(`'(\d+(?:\.\d+)?)('\s*,\s*')ml'\)`)
	ozPairRe    = regexp.MustCompile(`'(\d+(?:\.\d+)?)('\s*,\s*')oz'\)`)
	wrappedOz   = regexp.MustCompile(`\('([^']+)', 'oz'\)`)
	doubleParen = regexp.MustCompile(`('(?:oz|ml|dash|dashes|barspoon|bar spoon|pcs|whole|splash|pinch)')\)\)`)
)

// ConvertMl rewrites every 'N', 'ml') pair to ounces, or to one barspoon
// for 5 ml.
func ConvertMl(text string) (string, Stats) {
	stats := Stats{Found: strings.Count(text, "'ml'")}

	out := mlPairRe.ReplaceAllStringFunc(text, func(match string) string {
		m := mlPairRe.FindStringSubmatch(match)
		amount, unit, ok := measure.ConvertMl(m[1])
		if !ok {
			return match
		}
		stats.Rewritten++
		return "'" + amount + m[2] + unit + "')"
	})

	stats.Remaining = strings.Count(out, "'ml'")
	stats.Units = map[string]int{
		"oz":       strings.Count(out, "'oz'"),
		"barspoon": strings.Count(out, "'barspoon'"),
	}
	return out, stats
}

// NormalizeOz rewrites every decimal 'N', 'oz') pair to the closest standard
// bar measurement, such as '1 1/2', 'oz').
func NormalizeOz(text string) (string, Stats) {
	stats := Stats{Found: strings.Count(text, "'oz'")}

	out := ozPairRe.ReplaceAllStringFunc(text, func(match string) string {
		m := ozPairRe.FindStringSubmatch(match)
		normalized := measure.NormalizeOz(m[1])
		if normalized == m[1] {
			return match
		}
		stats.Rewritten++
		return "'" + normalized + m[2] + "oz')"
	})

	stats.Remaining = strings.Count(out, "'oz'")
	return out, stats
}

// FixOz unwraps ('v', 'oz') groups left by an earlier broken pass back to
// 'v', 'oz') and then runs NormalizeOz. Found and Rewritten include the
// unwrapped groups.
func FixOz(text string) (string, Stats) {
	unwrapped := len(wrappedOz.FindAllStringIndex(text, -1))
	text = wrappedOz.ReplaceAllString(text, "'${1}', 'oz')")

	out, stats := NormalizeOz(text)
	stats.Found += unwrapped
	stats.Rewritten += unwrapped
	return out, stats
}

// RepairParens collapses a doubled closing parenthesis after a unit literal:
// 'oz')) becomes 'oz').
func RepairParens(text string) (string, Stats) {
	found := len(doubleParen.FindAllStringIndex(text, -1))
	out := doubleParen.ReplaceAllString(text, "${1})")
	return out, Stats{
		Found:     found,
		Rewritten: found,
		Remaining: len(doubleParen.FindAllStringIndex(out, -1)),
	}
}
