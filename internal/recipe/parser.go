package recipe

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ingredient is one parsed ingredient line of a recipe. Amount is kept as
// text: a decimal ("30"), a fraction ("1/2") or one of the sentinels "top"
// and "splash".
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// Outcome classifies the result of parsing one phrase.
type Outcome int

const (
	// Parsed means the phrase produced an ingredient.
	Parsed Outcome = iota
	// Filler means the phrase is a bare token such as "(optional)" and is
	// dropped without a warning.
	Filler
	// Unparseable means no rule produced an ingredient with a name.
	Unparseable
)

func (o Outcome) String() string {
	switch o {
	case Parsed:
		return "parsed"
	case Filler:
		return "filler"
	default:
		return "unparseable"
	}
}

// Mode selects whether the last-resort rule runs.
type Mode int

const (
	// Lenient turns leftover text longer than two characters into an
	// ingredient with amount "1" and unit "unit".
	Lenient Mode = iota
	// Strict reports such phrases as Unparseable instead.
	Strict
)

// Match is a parsed ingredient together with the name of the rule that
// produced it.
type Match struct {
	Ingredient
	Rule string `json:"rule"`
}

type rule struct {
	name    string
	pattern *regexp.Regexp
	build   func(p *Parser, m []string) Ingredient
}

var fillerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\(optional\)$`),
	regexp.MustCompile(`(?i)^optional$`),
	regexp.MustCompile(`(?i)^few\s+drops?\s*$`),
	regexp.MustCompile(`(?i)^dash(es)?\s*$`),
}

// prefixRules run on the phrase as given, before cleanup.
var prefixRules = []rule{
	{"a_dash", regexp.MustCompile(`(?i)^a\s+dash\s+of\s+(.+)$`), fixedUnit("dash")},
	{"a_pinch", regexp.MustCompile(`(?i)^a\s+pinch\s+of\s+(.+)$`), fixedUnit("pinch")},
	{"a_splash", regexp.MustCompile(`(?i)^a\s+splash\s+of\s+(.+)$`), fixedUnit("splash")},
	{"few_dashes", regexp.MustCompile(`(?i)^few\s+dashes?\s+(.+)$`), fixedUnit("dash")},
}

var (
	mlPrefixRe       = regexp.MustCompile(`(?i)^\d+ml\s+`)
	optionalSuffixRe = regexp.MustCompile(`(?i)\s*\(optional\)\s*$`)

	cutIntoRe       = regexp.MustCompile(`(?i)\s+cut\s+into.*$`)
	noteRe          = regexp.MustCompile(`\s+\(.*\)$`)
	looseNoteRe     = regexp.MustCompile(`\s*\(.*\)$`)
	serveOnSideRe   = regexp.MustCompile(`(?i)\s+to\s+serve\s+on\s+the\s+side.*$`)
	segmentBoundary = regexp.MustCompile(`[;,]`)
)

// rules run in order on the cleaned phrase; the first match wins.
var rules = []rule{
	{"metric", regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(ml|oz|cl)\s+(.+)$`), measured},
	{"fraction_unit", regexp.MustCompile(`(?i)^(\d+/\d+)\s+(bar\s+spoon|bar\s+spoons?|lemon\s+wheel|orange\s+wheel|wheel)\s+(.+)$`), measured},
	{"fraction", regexp.MustCompile(`(?i)^(\d+/\d+)\s+(.+)$`), counted},
	{"dash_drop", regexp.MustCompile(`(?i)^(\d+)\s+(dashes?|drops?)\s+(.+)$`), dashOrDrop},
	{"whole", regexp.MustCompile(`(?i)^(\d+(?:/\d+)?)\s+(whole|pcs?|pieces?|sprigs?|leaves?|wedges?|slices?|chunks?|quarter|quarters?)\s+(.+)$`), measured},
	{"spoon", regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s+(tsp|teaspoons?|tbsp|tablespoons?|bar\s+spoons?)\s+(.+)$`), measured},
	{"top_up", regexp.MustCompile(`(?i)^(top\s+up|fill\s+up|fill)\s+(?:with\s+)?(.+)$`), sentinel("top", "up")},
	{"splash", regexp.MustCompile(`(?i)^(splash|few\s+drops?)\s+(?:of\s+)?(.+)$`), sentinel("splash", "splash")},
	{"bar_spoon", regexp.MustCompile(`(?i)^(\d+)\s+(bar\s+spoon|bar\s+spoons?)\s+(.+)$`), measured},
	// Two ingredients run together by the scraper: "Allspice Dram15 ml Lime Juice".
	// Only the second one is kept. Case-sensitive.
	{"concatenated", regexp.MustCompile(`^([A-Za-z][A-Za-z\s]+)(\d+(?:\.\d+)?)\s*(ml|oz|cl)\s+(.+)$`), concatenated},
	{"count", regexp.MustCompile(`^(\d+)\s+(.+)$`), counted},
}

const fallbackRule = "fallback"

// Parser turns free-text ingredient phrases into ingredients.
// It is safe for concurrent use.
type Parser struct {
	norm *Normalizer
	mode Mode
}

// NewParser returns a Parser that normalizes names with norm.
func NewParser(norm *Normalizer, mode Mode) *Parser {
	return &Parser{norm: norm, mode: mode}
}

// Mode returns the parser's mode.
func (p *Parser) Mode() Mode {
	return p.mode
}

// Parse parses one ingredient phrase such as "30 ml White Rum".
func (p *Parser) Parse(phrase string) (Match, Outcome) {
	s := strings.TrimSpace(unifySpaces(phrase))
	if s == "" {
		return Match{}, Filler
	}

	for _, re := range fillerPatterns {
		if re.MatchString(s) {
			return Match{}, Filler
		}
	}

	for _, r := range prefixRules {
		if r.pattern.MatchString(s) {
			return p.apply(r, s)
		}
	}

	s = mlPrefixRe.ReplaceAllString(s, "")
	s = optionalSuffixRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	for _, r := range rules {
		if r.pattern.MatchString(s) {
			return p.apply(r, s)
		}
	}

	if p.mode == Strict {
		return Match{}, Unparseable
	}

	leftover := firstSegment(s)
	leftover = looseNoteRe.ReplaceAllString(leftover, "")
	leftover = serveOnSideRe.ReplaceAllString(leftover, "")
	if utf8.RuneCountInString(leftover) <= 2 {
		return Match{}, Unparseable
	}
	name := p.norm.Normalize(leftover)
	if name == "" {
		return Match{}, Unparseable
	}
	return Match{
		Ingredient: Ingredient{Name: name, Amount: "1", Unit: "unit"},
		Rule:       fallbackRule,
	}, Parsed
}

// apply builds the ingredient for a rule whose pattern matches s. A rule
// that leaves the name empty makes the phrase Unparseable.
func (p *Parser) apply(r rule, s string) (Match, Outcome) {
	ing := r.build(p, r.pattern.FindStringSubmatch(s))
	if ing.Name == "" {
		return Match{}, Unparseable
	}
	return Match{Ingredient: ing, Rule: r.name}, Parsed
}

// SplitIngredients splits a ';'-separated ingredients cell into trimmed,
// non-empty phrases.
func SplitIngredients(cell string) []string {
	var phrases []string
	for _, part := range strings.Split(cell, ";") {
		if part = strings.TrimSpace(part); part != "" {
			phrases = append(phrases, part)
		}
	}
	return phrases
}

func fixedUnit(unit string) func(*Parser, []string) Ingredient {
	return func(p *Parser, m []string) Ingredient {
		return Ingredient{Name: p.norm.Normalize(firstSegment(m[1])), Amount: "1", Unit: unit}
	}
}

func sentinel(amount, unit string) func(*Parser, []string) Ingredient {
	return func(p *Parser, m []string) Ingredient {
		return Ingredient{Name: p.norm.Normalize(firstSegment(m[2])), Amount: amount, Unit: unit}
	}
}

// measured handles the amount, unit, name rules.
func measured(p *Parser, m []string) Ingredient {
	amount, unit, name := m[1], canonicalUnit(m[2]), cleanName(m[3])

	switch unit {
	case "lemon wheel":
		name = "Lemon Wheel"
		unit = "wheel"
	case "orange wheel":
		name = "Orange Wheel"
		unit = "wheel"
	case "wheel":
		if !strings.HasSuffix(name, "Wheel") {
			name += " Wheel"
		}
	}

	return Ingredient{Name: p.norm.Normalize(name), Amount: strings.TrimSpace(amount), Unit: unit}
}

// dashOrDrop is measured with the unit in singular form: dash or drop.
func dashOrDrop(p *Parser, m []string) Ingredient {
	ing := measured(p, m)
	if strings.HasPrefix(ing.Unit, "dash") {
		ing.Unit = "dash"
	} else {
		ing.Unit = "drop"
	}
	return ing
}

// counted handles "<amount> <name>" rules, counted in pieces.
func counted(p *Parser, m []string) Ingredient {
	return Ingredient{Name: p.norm.Normalize(firstSegment(m[2])), Amount: m[1], Unit: "pcs"}
}

func concatenated(p *Parser, m []string) Ingredient {
	return Ingredient{Name: p.norm.Normalize(firstSegment(m[4])), Amount: m[2], Unit: strings.ToLower(m[3])}
}

// cleanName cuts a captured name at the first ',' or ';' and drops trailing
// preparation notes.
func cleanName(name string) string {
	name = firstSegment(name)
	name = cutIntoRe.ReplaceAllString(name, "")
	name = noteRe.ReplaceAllString(name, "")
	name = serveOnSideRe.ReplaceAllString(name, "")
	return name
}

func firstSegment(s string) string {
	return strings.TrimSpace(segmentBoundary.Split(s, 2)[0])
}

// canonicalUnit lower-cases a unit and collapses internal whitespace.
func canonicalUnit(u string) string {
	return strings.ToLower(strings.Join(strings.Fields(u), " "))
}

// unifySpaces maps every Unicode space (non-breaking spaces are common in
// scraped recipes) to an ASCII space so the patterns see it.
func unifySpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
}
