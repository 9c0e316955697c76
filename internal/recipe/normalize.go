package recipe

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	mlWordRe  = regexp.MustCompile(`(?i)\bml\b`)
	abvWordRe = regexp.MustCompile(`(?i)\bABV\b`)
)

// maxAcronymLen is the longest all-caps word kept as written ("XO", "VSOP").
const maxAcronymLen = 4

type spelling struct {
	re      *regexp.Regexp
	replace string
}

// Normalizer puts ingredient names into canonical casing and spelling.
// It is safe for concurrent use.
type Normalizer struct {
	connectors map[string]bool
	spellings  []spelling
}

// NewNormalizer builds a Normalizer from the connector words and canonical
// spellings of v.
func NewNormalizer(v Vocabulary) (*Normalizer, error) {
	n := &Normalizer{connectors: make(map[string]bool, len(v.Connectors))}
	for _, c := range v.Connectors {
		n.connectors[strings.ToLower(strings.TrimSpace(c))] = true
	}
	for _, s := range v.Spellings {
		re, err := regexp.Compile("(?i)" + s.Pattern)
		if err != nil {
			return nil, err
		}
		n.spellings = append(n.spellings, spelling{re: re, replace: s.Replace})
	}
	return n, nil
}

// Normalize returns the canonical form of name. Applying it twice gives the
// same result as applying it once.
func (n *Normalizer) Normalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}

	name = mlWordRe.ReplaceAllLiteralString(name, "ml")
	name = abvWordRe.ReplaceAllLiteralString(name, "ABV")

	words := strings.Fields(name)
	out := make([]string, 0, len(words))
	for _, w := range words {
		switch {
		case isUpperWord(w) && utf8.RuneCountInString(w) <= maxAcronymLen:
			out = append(out, w)
		case len(out) > 0 && n.connectors[strings.ToLower(w)]:
			out = append(out, strings.ToLower(w))
		default:
			out = append(out, capitalize(w))
		}
	}

	normalized := strings.Join(out, " ")
	for _, s := range n.spellings {
		normalized = s.re.ReplaceAllLiteralString(normalized, s.replace)
	}
	return normalized
}

// isUpperWord reports whether w has at least one cased letter and no
// lower-case or title-case letters.
func isUpperWord(w string) bool {
	cased := false
	for _, r := range w {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

// capitalize title-cases the first rune of w and lower-cases the rest.
func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return strings.ToLower(w)
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(w[size:])
}

// titleWords upper-cases every letter that follows a non-letter and
// lower-cases the others: "lime wheel" becomes "Lime Wheel".
func titleWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
