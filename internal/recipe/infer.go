package recipe

import "strings"

// Unknown is returned by the Inferrer when no keyword matches. The SQL
// emitter writes it as NULL.
const Unknown = ""

// Inferrer guesses drink attributes from free-text preparation steps by
// case-insensitive substring search over ordered keyword tables.
type Inferrer struct {
	glasses   []KeywordGroup
	builds    []KeywordGroup
	garnishes []string
}

// NewInferrer builds an Inferrer over the keyword tables of v.
func NewInferrer(v Vocabulary) *Inferrer {
	return &Inferrer{
		glasses:   lowerGroups(v.Glasses),
		builds:    lowerGroups(v.BuildMethods),
		garnishes: lowerAll(v.Garnishes),
	}
}

// GlassType returns the first glass whose keywords appear in preparation.
func (in *Inferrer) GlassType(preparation string) string {
	return firstGroup(in.glasses, strings.ToLower(preparation))
}

// BuildMethod returns the first build method whose keywords appear in
// preparation.
func (in *Inferrer) BuildMethod(preparation string) string {
	return firstGroup(in.builds, strings.ToLower(preparation))
}

// Garnish returns every garnish keyword found in preparation, title-cased
// and joined with ", " in table order.
func (in *Inferrer) Garnish(preparation string) string {
	text := strings.ToLower(preparation)
	var found []string
	for _, g := range in.garnishes {
		if g != "" && strings.Contains(text, g) {
			found = append(found, titleWords(g))
		}
	}
	return strings.Join(found, ", ")
}

func firstGroup(groups []KeywordGroup, text string) string {
	for _, g := range groups {
		for _, kw := range g.Keywords {
			if kw != "" && strings.Contains(text, kw) {
				return g.Name
			}
		}
	}
	return Unknown
}

func lowerGroups(groups []KeywordGroup) []KeywordGroup {
	out := make([]KeywordGroup, len(groups))
	for i, g := range groups {
		out[i] = KeywordGroup{Name: g.Name, Keywords: lowerAll(g.Keywords)}
	}
	return out
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(strings.TrimSpace(w))
	}
	return out
}
