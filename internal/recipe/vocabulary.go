package recipe

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Spelling is a canonical spelling applied after casing. Pattern is matched
// case-insensitively and the whole match is replaced with Replace.
type Spelling struct {
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
}

// KeywordGroup maps any of Keywords, found in preparation text, to Name.
type KeywordGroup struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Vocabulary holds every word list the normalizer and the inference tables
// use. Order matters in Spellings, Glasses and BuildMethods: the first entry
// that applies wins.
type Vocabulary struct {
	Connectors   []string       `yaml:"connectors"`
	Spellings    []Spelling     `yaml:"spellings"`
	Glasses      []KeywordGroup `yaml:"glasses"`
	BuildMethods []KeywordGroup `yaml:"build_methods"`
	Garnishes    []string       `yaml:"garnishes"`
}

// DefaultVocabulary returns the built-in word lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Connectors: []string{"de", "of", "or", "and", "the"},
		Spellings: []Spelling{
			{Pattern: `\bFresh\s+lemon\s+juice\b`, Replace: "Fresh Lemon Juice"},
			{Pattern: `\bFresh\s+lime\s+juice\b`, Replace: "Fresh Lime Juice"},
			{Pattern: `\bFresh\s+orange\s+juice\b`, Replace: "Fresh Orange Juice"},
			{Pattern: `\bAngostura\s+bitters\b`, Replace: "Angostura Bitters"},
			{Pattern: `\bEgg\s+white\b`, Replace: "Egg White"},
			{Pattern: `\bEgg\s+yolk\b`, Replace: "Egg Yolk"},
			{Pattern: `\bSimple\s+syrup\b`, Replace: "Simple Syrup"},
			{Pattern: `\bSugar\s+syrup\b`, Replace: "Sugar Syrup"},
		},
		Glasses: []KeywordGroup{
			{Name: "Martini", Keywords: []string{"martini", "cocktail glass"}},
			{Name: "Coupe", Keywords: []string{"coupe", "goblet"}},
			{Name: "Rocks", Keywords: []string{"rocks", "old fashioned", "old-fashioned"}},
			{Name: "Highball", Keywords: []string{"highball", "collins", "tumbler"}},
			{Name: "Flute", Keywords: []string{"flute", "champagne"}},
			{Name: "Hurricane", Keywords: []string{"hurricane"}},
			{Name: "Julep", Keywords: []string{"julep"}},
			{Name: "Copo", Keywords: []string{"copo"}},
		},
		BuildMethods: []KeywordGroup{
			{Name: "Shaken", Keywords: []string{"shake", "shaker", "shaken"}},
			{Name: "Stirred", Keywords: []string{"stir", "stirred", "mixing glass"}},
			{Name: "In Glass", Keywords: []string{"build", "pour directly", "fill"}},
			{Name: "Blended", Keywords: []string{"blend", "blender"}},
		},
		Garnishes: []string{
			"orange peel", "lemon twist", "lime wedge", "cherry", "olive",
			"nutmeg", "mint", "basil", "lime wheel", "lemon wheel",
			"orange slice", "pineapple", "celery",
		},
	}
}

// LoadVocabulary reads a YAML override file. Every list present in the file
// replaces the matching default list; absent lists keep their defaults. An
// empty path returns the defaults.
func LoadVocabulary(path string) (Vocabulary, error) {
	v := DefaultVocabulary()
	if path == "" {
		return v, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary: %w", err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary overlays YAML data on the defaults and validates the result.
func ParseVocabulary(data []byte) (Vocabulary, error) {
	var override Vocabulary
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Vocabulary{}, fmt.Errorf("parse vocabulary: %w", err)
	}

	v := DefaultVocabulary()
	if override.Connectors != nil {
		v.Connectors = override.Connectors
	}
	if override.Spellings != nil {
		v.Spellings = override.Spellings
	}
	if override.Glasses != nil {
		v.Glasses = override.Glasses
	}
	if override.BuildMethods != nil {
		v.BuildMethods = override.BuildMethods
	}
	if override.Garnishes != nil {
		v.Garnishes = override.Garnishes
	}

	if err := v.Validate(); err != nil {
		return Vocabulary{}, err
	}
	return v, nil
}

// Validate checks that every spelling compiles and every keyword group is
// named. All problems are reported together.
func (v Vocabulary) Validate() error {
	var errs []error
	for i, s := range v.Spellings {
		if _, err := regexp.Compile("(?i)" + s.Pattern); err != nil {
			errs = append(errs, fmt.Errorf("spellings[%d]: %w", i, err))
		}
		if strings.TrimSpace(s.Replace) == "" {
			errs = append(errs, fmt.Errorf("spellings[%d]: replace is empty", i))
		}
	}
	for i, g := range v.Glasses {
		if strings.TrimSpace(g.Name) == "" {
			errs = append(errs, fmt.Errorf("glasses[%d]: name is empty", i))
		}
	}
	for i, g := range v.BuildMethods {
		if strings.TrimSpace(g.Name) == "" {
			errs = append(errs, fmt.Errorf("build_methods[%d]: name is empty", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid vocabulary: %w", errors.Join(errs...))
	}
	return nil
}
