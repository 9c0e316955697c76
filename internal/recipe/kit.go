// Package recipe understands cocktail recipe text: it parses ingredient
// phrases, normalizes and deduplicates ingredient names and infers glass,
// build method and garnish from preparation steps.
package recipe

import "fmt"

// Kit bundles the normalizer, parser and inferrer built from one vocabulary.
type Kit struct {
	Normalizer *Normalizer
	Parser     *Parser
	Inferrer   *Inferrer
}

// NewKit builds a Kit from v.
func NewKit(v Vocabulary, mode Mode) (*Kit, error) {
	norm, err := NewNormalizer(v)
	if err != nil {
		return nil, fmt.Errorf("invalid vocabulary: %w", err)
	}
	return &Kit{
		Normalizer: norm,
		Parser:     NewParser(norm, mode),
		Inferrer:   NewInferrer(v),
	}, nil
}

// DefaultKit builds a Kit from the built-in vocabulary.
func DefaultKit(mode Mode) *Kit {
	k, err := NewKit(DefaultVocabulary(), mode)
	if err != nil {
		panic(err)
	}
	return k
}

// NewCanon returns an empty Canon sharing the kit's normalizer.
func (k *Kit) NewCanon() *Canon {
	return NewCanon(k.Normalizer)
}

// ModeFor returns Strict when strict is set and Lenient otherwise.
func ModeFor(strict bool) Mode {
	if strict {
		return Strict
	}
	return Lenient
}
