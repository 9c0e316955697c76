package recipe

import (
	"sort"
	"strings"
)

// Canon deduplicates ingredient names for one run. Names that normalize to
// the same text ignoring case share one canonical spelling: the first one
// seen. A Canon is not safe for concurrent use.
type Canon struct {
	norm  *Normalizer
	byKey map[string]string
}

// NewCanon returns an empty Canon that normalizes names with norm.
func NewCanon(norm *Normalizer) *Canon {
	return &Canon{norm: norm, byKey: make(map[string]string)}
}

// Resolve returns the canonical spelling for name, registering it if this is
// the first time its case-insensitive form is seen. Empty names resolve to "".
func (c *Canon) Resolve(name string) string {
	normalized := c.norm.Normalize(name)
	if normalized == "" {
		return ""
	}

	key := strings.ToLower(normalized)
	if existing, ok := c.byKey[key]; ok {
		return existing
	}
	c.byKey[key] = normalized
	return normalized
}

// Names returns every canonical name, sorted.
func (c *Canon) Names() []string {
	names := make([]string, 0, len(c.byKey))
	for _, n := range c.byKey {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of canonical names.
func (c *Canon) Len() int {
	return len(c.byKey)
}
