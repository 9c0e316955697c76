package recipe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferrer(t *testing.T) {
	in := NewInferrer(DefaultVocabulary())

	tests := []struct {
		name        string
		preparation string
		glass       string
		build       string
		garnish     string
	}{
		{
			name:        "shaken martini",
			preparation: "Shake and strain into a chilled cocktail glass. Garnish with orange peel and a cherry.",
			glass:       "Martini",
			build:       "Shaken",
			garnish:     "Orange Peel, Cherry",
		},
		{
			name:        "stir beats build",
			preparation: "Build in an Old Fashioned glass over ice, stir gently.",
			glass:       "Rocks",
			build:       "Stirred",
			garnish:     Unknown,
		},
		{
			name:        "filled highball",
			preparation: "Pour into a highball filled with ice. Top with mint sprig and lime wheel.",
			glass:       "Highball",
			build:       "In Glass",
			garnish:     "Mint, Lime Wheel",
		},
		{
			name:        "table order decides glass",
			preparation: "Serve in a coupe or a martini glass",
			glass:       "Martini",
			build:       Unknown,
			garnish:     Unknown,
		},
		{
			name:        "blended",
			preparation: "BLEND with crushed ice and pour into a hurricane glass",
			glass:       "Hurricane",
			build:       "Blended",
			garnish:     Unknown,
		},
		{
			name:        "nothing",
			preparation: "",
			glass:       Unknown,
			build:       Unknown,
			garnish:     Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.glass, in.GlassType(tt.preparation))
			assert.Equal(t, tt.build, in.BuildMethod(tt.preparation))
			assert.Equal(t, tt.garnish, in.Garnish(tt.preparation))
		})
	}
}

func TestParseVocabulary_Overlay(t *testing.T) {
	data := []byte(`
glasses:
  - name: Nick and Nora
    keywords: [Nick]
garnishes: [Orange Twist]
`)
	v, err := ParseVocabulary(data)
	require.NoError(t, err)

	assert.Equal(t, DefaultVocabulary().Connectors, v.Connectors)
	assert.Equal(t, DefaultVocabulary().BuildMethods, v.BuildMethods)
	require.Len(t, v.Glasses, 1)

	in := NewInferrer(v)
	assert.Equal(t, "Nick and Nora", in.GlassType("Strain into a chilled nick & nora... nick glass"))
	assert.Equal(t, Unknown, in.GlassType("martini glass"))
	assert.Equal(t, "Orange Twist", in.Garnish("express an orange twist"))
}

func TestParseVocabulary_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "connectors: ["},
		{"bad pattern", "spellings:\n  - pattern: '(('\n    replace: X\n"},
		{"empty replace", "spellings:\n  - pattern: 'x'\n    replace: ''\n"},
		{"unnamed glass", "glasses:\n  - keywords: [coupe]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVocabulary([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "vocabulary")
		})
	}
}

func TestLoadVocabulary(t *testing.T) {
	v, err := LoadVocabulary("")
	require.NoError(t, err)
	assert.Equal(t, DefaultVocabulary(), v)

	path := filepath.Join(t.TempDir(), "vocabulary.yaml")
	require.NoError(t, os.WriteFile(path, []byte("connectors: [di, da]\n"), 0o644))

	v, err = LoadVocabulary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"di", "da"}, v.Connectors)

	_, err = LoadVocabulary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewKit(t *testing.T) {
	v := DefaultVocabulary()
	v.Spellings = []Spelling{{Pattern: `\bTriple\s+sec\b`, Replace: "Triple Sec"}}

	k, err := NewKit(v, Strict)
	require.NoError(t, err)
	assert.Equal(t, Strict, k.Parser.Mode())

	c := k.NewCanon()
	assert.Equal(t, "Triple Sec", c.Resolve("triple sec"))

	v.Spellings = []Spelling{{Pattern: `((`, Replace: "x"}}
	_, err = NewKit(v, Lenient)
	assert.Error(t, err)

	assert.Equal(t, Strict, ModeFor(true))
	assert.Equal(t, Lenient, ModeFor(false))
}
