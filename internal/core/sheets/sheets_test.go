package sheets

import (
	"strings"
	"testing"

	"github.com/JonMunkholm/drinkseed/internal/core"
)

func TestRegistered(t *testing.T) {
	for _, key := range []string{Drinks, DrinkIngredients, IngredientCatalog, FlavorProfiles, Cocktails, Garnishes} {
		if _, ok := core.Get(key); !ok {
			t.Errorf("sheet %q not registered", key)
		}
	}
}

func TestFlavorProfilesColumns(t *testing.T) {
	def := core.MustGet(FlavorProfiles)
	if len(def.FieldSpecs) != 1+len(FlavorDimensions) {
		t.Fatalf("len(FieldSpecs) = %d, want %d", len(def.FieldSpecs), 1+len(FlavorDimensions))
	}

	spec, ok := def.Spec("Intensity")
	if !ok {
		t.Fatal("intensity spec missing")
	}
	if err := core.ValidateCell("10.5", spec); err == nil {
		t.Error("10.5 should be out of range")
	}
	if err := core.ValidateCell("7", spec); err != nil {
		t.Errorf("7 should be valid: %v", err)
	}
}

func TestGarnishSheetRequiresBothColumns(t *testing.T) {
	_, err := core.ReadSheet(strings.NewReader("name\nNegroni\n"), core.MustGet(Garnishes), 0)
	if err == nil || !strings.Contains(err.Error(), "garnish") {
		t.Fatalf("err = %v, want missing garnish column", err)
	}
}
