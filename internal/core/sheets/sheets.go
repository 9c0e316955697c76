// Package sheets registers the CSV layouts the seed tools read.
//
// Import it for side effects:
//
//	import _ "github.com/JonMunkholm/drinkseed/internal/core/sheets"
package sheets

import "github.com/JonMunkholm/drinkseed/internal/core"

// Sheet keys.
const (
	Drinks            = "drinks"
	DrinkIngredients  = "drink_ingredients"
	IngredientCatalog = "ingredient_catalog"
	FlavorProfiles    = "flavor_profiles"
	Cocktails         = "cocktails"
	Garnishes         = "garnishes"
)

// FlavorDimensions lists the flavor profile columns in output order.
var FlavorDimensions = []string{
	"sweetness", "sourness", "bitterness", "saltiness", "umami", "spiciness",
	"herbal", "fruity", "floral", "smoky", "complexity", "intensity",
}

func init() {
	registerDrinks()
	registerDrinkIngredients()
	registerIngredientCatalog()
	registerFlavorProfiles()
	registerCocktails()
	registerGarnishes()
}

func registerDrinks() {
	core.Register(core.SheetDefinition{
		Info: core.SheetInfo{Key: Drinks, Label: "Drinks"},
		FieldSpecs: []core.FieldSpec{
			{Name: "name", Type: core.FieldText, Required: true},
			{Name: "description", Type: core.FieldText, AllowEmpty: true},
			{Name: "glass_type", Type: core.FieldText, AllowEmpty: true},
			{Name: "build_method", Type: core.FieldText, AllowEmpty: true},
			{Name: "garnish", Type: core.FieldText, AllowEmpty: true},
		},
	})
}

func registerDrinkIngredients() {
	core.Register(core.SheetDefinition{
		Info: core.SheetInfo{Key: DrinkIngredients, Label: "Drink Ingredients"},
		FieldSpecs: []core.FieldSpec{
			{Name: "drink_name", Type: core.FieldText, Required: true},
			{Name: "ingredient_name", Type: core.FieldText, Required: true, AllowEmpty: true},
			{Name: "amount", Type: core.FieldText, AllowEmpty: true},
			{Name: "unit", Type: core.FieldText, AllowEmpty: true},
		},
	})
}

func registerIngredientCatalog() {
	min, max := core.Bounds(0, 100)
	core.Register(core.SheetDefinition{
		Info: core.SheetInfo{Key: IngredientCatalog, Label: "Ingredient Catalog"},
		FieldSpecs: []core.FieldSpec{
			{Name: "name", Type: core.FieldText, Required: true, AllowEmpty: true},
			{Name: "category", Type: core.FieldText, AllowEmpty: true},
			{Name: "subcategory", Type: core.FieldText, AllowEmpty: true},
			{Name: "abv", Type: core.FieldNumeric, AllowEmpty: true, Min: min, Max: max},
		},
	})
}

func registerFlavorProfiles() {
	specs := []core.FieldSpec{
		{Name: "drink_name", Type: core.FieldText, Required: true},
	}
	for _, dim := range FlavorDimensions {
		min, max := core.Bounds(0, 10)
		specs = append(specs, core.FieldSpec{
			Name: dim, Type: core.FieldNumeric, AllowEmpty: true, Min: min, Max: max,
		})
	}
	core.Register(core.SheetDefinition{
		Info:       core.SheetInfo{Key: FlavorProfiles, Label: "Flavor Profiles"},
		FieldSpecs: specs,
	})
}

func registerCocktails() {
	core.Register(core.SheetDefinition{
		Info: core.SheetInfo{Key: Cocktails, Label: "Cocktails"},
		FieldSpecs: []core.FieldSpec{
			{Name: "name", Type: core.FieldText, Required: true},
			{Name: "ingredients", Type: core.FieldText, AllowEmpty: true},
			{Name: "preparation", Type: core.FieldText, AllowEmpty: true},
			{Name: "url", Type: core.FieldText, AllowEmpty: true},
		},
	})
}

func registerGarnishes() {
	core.Register(core.SheetDefinition{
		Info: core.SheetInfo{Key: Garnishes, Label: "Garnishes"},
		FieldSpecs: []core.FieldSpec{
			{Name: "name", Type: core.FieldText, Required: true},
			{Name: "garnish", Type: core.FieldText, Required: true, AllowEmpty: true},
		},
	})
}
