// Package seed turns sheets of drink data into seed SQL scripts.
//
// A Seed is built in memory from fully read sheets (FromSheets for the
// spreadsheet exports, FromCocktails for scraped recipes) and rendered to a
// sqlgen.Script in one go. Problems with individual rows are logged as
// warnings and never abort a run.
package seed

import (
	"log/slog"
	"path/filepath"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JonMunkholm/drinkseed/internal/core"
	"github.com/JonMunkholm/drinkseed/internal/core/sheets"
	"github.com/JonMunkholm/drinkseed/internal/sqlgen"
)

// DefaultDescriptionMaxLength is used when Options leaves the limit unset.
const DefaultDescriptionMaxLength = 200

// Options tunes how rows become statements.
type Options struct {
	// DescriptionMaxLength caps drink descriptions in characters.
	DescriptionMaxLength int
}

func (o Options) truncate(s string) string {
	limit := o.DescriptionMaxLength
	if limit <= 0 {
		limit = DefaultDescriptionMaxLength
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// Ingredient is one row of the ingredients table.
type Ingredient struct {
	Name        string
	Category    pgtype.Text
	Subcategory pgtype.Text
	ABV         pgtype.Float8
}

// Drink is one row of the drinks table. Empty fields are written as NULL.
type Drink struct {
	Name        string
	Description string
	GlassType   string
	BuildMethod string
	Garnish     string
}

// Link ties a drink to one of its ingredients.
type Link struct {
	Drink      string
	Ingredient string
	Amount     string
	Unit       string
}

// FlavorProfile holds one value per sheets.FlavorDimensions entry, in order.
type FlavorProfile struct {
	Drink  string
	Values []float64
}

// Summary counts what a run produced and what it dropped.
type Summary struct {
	Drinks         int
	Ingredients    int
	Relationships  int
	FlavorProfiles int
	Unparseable    int
	Filler         int
	SkippedRows    int
}

// LogValue renders the summary as a log group.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("drinks", s.Drinks),
		slog.Int("ingredients", s.Ingredients),
		slog.Int("relationships", s.Relationships),
		slog.Int("flavor_profiles", s.FlavorProfiles),
		slog.Int("unparseable", s.Unparseable),
		slog.Int("filler", s.Filler),
		slog.Int("skipped_rows", s.SkippedRows),
	)
}

// Seed is the content of one seed script.
type Seed struct {
	Header          []string // file comment lines
	IngredientNotes []string // extra comment lines above the ingredients INSERT
	Ingredients     []Ingredient
	Drinks          []Drink
	Links           []Link
	Flavors         []FlavorProfile
	Summary         Summary
}

// Script renders the seed. The output depends only on the seed's content, so
// identical input always gives an identical file. Statement order is ingredients, drinks,
// relationships, flavor profiles so that every subquery resolves against rows
// inserted earlier. Empty sections are left out.
func (s *Seed) Script() *sqlgen.Script {
	var sc sqlgen.Script
	sc.Comment(s.Header...)
	sc.Blank()

	ingredients := sqlgen.NewInsert("ingredients", "name", "category", "subcategory", "abv").
		Comment("Insert ingredients first (these will be referenced by drinks)").
		Comment(s.IngredientNotes...)
	for _, ing := range s.Ingredients {
		ingredients.Row(
			sqlgen.String(ing.Name),
			sqlgen.Text(ing.Category),
			sqlgen.Text(ing.Subcategory),
			sqlgen.Decimal(ing.ABV, 2),
		)
	}
	sc.Insert(ingredients)

	drinks := sqlgen.NewInsert("drinks", "name", "description", "glass_type", "build_method", "garnish").
		Comment("Insert drinks")
	for _, d := range s.Drinks {
		drinks.Row(
			sqlgen.String(d.Name),
			sqlgen.String(d.Description),
			sqlgen.String(d.GlassType),
			sqlgen.String(d.BuildMethod),
			sqlgen.String(d.Garnish),
		)
	}
	sc.Insert(drinks)

	links := sqlgen.NewInsert("drink_ingredients", "drink_id", "ingredient_id", "amount", "unit").
		Comment("Insert drink_ingredients relationships")
	for _, l := range s.Links {
		links.Row(
			sqlgen.DrinkID(l.Drink),
			sqlgen.IngredientID(l.Ingredient),
			sqlgen.String(l.Amount),
			sqlgen.String(l.Unit),
		)
	}
	sc.Insert(links)

	columns := append([]string{"drink_id"}, sheets.FlavorDimensions...)
	flavors := sqlgen.NewInsert("drink_flavor_profiles", columns...).
		Comment("Insert flavor profiles")
	for _, fp := range s.Flavors {
		row := []string{sqlgen.DrinkID(fp.Drink)}
		for _, v := range fp.Values {
			row = append(row, sqlgen.Decimal(pgtype.Float8{Float64: v, Valid: true}, 1))
		}
		flavors.Row(row...)
	}
	sc.Insert(flavors)

	return &sc
}

func (s *Seed) count() {
	s.Summary.Drinks = len(s.Drinks)
	s.Summary.Ingredients = len(s.Ingredients)
	s.Summary.Relationships = len(s.Links)
	s.Summary.FlavorProfiles = len(s.Flavors)
}

// sourceName is the file name a script header cites for sheet.
func sourceName(sheet *core.Sheet, fallback string) string {
	if sheet.Path == "" {
		return fallback
	}
	return filepath.Base(sheet.Path)
}
