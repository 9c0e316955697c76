package seed

import (
	"context"
	"errors"

	"github.com/JonMunkholm/drinkseed/internal/core"
	"github.com/JonMunkholm/drinkseed/internal/logging"
	"github.com/JonMunkholm/drinkseed/internal/recipe"
)

// FromCocktails builds a seed from a sheet of scraped recipes. Each row's
// ingredients cell is split on ';' and every phrase parsed with kit; names are
// deduplicated through one Canon for the whole sheet. Glass type, build
// method and garnish are inferred from the preparation text, which also
// becomes the description.
func FromCocktails(ctx context.Context, sheet *core.Sheet, kit *recipe.Kit, opts Options) (*Seed, error) {
	if sheet == nil {
		return nil, errors.New("no input file: cocktails sheet is required")
	}
	logger := logging.WithFields(ctx, "sheet", sheet.Def.Info.Key, "file", sheet.Path)

	s := &Seed{
		Header: []string{
			"Sample data insert statements parsed from " + sourceName(sheet, "cocktails_data.csv"),
			"Note: Ingredient categories, subcategories, and ABV are NULL - update manually if needed",
			"Note: Flavor profiles are not included - add separately if needed",
		},
		IngredientNotes: []string{
			"Note: Category, subcategory, and ABV are NULL - you may want to update these manually",
		},
	}

	canon := kit.NewCanon()
	for _, rec := range validRecords(ctx, sheet, &s.Summary) {
		name := rec.Get("name")
		preparation := rec.Get("preparation")

		s.Drinks = append(s.Drinks, Drink{
			Name:        name,
			Description: opts.truncate(preparation),
			GlassType:   kit.Inferrer.GlassType(preparation),
			BuildMethod: kit.Inferrer.BuildMethod(preparation),
			Garnish:     kit.Inferrer.Garnish(preparation),
		})

		for _, phrase := range recipe.SplitIngredients(rec.Get("ingredients")) {
			m, outcome := kit.Parser.Parse(phrase)
			switch outcome {
			case recipe.Filler:
				logger.Debug("dropped filler", "phrase", phrase, "drink", name)
				s.Summary.Filler++
				continue
			case recipe.Unparseable:
				logger.Warn("unparseable ingredient", "phrase", phrase, "drink", name, "line", rec.Line)
				s.Summary.Unparseable++
				continue
			}

			logger.Debug("parsed ingredient", "phrase", phrase, "rule", m.Rule, "name", m.Name)
			s.Links = append(s.Links, Link{
				Drink:      name,
				Ingredient: canon.Resolve(m.Name),
				Amount:     m.Amount,
				Unit:       m.Unit,
			})
		}
	}

	for _, name := range canon.Names() {
		s.Ingredients = append(s.Ingredients, Ingredient{Name: name})
	}

	s.count()
	return s, nil
}
