// Command csvtosql converts spreadsheet exports of drinks, drink ingredients
// and (optionally) an ingredient catalog and flavor profiles into a seed SQL
// script.
//
// Usage:
//
//	csvtosql -drinks drinks.csv -ingredients drink_ingredients.csv \
//	    [-ingredient-catalog ingredients.csv] [-flavors flavor_profiles.csv] \
//	    [-output seed_data.sql]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/JonMunkholm/drinkseed/internal/app"
	"github.com/JonMunkholm/drinkseed/internal/core"
	"github.com/JonMunkholm/drinkseed/internal/core/sheets"
	"github.com/JonMunkholm/drinkseed/internal/seed"
)

type flags struct {
	drinks      string
	ingredients string
	catalog     string
	flavors     string
	output      string
}

func parseFlags() *flags {
	f := &flags{}
	flag.StringVar(&f.drinks, "drinks", "", "CSV file with drinks data (required)")
	flag.StringVar(&f.ingredients, "ingredients", "", "CSV file with drink_ingredients relationships (required)")
	flag.StringVar(&f.catalog, "ingredient-catalog", "", "Optional CSV file with ingredient catalog (category, subcategory, abv)")
	flag.StringVar(&f.flavors, "flavors", "", "Optional CSV file with flavor profiles")
	flag.StringVar(&f.output, "output", "seed_data.sql", "Output SQL file, - for stdout")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -drinks FILE -ingredients FILE [flags]\n\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nSheet layouts (* required):")
		for _, key := range []string{sheets.Drinks, sheets.DrinkIngredients, sheets.IngredientCatalog, sheets.FlavorProfiles} {
			fmt.Fprintf(os.Stderr, "  %s\n", core.MustGet(key).Describe())
		}
	}
	flag.Parse()
	return f
}

func main() {
	f := parseFlags()
	app.Main("csvtosql", func(env *app.Env) error {
		return run(env, f)
	})
}

func run(env *app.Env, f *flags) error {
	var (
		in  seed.Sheets
		err error
	)
	if in.Drinks, err = env.OpenSheet(sheets.Drinks, f.drinks); err != nil {
		return err
	}
	if in.Ingredients, err = env.OpenSheet(sheets.DrinkIngredients, f.ingredients); err != nil {
		return err
	}
	if f.catalog != "" {
		if in.Catalog, err = env.OpenSheet(sheets.IngredientCatalog, f.catalog); err != nil {
			return err
		}
	}
	if f.flavors != "" {
		if in.Flavors, err = env.OpenSheet(sheets.FlavorProfiles, f.flavors); err != nil {
			return err
		}
	}

	s, err := seed.FromSheets(env.Ctx, in, seed.Options{
		DescriptionMaxLength: env.Config.Parser.DescriptionMaxLength,
	})
	if err != nil {
		return err
	}

	if err := app.WriteOutput(f.output, s.Script().String()); err != nil {
		return err
	}
	env.Logger().Info("generated seed", "output", f.output, "summary", s.Summary)
	return nil
}
