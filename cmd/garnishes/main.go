// Command garnishes writes UPDATE statements that set the garnish of drinks
// already in the database from a name,garnish sheet.
package main

import (
	"flag"

	"github.com/JonMunkholm/drinkseed/internal/app"
	"github.com/JonMunkholm/drinkseed/internal/core/sheets"
	"github.com/JonMunkholm/drinkseed/internal/seed"
)

func main() {
	input := flag.String("input", "cocktails_data.csv", "CSV file with name and garnish columns")
	output := flag.String("output", "update_garnishes.sql", "Output SQL file, - for stdout")
	flag.Parse()

	app.Main("garnishes", func(env *app.Env) error {
		sheet, err := env.OpenSheet(sheets.Garnishes, *input)
		if err != nil {
			return err
		}

		sc, err := seed.GarnishUpdates(env.Ctx, sheet)
		if err != nil {
			return err
		}
		if err := app.WriteOutput(*output, sc.String()); err != nil {
			return err
		}

		env.Logger().Info("generated garnish updates", "output", *output, "updates", sc.Statements())
		return nil
	})
}
