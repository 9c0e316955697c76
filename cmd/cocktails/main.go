// Command cocktails parses a sheet of scraped cocktail recipes (name,
// ingredients, preparation, url) into a seed SQL script. Ingredient phrases
// are parsed into name, amount and unit; glass type, build method and garnish
// are inferred from the preparation text.
//
// Usage:
//
//	cocktails <input_csv> [output_sql]
//
// The output defaults to seed_data.sql. PARSER_MODE=strict drops phrases
// that only the last-resort rule would accept.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/JonMunkholm/drinkseed/internal/app"
	"github.com/JonMunkholm/drinkseed/internal/core/sheets"
	"github.com/JonMunkholm/drinkseed/internal/seed"
)

const defaultOutput = "seed_data.sql"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <input_csv> [output_sql]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s cocktails_data.csv seed_data.sql\n", os.Args[0])
	}
	flag.Parse()

	app.Main("cocktails", func(env *app.Env) error {
		return run(env, flag.Args())
	})
}

func run(env *app.Env, args []string) error {
	if len(args) < 1 {
		flag.Usage()
		return errors.New("no input file: expected <input_csv> [output_sql]")
	}
	input, output := args[0], defaultOutput
	if len(args) > 1 {
		output = args[1]
	}

	sheet, err := env.OpenSheet(sheets.Cocktails, input)
	if err != nil {
		return err
	}
	env.Logger().Info("parsing drinks", "input", input, "rows", len(sheet.Records))

	s, err := seed.FromCocktails(env.Ctx, sheet, env.Kit, seed.Options{
		DescriptionMaxLength: env.Config.Parser.DescriptionMaxLength,
	})
	if err != nil {
		return err
	}

	if err := app.WriteOutput(output, s.Script().String()); err != nil {
		return err
	}
	env.Logger().Info("generated seed", "output", output, "summary", s.Summary)
	return nil
}
