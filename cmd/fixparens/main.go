// Command fixparens collapses the doubled closing parenthesis after a unit
// literal ('oz')) becomes 'oz')) in a seed SQL script.
package main

import (
	"flag"

	"github.com/JonMunkholm/drinkseed/internal/app"
	"github.com/JonMunkholm/drinkseed/internal/rewrite"
)

func main() {
	input := flag.String("input", "seed_data_new.sql", "SQL file to repair")
	output := flag.String("output", "", "Output SQL file (default: overwrite -input), - for stdout")
	flag.Parse()

	app.Main("fixparens", func(env *app.Env) error {
		_, err := env.RewriteFile(*input, *output, rewrite.RepairParens)
		return err
	})
}
