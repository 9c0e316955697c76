// Command mltooz rewrites 'N', 'ml') amounts in a seed SQL script to ounces,
// and 5 ml to one barspoon. The file is rewritten in place unless -output is
// given.
package main

import (
	"flag"

	"github.com/JonMunkholm/drinkseed/internal/app"
	"github.com/JonMunkholm/drinkseed/internal/rewrite"
)

func main() {
	input := flag.String("input", "seed_data_new.sql", "SQL file to convert")
	output := flag.String("output", "", "Output SQL file (default: overwrite -input), - for stdout")
	flag.Parse()

	app.Main("mltooz", func(env *app.Env) error {
		_, err := env.RewriteFile(*input, *output, rewrite.ConvertMl)
		return err
	})
}
