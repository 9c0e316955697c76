// Command normalizeoz rewrites decimal 'N', 'oz') amounts in a seed SQL
// script to the closest standard bar measurement ('0.75' becomes '3/4').
//
// With -unwrap it first repairs ('N', 'oz') groups left behind by an older
// broken pass.
package main

import (
	"flag"

	"github.com/JonMunkholm/drinkseed/internal/app"
	"github.com/JonMunkholm/drinkseed/internal/rewrite"
)

func main() {
	input := flag.String("input", "seed_data_new.sql", "SQL file to normalize")
	output := flag.String("output", "", "Output SQL file (default: overwrite -input), - for stdout")
	unwrap := flag.Bool("unwrap", false, "Unwrap ('N', 'oz') groups before normalizing")
	flag.Parse()

	pass := rewrite.NormalizeOz
	if *unwrap {
		pass = rewrite.FixOz
	}

	app.Main("normalizeoz", func(env *app.Env) error {
		_, err := env.RewriteFile(*input, *output, pass)
		return err
	})
}
