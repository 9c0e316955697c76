package app

import (
	"github.com/JonMunkholm/drinkseed/internal/core"
	"github.com/JonMunkholm/drinkseed/internal/rewrite"
)

// Pass is one textual rewrite over a SQL script.
type Pass func(text string) (string, rewrite.Stats)

// RewriteFile runs pass over the file at input and writes the result to
// output, or back to input when output is empty. The whole file is read
// before anything is written.
func (e *Env) RewriteFile(input, output string, pass Pass) (rewrite.Stats, error) {
	if output == "" {
		output = input
	}

	text, err := core.ReadText(input, e.Config.Input.MaxFileSize)
	if err != nil {
		return rewrite.Stats{}, err
	}

	out, stats := pass(text)
	if err := WriteOutput(output, out); err != nil {
		return stats, err
	}

	e.Logger().Info("rewrite complete",
		"input", input,
		"output", output,
		"found", stats.Found,
		"rewritten", stats.Rewritten,
		"remaining", stats.Remaining,
	)
	for unit, n := range stats.Units {
		e.Logger().Info("unit count", "unit", unit, "count", n)
	}
	return stats, nil
}
