package seed

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/JonMunkholm/drinkseed/internal/core"
	"github.com/JonMunkholm/drinkseed/internal/logging"
	"github.com/JonMunkholm/drinkseed/internal/sqlgen"
)

// CleanGarnish prepares a garnish cell for an UPDATE. The second result is
// false when the row should be skipped: empty cells and anything starting
// with "N/A".
func CleanGarnish(garnish string) (string, bool) {
	garnish = strings.TrimSpace(garnish)
	if garnish == "" || strings.HasPrefix(strings.ToUpper(garnish), "N/A") {
		return "", false
	}

	lower := strings.ToLower(garnish)
	switch {
	case strings.HasPrefix(lower, "garnish with "):
		garnish = strings.TrimSpace(garnish[len("garnish with "):])
	case strings.HasPrefix(lower, "garnish "):
		garnish = strings.TrimSpace(garnish[len("garnish "):])
	}

	garnish = strings.NewReplacer("\n", " ", "\r", " ").Replace(garnish)
	for strings.Contains(garnish, "  ") {
		garnish = strings.ReplaceAll(garnish, "  ", " ")
	}
	return strings.TrimSpace(garnish), true
}

// GarnishUpdates renders one UPDATE per row of a garnishes sheet, followed by
// a trailer with the number of statements.
func GarnishUpdates(ctx context.Context, sheet *core.Sheet) (*sqlgen.Script, error) {
	if sheet == nil {
		return nil, errors.New("no input file: garnishes sheet is required")
	}
	logger := logging.WithFields(ctx, "sheet", sheet.Def.Info.Key, "file", sheet.Path)

	var sc sqlgen.Script
	sc.Comment(
		"UPDATE statements to add garnishes to existing drinks",
		"Generated from "+sourceName(sheet, "garnishes.csv"),
	)
	sc.Blank()

	var skipped Summary
	for _, rec := range validRecords(ctx, sheet, &skipped) {
		garnish, ok := CleanGarnish(rec.Get("garnish"))
		if !ok {
			logger.Debug("no garnish", "drink", rec.Get("name"), "line", rec.Line)
			continue
		}
		sc.Statement(sqlgen.UpdateGarnish(rec.Get("name"), garnish))
	}

	sc.Blank()
	sc.Comment("Total updates: " + strconv.Itoa(sc.Statements()))
	return &sc, nil
}
