package seed

import (
	"context"
	"errors"
	"sort"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JonMunkholm/drinkseed/internal/core"
	"github.com/JonMunkholm/drinkseed/internal/core/sheets"
	"github.com/JonMunkholm/drinkseed/internal/logging"
)

// Sheets are the spreadsheet exports a seed is built from. Catalog and
// Flavors are optional.
type Sheets struct {
	Drinks      *core.Sheet
	Ingredients *core.Sheet
	Catalog     *core.Sheet
	Flavors     *core.Sheet
}

// FromSheets builds a seed from exported drinks and drink_ingredients sheets.
// The ingredient list is every distinct ingredient_name, sorted; the catalog,
// when present, supplies category, subcategory and abv by exact name.
func FromSheets(ctx context.Context, in Sheets, opts Options) (*Seed, error) {
	if in.Drinks == nil || in.Ingredients == nil {
		return nil, errors.New("no input file: drinks and drink_ingredients sheets are required")
	}

	s := &Seed{
		Header: []string{
			"Sample data insert statements based on Google Sheets data",
			"Note: Flavor profiles are placeholder estimates and should be refined based on actual tastings",
		},
	}

	for _, rec := range validRecords(ctx, in.Drinks, &s.Summary) {
		s.Drinks = append(s.Drinks, Drink{
			Name:        rec.Get("name"),
			Description: opts.truncate(rec.Get("description")),
			GlassType:   rec.Get("glass_type"),
			BuildMethod: rec.Get("build_method"),
			Garnish:     rec.Get("garnish"),
		})
	}

	names := make(map[string]bool)
	for _, rec := range validRecords(ctx, in.Ingredients, &s.Summary) {
		name := rec.Get("ingredient_name")
		if name != "" {
			names[name] = true
		}
		s.Links = append(s.Links, Link{
			Drink:      rec.Get("drink_name"),
			Ingredient: name,
			Amount:     rec.Get("amount"),
			Unit:       rec.Get("unit"),
		})
	}

	catalog := catalogEntries(ctx, in.Catalog, &s.Summary)
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)
	for _, name := range sorted {
		ing, ok := catalog[name]
		if !ok {
			ing = Ingredient{Name: name}
		}
		s.Ingredients = append(s.Ingredients, ing)
	}

	if in.Flavors != nil {
		s.Flavors = flavorProfiles(ctx, in.Flavors, &s.Summary)
	}

	s.count()
	return s, nil
}

// validRecords returns the records of sheet that pass row validation. Rows
// with an empty required field are skipped; other problems are logged and
// the row is kept.
func validRecords(ctx context.Context, sheet *core.Sheet, sum *Summary) []core.Record {
	logger := logging.WithFields(ctx, "sheet", sheet.Def.Info.Key, "file", sheet.Path)
	validator := sheet.Validator()

	var out []core.Record
	for _, rec := range sheet.Records {
		result := validator.ValidateRow(rec)
		if result.Valid {
			out = append(out, rec)
			continue
		}

		skip := false
		for _, verr := range result.Errors {
			logger.Warn("invalid row", "line", rec.Line, "error", verr.Error())
			if spec, ok := sheet.Def.Spec(verr.Field); ok && spec.Required && verr.Value == "" {
				skip = true
			}
		}
		if skip {
			sum.SkippedRows++
			continue
		}
		out = append(out, rec)
	}
	return out
}

// catalogEntries indexes the ingredient catalog by trimmed name. An abv that
// is not a number is written as NULL.
func catalogEntries(ctx context.Context, sheet *core.Sheet, sum *Summary) map[string]Ingredient {
	entries := make(map[string]Ingredient)
	if sheet == nil {
		return entries
	}

	for _, rec := range validRecords(ctx, sheet, sum) {
		name := rec.Get("name")
		if name == "" {
			continue
		}
		ing := Ingredient{
			Name:        name,
			Category:    core.ToPgText(rec.Get("category")),
			Subcategory: core.ToPgText(rec.Get("subcategory")),
		}
		if abv, ok := core.ParseFloat(rec.Get("abv")); ok {
			ing.ABV = pgtype.Float8{Float64: abv, Valid: true}
		}
		entries[name] = ing
	}
	return entries
}

// flavorProfiles reads one profile per row. A value outside [0, 10] is
// logged and replaced by 0; a missing or non-numeric value is 0. Dimension
// columns absent from the header are reported once.
func flavorProfiles(ctx context.Context, sheet *core.Sheet, sum *Summary) []FlavorProfile {
	logger := logging.WithFields(ctx, "sheet", sheet.Def.Info.Key, "file", sheet.Path)

	var (
		profiles []FlavorProfile
		missing  []string
		seen     = make(map[string]bool)
	)
	for _, rec := range sheet.Records {
		drink := rec.Get("drink_name")
		if drink == "" {
			logger.Warn("invalid row", "line", rec.Line, "error", "drink_name: required field is empty")
			sum.SkippedRows++
			continue
		}

		values := make([]float64, len(sheets.FlavorDimensions))
		for i, dim := range sheets.FlavorDimensions {
			if !rec.Has(dim) {
				if !seen[dim] {
					seen[dim] = true
					missing = append(missing, dim)
				}
				continue
			}
			v, ok := core.ParseFloat(rec.Get(dim))
			if !ok {
				continue
			}
			if v < 0 || v > 10 {
				logger.Warn("flavor value out of range, using 0",
					"line", rec.Line,
					"drink", drink,
					"dimension", dim,
					"value", v)
				continue
			}
			values[i] = v
		}
		profiles = append(profiles, FlavorProfile{Drink: drink, Values: values})
	}
	if len(missing) > 0 {
		logger.Warn("flavor columns missing, using 0", "columns", missing)
	}
	return profiles
}
