// Package sqlgen writes seed SQL as text. Nothing here talks to a database:
// values are rendered as SQL literals, statements are accumulated in a
// Script and the script is written to a file for someone else to run.
package sqlgen

import (
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// Null is the literal for an absent value.
const Null = "NULL"

// Quote renders s as a single-quoted SQL string with embedded quotes
// doubled: O'Brien's becomes 'O''Brien''s'.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Text renders a nullable text value.
func Text(t pgtype.Text) string {
	if !t.Valid {
		return Null
	}
	return Quote(t.String)
}

// String renders s as text, or NULL when s is blank.
func String(s string) string {
	if strings.TrimSpace(s) == "" {
		return Null
	}
	return Quote(s)
}

// Decimal renders a nullable number with a fixed number of decimals.
func Decimal(f pgtype.Float8, decimals int) string {
	if !f.Valid {
		return Null
	}
	return strconv.FormatFloat(f.Float64, 'f', decimals, 64)
}

// DrinkID is a subquery resolving a drink's id by name.
func DrinkID(name string) string {
	return "(SELECT drink_id FROM drinks WHERE name = " + String(name) + ")"
}

// IngredientID is a subquery resolving an ingredient's id by name.
func IngredientID(name string) string {
	return "(SELECT ingredient_id FROM ingredients WHERE name = " + String(name) + ")"
}
