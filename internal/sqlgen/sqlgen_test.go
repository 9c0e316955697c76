package sqlgen

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	assert.Equal(t, "'Gin'", Quote("Gin"))
	assert.Equal(t, "'O''Brien''s'", Quote("O'Brien's"))
	assert.Equal(t, "''", Quote(""))
}

func TestLiterals(t *testing.T) {
	assert.Equal(t, "NULL", Text(pgtype.Text{}))
	assert.Equal(t, "'Rum'", Text(pgtype.Text{String: "Rum", Valid: true}))
	assert.Equal(t, "NULL", String("  "))
	assert.Equal(t, "'Lime'", String("Lime"))
	assert.Equal(t, "NULL", Decimal(pgtype.Float8{}, 2))
	assert.Equal(t, "40.00", Decimal(pgtype.Float8{Float64: 40, Valid: true}, 2))
	assert.Equal(t, "7.5", Decimal(pgtype.Float8{Float64: 7.5, Valid: true}, 1))
}

func TestSubqueries(t *testing.T) {
	assert.Equal(t, "(SELECT drink_id FROM drinks WHERE name = 'Jack''s Rose')", DrinkID("Jack's Rose"))
	assert.Equal(t, "(SELECT ingredient_id FROM ingredients WHERE name = 'Gin')", IngredientID("Gin"))
}

func TestInsert(t *testing.T) {
	ins := NewInsert("ingredients", "name", "abv").Comment("Insert ingredients")
	ins.Row(Quote("Gin"), "40.00")
	ins.Row(Quote("Lime Juice"), Null)

	want := "-- Insert ingredients\n" +
		"INSERT INTO ingredients (name, abv) VALUES\n" +
		"('Gin', 40.00),\n" +
		"('Lime Juice', NULL);\n\n"
	assert.Equal(t, want, ins.String())
	assert.Equal(t, 2, ins.Len())
}

func TestInsert_RowArity(t *testing.T) {
	ins := NewInsert("drinks", "name", "description")
	assert.Panics(t, func() { ins.Row(Quote("Negroni")) })
}

func TestScript(t *testing.T) {
	var s Script
	s.Comment("Seed data", "Second line")
	s.Blank()

	require.False(t, s.Insert(NewInsert("drinks", "name")), "empty insert is skipped")

	ins := NewInsert("drinks", "name")
	ins.Row(Quote("Negroni"))
	require.True(t, s.Insert(ins))

	s.Statement(UpdateGarnish("Negroni", "Orange Peel"))

	want := "-- Seed data\n-- Second line\n\n" +
		"INSERT INTO drinks (name) VALUES\n('Negroni');\n\n" +
		"UPDATE drinks SET garnish = 'Orange Peel' WHERE LOWER(name) = LOWER('Negroni');\n"
	assert.Equal(t, want, s.String())
	assert.Equal(t, 2, s.Statements())
}

func TestUpdateGarnish_Escapes(t *testing.T) {
	assert.Equal(t,
		"UPDATE drinks SET garnish = 'Nick''s Twist' WHERE LOWER(name) = LOWER('Hanky''s');",
		UpdateGarnish("Hanky's", "Nick's Twist"))
}
