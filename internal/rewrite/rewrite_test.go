package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const row = "((SELECT drink_id FROM drinks WHERE name = 'Daiquiri'), (SELECT ingredient_id FROM ingredients WHERE name = 'White Rum'), "

func TestConvertMl(t *testing.T) {
	in := row + "'45', 'ml'),\n" +
		row + "'5', 'ml'),\n" +
		row + "'30','ml'),\n" +
		row + "'top', 'up');\n"

	out, stats := ConvertMl(in)

	want := row + "'1.50', 'oz'),\n" +
		row + "'1', 'barspoon'),\n" +
		row + "'1','oz'),\n" +
		row + "'top', 'up');\n"
	assert.Equal(t, want, out)
	assert.Equal(t, 3, stats.Found)
	assert.Equal(t, 3, stats.Rewritten)
	assert.Equal(t, 0, stats.Remaining)
	assert.Equal(t, 2, stats.Units["oz"])
	assert.Equal(t, 1, stats.Units["barspoon"])
}

func TestConvertMl_LeavesOtherText(t *testing.T) {
	in := "-- 30 ml pours\nINSERT INTO drinks (name) VALUES ('45 ml Club');\n"
	out, stats := ConvertMl(in)
	assert.Equal(t, in, out)
	assert.Zero(t, stats.Rewritten)
}

func TestNormalizeOz(t *testing.T) {
	in := row + "'1.50', 'oz'),\n" +
		row + "'0.67', 'oz'),\n" +
		row + "'1', 'oz'),\n" +
		row + "'2', 'dashes');\n"

	out, stats := NormalizeOz(in)

	want := row + "'1 1/2', 'oz'),\n" +
		row + "'3/4', 'oz'),\n" +
		row + "'1', 'oz'),\n" +
		row + "'2', 'dashes');\n"
	assert.Equal(t, want, out)
	assert.Equal(t, 3, stats.Found)
	assert.Equal(t, 2, stats.Rewritten)
	assert.Equal(t, 3, stats.Remaining)
}

func TestNormalizeOz_Idempotent(t *testing.T) {
	once, _ := NormalizeOz(row + "'0.50', 'oz');\n")
	twice, stats := NormalizeOz(once)
	assert.Equal(t, once, twice)
	assert.Zero(t, stats.Rewritten)
}

func TestFixOz(t *testing.T) {
	in := row + "('1.67', 'oz')),\n" +
		row + "'0.25', 'oz');\n"

	out, stats := FixOz(in)

	want := row + "'1 1/2', 'oz')),\n" +
		row + "'1/4', 'oz');\n"
	assert.Equal(t, want, out)
	assert.Equal(t, 3, stats.Rewritten)
}

func TestRepairParens(t *testing.T) {
	in := row + "'1 1/2', 'oz')),\n" +
		row + "'2', 'dashes')),\n" +
		row + "'1', 'bar spoon')),\n" +
		row + "'1', 'unit')),\n" +
		row + "'1', 'oz');\n"

	out, stats := RepairParens(in)

	want := row + "'1 1/2', 'oz'),\n" +
		row + "'2', 'dashes'),\n" +
		row + "'1', 'bar spoon'),\n" +
		row + "'1', 'unit')),\n" +
		row + "'1', 'oz');\n"
	assert.Equal(t, want, out)
	assert.Equal(t, 3, stats.Found)
	assert.Equal(t, 3, stats.Rewritten)
	assert.Equal(t, 0, stats.Remaining)
}

func TestPipeline(t *testing.T) {
	in := row + "'45', 'ml'),\n" + row + "'20', 'ml');\n"

	out, _ := ConvertMl(in)
	out, _ = NormalizeOz(out)

	assert.Equal(t, row+"'1 1/2', 'oz'),\n"+row+"'3/4', 'oz');\n", out)
}
