package sqlgen

import (
	"fmt"
	"strings"
)

// Insert is a multi-row INSERT statement under an optional comment block.
type Insert struct {
	comments []string
	table    string
	columns  []string
	rows     []string
}

// NewInsert starts an INSERT into table with the given columns.
func NewInsert(table string, columns ...string) *Insert {
	return &Insert{table: table, columns: columns}
}

// Comment adds "-- " comment lines printed above the statement.
func (i *Insert) Comment(lines ...string) *Insert {
	i.comments = append(i.comments, lines...)
	return i
}

// Row appends one row of already rendered literals. It panics if the number
// of values does not match the columns.
func (i *Insert) Row(values ...string) {
	if len(values) != len(i.columns) {
		panic(fmt.Sprintf("sqlgen: %s: row has %d values for %d columns", i.table, len(values), len(i.columns)))
	}
	i.rows = append(i.rows, "("+strings.Join(values, ", ")+")")
}

// Len returns the number of rows.
func (i *Insert) Len() int {
	return len(i.rows)
}

// String renders the statement followed by a blank line.
func (i *Insert) String() string {
	var b strings.Builder
	for _, c := range i.comments {
		b.WriteString("-- " + c + "\n")
	}
	b.WriteString("INSERT INTO " + i.table + " (" + strings.Join(i.columns, ", ") + ") VALUES\n")
	b.WriteString(strings.Join(i.rows, ",\n"))
	b.WriteString(";\n\n")
	return b.String()
}

// Script accumulates the text of a seed file.
type Script struct {
	b          strings.Builder
	statements int
}

// Comment writes "-- " comment lines.
func (s *Script) Comment(lines ...string) {
	for _, l := range lines {
		s.b.WriteString("-- " + l + "\n")
	}
}

// Blank writes an empty line.
func (s *Script) Blank() {
	s.b.WriteString("\n")
}

// Insert writes ins. An INSERT without rows is not valid SQL and is skipped;
// the return value reports whether anything was written.
func (s *Script) Insert(ins *Insert) bool {
	if ins.Len() == 0 {
		return false
	}
	s.b.WriteString(ins.String())
	s.statements++
	return true
}

// Statement writes one complete statement on its own line.
func (s *Script) Statement(stmt string) {
	s.b.WriteString(stmt + "\n")
	s.statements++
}

// Statements returns how many statements have been written.
func (s *Script) Statements() int {
	return s.statements
}

// String returns the script text.
func (s *Script) String() string {
	return s.b.String()
}

// UpdateGarnish sets a drink's garnish, matching the name case-insensitively.
func UpdateGarnish(name, garnish string) string {
	return "UPDATE drinks SET garnish = " + Quote(garnish) + " WHERE LOWER(name) = LOWER(" + Quote(name) + ");"
}
