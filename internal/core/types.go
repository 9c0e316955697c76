package core

import "strings"

// FieldType represents the expected data type for a CSV field.
type FieldType int

const (
	FieldText FieldType = iota
	FieldEnum
	FieldNumeric
)

// FieldSpec defines validation rules for a single CSV column.
type FieldSpec struct {
	Name       string    // Column header name (matched case-insensitively)
	Type       FieldType // Expected data type
	Required   bool      // Column must exist in CSV header
	AllowEmpty bool      // If true, empty values are allowed even when Required
	EnumValues []string  // Valid values for FieldEnum type
	Min, Max   *float64  // Optional inclusive bounds for FieldNumeric
}

// SheetInfo contains descriptive information about a sheet layout.
type SheetInfo struct {
	Key     string   // Unique identifier: "drinks", "flavor_profiles"
	Label   string   // Display name: "Flavor Profiles"
	Columns []string // Header column names, filled from FieldSpecs on Register
}

// SheetDefinition describes one kind of CSV export the tools accept.
type SheetDefinition struct {
	Info       SheetInfo
	FieldSpecs []FieldSpec
}

// Spec returns the field spec for column, matched case-insensitively.
func (d SheetDefinition) Spec(column string) (FieldSpec, bool) {
	for _, spec := range d.FieldSpecs {
		if strings.EqualFold(spec.Name, column) {
			return spec, true
		}
	}
	return FieldSpec{}, false
}

// HeaderIndex maps column names (lowercase) to their position in the CSV row.
type HeaderIndex map[string]int

// Record is one data row of a sheet. Values are kept in file order; Get looks
// them up by header name.
type Record struct {
	Line   int // 1-based line number in the source file
	Values []string
	index  HeaderIndex
}

// NewRecord builds a Record over values using idx for column lookup.
func NewRecord(line int, values []string, idx HeaderIndex) Record {
	return Record{Line: line, Values: values, index: idx}
}

// Get returns the cleaned value of column, or "" if the column is absent
// from the header or the row is short.
func (r Record) Get(column string) string {
	pos, ok := r.index[strings.ToLower(column)]
	if !ok || pos >= len(r.Values) {
		return ""
	}
	return CleanCell(r.Values[pos])
}

// Has reports whether the sheet header contains column.
func (r Record) Has(column string) bool {
	_, ok := r.index[strings.ToLower(column)]
	return ok
}

// Sheet is a fully read CSV file together with its definition.
type Sheet struct {
	Def     SheetDefinition
	Path    string
	Header  HeaderIndex
	Records []Record
}

// Validator returns a row validator bound to this sheet's header.
func (s *Sheet) Validator() *RowValidator {
	return NewRowValidator(s.Def.FieldSpecs, s.Header)
}
