package core

// validation.go provides header and row validation for sheet data.
//
// Validation happens at two levels:
//  1. Header validation: Ensures required columns are present (fatal)
//  2. Row validation: Checks each cell against its FieldSpec (reported, not fatal)
//
// Row problems never abort a run; callers log them and fall back to NULL or 0
// as the emitter for that sheet dictates.

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a single validation error for a field.
type ValidationError struct {
	Field   string // Field/column name
	Value   string // The invalid value
	Message string // Human-readable error message
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidationResult contains the result of validating a row.
type ValidationResult struct {
	Valid  bool              // True if all validations passed
	Errors []ValidationError // List of validation errors (empty if Valid)
}

// RowValidator validates rows against a sheet's field specifications.
type RowValidator struct {
	specs     []FieldSpec
	headerIdx HeaderIndex
}

// NewRowValidator creates a validator for the given field specs and header index.
func NewRowValidator(specs []FieldSpec, headerIdx HeaderIndex) *RowValidator {
	return &RowValidator{
		specs:     specs,
		headerIdx: headerIdx,
	}
}

// ValidateRow validates a single record and returns all validation errors.
func (v *RowValidator) ValidateRow(rec Record) ValidationResult {
	result := ValidationResult{Valid: true}

	for _, spec := range v.specs {
		pos, ok := v.headerIdx[strings.ToLower(spec.Name)]
		if !ok {
			if spec.Required {
				result.Valid = false
				result.Errors = append(result.Errors, ValidationError{
					Field:   spec.Name,
					Message: "missing required column",
				})
			}
			continue
		}

		raw := ""
		if pos < len(rec.Values) {
			raw = CleanCell(rec.Values[pos])
		}

		if raw == "" {
			if spec.Required && !spec.AllowEmpty {
				result.Valid = false
				result.Errors = append(result.Errors, ValidationError{
					Field:   spec.Name,
					Message: "required field is empty",
				})
			}
			continue
		}

		if err := ValidateCell(raw, spec); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   spec.Name,
				Value:   raw,
				Message: err.Error(),
			})
		}
	}

	return result
}

// ValidateCell validates a single cell value against a field specification.
// Returns nil if valid, or an error describing the problem.
func ValidateCell(value string, spec FieldSpec) error {
	if value == "" {
		return nil // Empty values are allowed (will be NULL)
	}

	switch spec.Type {
	case FieldNumeric:
		f, ok := ParseFloat(value)
		if !ok {
			return fmt.Errorf("invalid number format")
		}
		if (spec.Min != nil && f < *spec.Min) || (spec.Max != nil && f > *spec.Max) {
			return fmt.Errorf("number out of range %s", rangeText(spec))
		}
	case FieldEnum:
		if len(spec.EnumValues) > 0 {
			for _, ev := range spec.EnumValues {
				if strings.EqualFold(ev, value) {
					return nil
				}
			}
			return fmt.Errorf("invalid enum: value must be one of: %s", strings.Join(spec.EnumValues, ", "))
		}
	}
	return nil
}

// ValidateHeaders validates that all required columns exist in the CSV headers.
// Returns a mapping from column name to index, or an error listing missing columns.
func ValidateHeaders(headers []string, specs []FieldSpec) (HeaderIndex, error) {
	idx := MakeHeaderIndex(headers)
	var missing []string

	for _, spec := range specs {
		if spec.Required {
			key := strings.ToLower(spec.Name)
			if _, ok := idx[key]; !ok {
				missing = append(missing, spec.Name)
			}
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return idx, nil
}

// Bounds returns pointers suitable for FieldSpec.Min and FieldSpec.Max.
func Bounds(min, max float64) (*float64, *float64) {
	return &min, &max
}

func rangeText(spec FieldSpec) string {
	lo, hi := "-inf", "+inf"
	if spec.Min != nil {
		lo = strconv.FormatFloat(*spec.Min, 'g', -1, 64)
	}
	if spec.Max != nil {
		hi = strconv.FormatFloat(*spec.Max, 'g', -1, 64)
	}
	return "[" + lo + ", " + hi + "]"
}

// fieldTypeName returns a human-readable name for a field type.
func fieldTypeName(ft FieldType) string {
	switch ft {
	case FieldText:
		return "text"
	case FieldEnum:
		return "enum"
	case FieldNumeric:
		return "numeric"
	default:
		return "value"
	}
}

// Describe renders a one-line summary of the sheet layout, used in usage text.
func (d SheetDefinition) Describe() string {
	parts := make([]string, 0, len(d.FieldSpecs))
	for _, spec := range d.FieldSpecs {
		p := spec.Name
		if spec.Type != FieldText {
			p += ":" + fieldTypeName(spec.Type)
		}
		if spec.Required {
			p += "*"
		}
		parts = append(parts, p)
	}
	return d.Info.Key + " (" + strings.Join(parts, ", ") + ")"
}
