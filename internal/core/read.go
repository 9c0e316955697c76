package core

// read.go loads a whole sheet into memory. Every tool reads its inputs
// completely before writing anything, so a read failure leaves no partial
// output behind.

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for input files. Their messages contain the patterns
// MapError keys on.
var (
	ErrEmptyFile    = errors.New("empty file")
	ErrFileTooLarge = errors.New("file too large")
)

// OpenSheet reads the CSV file at path as a sheet of kind def. Files larger
// than maxSize bytes are rejected before parsing; maxSize <= 0 disables the
// check.
func OpenSheet(path string, def SheetDefinition, maxSize int64) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && maxSize > 0 && info.Size() > maxSize {
		return nil, fmt.Errorf("%s: %w: %d bytes exceeds %d", path, ErrFileTooLarge, info.Size(), maxSize)
	}

	sheet, err := ReadSheet(f, def, maxSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sheet.Path = path
	return sheet, nil
}

// ReadSheet parses CSV data from r into a Sheet. The first row is the header
// and must contain every required column of def. Rows whose cells are all
// blank are skipped. Short rows are allowed; missing cells read as "".
func ReadSheet(r io.Reader, def SheetDefinition, maxSize int64) (*Sheet, error) {
	cr := csv.NewReader(WrapInput(r, maxSize))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, wrapCSVError(err)
	}

	idx, err := ValidateHeaders(header, def.FieldSpecs)
	if err != nil {
		return nil, err
	}

	sheet := &Sheet{Def: def, Header: idx}
	for {
		values, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(err)
		}
		if isBlankRow(values) {
			continue
		}
		line, _ := cr.FieldPos(0)
		sheet.Records = append(sheet.Records, NewRecord(line, values, idx))
	}

	return sheet, nil
}

// ReadText reads a whole text file (a generated SQL script) through the same
// BOM and UTF-8 handling as sheets.
func ReadText(path string, maxSize int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(WrapInput(f, maxSize))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return string(data), nil
}

func isBlankRow(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func wrapCSVError(err error) error {
	if errors.Is(err, ErrFileTooLarge) {
		return err
	}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("invalid csv at line %d: %w", pe.Line, pe.Err)
	}
	return fmt.Errorf("read csv: %w", err)
}
