// Package core provides sheet ingestion for the seed tools.
//
// This package knows nothing about cocktails. It reads CSV exports into
// ordered records, validates headers and cells against registered sheet
// layouts, converts cells into nullable SQL values and maps technical errors
// to support codes. The recipe, seed and web packages build on it.
//
// # Sheet Registry
//
// Sheet layouts are registered at init time using [Register]. Each
// [SheetDefinition] lists the columns a CSV kind must or may carry:
//
//	core.Register(core.SheetDefinition{
//	    Info: core.SheetInfo{Key: "garnishes", Label: "Garnishes"},
//	    FieldSpecs: []core.FieldSpec{
//	        {Name: "name", Required: true, Type: core.FieldText},
//	        {Name: "garnish", Required: true, AllowEmpty: true, Type: core.FieldText},
//	    },
//	})
//
// The layouts used by the commands live in the sheets subpackage.
//
// # Reading
//
// [OpenSheet] and [ReadSheet] read a whole file before returning, so a
// command never writes output for input it could not read. Input passes
// through [WrapInput], which enforces the size limit, drops a UTF-8 BOM and
// replaces invalid UTF-8 bytes.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a code prefix:
//
//   - FILE: size, encoding, format and missing files
//   - VAL: missing columns and bad cell values
//   - PARSE: ingredient phrases and vocabulary files
//   - CFG: configuration
//   - REQ: preview server requests
package core
