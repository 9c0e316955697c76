// Package core provides sheet ingestion for the seed tools.
//
// # Error Codes Reference
//
// This file defines user-friendly error messages with codes. Every command
// logs the code next to the technical error, so an operator can look up what
// went wrong and what to do about it.
//
// Error codes are grouped by category:
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large: File exceeds the configured size limit
//	          Action: Raise INPUT_MAX_FILE_SIZE or split the file
//	          Patterns: "file too large"
//
//	FILE002 - Invalid CSV: File is not a valid CSV
//	          Action: Ensure file is comma-separated with balanced quotes
//	          Patterns: "invalid csv"
//
//	FILE003 - Not found: Input file does not exist
//	          Action: Check the path passed on the command line
//	          Patterns: "file not found", "no such file"
//
//	FILE004 - No input: No input file was given
//	          Action: Pass the input file flag or argument
//	          Patterns: "no input file"
//
//	FILE005 - Empty file: The file has no header row
//	          Action: Export the sheet again including its header
//	          Patterns: "empty file"
//
//	FILE006 - Write failed: Output file could not be written
//	          Action: Check the output directory exists and is writable
//	          Patterns: "write output"
//
//	FILE007 - Permission denied: Input file could not be opened
//	          Action: Check file permissions
//	          Patterns: "permission denied"
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - Missing column: Required column is missing from CSV
//	         Action: Check the header row against the sheet layout
//	         Patterns: "missing required column"
//
//	VAL002 - Invalid number: Invalid number format detected
//	         Action: Use plain decimals such as 40 or 41.5
//	         Patterns: "invalid number"
//
//	VAL003 - Out of range: Number outside the allowed range
//	         Action: Flavor values must be between 0 and 10
//	         Patterns: "out of range"
//
//	VAL004 - Required field: Required field is empty
//	         Action: Fill in the value or remove the row
//	         Patterns: "required field"
//
//	VAL005 - Invalid enum: Value is not in the allowed list
//	         Action: Check the allowed values for this field
//	         Patterns: "invalid enum"
//
// # Parse Errors (PARSE001-PARSE099)
//
//	PARSE001 - Unparseable ingredient: Ingredient phrase matched no rule
//	           Action: Rewrite the phrase as "<amount> <unit> <name>"
//	           Patterns: "unparseable ingredient"
//
//	PARSE002 - Vocabulary: Vocabulary file could not be read
//	           Action: Check the YAML syntax and regular expressions
//	           Patterns: "vocabulary"
//
// # Configuration Errors (CFG001-CFG099)
//
//	CFG001 - Invalid configuration: An environment variable is invalid
//	         Action: Fix the variable named in the message
//	         Patterns: "invalid configuration", "config validation", "config load"
//
//	CFG002 - Unknown sheet: Sheet kind is not registered
//	         Action: Use one of the documented sheet kinds
//	         Patterns: "unknown sheet"
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Bad request: Request body could not be decoded
//	         Action: Send a JSON body matching the documented shape
//	         Patterns: "invalid request"
//
//	REQ002 - Request cancelled: Request was cancelled
//	         Action: Please try again
//	         Patterns: "context canceled"
//
//	REQ003 - Request timeout: Request timed out
//	         Action: Send fewer phrases per request
//	         Patterns: "context deadline exceeded"
//
//	REQ004 - Body too large: Request body exceeds the limit
//	         Action: Send fewer phrases per request
//	         Patterns: "request body too large"
//
//	REQ005 - Rate limited: Too many requests from one client
//	         Action: Wait a minute and try again
//	         Patterns: "rate limit exceeded"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Run again with LOG_LEVEL=debug and check the log
//
// # Pattern Matching
//
// Error patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns are defined
// before general ones.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var (
	msgNotFound = UserMessage{
		Message: "Input file does not exist",
		Action:  "Check the path passed on the command line",
		Code:    "FILE003",
	}
	msgInvalidConfig = UserMessage{
		Message: "Configuration is invalid",
		Action:  "Fix the variable named in the message",
		Code:    "CFG001",
	}
)

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// The first matching pattern wins, so order matters.
var errorPatterns = []errorPattern{
	// =========================================================================
	// File Errors (FILE001-FILE007)
	// =========================================================================
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds the configured size limit",
			Action:  "Raise INPUT_MAX_FILE_SIZE or split the file",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "File is not a valid CSV",
			Action:  "Ensure file is comma-separated with balanced quotes",
			Code:    "FILE002",
		},
	},
	{pattern: "file not found", msg: msgNotFound},
	{pattern: "no such file", msg: msgNotFound},
	{
		pattern: "no input file",
		msg: UserMessage{
			Message: "No input file was given",
			Action:  "Pass the input file flag or argument",
			Code:    "FILE004",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The file has no header row",
			Action:  "Export the sheet again including its header",
			Code:    "FILE005",
		},
	},
	{
		pattern: "write output",
		msg: UserMessage{
			Message: "Output file could not be written",
			Action:  "Check the output directory exists and is writable",
			Code:    "FILE006",
		},
	},
	{
		pattern: "permission denied",
		msg: UserMessage{
			Message: "Input file could not be opened",
			Action:  "Check file permissions",
			Code:    "FILE007",
		},
	},

	// =========================================================================
	// Validation Errors (VAL001-VAL005)
	// =========================================================================
	{
		pattern: "missing required column",
		msg: UserMessage{
			Message: "Required column is missing from CSV",
			Action:  "Check the header row against the sheet layout",
			Code:    "VAL001",
		},
	},
	{
		pattern: "invalid number",
		msg: UserMessage{
			Message: "Invalid number format detected",
			Action:  "Use plain decimals such as 40 or 41.5",
			Code:    "VAL002",
		},
	},
	{
		pattern: "out of range",
		msg: UserMessage{
			Message: "Number outside the allowed range",
			Action:  "Flavor values must be between 0 and 10",
			Code:    "VAL003",
		},
	},
	{
		pattern: "required field",
		msg: UserMessage{
			Message: "Required field is empty",
			Action:  "Fill in the value or remove the row",
			Code:    "VAL004",
		},
	},
	{
		pattern: "invalid enum",
		msg: UserMessage{
			Message: "Value is not in the allowed list",
			Action:  "Check the allowed values for this field",
			Code:    "VAL005",
		},
	},

	// =========================================================================
	// Parse Errors (PARSE001-PARSE002)
	// =========================================================================
	{
		pattern: "unparseable ingredient",
		msg: UserMessage{
			Message: "Ingredient phrase matched no rule",
			Action:  `Rewrite the phrase as "<amount> <unit> <name>"`,
			Code:    "PARSE001",
		},
	},
	{
		pattern: "vocabulary",
		msg: UserMessage{
			Message: "Vocabulary file could not be read",
			Action:  "Check the YAML syntax and regular expressions",
			Code:    "PARSE002",
		},
	},

	// =========================================================================
	// Configuration Errors (CFG001-CFG002)
	// =========================================================================
	{pattern: "invalid configuration", msg: msgInvalidConfig},
	{pattern: "config validation", msg: msgInvalidConfig},
	{pattern: "config load", msg: msgInvalidConfig},
	{
		pattern: "unknown sheet",
		msg: UserMessage{
			Message: "Sheet kind is not registered",
			Action:  "Use one of the documented sheet kinds",
			Code:    "CFG002",
		},
	},

	// =========================================================================
	// Request Errors (REQ001-REQ005)
	// =========================================================================
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "Request body exceeds the limit",
			Action:  "Send fewer phrases per request",
			Code:    "REQ004",
		},
	},
	{
		pattern: "invalid request",
		msg: UserMessage{
			Message: "Request body could not be decoded",
			Action:  "Send a JSON body matching the documented shape",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Send fewer phrases per request",
			Code:    "REQ003",
		},
	},
	{
		pattern: "rate limit exceeded",
		msg: UserMessage{
			Message: "Too many requests from one client",
			Action:  "Wait a minute and try again",
			Code:    "REQ005",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Run again with LOG_LEVEL=debug and check the log",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through known error patterns (case-insensitive) and returns
// the first match. If no pattern matches, a generic fallback message with
// code ERR000 is returned.
//
// Example:
//
//	err := fmt.Errorf("drinks.csv: %w", ErrEmptyFile)
//	msg := MapError(err)
//	// msg.Code == "FILE005"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern rather than the
// ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-friendly message.
// The original error is preserved for logging via Unwrap.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError creates a UserError by mapping a technical error to a
// user-friendly message. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
