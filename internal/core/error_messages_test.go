package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "wrapped empty file sentinel",
			err:         fmt.Errorf("drinks.csv: %w", ErrEmptyFile),
			wantCode:    "FILE005",
			wantMessage: "The file has no header row",
		},
		{
			name:        "wrapped too large sentinel",
			err:         fmt.Errorf("drinks.csv: %w: 200 bytes exceeds 100", ErrFileTooLarge),
			wantCode:    "FILE001",
			wantMessage: "File exceeds the configured size limit",
		},
		{
			name:        "missing file",
			err:         errors.New("file not found: drinks.csv"),
			wantCode:    "FILE003",
			wantMessage: "Input file does not exist",
		},
		{
			name:        "os not exist text",
			err:         errors.New("open x.sql: no such file or directory"),
			wantCode:    "FILE003",
			wantMessage: "Input file does not exist",
		},
		{
			name:        "invalid csv",
			err:         errors.New(`invalid csv at line 4: extraneous or missing " in quoted-field`),
			wantCode:    "FILE002",
			wantMessage: "File is not a valid CSV",
		},
		{
			name:        "missing columns",
			err:         errors.New("missing required columns: name"),
			wantCode:    "VAL001",
			wantMessage: "Required column is missing from CSV",
		},
		{
			name:        "flavor out of range",
			err:         errors.New("sweetness: number out of range [0, 10]"),
			wantCode:    "VAL003",
			wantMessage: "Number outside the allowed range",
		},
		{
			name:        "unparseable ingredient",
			err:         errors.New("unparseable ingredient \"x\""),
			wantCode:    "PARSE001",
			wantMessage: "Ingredient phrase matched no rule",
		},
		{
			name:        "configuration",
			err:         errors.New("config validation failed: PARSER_MODE must be lenient or strict"),
			wantCode:    "CFG001",
			wantMessage: "Configuration is invalid",
		},
		{
			name:        "request timeout",
			err:         errors.New("context deadline exceeded"),
			wantCode:    "REQ003",
			wantMessage: "Request timed out",
		},
		{
			name:        "body too large",
			err:         errors.New("request body too large: limit is 10 bytes"),
			wantCode:    "REQ004",
			wantMessage: "Request body exceeds the limit",
		},
		{
			name:        "rate limited",
			err:         errors.New("rate limit exceeded"),
			wantCode:    "REQ005",
			wantMessage: "Too many requests from one client",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("EMPTY FILE"),
			wantCode:    "FILE005",
			wantMessage: "The file has no header row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	result := FormatUserError(ErrEmptyFile)

	expected := "The file has no header row (Code: FILE005). Export the sheet again including its header"
	if result != expected {
		t.Errorf("FormatUserError() = %q, want %q", result, expected)
	}

	if FormatUserError(nil) != "" {
		t.Error("FormatUserError(nil) should be empty")
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error is not user facing",
			err:  nil,
			want: false,
		},
		{
			name: "known error is user facing",
			err:  ErrFileTooLarge,
			want: true,
		},
		{
			name: "unknown error is not user facing",
			err:  errors.New("random internal error xyz"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsUserFacing(tt.err)
			if got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewUserError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if got := NewUserError(nil); got != nil {
			t.Errorf("NewUserError(nil) = %v, want nil", got)
		}
	})

	t.Run("wraps technical error with user message", func(t *testing.T) {
		techErr := fmt.Errorf("open drinks.csv: %w", ErrEmptyFile)
		userErr := NewUserError(techErr)

		if userErr.Error() != "The file has no header row" {
			t.Errorf("Error() = %q, want user message", userErr.Error())
		}
		if userErr.User.Code != "FILE005" {
			t.Errorf("Code = %q, want FILE005", userErr.User.Code)
		}
		if !errors.Is(userErr, ErrEmptyFile) {
			t.Error("Unwrap() should expose the original error chain")
		}
	})
}
