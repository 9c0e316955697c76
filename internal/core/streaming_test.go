package core

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestBOMSkippingReader(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "file with BOM",
			input:    append([]byte{0xEF, 0xBB, 0xBF}, []byte("name,garnish")...),
			expected: "name,garnish",
		},
		{
			name:     "file without BOM",
			input:    []byte("name,garnish"),
			expected: "name,garnish",
		},
		{
			name:     "empty file",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "only BOM",
			input:    []byte{0xEF, 0xBB, 0xBF},
			expected: "",
		},
		{
			name:     "partial BOM at start",
			input:    []byte{0xEF, 0xBB, 'a', 'b', 'c'},
			expected: string([]byte{0xEF, 0xBB, 'a', 'b', 'c'}),
		},
		{
			name:     "short file",
			input:    []byte("a"),
			expected: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewBOMSkippingReader(bytes.NewReader(tt.input))
			result, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestUTF8Sanitizer(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "valid ASCII",
			input:    []byte("Negroni,Rocks"),
			expected: "Negroni,Rocks",
		},
		{
			name:     "valid UTF-8 with multibyte",
			input:    []byte("Crème de Cassis"),
			expected: "Crème de Cassis",
		},
		{
			name:     "invalid single byte replaced",
			input:    []byte{'h', 'e', 0x80, 'l', 'o'},
			expected: "he?lo",
		},
		{
			name:     "truncated sequence at end",
			input:    []byte{'a', 0xC3},
			expected: "a?",
		},
		{
			name:     "empty input",
			input:    []byte{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewUTF8Sanitizer(bytes.NewReader(tt.input))
			result, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestUTF8Sanitizer_SplitRunes(t *testing.T) {
	// One byte per underlying read splits every multi-byte rune.
	input := "Crème Brûlée"
	reader := NewUTF8Sanitizer(iotest.OneByteReader(strings.NewReader(input)))

	result, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != input {
		t.Errorf("got %q, want %q", string(result), input)
	}
}

func TestLimitedReader(t *testing.T) {
	input := strings.Repeat("x", 1000)

	t.Run("under limit", func(t *testing.T) {
		reader := NewLimitedReader(strings.NewReader(input), 1000)
		data, err := io.ReadAll(reader)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data) != len(input) {
			t.Errorf("read %d bytes, want %d", len(data), len(input))
		}
		if reader.BytesRead != int64(len(input)) {
			t.Errorf("BytesRead = %d, want %d", reader.BytesRead, len(input))
		}
	})

	t.Run("over limit", func(t *testing.T) {
		reader := NewLimitedReader(strings.NewReader(input), 999)
		_, err := io.ReadAll(reader)
		if !errors.Is(err, ErrFileTooLarge) {
			t.Fatalf("err = %v, want ErrFileTooLarge", err)
		}
	})

	t.Run("zero disables limit", func(t *testing.T) {
		reader := NewLimitedReader(strings.NewReader(input), 0)
		if _, err := io.ReadAll(reader); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWrapInput(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte{'h', 'e', 0x80, 'l', 'o'}...)

	result, err := io.ReadAll(WrapInput(bytes.NewReader(input), 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// BOM should be stripped, invalid byte replaced
	if string(result) != "he?lo" {
		t.Errorf("got %q, want %q", string(result), "he?lo")
	}

	_, err = io.ReadAll(WrapInput(bytes.NewReader(input), 4))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("err = %v, want ErrFileTooLarge", err)
	}
}
