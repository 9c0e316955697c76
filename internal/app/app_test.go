package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/drinkseed/internal/core/sheets"
	"github.com/JonMunkholm/drinkseed/internal/logging"
	"github.com/JonMunkholm/drinkseed/internal/recipe"
	"github.com/JonMunkholm/drinkseed/internal/rewrite"
)

// isolate runs the test in an empty directory with none of the tool's
// variables set.
func isolate(t *testing.T) string {
	t.Helper()
	for _, name := range []string{
		"LOG_LEVEL", "LOG_FORMAT", "PARSER_MODE", "PARSER_VOCABULARY_FILE",
		"DESCRIPTION_MAX_LENGTH", "INPUT_MAX_FILE_SIZE",
	} {
		t.Setenv(name, "")
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestBootstrap_Defaults(t *testing.T) {
	isolate(t)

	env, err := Bootstrap("test")
	if err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}
	if env.Kit.Parser.Mode() != recipe.Lenient {
		t.Errorf("parser mode = %v, want lenient", env.Kit.Parser.Mode())
	}
	if env.Ctx == nil {
		t.Fatal("Ctx is nil")
	}
}

func TestBootstrap_DotEnv(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("PARSER_MODE")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PARSER_MODE=strict\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	env, err := Bootstrap("test")
	if err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}
	if env.Kit.Parser.Mode() != recipe.Strict {
		t.Errorf("parser mode = %v, want strict from .env", env.Kit.Parser.Mode())
	}
}

func TestBootstrap_InvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv("PARSER_MODE", "reckless")

	_, err := Bootstrap("test")
	if err == nil {
		t.Fatal("Bootstrap() error = nil, want config error")
	}
	if code := ExitCode(context.Background(), err); code != 1 {
		t.Errorf("ExitCode() = %d, want 1", code)
	}
}

func TestBootstrap_BadVocabulary(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "vocab.yaml")
	if err := os.WriteFile(path, []byte("spellings:\n  - pattern: '('\n    replace: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PARSER_VOCABULARY_FILE", path)

	_, err := Bootstrap("test")
	if err == nil {
		t.Fatal("Bootstrap() error = nil, want vocabulary error")
	}
	if !strings.Contains(err.Error(), "vocabulary") {
		t.Errorf("error = %v, want it to mention the vocabulary", err)
	}
}

func TestOpenSheet(t *testing.T) {
	dir := isolate(t)
	env, err := Bootstrap("test")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "drinks.csv")
	if err := os.WriteFile(path, []byte("name\nNegroni\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	sheet, err := env.OpenSheet(sheets.Drinks, path)
	if err != nil {
		t.Fatalf("OpenSheet() error = %v", err)
	}
	if len(sheet.Records) != 1 {
		t.Errorf("records = %d, want 1", len(sheet.Records))
	}

	if _, err := env.OpenSheet("menus", path); err == nil || !strings.Contains(err.Error(), "unknown sheet") {
		t.Errorf("OpenSheet(unknown) error = %v, want unknown sheet", err)
	}
	if _, err := env.OpenSheet(sheets.Drinks, ""); err == nil || !strings.Contains(err.Error(), "no input file") {
		t.Errorf("OpenSheet(\"\") error = %v, want no input file", err)
	}
}

func TestRewriteFile_InPlace(t *testing.T) {
	dir := isolate(t)
	env, err := Bootstrap("test")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "seed.sql")
	in := "((SELECT drink_id FROM drinks WHERE name = 'Gimlet'), (SELECT ingredient_id FROM ingredients WHERE name = 'Gin'), '60', 'ml');\n"
	if err := os.WriteFile(path, []byte(in), 0o644); err != nil {
		t.Fatal(err)
	}

	stats, err := env.RewriteFile(path, "", rewrite.ConvertMl)
	if err != nil {
		t.Fatalf("RewriteFile() error = %v", err)
	}
	if stats.Rewritten != 1 {
		t.Errorf("Rewritten = %d, want 1", stats.Rewritten)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), "'2', 'oz');") {
		t.Errorf("output = %q, want '2', 'oz')", got)
	}
}

func TestRewriteFile_MissingInput(t *testing.T) {
	dir := isolate(t)
	env, err := Bootstrap("test")
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.sql")
	_, err = env.RewriteFile(filepath.Join(dir, "missing.sql"), out, rewrite.RepairParens)
	if err == nil {
		t.Fatal("RewriteFile() error = nil, want file not found")
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("output written despite read failure")
	}
}

func TestWriteOutput_Error(t *testing.T) {
	err := WriteOutput(filepath.Join(t.TempDir(), "missing", "out.sql"), "x")
	if err == nil || !strings.Contains(err.Error(), "write output") {
		t.Errorf("WriteOutput() error = %v, want write output error", err)
	}
}

func TestExitCode(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logging.New(&buf, "info", "text"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	if code := ExitCode(context.Background(), nil); code != 0 {
		t.Errorf("ExitCode(nil) = %d, want 0", code)
	}
	if buf.Len() != 0 {
		t.Errorf("ExitCode(nil) logged %q", buf.String())
	}

	err := fmt.Errorf("drinks.csv: %w", errors.New("empty file"))
	if code := ExitCode(context.Background(), err); code != 1 {
		t.Errorf("ExitCode(err) = %d, want 1", code)
	}
	out := buf.String()
	for _, want := range []string{
		"The file has no header row (Code: FILE005). Export the sheet again including its header",
		"code=FILE005",
		`error="drinks.csv: empty file"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log = %q, want it to contain %q", out, want)
		}
	}
}
