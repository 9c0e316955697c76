// Package app holds the start-up and shutdown steps shared by every command:
// .env overlay, configuration, logging, run ID, vocabulary and the mapping of
// failures to support codes and exit status.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/drinkseed/internal/config"
	"github.com/JonMunkholm/drinkseed/internal/core"
	_ "github.com/JonMunkholm/drinkseed/internal/core/sheets" // register sheet layouts
	"github.com/JonMunkholm/drinkseed/internal/logging"
	"github.com/JonMunkholm/drinkseed/internal/recipe"
)

// Env is everything a command needs after start-up.
type Env struct {
	Command string
	Config  *config.Config
	Kit     *recipe.Kit
	Ctx     context.Context // carries the run ID
}

// Logger returns the run logger tagged with the command name.
func (e *Env) Logger() *slog.Logger {
	return logging.WithFields(e.Ctx, "command", e.Command)
}

// Bootstrap prepares a command run. A .env file in the working directory is
// loaded first; variables already set in the environment take precedence.
func Bootstrap(command string) (*Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config load: .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	vocab, err := recipe.LoadVocabulary(cfg.Parser.VocabularyFile)
	if err != nil {
		return nil, err
	}
	kit, err := recipe.NewKit(vocab, recipe.ModeFor(cfg.Parser.Strict()))
	if err != nil {
		return nil, err
	}

	env := &Env{
		Command: command,
		Config:  cfg,
		Kit:     kit,
		Ctx:     logging.WithRunID(context.Background(), logging.NewRunID()),
	}
	env.Logger().Debug("configuration loaded", "config", cfg.String())
	return env, nil
}

// OpenSheet reads the CSV file at path as the registered sheet key, applying
// the configured size limit.
func (e *Env) OpenSheet(key, path string) (*core.Sheet, error) {
	def, ok := core.Get(key)
	if !ok {
		return nil, fmt.Errorf("unknown sheet: %s", key)
	}
	if path == "" {
		return nil, fmt.Errorf("no input file: %s", def.Info.Label)
	}
	return core.OpenSheet(path, def, e.Config.Input.MaxFileSize)
}

// WriteOutput writes text to path, or to stdout when path is "-".
func WriteOutput(path, text string) error {
	if path == "-" {
		if _, err := os.Stdout.WriteString(text); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}

// ExitCode logs err as "Message (Code: XXX). Action" with the technical
// error attached and returns the process exit status: 0 for nil, 1 otherwise.
func ExitCode(ctx context.Context, err error) int {
	uerr := core.NewUserError(err)
	if uerr == nil {
		return 0
	}
	logging.FromContext(ctx).Error(core.FormatUserError(err),
		"code", uerr.User.Code,
		"error", uerr.Unwrap(),
	)
	return 1
}

// Main runs fn inside a bootstrapped Env and exits the process with its
// result.
func Main(command string, fn func(*Env) error) {
	env, err := Bootstrap(command)
	if err != nil {
		os.Exit(ExitCode(context.Background(), err))
	}
	os.Exit(ExitCode(env.Ctx, fn(env)))
}
