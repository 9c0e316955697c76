// Command ingredientd serves the ingredient preview API, which shows how
// recipe text will be parsed and inferred before a seed run.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/drinkseed/internal/app"
	"github.com/JonMunkholm/drinkseed/internal/web"
)

func main() {
	app.Main("ingredientd", run)
}

func run(env *app.Env) error {
	logger := env.Logger()
	server := web.NewServer(env.Kit, env.Config.Server)

	ctx, stop := signal.NotifyContext(env.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()
	logger.Info("server starting",
		"addr", server.Addr(),
		"parser_mode", env.Config.Parser.Mode,
		"auth", len(env.Config.Server.APIKeyList()) > 0,
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", server.Addr(), err)
	case <-ctx.Done():
	}

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), env.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
