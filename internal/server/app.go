// Package server wires configuration, storage, services and the HTTP server
// into a runnable application and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/secondchance/internal/cryptox"
	"github.com/dmitrijs2005/secondchance/internal/logging"
	"github.com/dmitrijs2005/secondchance/internal/server/auth"
	"github.com/dmitrijs2005/secondchance/internal/server/config"
	"github.com/dmitrijs2005/secondchance/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/secondchance/internal/server/rest"
	"github.com/dmitrijs2005/secondchance/internal/server/services"
	"github.com/dmitrijs2005/secondchance/internal/server/validation"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *rest.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.Environment)

	if c.Environment == logging.ProductionEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}

	hasher, err := cryptox.NewPasswordHasher(c.PasswordHashAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("password hasher init error: %w", err)
	}

	v, err := validation.New()
	if err != nil {
		return nil, fmt.Errorf("validator init error: %w", err)
	}

	repos, err := repomanager.New(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	accounts := services.NewAccountService(repos.Users(), hasher, auth.NewIssuer(c.SecretKey))
	items := services.NewItemService(repos.Items())

	h := rest.NewHandler(logger, accounts, items, v)
	srv := rest.NewServer(c.EndpointAddrHTTP, h, logger, c.ShutdownTimeout)

	return &App{config: c, logger: logger, repos: repos, server: srv}, nil
}

// initSignalHandler cancels on SIGINT, SIGTERM or SIGQUIT. The returned stop
// func unregisters the signals and waits for the watcher to exit; call it
// once ctx is done.
func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) (stop func()) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()

	return func() {
		signal.Stop(sigs)
		<-done
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until a termination signal arrives or the server fails, then
// releases the storage backend.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "environment", app.config.Environment)

	stopSignals := app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	cancelFunc()
	stopSignals()

	closeCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := app.repos.Close(closeCtx); err != nil {
		return fmt.Errorf("db close error: %w", err)
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
