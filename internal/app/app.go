package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/lumelle/catalog-fixture/config"
	"github.com/lumelle/catalog-fixture/internal/adapter/fixture"
	"github.com/lumelle/catalog-fixture/internal/adapter/httphandler"
	"github.com/lumelle/catalog-fixture/internal/core/port"
	"github.com/lumelle/catalog-fixture/internal/core/service"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	catalog    fixture.Catalog
	service    port.ProductsReader
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) App {
	var app App
	app.ctx = ctx
	app.cfg = cfg

	app.initLogger()
	app.initCatalog()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCatalog() {
	const op = "App.initCatalog"

	c, err := fixture.LoadCatalog(app.cfg.FixtureFile)
	if err != nil {
		app.fallDown(op, err)
	}
	app.catalog = c
}

func (app *App) initCoreService() {
	app.service = service.New(app.catalog)
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, app.service)

	handler := httphandler.WithRequestLog(mux)
	app.httpServer = httphandler.NewHTTPServer(
		app.ctx, app.cfg.HTTPServerAddr, handler,
	)
}

func (app App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("stub catalog is running", "products", app.catalog.Len())
}

func (app App) Close(ctx context.Context) {
	slog.Info("stub catalog is closing...")

	app.httpServer.Close(ctx)

	slog.Info("stub catalog is closed")
}

func (app App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
