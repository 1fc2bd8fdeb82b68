package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/lumelle/catalog-fixture/config"
	"github.com/lumelle/catalog-fixture/internal/app"
	"github.com/lumelle/catalog-fixture/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	_ = godotenv.Load()

	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	stubService := app.New(sigCtx, cfg)

	stubService.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	stubService.Close(ctx)
}
