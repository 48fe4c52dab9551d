package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/eapache/go-resiliency/retrier"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/gabiazevedomeli/projeto-integrador-req-6/config"
	"github.com/gabiazevedomeli/projeto-integrador-req-6/controllers"
	"github.com/gabiazevedomeli/projeto-integrador-req-6/repository"
	"github.com/gabiazevedomeli/projeto-integrador-req-6/service"
	"github.com/gabiazevedomeli/projeto-integrador-req-6/web"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	mainCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Get(logger)

	dbConf, err := pgxpool.ParseConfig(cfg.Database.URI)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse database config")
		return
	}

	pool, err := pgxpool.NewWithConfig(mainCtx, dbConf)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
		return
	}
	defer pool.Close()

	retry := retrier.New(retrier.ConstantBackoff(5, 2*time.Second), nil)
	err = retry.RunCtx(mainCtx, pool.Ping)
	if err != nil {
		logger.Fatal().Err(err).Msg("database is not reachable")
		return
	}

	db := stdlib.OpenDBFromPool(pool)

	err = goose.SetDialect("postgres")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set postgres dialect")
		return
	}

	err = goose.Up(db, "cmd/changelog")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
		return
	}

	trManager := manager.Must(trmpgx.NewDefaultFactory(pool))
	getter := trmpgx.DefaultCtxGetter

	productRepo := repository.NewProductRepository(pool, getter)
	batchRepo := repository.NewBatchRepository(pool, getter)
	cartRepo := repository.NewCartRepository(pool, getter)
	customerRepo := repository.NewCustomerRepository(pool, getter)

	productService := service.NewProductService(productRepo, batchRepo, trManager, time.Now)
	cartService := service.NewCartService(cartRepo, customerRepo, productRepo, batchRepo, trManager)

	server, err := web.New(logger, cfg.Server.RESTPort,
		controllers.NewProductController(productService),
		controllers.NewCartController(cartService),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build http server")
		return
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	<-mainCtx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down http server")
	}
}
