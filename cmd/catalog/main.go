package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/catalog"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/logger"
	"storefront/internal/server"
	"storefront/internal/usecase"

	"go.uber.org/zap"
)

// 開発用のカタログサーバー（/products, /stock）。
// CATALOG_FIXTURE のJSONをSQLiteに投入して配信する。
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewForEnvironment(cfg.GoEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.OpenSQLite(cfg.CatalogSQLitePath, log)
	if err != nil {
		log.Fatal("open catalog db", zap.Error(err))
	}

	catalogRepo := infraRepo.NewCatalogGormRepository(gormDB)
	if err := catalogRepo.Migrate(ctx); err != nil {
		log.Fatal("migrate catalog", zap.Error(err))
	}

	fixture, err := catalog.LoadFixture(cfg.CatalogFixture)
	if err != nil {
		log.Fatal("load fixture", zap.String("path", cfg.CatalogFixture), zap.Error(err))
	}
	if err := catalogRepo.Seed(ctx, fixture.Products, fixture.Stock); err != nil {
		log.Fatal("seed catalog", zap.Error(err))
	}
	log.Info("catalog seeded",
		zap.Int("products", len(fixture.Products)),
		zap.Int("stock", len(fixture.Stock)),
	)

	catalogH := handler.NewCatalogHandler(usecase.NewCatalogUsecase(catalogRepo, catalogRepo))

	e := server.New(log, catalogH)
	if err := server.Start(ctx, config.ListenAddr(cfg.CatalogPort), e, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
