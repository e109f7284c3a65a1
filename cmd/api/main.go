package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/catalog"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/logger"
	"storefront/internal/notify"
	"storefront/internal/server"
	"storefront/internal/usecase"

	"go.uber.org/zap"
)

// 直近の通知を何件残すか
const notificationBufferSize = 50

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

	//カートの保存先
	slots, err := infraRepo.OpenSlots(ctx, cfg, log.Named("storage"))
	if err != nil {
		log.Fatal("open cart storage", zap.Error(err))
	}
	defer func() { _ = slots.Close() }()

	//リモートのカタログ
	catalogClient := catalog.NewHTTPCatalog(cfg.CatalogBaseURL, cfg.CatalogTimeout, log)

	//Usecase生成（保存済みのカートを読み込む）
	cartUC, err := usecase.NewCartUsecase(ctx, catalogClient, slots, cfg.CartNamespace, log.Named("cart"))
	if err != nil {
		log.Fatal("load cart", zap.Error(err))
	}

	//通知はログと直近バッファの両方へ
	buffer := notify.NewBuffer(notificationBufferSize)
	notifier := notify.Multi{notify.NewLogNotifier(log), buffer}
	cart := usecase.NewNotifyingCart(cartUC, notifier)

	//Handler生成
	cartH := handler.NewCartHandler(cart)
	systemH := handler.NewSystemHandler(slots, buffer)

	//Server起動
	e := server.New(log, cartH, systemH)
	if err := server.Start(ctx, config.ListenAddr(cfg.Port), e, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
