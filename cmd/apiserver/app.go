package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/marxiobadel/farmer-sub002/internal/app/config"
	"github.com/marxiobadel/farmer-sub002/internal/app/consumer"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdaccount"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdpayment"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/rpaccount"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/rpcarrier"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/rporder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/rpproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/rpzone"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svaccount"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svcallback"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svcarrier"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/infra/mq/lmstfy"
	"github.com/marxiobadel/farmer-sub002/internal/app/infra/persistence/redis"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/idgen"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/tracing"
	"github.com/marxiobadel/farmer-sub002/internal/app/server/handlers/account"
	"github.com/marxiobadel/farmer-sub002/internal/app/server/handlers/carrier"
	"github.com/marxiobadel/farmer-sub002/internal/app/server/handlers/order"
	"github.com/marxiobadel/farmer-sub002/internal/app/server/handlers/product"
	"github.com/marxiobadel/farmer-sub002/internal/app/server/handlers/shipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/server/routers"
)

// App 进程内的顶层组件
type App struct {
	Engine           *gin.Engine
	CallbackConsumer *consumer.CallbackConsumer
	Logger           logger.Logger
}

// InitializeApp 按 repo → module → service → handler 的顺序装配依赖
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	appLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger failed: %w", err)
	}
	idgen.Init(1)

	db, err := openDB(cfg.MySQL)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql.DB failed: %w", err)
	}

	redisClient, err := redis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("init redis failed: %w", err)
	}

	lmstfyClient := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Port, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)

	var shutdownTracer func(context.Context) error
	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(context.Background(), cfg.Tracing.ServiceName)
		if err != nil {
			appLogger.Warnf(context.Background(), "tracing disabled: %v", err)
		} else {
			shutdownTracer = tp.Shutdown
		}
	}

	// Repository
	accountRepo := rpaccount.NewAccountRepository(db)
	orderRepo := rporder.NewOrderRepository(db)
	productRepo := rpproduct.NewProductRepository(db)
	carrierRepo := rpcarrier.NewCarrierRepository(db)
	zoneRepo := rpzone.NewZoneRepository(db)

	// Module
	accountModule := mdaccount.NewAccountModule(accountRepo)
	orderModule := mdorder.NewOrderModule(orderRepo, accountRepo)
	productModule := mdproduct.NewProductModule(productRepo)
	shippingModule := mdshipping.NewShippingModule(carrierRepo, zoneRepo, redisClient, cfg.Shipping.RateCacheTTL, appLogger)
	paymentModule := mdpayment.NewPaymentModule(lmstfyClient, redisClient, cfg.Lmstfy.OrderQueue)

	// Service
	ids := idgen.Default()
	shippingService := svshipping.NewShippingService(shippingModule, productModule, cfg.Shipping.FreeWhenCarrierMissing(), appLogger)
	orderService := svorder.NewOrderService(orderModule, productModule, shippingModule, paymentModule, shippingService, cfg.App.Currency, appLogger)
	accountService := svaccount.NewAccountService(accountModule, ids)
	carrierService := svcarrier.NewCarrierService(shippingModule, ids, appLogger)
	productService := svproduct.NewProductService(productModule, ids)
	callbackService := svcallback.NewCallbackService(orderModule, paymentModule, appLogger)

	// Handler
	engine := routers.SetupRoutes(&routers.Handlers{
		Account:  account.NewAccountHandler(accountService),
		Carrier:  carrier.NewCarrierHandler(carrierService),
		Order:    order.NewOrderHandler(orderService),
		Product:  product.NewProductHandler(productService),
		Shipping: shipping.NewShippingHandler(shippingService, cfg.App.Currency),
	}, appLogger, routers.Options{
		ServiceName:    cfg.Tracing.ServiceName,
		TracingEnabled: shutdownTracer != nil,
	})

	callbackConsumer := consumer.NewCallbackConsumer(lmstfyClient, callbackService, consumerConfig(cfg), appLogger)

	cleanup := func() {
		if shutdownTracer != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = shutdownTracer(ctx)
			cancel()
		}
		_ = redisClient.Close()
		_ = sqlDB.Close()
		_ = appLogger.Sync()
	}

	return &App{
		Engine:           engine,
		CallbackConsumer: callbackConsumer,
		Logger:           appLogger,
	}, cleanup, nil
}

func openDB(cfg config.MySQLConfig) (*gorm.DB, error) {
	// TranslateError 让唯一键冲突返回 gorm.ErrDuplicatedKey
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("init database failed: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB failed: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}

func consumerConfig(cfg *config.Config) *consumer.Config {
	return &consumer.Config{
		QueueName:      cfg.Lmstfy.CallbackQueue,
		Pullers:        cfg.Consumer.Pullers,
		Processors:     cfg.Consumer.Processors,
		BufferSize:     cfg.Consumer.BufferSize,
		Timeout:        cfg.Consumer.Timeout,
		TTR:            cfg.Consumer.TTR,
		ErrorBackoff:   cfg.Consumer.ErrorBackoff,
		ProcessTimeout: cfg.Consumer.ProcessTimeout,
	}
}
