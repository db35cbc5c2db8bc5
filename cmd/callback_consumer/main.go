package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/marxiobadel/farmer-sub002/internal/app/config"
	"github.com/marxiobadel/farmer-sub002/internal/app/consumer"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdpayment"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/rpaccount"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/rporder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svcallback"
	"github.com/marxiobadel/farmer-sub002/internal/app/infra/mq/lmstfy"
	"github.com/marxiobadel/farmer-sub002/internal/app/infra/persistence/redis"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/logger"
)

// 独立部署的支付回调消费者，与 apiserver 内置的消费者逻辑一致
func main() {
	configPath := flag.String("config", "config/config.yaml", "配置文件路径")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化日志
	appLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. 初始化基础设施组件
	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql.DB: %v", err)
	}
	defer sqlDB.Close()

	redisClient, err := redis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to init redis: %v", err)
	}
	defer redisClient.Close()

	lmstfyClient := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Port, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)

	// 4. Repository → Module → Service
	orderModule := mdorder.NewOrderModule(rporder.NewOrderRepository(db), rpaccount.NewAccountRepository(db))
	paymentModule := mdpayment.NewPaymentModule(lmstfyClient, redisClient, cfg.Lmstfy.OrderQueue)
	callbackService := svcallback.NewCallbackService(orderModule, paymentModule, appLogger)

	// 5. 启动消费循环，收到信号后排空在途消息再退出
	callbackConsumer := consumer.NewCallbackConsumer(lmstfyClient, callbackService, &consumer.Config{
		QueueName:      cfg.Lmstfy.CallbackQueue,
		Pullers:        cfg.Consumer.Pullers,
		Processors:     cfg.Consumer.Processors,
		BufferSize:     cfg.Consumer.BufferSize,
		Timeout:        cfg.Consumer.Timeout,
		TTR:            cfg.Consumer.TTR,
		ErrorBackoff:   cfg.Consumer.ErrorBackoff,
		ProcessTimeout: cfg.Consumer.ProcessTimeout,
	}, appLogger)

	if err := callbackConsumer.Start(ctx); err != nil {
		appLogger.Errorf(context.Background(), "callback consumer stopped with error: %v", err)
		return
	}
	appLogger.Infof(context.Background(), "callback consumer stopped gracefully")
}
