package main

// @title           Storefront API
// @version         1.0
// @description     电商店铺后端 API：运费报价、承运商管理、下单与支付结果等待

// @host      localhost:8080
// @BasePath  /api/v1

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marxiobadel/farmer-sub002/internal/app/config"
)

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

	// 2. 初始化应用（包含 HTTP Server 和 Consumer）
	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer cleanup()

	ctx := context.Background()

	// 3. 创建 HTTP Server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           app.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 4. 启动 Consumer（后台 goroutine）
	consumerCtx, cancelConsumer := context.WithCancel(ctx)
	consumerDone := make(chan error, 1)
	go func() {
		app.Logger.Infof(ctx, "starting callback consumer, queue=%s", cfg.Lmstfy.CallbackQueue)
		consumerDone <- app.CallbackConsumer.Start(consumerCtx)
	}()

	// 5. 启动 HTTP Server（后台 goroutine）
	serverErrChan := make(chan error, 1)
	go func() {
		app.Logger.Infof(ctx, "starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 6. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	consumerStopped := false
	select {
	case <-sigChan:
		app.Logger.Infof(ctx, "received shutdown signal, gracefully shutting down")
	case err := <-serverErrChan:
		app.Logger.Errorf(ctx, "HTTP server error: %v", err)
	case err := <-consumerDone:
		consumerStopped = true
		if err != nil {
			app.Logger.Errorf(ctx, "consumer stopped: %v", err)
		}
	}

	cancelConsumer()
	if !consumerStopped {
		select {
		case <-consumerDone:
		case <-time.After(15 * time.Second):
			app.Logger.Warnf(ctx, "consumer did not stop within 15s")
		}
	}
	gracefulShutdown(ctx, app, server)
	app.Logger.Infof(ctx, "application stopped")
}

// gracefulShutdown 停止 HTTP Server，等待在途请求完成
func gracefulShutdown(ctx context.Context, app *App, server *http.Server) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.Logger.Errorf(ctx, "HTTP server shutdown error: %v", err)
	}
}
