package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/ordercenter/internal/api"
	"github.com/RoyceAzure/lab/ordercenter/internal/api/handler"
	"github.com/RoyceAzure/lab/ordercenter/internal/api/router"
	"github.com/RoyceAzure/lab/ordercenter/internal/appcontext"
	"github.com/RoyceAzure/lab/ordercenter/internal/config"
	"github.com/rs/zerolog"
)

// @title ordercenter
// @version 1.0
// @description purchase order management service
// @host      localhost:8080
// @BasePath  /api

func main() {
	app, err := appcontext.NewApplicationContext(config.GetConfig())
	if err != nil {
		log.Fatal(err)
		return
	}

	// 初始化 handler
	appDataHandler := handler.NewAppDataHandler(app.BranchService, app.InventoryService, app.OrderService, app.UserService)
	orderHandler := handler.NewOrderHandler(app.OrderService)
	inventoryHandler := handler.NewInventoryHandler(app.InventoryService, app.OrderService)
	authHandler := handler.NewAuthHandler(app.AuthService)

	server := api.NewServer(appDataHandler, orderHandler, inventoryHandler, authHandler)

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 設置路由
	r := router.SetupRouter(server, &logger)

	// 設定服務器參數
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", app.Cf.ServerPort),
		Handler: r,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDownCompleted := make(chan struct{}, 1)
	// 監聽退出訊號
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Printf("Application shutdown error: %v", err)
		}

		shutDownCompleted <- struct{}{}
	}()

	// 啟動服務
	log.Printf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-shutDownCompleted
	log.Printf("closed completed")
}
