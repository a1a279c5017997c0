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

	"github.com/jonier/api-store/internal/api/handler"
	"github.com/jonier/api-store/internal/api/router"
	"github.com/jonier/api-store/internal/api/server"
	"github.com/jonier/api-store/internal/appcontext"
	"github.com/jonier/api-store/internal/config"
)

// @title api-store
// @version 1.0
// @description Small e-commerce backend: users, products, kinds of product, order statuses and orders.

// @host localhost:3000
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token. Example: "Bearer {token}"

func main() {
	app, err := appcontext.NewApplicationContext(config.GetConfig())
	if err != nil {
		log.Fatal(err)
	}

	apiServer := server.NewServer(
		handler.NewUserHandler(app.UserService),
		handler.NewAuthHandler(app.AuthService),
		handler.NewProductHandler(app.ProductService),
		handler.NewKindOfProductHandler(app.KindOfProductService),
		handler.NewOrderStatusHandler(app.OrderStatusService),
		handler.NewOrderHandler(app.OrderService),
	)

	r := router.SetupRouter(apiServer, app.TokenMaker, &app.Logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", app.Cf.ServerPort),
		Handler: r,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		app.Logger.Info().Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error().Err(err).Msg("server shutdown error")
		}
		if err := app.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error().Err(err).Msg("application shutdown error")
		}
		shutdownCompleted <- struct{}{}
	}()

	app.Logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-shutdownCompleted
	app.Logger.Info().Msg("server closed")
}
