package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/shop-ecom/internal/auth"
	"github.com/MikeMC777/shop-ecom/internal/config"
	"github.com/MikeMC777/shop-ecom/internal/db"
	_ "github.com/MikeMC777/shop-ecom/internal/docs"
	"github.com/MikeMC777/shop-ecom/internal/httpx"
	"github.com/MikeMC777/shop-ecom/internal/logx"
	"github.com/MikeMC777/shop-ecom/internal/order"
	"github.com/MikeMC777/shop-ecom/internal/payment"
	"github.com/MikeMC777/shop-ecom/internal/server"
)

const serviceName = "order-service"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("config")
	}
	logx.Init(logx.Options{Production: cfg.Production(), Level: cfg.LogLevel})
	if err := cfg.ValidatePayments(); err != nil {
		logx.Fatal().Err(err).Msg("config")
	}
	cfg.Log(serviceName)
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		logx.Fatal().Err(err).Msg("postgres")
	}
	defer pool.Close()
	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, pool); err != nil {
			logx.Fatal().Err(err).Msg("migrate")
		}
	}

	var events order.Publisher = order.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := order.NewKafkaPublisher(cfg.KafkaBrokers, cfg.OrderEventsTopic)
		if err != nil {
			logx.Fatal().Err(err).Msg("kafka")
		}
		defer kp.Close()
		events = kp
	}

	// one gateway for the life of the process
	gateway := payment.NewStripeGateway(payment.StripeConfig{
		SecretKey: cfg.StripeSecretKey,
		Currency:  cfg.Currency,
	})
	orders := order.NewPGRepo(pool)
	checkout := order.NewCheckout(gateway, orders, events)

	r := httpx.NewEngine()
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	registerRoutes(r, checkout, orders, auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL))

	err = server.Run(ctx, server.Options{
		Name:           serviceName,
		HTTPAddr:       cfg.OrderSvcAddr,
		GRPCAddr:       cfg.OrderGRPCAddr,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}, r)
	if err != nil {
		logx.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
