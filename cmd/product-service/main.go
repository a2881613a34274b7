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
	cat "github.com/MikeMC777/shop-ecom/internal/category"
	"github.com/MikeMC777/shop-ecom/internal/config"
	"github.com/MikeMC777/shop-ecom/internal/db"
	_ "github.com/MikeMC777/shop-ecom/internal/docs"
	"github.com/MikeMC777/shop-ecom/internal/httpx"
	"github.com/MikeMC777/shop-ecom/internal/logx"
	prod "github.com/MikeMC777/shop-ecom/internal/product"
	"github.com/MikeMC777/shop-ecom/internal/server"
)

const serviceName = "product-service"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("config")
	}
	logx.Init(logx.Options{Production: cfg.Production(), Level: cfg.LogLevel})
	if err := cfg.Validate(); err != nil {
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

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	r := httpx.NewEngine()
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	registerRoutes(r, prod.NewPGRepo(pool), cat.NewPGRepo(pool), tokens)

	err = server.Run(ctx, server.Options{
		Name:           serviceName,
		HTTPAddr:       cfg.ProductSvcAddr,
		GRPCAddr:       cfg.ProductGRPCAddr,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}, r)
	if err != nil {
		logx.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
