package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gallery-service/internal/auth"
	"gallery-service/internal/config"
	"gallery-service/internal/handlers"
	"gallery-service/internal/repository"
	"gallery-service/internal/services"
	"gallery-service/internal/storage"
	"gallery-service/internal/utils"
)

func main() {
	// load config
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	dev := cfg.App.Env == "development"

	// logger
	log, _ := utils.NewLogger(dev)
	defer func() { _ = log.Sync() }()

	// Mongo
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mc, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	db := mc.Database(cfg.Mongo.Database)

	artRepo := repository.NewArtRepo(db.Collection("arts"))
	bidRepo := repository.NewBidRepo(db.Collection("bids"), db.Collection("bid_tops"))
	pageRepo := repository.NewPageRepo(db.Collection("page_media"), db.Collection("about"))
	contactRepo := repository.NewContactRepo(db.Collection("contacts"))

	// S3 blob store
	store, err := storage.NewS3Store(context.Background(), cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.Endpoint)
	if err != nil {
		log.Fatalf("s3 init: %v", err)
	}

	// services
	artSvc := services.NewArtService(artRepo, store, log)
	bidSvc := services.NewBidService(bidRepo, artRepo, log)
	pageSvc := services.NewPageService(pageRepo, contactRepo, store, log)

	// access gate
	gate := auth.NewGate(cfg.Auth.AdminToken, cfg.Auth.JWTSecret)

	// fiber app & routes
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.Upload.MaxBytes,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	})
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())

	h := handlers.NewHandler(artSvc, bidSvc, pageSvc, gate)
	h.Register(app)

	// start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		log.Infof("starting gallery service on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen failed: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info("shutdown requested")
	timeoutCtx, cancel2 := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel2()

	_ = app.Shutdown()
	_ = mc.Disconnect(timeoutCtx)
	log.Info("shutdown completed")
}
