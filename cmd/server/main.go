package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/abdul977/diamondbakes-sub000/internal/config"
	"github.com/abdul977/diamondbakes-sub000/internal/database"
	"github.com/abdul977/diamondbakes-sub000/internal/handlers"
	"github.com/abdul977/diamondbakes-sub000/internal/routes"
	"github.com/abdul977/diamondbakes-sub000/internal/storage"
	"github.com/abdul977/diamondbakes-sub000/internal/store"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg.MongoURI, cfg.MongoDB)
	defer database.Disconnect(db)

	uploader, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey,
		cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
	if err != nil {
		log.Fatalf("failed to configure object storage: %v", err)
	}
	if uploader == nil {
		log.Print("object storage not configured; /api/upload is disabled")
	}

	app := fiber.New(fiber.Config{
		AppName:      "Diamond Bakes Backend",
		ErrorHandler: handlers.NewErrorHandler(cfg.Production()),
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowCredentials: true,
	}))

	st := store.NewMongo(db)
	if uploader != nil {
		routes.Register(app, st, uploader, cfg)
	} else {
		routes.Register(app, st, nil, cfg)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Print("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("fiber.Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
