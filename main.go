package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/janvichoudhary08/FactoryManageServer/condb"
	"github.com/janvichoudhary08/FactoryManageServer/config"
	"github.com/janvichoudhary08/FactoryManageServer/controllers"
	"github.com/janvichoudhary08/FactoryManageServer/middleware"
	"github.com/janvichoudhary08/FactoryManageServer/routes"
)

func main() {
	cfg := config.LoadConfig()

	store := openStore(cfg)

	app := newApp(cfg, store)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutdown signal received, initiating graceful shutdown...")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		log.Printf("Store close error: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// newApp mounts the static directory ahead of the route table, so a
// public/index.html is served for GET / in place of the welcome text.
func newApp(cfg *config.Config, store condb.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins, // comma separated
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	if _, err := os.Stat(cfg.StaticDir); err == nil {
		app.Static("/", cfg.StaticDir)
	}

	routes.RegisterRoutes(app, controllers.New(store, cfg.StoreTimeout))
	return app
}

// openStore connects and pings the configured store. A failed connection is
// logged and the server still starts; data routes then answer 500.
func openStore(cfg *config.Config) condb.Store {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	defer cancel()

	store, err := condb.Open(ctx, cfg)
	if err != nil {
		log.Printf("Error connecting to %s store: %v", cfg.StoreDriver, err)
		return condb.Unavailable(err)
	}
	if err := store.Ping(ctx); err != nil {
		log.Printf("Error connecting to %s store: %v", cfg.StoreDriver, err)
		return store
	}

	log.Printf("Connected to %s store", cfg.StoreDriver)
	return store
}
