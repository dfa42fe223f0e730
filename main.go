// main.go
package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"go-storefront/catalog"
	"go-storefront/checkout"
	"go-storefront/config"
	"go-storefront/controllers"
	"go-storefront/localstore"
	"go-storefront/middleware"
	"go-storefront/quickadd"
	"go-storefront/routes"
	"go-storefront/store"
	"go-storefront/views"
)

func main() {
	logger := logrus.New()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found. Proceeding with environment variables.")
	}

	cfg := config.Load()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Open local storage; when it is unavailable the session runs on
	// in-memory state only, it never fails to start.
	var storage localstore.Storage
	storage, err := localstore.NewFileStorage(cfg.DataDir)
	if err != nil {
		logger.WithError(err).Warn("local storage unavailable, state will not survive restarts")
		storage = localstore.NewMemoryStorage()
	}

	// Initialize the session store and the API clients
	sessionStore := store.New(storage, logger)
	flow := quickadd.NewFlow()
	catalogClient := catalog.NewClient(cfg.APIBaseURL, logger)
	checkoutService := checkout.NewService(cfg.APIBaseURL, sessionStore, logger)

	renderer, err := views.New(logger)
	if err != nil {
		logger.WithError(err).Fatal("parsing templates failed")
	}

	// Initialize controllers
	pageController := controllers.NewPageController(catalogClient, sessionStore, flow, renderer, logger)
	cartController := controllers.NewCartController(sessionStore, flow, renderer)
	quickAddController := controllers.NewQuickAddController(flow, sessionStore, catalogClient)
	checkoutController := controllers.NewCheckoutController(checkoutService, sessionStore, flow, renderer, logger)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(logger))

	// Register routes
	routes.RegisterRoutes(router, pageController, cartController, quickAddController, checkoutController)

	logger.WithField("port", cfg.Port).Info("Server is running")
	logger.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
