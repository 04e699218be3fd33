package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"

	"RealtySiteAPI/auth"
	"RealtySiteAPI/catalog"
	"RealtySiteAPI/config"
	"RealtySiteAPI/handlers"
	"RealtySiteAPI/routes"
	"RealtySiteAPI/session"
	"RealtySiteAPI/store"
	"RealtySiteAPI/utils"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment variables")
	}

	config.ConnectDB()

	utils.InitRedis()

	collectionName := os.Getenv("MONGODB_COLLECTION_DOCUMENTS")
	if collectionName == "" {
		collectionName = "documents"
	}
	contentStore := store.NewMongoStore(config.GetCollection(collectionName))

	sessions := session.Factory(func(userID string) session.Store {
		return session.NewRedisStore(utils.RedisClient, session.Key(userID))
	})

	authService := auth.NewService(contentStore, logger)

	authController := handlers.NewAuthController(authService, sessions)
	listingsController := handlers.NewListingsController(catalog.Seed(), true)
	formsController := handlers.NewFormsController(contentStore)

	e := echo.New()
	e.Validator = handlers.NewRequestValidator()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	routes.RegisterRoutes(e, authController, listingsController, formsController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("Server starting", "port", port)
	e.Logger.Fatal(e.Start(":" + port))
}
