package config

import (
	"Recipe-Platform-Backend/internal/api/handlers"
	"Recipe-Platform-Backend/internal/api/routes"
	"Recipe-Platform-Backend/internal/middleware"
	"Recipe-Platform-Backend/internal/utils"
	"Recipe-Platform-Backend/internal/utils/mailing"
	"Recipe-Platform-Backend/internal/utils/storage"
	"Recipe-Platform-Backend/pkg/jwt"
	"Recipe-Platform-Backend/pkg/notification"
	"Recipe-Platform-Backend/pkg/recipe"
	"Recipe-Platform-Backend/pkg/search"
	"Recipe-Platform-Backend/pkg/sitecontent"
	"Recipe-Platform-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         25 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	searchRepository := search.NewSearchRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	siteContentRepository := sitecontent.NewSiteContentRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	notificationService := notification.NewNotificationService(notificationRepository, mailer)
	searchService := search.NewSearchService(search.LoadConfigFromEnv(), searchRepository)
	userService := user.NewUserService(userRepository, jwtService, notificationService)
	recipeService := recipe.NewRecipeService(recipeRepository, searchService, s3, notificationService)
	recipeAdminService := recipe.NewRecipeAdminService(recipeRepository, searchService, s3)
	siteContentService := sitecontent.NewSiteContentService(siteContentRepository, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, recipeAdminService)
	siteContentHandler := handlers.NewSiteContentHandler(siteContentService)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		RecipeHandler:      recipeHandler,
		SiteContentHandler: siteContentHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
