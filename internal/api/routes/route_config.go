package routes

import (
	"Recipe-Platform-Backend/internal/api/handlers"
	"Recipe-Platform-Backend/internal/middleware"
	"Recipe-Platform-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        *handlers.UserHandler
	RecipeHandler      *handlers.RecipeHandler
	SiteContentHandler *handlers.SiteContentHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.CSRFMiddleware())
	c.User()
	c.Recipes()
	c.SiteContent()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/session", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.UserHandler.Session)
		user.Post("/forgot-password", c.UserHandler.ForgotPassword)
		user.Post("/reset-password", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.ListRecipes)
		recipes.Get("/bookmarks", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.ListBookmarks)
		recipes.Post("/:id/bookmark", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.ToggleBookmark)
		recipes.Post("/:id/comments", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateComment)
		recipes.Post("/:id/rating", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpsertRating)
	}

	manage := recipes.Group("/manage", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware())
	{
		manage.Post("", c.RecipeHandler.CreateRecipe)
		manage.Patch("/:id", c.RecipeHandler.UpdateRecipe)
		manage.Delete("/:id", c.RecipeHandler.DeleteRecipe)
		manage.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
	}

	// Registered last so "bookmarks" and "manage" are not swallowed by the
	// slug parameter.
	recipes.Get("/:slug", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeDetail)
}

func (c *Config) SiteContent() {
	site := c.App.Group("/api/v1/site")
	{
		site.Get("/header", c.SiteContentHandler.GetHeader)
		site.Get("/footer", c.SiteContentHandler.GetFooter)
		site.Get("/heroes", c.SiteContentHandler.ListHeroes)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
