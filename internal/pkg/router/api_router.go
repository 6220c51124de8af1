package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/Prometheus-first/worldguide/app/controllers"
	"github.com/Prometheus-first/worldguide/internal/pkg/middleware"
)

type ApiRouter struct {
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())

	// Account
	api.Post("/register", controllers.HandleAPIRegister)
	api.Post("/login", controllers.HandleAPILogin)
	api.Get("/profile", middleware.RequireAPIAuth, controllers.HandleAPIProfile)

	// Articles
	api.Post("/article/publish", middleware.RequireAPIAuth, controllers.HandleAPIArticlePublish)
	api.Post("/article/update/:id", middleware.RequireAPIAuth, controllers.HandleAPIArticleUpdate)
	api.Post("/article/delete/:id", middleware.RequireAPIAuth, controllers.HandleAPIArticleDelete)

	// Drafts
	api.Post("/article/draft", middleware.RequireAPIAuth, controllers.HandleAPIDraftSave)
	api.Post("/draft/delete/:id", middleware.RequireAPIAuth, controllers.HandleAPIDraftDelete)
}
