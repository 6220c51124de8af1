package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/Prometheus-first/worldguide/app/controllers"
	"github.com/Prometheus-first/worldguide/app/repository"
	"github.com/Prometheus-first/worldguide/internal/pkg/database"
	"github.com/Prometheus-first/worldguide/internal/pkg/env"
	"github.com/Prometheus-first/worldguide/internal/pkg/middleware"
	"github.com/Prometheus-first/worldguide/internal/pkg/session"
)

type HttpRouter struct {
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init repositories
	repository.InitializeFactory(database.GetDB())

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	h.registerPageRoutes(app)
}

func (h HttpRouter) registerPageRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))
	group.Get("/", controllers.HandleIndex)
	group.Get("/login", controllers.HandleLoginPage)
	group.Get("/register", controllers.HandleRegisterPage)
	group.Get("/home", controllers.HandleHomePage)
	group.Get("/logout", controllers.HandleLogout)

	// Public article pages
	group.Get("/articles", controllers.HandleArticleList)
	group.Get("/article/:id", controllers.HandleArticleDetail)

	// Authoring pages
	group.Get("/publish", middleware.RequireAuth, controllers.HandlePublishPage)
	group.Get("/edit-article/:id", middleware.RequireAuth, controllers.HandleEditArticlePage)
	group.Get("/user-center", middleware.RequireAuth, controllers.HandleUserCenter)
}
