package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
	"gorm.io/gorm"

	"github.com/Prometheus-first/worldguide/app/repository"
	"github.com/Prometheus-first/worldguide/internal/pkg/session"
	"github.com/Prometheus-first/worldguide/internal/pkg/usercontext"
)

// HandleLoginPage renders the login form
func HandleLoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Flash": flash.Get(c),
		"csrf":  c.Locals("csrf"),
	})
}

// HandleRegisterPage renders the registration form
func HandleRegisterPage(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{
		"Flash": flash.Get(c),
		"csrf":  c.Locals("csrf"),
	})
}

// HandleHomePage renders the landing page for a logged-in user. A stale
// session whose user no longer exists falls back to the login page.
func HandleHomePage(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(userCtx.UserID)
	if err != nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	return c.Render("home", fiber.Map{
		"User": user,
	})
}

// HandleIndex routes the bare domain to either the home page or the
// login page depending on the session state
func HandleIndex(c *fiber.Ctx) error {
	if usercontext.IsLoggedIn(c) {
		return c.Redirect("/home", fiber.StatusSeeOther)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// HandleLogout clears all session state unconditionally and sends the
// browser back to the login page
func HandleLogout(c *fiber.Ctx) error {
	store := session.GetSessionStore()
	if store != nil {
		if sess, err := store.Get(c); err == nil {
			_ = sess.Destroy()
		}
	}

	c.Locals(usercontext.KeyFromProtected, false)

	fm := fiber.Map{
		"type":    "success",
		"message": "You are logged out. See you soon!",
	}

	return flash.WithSuccess(c, fm).Redirect("/login", fiber.StatusSeeOther)
}

// HandleAPIProfile returns the authenticated user's public profile.
// The password hash never leaves the store.
func HandleAPIProfile(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "user not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to load user")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"username": user.Name,
			"email":    user.Email,
		},
	})
}
