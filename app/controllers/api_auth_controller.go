package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Prometheus-first/worldguide/app/models"
	"github.com/Prometheus-first/worldguide/app/repository"
	"github.com/Prometheus-first/worldguide/internal/pkg/session"
	"github.com/Prometheus-first/worldguide/internal/pkg/usercontext"
)

// HandleAPIRegister creates a new user account from the registration
// form. There is no auto-login; the client is expected to follow up
// with /api/login.
func HandleAPIRegister(c *fiber.Ctx) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")
	confirmPassword := c.FormValue("confirm_password")

	if username == "" || email == "" || password == "" || confirmPassword == "" {
		return jsonError(c, fiber.StatusBadRequest, "all fields are required")
	}

	if password != confirmPassword {
		return jsonError(c, fiber.StatusBadRequest, "passwords do not match")
	}

	repo := repository.GetGlobalFactory().GetUserRepository()

	// One combined existence query covers both unique fields
	exists, err := repo.ExistsByNameOrEmail(username, email)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "registration failed")
	}
	if exists {
		return jsonError(c, fiber.StatusBadRequest, "username or email already in use")
	}

	user, err := models.CreateUser(username, email, password)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid registration data")
	}

	if err := repo.Create(user); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "registration successful",
	})
}

// HandleAPILogin verifies credentials and establishes the session
// identity. Unknown usernames and wrong passwords share one generic
// failure so callers cannot enumerate accounts.
func HandleAPILogin(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if username == "" || password == "" {
		return jsonError(c, fiber.StatusBadRequest, "username and password are required")
	}

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByName(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusUnauthorized, "invalid username or password")
		}
		return jsonError(c, fiber.StatusInternalServerError, "login failed")
	}

	if !user.CheckPassword(password) {
		return jsonError(c, fiber.StatusUnauthorized, "invalid username or password")
	}

	store := session.GetSessionStore()
	if store == nil {
		return jsonError(c, fiber.StatusInternalServerError, "login failed")
	}
	sess, err := store.Get(c)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "login failed")
	}

	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)

	if err := sess.Save(); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "login failed")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "login successful",
	})
}
