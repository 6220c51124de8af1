package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Prometheus-first/worldguide/app/models"
	"github.com/Prometheus-first/worldguide/app/repository"
	"github.com/Prometheus-first/worldguide/internal/pkg/usercontext"
)

// articleRequest is the JSON body shared by the publish, draft and
// update endpoints.
type articleRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	DraftID  string   `json:"draft_id"`
}

const titleLengthMessage = "title must be between 5 and 100 characters"

// HandleAPIArticlePublish stores a new article for the logged-in user
func HandleAPIArticlePublish(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "no data received")
	}

	if req.Title == "" || req.Content == "" || req.Category == "" {
		return jsonError(c, fiber.StatusBadRequest, "title, content and category are required")
	}

	if len([]rune(req.Title)) < 5 || len([]rune(req.Title)) > 100 {
		return jsonError(c, fiber.StatusBadRequest, titleLengthMessage)
	}

	article, err := models.NewArticle(req.Title, req.Content, req.Category, req.Tags, userCtx.UserID, userCtx.Username)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, titleLengthMessage)
	}

	if err := repository.GetGlobalFactory().GetArticleRepository().Create(article); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to publish article")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"message":      "article published",
		"article_id":   article.UUID,
		"redirect_url": fmt.Sprintf("/article/%s", article.UUID),
	})
}

// HandleAPIArticleUpdate overwrites the editable fields of an article
// owned by the caller. Ownership is folded into the store write, so a
// missing article and a foreign one produce the same outcome.
func HandleAPIArticleUpdate(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	articleID := c.Params("id")
	if !isValidID(articleID) {
		return jsonError(c, fiber.StatusBadRequest, "invalid article id")
	}

	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "no data received")
	}

	if req.Title == "" || req.Content == "" || req.Category == "" {
		return jsonError(c, fiber.StatusBadRequest, "title, content and category are required")
	}

	if len([]rune(req.Title)) < 5 || len([]rune(req.Title)) > 100 {
		return jsonError(c, fiber.StatusBadRequest, titleLengthMessage)
	}

	err := repository.GetGlobalFactory().GetArticleRepository().
		UpdateOwned(articleID, userCtx.UserID, req.Title, req.Content, req.Category, req.Tags)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "article not found or permission denied")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update article")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "article updated",
		"redirect_url": fmt.Sprintf("/article/%s", articleID),
	})
}

// HandleAPIArticleDelete hard-deletes an article owned by the caller.
// Deleting the same article twice yields not-found the second time.
func HandleAPIArticleDelete(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	articleID := c.Params("id")
	if !isValidID(articleID) {
		return jsonError(c, fiber.StatusBadRequest, "invalid article id")
	}

	err := repository.GetGlobalFactory().GetArticleRepository().
		DeleteOwned(articleID, userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "article not found or permission denied")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete article")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "article deleted",
		"redirect_url": "/user-center",
	})
}
