package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Prometheus-first/worldguide/app/models"
	"github.com/Prometheus-first/worldguide/app/repository"
	"github.com/Prometheus-first/worldguide/internal/pkg/usercontext"
)

// HandleAPIDraftSave resolves the three-way draft upsert. An explicit
// draft_id owned by the caller wins; otherwise an existing draft with
// the same title is updated; otherwise a new draft is created.
func HandleAPIDraftSave(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "no data received")
	}

	repo := repository.GetGlobalFactory().GetDraftRepository()

	if req.DraftID != "" && isValidID(req.DraftID) {
		draft, err := repo.GetByUUIDForAuthor(req.DraftID, userCtx.UserID)
		if err == nil {
			draft.Title = req.Title
			draft.Content = req.Content
			draft.Category = req.Category
			draft.Tags = req.Tags
			if err := repo.Update(draft); err != nil {
				return jsonError(c, fiber.StatusInternalServerError, "failed to save draft")
			}
			return c.JSON(fiber.Map{
				"success":      true,
				"message":      "draft updated",
				"draft_id":     draft.UUID,
				"redirect_url": "/user-center",
			})
		}
		// An unknown or foreign draft_id falls through to the title match
	}

	draft := models.NewDraft(req.Title, req.Content, req.Category, req.Tags, userCtx.UserID)
	created, err := repo.Save(draft)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save draft")
	}

	status := fiber.StatusOK
	message := "draft updated"
	if created {
		status = fiber.StatusCreated
		message = "draft saved"
	}

	return c.Status(status).JSON(fiber.Map{
		"success":      true,
		"message":      message,
		"draft_id":     draft.UUID,
		"redirect_url": "/user-center",
	})
}

// HandleAPIDraftDelete hard-deletes a draft owned by the caller
func HandleAPIDraftDelete(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	draftID := c.Params("id")
	if !isValidID(draftID) {
		return jsonError(c, fiber.StatusBadRequest, "invalid draft id")
	}

	err := repository.GetGlobalFactory().GetDraftRepository().
		DeleteOwned(draftID, userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "draft not found or permission denied")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete draft")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "draft deleted",
		"redirect_url": "/user-center",
	})
}
