package repository

import (
	"errors"

	"github.com/Prometheus-first/worldguide/app/models"
	"gorm.io/gorm"
)

// draftRepository implements the DraftRepository interface
type draftRepository struct {
	db *gorm.DB
}

// NewDraftRepository creates a new draft repository instance
func NewDraftRepository(db *gorm.DB) DraftRepository {
	return &draftRepository{db: db}
}

// GetByUUIDForAuthor retrieves a draft by its public identifier, scoped
// to the owning author
func (r *draftRepository) GetByUUIDForAuthor(uuid string, authorID uint) (*models.Draft, error) {
	var draft models.Draft
	err := r.db.Where("uuid = ? AND author_id = ?", uuid, authorID).
		First(&draft).Error
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// GetByTitleForAuthor retrieves the author's draft with the given title
func (r *draftRepository) GetByTitleForAuthor(title string, authorID uint) (*models.Draft, error) {
	var draft models.Draft
	err := r.db.Where("author_id = ? AND title = ? AND is_draft = ?", authorID, title, true).
		First(&draft).Error
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// Save updates the author's existing draft with the same title, or
// inserts a new one. The explicit-id path is resolved by the caller
// before Save. Every path refreshes updated_at.
//
// The title match and the following write are two statements, so two
// concurrent identical submissions can still produce duplicate drafts.
func (r *draftRepository) Save(draft *models.Draft) (bool, error) {
	existing, err := r.GetByTitleForAuthor(draft.Title, draft.AuthorID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}
		return true, r.db.Create(draft).Error
	}

	existing.Content = draft.Content
	existing.Category = draft.Category
	existing.Tags = draft.Tags
	if err := r.db.Save(existing).Error; err != nil {
		return false, err
	}
	*draft = *existing
	return false, nil
}

// Update persists changes to a draft already resolved by explicit id
func (r *draftRepository) Update(draft *models.Draft) error {
	return r.db.Save(draft).Error
}

// DeleteOwned hard-deletes a draft, scoped to the owning author. An absent
// or non-owned draft returns gorm.ErrRecordNotFound.
func (r *draftRepository) DeleteOwned(uuid string, authorID uint) error {
	result := r.db.Where("uuid = ? AND author_id = ?", uuid, authorID).
		Delete(&models.Draft{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByAuthor retrieves the author's drafts, most recently updated first
func (r *draftRepository) ListByAuthor(authorID uint) ([]models.Draft, error) {
	var drafts []models.Draft
	err := r.db.Where("author_id = ? AND is_draft = ?", authorID, true).
		Order("updated_at DESC").Find(&drafts).Error
	return drafts, err
}
