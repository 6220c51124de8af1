package repository

import (
	"github.com/Prometheus-first/worldguide/app/models"
	"gorm.io/gorm"
)

// articleRepository implements the ArticleRepository interface
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository instance
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create creates a new article in the database
func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// GetByUUID retrieves an article by its public identifier
func (r *articleRepository) GetByUUID(uuid string) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("uuid = ?", uuid).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// List retrieves all articles, newest first
func (r *articleRepository) List() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Order("created_at DESC").Find(&articles).Error
	return articles, err
}

// ListByAuthor retrieves all articles by the given author, newest first
func (r *articleRepository) ListByAuthor(authorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("author_id = ?", authorID).
		Order("created_at DESC").Find(&articles).Error
	return articles, err
}

// GetRelated retrieves up to limit articles in the same category,
// excluding the article itself, newest first
func (r *articleRepository) GetRelated(category, excludeUUID string, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("category = ? AND uuid <> ?", category, excludeUUID).
		Order("created_at DESC").Limit(limit).Find(&articles).Error
	return articles, err
}

// IncrementViews bumps the view counter by one as a single atomic
// column update, leaving every other field untouched.
func (r *articleRepository) IncrementViews(uuid string) error {
	return r.db.Model(&models.Article{}).Where("uuid = ?", uuid).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// UpdateOwned overwrites the editable fields of an article, scoped to its
// owner. A missing article and a non-owned article are indistinguishable:
// both surface as gorm.ErrRecordNotFound.
func (r *articleRepository) UpdateOwned(uuid string, authorID uint, title, content, category string, tags models.StringSlice) error {
	result := r.db.Model(&models.Article{}).
		Where("uuid = ? AND author_id = ?", uuid, authorID).
		Updates(map[string]interface{}{
			"title":    title,
			"content":  content,
			"category": category,
			"tags":     tags,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteOwned hard-deletes an article, scoped to its owner. Deleting an
// absent or non-owned article returns gorm.ErrRecordNotFound.
func (r *articleRepository) DeleteOwned(uuid string, authorID uint) error {
	result := r.db.Where("uuid = ? AND author_id = ?", uuid, authorID).
		Delete(&models.Article{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByAuthor returns the number of articles by the given author
func (r *articleRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).
		Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// SumViewsByAuthor sums the view counters across all of an author's
// articles. Computed by scanning, there is no stored aggregate.
func (r *articleRepository) SumViewsByAuthor(authorID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).
		Where("author_id = ?", authorID).
		Select("COALESCE(SUM(views), 0)").Scan(&total).Error
	return total, err
}

// SumLikesByAuthor sums the like counters across all of an author's articles
func (r *articleRepository) SumLikesByAuthor(authorID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).
		Where("author_id = ?", authorID).
		Select("COALESCE(SUM(likes), 0)").Scan(&total).Error
	return total, err
}
