package repository

import (
	"github.com/Prometheus-first/worldguide/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByName(username string) (*models.User, error)
	ExistsByNameOrEmail(username, email string) (bool, error)
}

// ArticleRepository defines the interface for article-related database operations
type ArticleRepository interface {
	Create(article *models.Article) error
	GetByUUID(uuid string) (*models.Article, error)
	List() ([]models.Article, error)
	ListByAuthor(authorID uint) ([]models.Article, error)
	GetRelated(category, excludeUUID string, limit int) ([]models.Article, error)
	IncrementViews(uuid string) error
	UpdateOwned(uuid string, authorID uint, title, content, category string, tags models.StringSlice) error
	DeleteOwned(uuid string, authorID uint) error
	CountByAuthor(authorID uint) (int64, error)
	SumViewsByAuthor(authorID uint) (int64, error)
	SumLikesByAuthor(authorID uint) (int64, error)
}

// DraftRepository defines the interface for draft-related database operations
type DraftRepository interface {
	GetByUUIDForAuthor(uuid string, authorID uint) (*models.Draft, error)
	GetByTitleForAuthor(title string, authorID uint) (*models.Draft, error)
	Save(draft *models.Draft) (created bool, err error)
	Update(draft *models.Draft) error
	DeleteOwned(uuid string, authorID uint) error
	ListByAuthor(authorID uint) ([]models.Draft, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User    UserRepository
	Article ArticleRepository
	Draft   DraftRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Article: NewArticleRepository(db),
		Draft:   NewDraftRepository(db),
	}
}
