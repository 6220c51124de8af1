package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Prometheus-first/worldguide/app/models"
	"github.com/Prometheus-first/worldguide/app/repository"
)

// setupTestDB opens a fresh in-memory database per test. The production
// schema carries MySQL column options, so the tables are created with
// plain SQL here instead of AutoMigrate.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps the in-memory database alive
	sqlDB.SetMaxOpenConns(1)

	statements := []string{
		`CREATE TABLE articles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			uuid TEXT NOT NULL UNIQUE,
			title TEXT,
			content TEXT,
			category TEXT,
			tags TEXT,
			author_id INTEGER,
			author_name TEXT,
			views INTEGER NOT NULL DEFAULT 0,
			likes INTEGER NOT NULL DEFAULT 0,
			comments TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE drafts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			uuid TEXT NOT NULL UNIQUE,
			title TEXT,
			content TEXT,
			category TEXT,
			tags TEXT,
			author_id INTEGER,
			is_draft NUMERIC NOT NULL DEFAULT 1,
			created_at DATETIME,
			updated_at DATETIME
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func createArticle(t *testing.T, repo repository.ArticleRepository, title string, authorID uint) *models.Article {
	t.Helper()

	article, err := models.NewArticle(title, "<p>content</p>", "tech", nil, authorID, "tester")
	require.NoError(t, err)
	require.NoError(t, repo.Create(article))

	return article
}

func TestIncrementViewsBumpsCounterOnly(t *testing.T) {
	repo := repository.NewArticleRepository(setupTestDB(t))
	article := createArticle(t, repo, "Counting views", 1)

	require.NoError(t, repo.IncrementViews(article.UUID))

	got, err := repo.GetByUUID(article.UUID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Views)
	assert.Equal(t, int64(0), got.Likes)
	assert.Equal(t, "Counting views", got.Title)

	require.NoError(t, repo.IncrementViews(article.UUID))
	got, err = repo.GetByUUID(article.UUID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Views)
}

func TestUpdateOwnedForeignAndMissingLookAlike(t *testing.T) {
	repo := repository.NewArticleRepository(setupTestDB(t))
	article := createArticle(t, repo, "Owned article", 1)

	// A non-owner gets the same outcome as a missing id
	err := repo.UpdateOwned(article.UUID, 2, "Hijacked title", "x", "tech", nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.UpdateOwned(uuid.New().String(), 1, "Ghost title", "x", "tech", nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The foreign attempt must not have written anything
	got, err := repo.GetByUUID(article.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Owned article", got.Title)

	require.NoError(t, repo.UpdateOwned(article.UUID, 1, "Renamed article", "new body", "travel", models.StringSlice{"asia"}))
	got, err = repo.GetByUUID(article.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed article", got.Title)
	assert.Equal(t, "new body", got.Content)
	assert.Equal(t, "travel", got.Category)
	assert.Equal(t, models.StringSlice{"asia"}, got.Tags)
}

func TestDeleteOwnedSecondDeleteIsNotFound(t *testing.T) {
	repo := repository.NewArticleRepository(setupTestDB(t))
	article := createArticle(t, repo, "Short lived", 1)

	// Foreign delete fails and leaves the row in place
	assert.ErrorIs(t, repo.DeleteOwned(article.UUID, 2), gorm.ErrRecordNotFound)
	_, err := repo.GetByUUID(article.UUID)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteOwned(article.UUID, 1))

	assert.ErrorIs(t, repo.DeleteOwned(article.UUID, 1), gorm.ErrRecordNotFound)
	_, err = repo.GetByUUID(article.UUID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDraftSaveSameTitleUpdatesInsteadOfDuplicating(t *testing.T) {
	repo := repository.NewDraftRepository(setupTestDB(t))

	first := models.NewDraft("Trip notes", "v1", "travel", nil, 1)
	created, err := repo.Save(first)
	require.NoError(t, err)
	assert.True(t, created)

	second := models.NewDraft("Trip notes", "v2", "travel", []string{"asia"}, 1)
	created, err = repo.Save(second)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.UUID, second.UUID)

	drafts, err := repo.ListByAuthor(1)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "v2", drafts[0].Content)
	assert.Equal(t, models.StringSlice{"asia"}, drafts[0].Tags)
}

func TestDraftSaveSameTitleDifferentAuthors(t *testing.T) {
	repo := repository.NewDraftRepository(setupTestDB(t))

	created, err := repo.Save(models.NewDraft("Trip notes", "mine", "travel", nil, 1))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Save(models.NewDraft("Trip notes", "theirs", "travel", nil, 2))
	require.NoError(t, err)
	assert.True(t, created, "titles only collide within one author")

	mine, err := repo.ListByAuthor(1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].Content)

	theirs, err := repo.ListByAuthor(2)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, "theirs", theirs[0].Content)
}

func TestDraftUpdateByExplicitID(t *testing.T) {
	repo := repository.NewDraftRepository(setupTestDB(t))

	draft := models.NewDraft("Old title", "v1", "travel", nil, 1)
	created, err := repo.Save(draft)
	require.NoError(t, err)
	require.True(t, created)

	// The id lookup is owner-scoped
	_, err = repo.GetByUUIDForAuthor(draft.UUID, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	loaded, err := repo.GetByUUIDForAuthor(draft.UUID, 1)
	require.NoError(t, err)

	loaded.Title = "New title"
	loaded.Content = "v2"
	require.NoError(t, repo.Update(loaded))

	drafts, err := repo.ListByAuthor(1)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "New title", drafts[0].Title)
	assert.Equal(t, "v2", drafts[0].Content)
}

func TestDraftDeleteOwnedScopedToAuthor(t *testing.T) {
	repo := repository.NewDraftRepository(setupTestDB(t))

	draft := models.NewDraft("Disposable", "x", "travel", nil, 1)
	created, err := repo.Save(draft)
	require.NoError(t, err)
	require.True(t, created)

	assert.ErrorIs(t, repo.DeleteOwned(draft.UUID, 2), gorm.ErrRecordNotFound)
	require.NoError(t, repo.DeleteOwned(draft.UUID, 1))
	assert.ErrorIs(t, repo.DeleteOwned(draft.UUID, 1), gorm.ErrRecordNotFound)
}
