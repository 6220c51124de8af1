package models

import (
	"time"

	"github.com/google/uuid"
)

// Draft is an unpublished article body. Unlike Article there are no
// counters and no validation beyond ownership; a draft may be saved in
// any state of completeness.
type Draft struct {
	ID        uint        `gorm:"primaryKey" json:"-"`
	UUID      string      `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"id"`
	Title     string      `gorm:"type:varchar(255);index:idx_drafts_author_title" json:"title"`
	Content   string      `gorm:"type:longtext" json:"content"`
	Category  string      `gorm:"type:varchar(100)" json:"category"`
	Tags      StringSlice `gorm:"type:json" json:"tags"`
	AuthorID  uint        `gorm:"index;index:idx_drafts_author_title,priority:1" json:"author_id"`
	IsDraft   bool        `gorm:"default:true" json:"is_draft"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewDraft builds a new draft owned by the given author.
func NewDraft(title, content, category string, tags []string, authorID uint) *Draft {
	return &Draft{
		UUID:     uuid.New().String(),
		Title:    title,
		Content:  content,
		Category: category,
		Tags:     tags,
		AuthorID: authorID,
		IsDraft:  true,
	}
}
