package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// StringSlice stores an ordered list of strings as a JSON column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("invalid scan source")
	}
	return json.Unmarshal(bytes, (*[]string)(s))
}

// JSON stores raw JSON documents in the database.
type JSON json.RawMessage

// Value implements the driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

// Scan implements the sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = JSON("[]")
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("invalid scan source")
	}
	*j = JSON(bytes)
	return nil
}

// MarshalJSON implements the json.Marshaler interface
func (j JSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (j *JSON) UnmarshalJSON(data []byte) error {
	*j = JSON(data)
	return nil
}

type Article struct {
	ID         uint        `gorm:"primaryKey" json:"-"`
	UUID       string      `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"id"`
	Title      string      `gorm:"type:varchar(255)" json:"title" validate:"required,min=5,max=100"`
	Content    string      `gorm:"type:longtext" json:"content" validate:"required"`
	Category   string      `gorm:"type:varchar(100);index" json:"category" validate:"required"`
	Tags       StringSlice `gorm:"type:json" json:"tags"`
	AuthorID   uint        `gorm:"index" json:"author_id"`
	AuthorName string      `gorm:"type:varchar(150)" json:"author_name"`
	Views      int64       `gorm:"default:0" json:"views"`
	Likes      int64       `gorm:"default:0" json:"likes"`
	Comments   JSON        `gorm:"type:json" json:"comments"`
	CreatedAt  time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Article) Validate() error {
	v := validator.New()

	return v.Struct(a)
}

// NewArticle builds a freshly published article for the given author.
// Counters start at zero and the comment list starts empty.
func NewArticle(title, content, category string, tags []string, authorID uint, authorName string) (*Article, error) {
	a := &Article{
		UUID:       uuid.New().String(),
		Title:      title,
		Content:    content,
		Category:   category,
		Tags:       tags,
		AuthorID:   authorID,
		AuthorName: authorName,
		Views:      0,
		Likes:      0,
		Comments:   JSON("[]"),
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}
