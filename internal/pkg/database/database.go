package database

import (
	"gorm.io/gorm"
)

var DB *gorm.DB

// GetDB returns the shared gorm connection pool
func GetDB() *gorm.DB {
	return DB
}
