package entities

import (
	"time"
)

type Directory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Path         string    `gorm:"uniqueIndex;size:4096;not null" json:"path"` // Canonical absolute path
	Rank         float64   `gorm:"not null;default:0" json:"rank"`
	LastAccessed int64     `gorm:"index;not null;default:0" json:"last_accessed"` // Unix seconds
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Directory) TableName() string {
	return "directories"
}
