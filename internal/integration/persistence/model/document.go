// Package model defines database models for persistence layer.
package model

import (
	"time"
)

// DocumentModel represents the documents table. Each row holds one
// serialized collection under a well-known key, mirroring a key/value
// document store: the habit list lives in a single row and is rewritten
// whole on every mutation.
type DocumentModel struct {
	Key       string    `gorm:"type:varchar(64);primaryKey"`
	Payload   string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the DocumentModel.
func (DocumentModel) TableName() string {
	return "documents"
}

// Well-known document keys.
const (
	DocumentKeyHabits = "habits"
	DocumentKeyUser   = "user"
)
