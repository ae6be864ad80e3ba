// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface on top of
// a single document row holding the one local user record.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Load retrieves the stored user record. A missing or unreadable document
// yields (nil, nil): no user is signed in.
func (r *userRepository) Load(ctx context.Context) (*entity.User, error) {
	var document model.DocumentModel
	result := r.db.WithContext(ctx).Where("key = ?", model.DocumentKeyUser).First(&document)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	var record model.UserRecord
	if err := json.Unmarshal([]byte(document.Payload), &record); err != nil {
		slog.Warn("user document is corrupted, treating as signed out",
			"error", err,
		)
		return nil, nil
	}

	user, err := record.ToEntity()
	if err != nil {
		slog.Warn("user record is unreadable, treating as signed out",
			"error", err,
		)
		return nil, nil
	}
	return user, nil
}

// Save rewrites the user document with the given record.
func (r *userRepository) Save(ctx context.Context, user *entity.User) error {
	payload, err := json.Marshal(model.UserRecordFromEntity(user))
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	document := model.DocumentModel{
		Key:       model.DocumentKeyUser,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&document)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes the user document. Deleting an absent document is a no-op.
func (r *userRepository) Delete(ctx context.Context) error {
	result := r.db.WithContext(ctx).
		Where("key = ?", model.DocumentKeyUser).
		Delete(&model.DocumentModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
