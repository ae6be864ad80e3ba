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

// habitRepository implements the adapter.HabitRepository interface on top of
// a single document row. The whole habit list is read and rewritten on every
// operation; concurrent writers follow last-writer-wins.
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new habit repository instance.
func NewHabitRepository(db *gorm.DB) adapter.HabitRepository {
	return &habitRepository{
		db: db,
	}
}

// LoadAll retrieves the full habit collection. A missing or unreadable
// document yields an empty collection rather than an error, so a corrupted
// row never takes the application down.
func (r *habitRepository) LoadAll(ctx context.Context) ([]*entity.Habit, error) {
	var document model.DocumentModel
	result := r.db.WithContext(ctx).Where("key = ?", model.DocumentKeyHabits).First(&document)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return []*entity.Habit{}, nil
		}
		return nil, result.Error
	}

	var records []*model.HabitRecord
	if err := json.Unmarshal([]byte(document.Payload), &records); err != nil {
		slog.Warn("habits document is corrupted, starting from an empty collection",
			"error", err,
		)
		return []*entity.Habit{}, nil
	}

	habits := make([]*entity.Habit, 0, len(records))
	for _, record := range records {
		habit, err := record.ToEntity()
		if err != nil {
			slog.Warn("skipping unreadable habit record",
				"error", err,
			)
			continue
		}
		habits = append(habits, habit)
	}
	return habits, nil
}

// SaveAll rewrites the habits document with the given collection.
func (r *habitRepository) SaveAll(ctx context.Context, habits []*entity.Habit) error {
	records := make([]*model.HabitRecord, 0, len(habits))
	for _, habit := range habits {
		records = append(records, model.HabitRecordFromEntity(habit))
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize habits: %w", err)
	}

	document := model.DocumentModel{
		Key:       model.DocumentKeyHabits,
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
