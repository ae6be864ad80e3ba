// Package model defines database models for persistence layer.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// HabitRecord is the JSON shape of one habit inside the habits document.
// Field names are part of the storage format and must not change.
type HabitRecord struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Color          string   `json:"color"`
	Streak         int      `json:"streak"`
	CompletedToday bool     `json:"completedToday"`
	CompletedDates []string `json:"completedDates"`
	CreatedAt      string   `json:"createdAt"`
}

// ToEntity converts a HabitRecord to a domain Habit entity. An unparseable
// ID makes the record invalid; an unparseable createdAt does not, since the
// timestamp is informational only.
func (r *HabitRecord) ToEntity() (*entity.Habit, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid habit id %q: %w", r.ID, err)
	}

	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}

	completedDates := r.CompletedDates
	if completedDates == nil {
		completedDates = []string{}
	}

	return &entity.Habit{
		ID:             id,
		Name:           r.Name,
		Description:    r.Description,
		Color:          r.Color,
		Streak:         r.Streak,
		CompletedToday: r.CompletedToday,
		CompletedDates: completedDates,
		CreatedAt:      createdAt,
	}, nil
}

// HabitRecordFromEntity creates a HabitRecord from a domain Habit entity.
func HabitRecordFromEntity(habit *entity.Habit) *HabitRecord {
	completedDates := habit.CompletedDates
	if completedDates == nil {
		completedDates = []string{}
	}

	return &HabitRecord{
		ID:             habit.ID.String(),
		Name:           habit.Name,
		Description:    habit.Description,
		Color:          habit.Color,
		Streak:         habit.Streak,
		CompletedToday: habit.CompletedToday,
		CompletedDates: completedDates,
		CreatedAt:      habit.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// UserRecord is the JSON shape of the user document.
type UserRecord struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// ToEntity converts a UserRecord to a domain User entity.
func (r *UserRecord) ToEntity() (*entity.User, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", r.ID, err)
	}

	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}

	return &entity.User{
		ID:           id,
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		CreatedAt:    createdAt,
	}, nil
}

// UserRecordFromEntity creates a UserRecord from a domain User entity.
func UserRecordFromEntity(user *entity.User) *UserRecord {
	return &UserRecord{
		ID:           user.ID.String(),
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.UTC().Format(time.RFC3339),
	}
}
