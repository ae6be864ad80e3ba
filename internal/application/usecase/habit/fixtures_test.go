// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"errors"
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// fakeClock pins "today" for deterministic streak and date checks.
type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

// memoryHabitRepository is an in-memory HabitRepository that mimics the
// full-document load/rewrite contract.
type memoryHabitRepository struct {
	habits   []*entity.Habit
	failSave bool
	saves    int
}

func (r *memoryHabitRepository) LoadAll(_ context.Context) ([]*entity.Habit, error) {
	return r.habits, nil
}

func (r *memoryHabitRepository) SaveAll(_ context.Context, habits []*entity.Habit) error {
	if r.failSave {
		return errors.New("storage unavailable")
	}
	r.habits = habits
	r.saves++
	return nil
}

// countingCache records invalidations.
type countingCache struct {
	invalidations int
}

func (c *countingCache) GetYear(_ context.Context, _ int) ([]byte, error) {
	return nil, nil
}

func (c *countingCache) SetYear(_ context.Context, _ int, _ []byte) error {
	return nil
}

func (c *countingCache) Invalidate(_ context.Context) error {
	c.invalidations++
	return nil
}

func mustDay(s string) time.Time {
	t, err := entity.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return t
}
