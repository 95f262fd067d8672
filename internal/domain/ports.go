package domain

import (
	"context"
	"time"
)

// EntryStore supplies journal entries to the engine's callers.
type EntryStore interface {
	InsertEntry(ctx context.Context, entry *JournalEntry) (int64, error)
	ListEntriesSince(ctx context.Context, userID UserID, since time.Time) ([]JournalEntry, error)
	ListUsers(ctx context.Context) ([]UserID, error)
}

// StoredScore is a MindWeatherScore persisted for a user and computation date.
type StoredScore struct {
	ID         int64            `json:"id"`
	UserID     UserID           `json:"user_id"`
	ComputedOn string           `json:"computed_on"` // YYYY-MM-DD
	ComputedAt time.Time        `json:"computed_at"`
	Score      MindWeatherScore `json:"score"`
}

// ScoreStore persists computed scores keyed by user and computation date.
type ScoreStore interface {
	InsertScore(ctx context.Context, userID UserID, score MindWeatherScore, at time.Time) (int64, error)
	GetLatestScore(ctx context.Context, userID UserID, before time.Time) (*StoredScore, error)
	ListScores(ctx context.Context, userID UserID, limit int) ([]StoredScore, error)
}
