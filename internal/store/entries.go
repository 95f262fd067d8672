package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/blackwell-systems/mindweather/internal/domain"
	"go.uber.org/zap"
)

// timeLayout is a fixed-width UTC layout so stored timestamps sort
// lexically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		t, _ = time.Parse(time.RFC3339Nano, s)
	}
	return t
}

// InsertEntry stores a journal entry and returns its ID. The entry's ID field
// is updated in place.
func (db *DB) InsertEntry(ctx context.Context, entry *domain.JournalEntry) (int64, error) {
	if entry == nil {
		return 0, fmt.Errorf("insert entry: nil entry")
	}
	if strings.TrimSpace(string(entry.UserID)) == "" {
		return 0, fmt.Errorf("insert entry: empty user id")
	}
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var sentiment sql.NullFloat64
	if entry.ExternalSentiment != nil {
		sentiment = sql.NullFloat64{Float64: *entry.ExternalSentiment, Valid: true}
	}

	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO journal_entries (user_id, text, created_at, external_sentiment)
		VALUES (?, ?, ?, ?)`,
		string(entry.UserID), entry.Text, formatTime(createdAt), sentiment,
	)
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	entry.ID = id
	entry.CreatedAt = createdAt.UTC()
	db.log.Debug("entry stored", zap.Int64("id", id), zap.String("user", string(entry.UserID)))
	return id, nil
}

// ListEntriesSince returns the user's entries created at or after since,
// oldest first.
func (db *DB) ListEntriesSince(ctx context.Context, userID domain.UserID, since time.Time) ([]domain.JournalEntry, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, text, created_at, external_sentiment
		FROM journal_entries
		WHERE user_id = ? AND created_at >= ?
		ORDER BY created_at ASC, id ASC`,
		string(userID), formatTime(since),
	)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var e domain.JournalEntry
		var user, createdAt string
		var sentiment sql.NullFloat64
		if err := rows.Scan(&e.ID, &user, &e.Text, &createdAt, &sentiment); err != nil {
			return nil, err
		}
		e.UserID = domain.UserID(user)
		e.CreatedAt = parseTime(createdAt)
		if sentiment.Valid {
			v := sentiment.Float64
			e.ExternalSentiment = &v
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListUsers returns every user with at least one stored entry, sorted.
func (db *DB) ListUsers(ctx context.Context) ([]domain.UserID, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT DISTINCT user_id FROM journal_entries ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.UserID
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		users = append(users, domain.UserID(u))
	}
	return users, rows.Err()
}

var _ domain.EntryStore = (*DB)(nil)
