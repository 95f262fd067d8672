package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blackwell-systems/mindweather/internal/domain"
	"go.uber.org/zap"
)

// dateLayout keys scores by UTC calendar day.
const dateLayout = "2006-01-02"

// InsertScore persists a score for the user on the UTC date of at. A second
// score for the same user and date replaces the first.
func (db *DB) InsertScore(ctx context.Context, userID domain.UserID, score domain.MindWeatherScore, at time.Time) (int64, error) {
	if at.IsZero() {
		at = time.Now()
	}
	payload, err := json.Marshal(score)
	if err != nil {
		return 0, fmt.Errorf("encoding score: %w", err)
	}

	var id int64
	err = db.conn.QueryRowContext(ctx,
		`INSERT INTO mind_weather_scores
		(user_id, computed_on, computed_at, overall_score, burnout_risk, trend_direction, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, computed_on) DO UPDATE SET
			computed_at = excluded.computed_at,
			overall_score = excluded.overall_score,
			burnout_risk = excluded.burnout_risk,
			trend_direction = excluded.trend_direction,
			payload = excluded.payload
		RETURNING id`,
		string(userID), at.UTC().Format(dateLayout), formatTime(at),
		score.OverallScore, string(score.BurnoutRisk), string(score.TrendDirection), string(payload),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert score: %w", err)
	}
	db.log.Debug("score stored",
		zap.Int64("id", id),
		zap.String("user", string(userID)),
		zap.Float64("overall", score.OverallScore),
	)
	return id, nil
}

// GetLatestScore returns the most recent score computed on a UTC date
// strictly before the date of before, or nil if there is none. A zero
// before means no bound.
func (db *DB) GetLatestScore(ctx context.Context, userID domain.UserID, before time.Time) (*domain.StoredScore, error) {
	query := `SELECT id, user_id, computed_on, computed_at, payload
		FROM mind_weather_scores WHERE user_id = ?`
	args := []any{string(userID)}
	if !before.IsZero() {
		query += " AND computed_on < ?"
		args = append(args, before.UTC().Format(dateLayout))
	}
	query += " ORDER BY computed_on DESC LIMIT 1"

	row := db.conn.QueryRowContext(ctx, query, args...)
	s, err := scanScore(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest score: %w", err)
	}
	return s, nil
}

// ListScores returns up to limit stored scores for the user, newest first.
// A non-positive limit returns all of them.
func (db *DB) ListScores(ctx context.Context, userID domain.UserID, limit int) ([]domain.StoredScore, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, computed_on, computed_at, payload
		FROM mind_weather_scores
		WHERE user_id = ?
		ORDER BY computed_on DESC
		LIMIT ?`,
		string(userID), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()

	var scores []domain.StoredScore
	for rows.Next() {
		s, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		scores = append(scores, *s)
	}
	return scores, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScore(row scanner) (*domain.StoredScore, error) {
	var s domain.StoredScore
	var user, computedAt, payload string
	if err := row.Scan(&s.ID, &user, &s.ComputedOn, &computedAt, &payload); err != nil {
		return nil, err
	}
	s.UserID = domain.UserID(user)
	s.ComputedAt = parseTime(computedAt)
	if err := json.Unmarshal([]byte(payload), &s.Score); err != nil {
		return nil, fmt.Errorf("decoding score %d: %w", s.ID, err)
	}
	return &s, nil
}

var _ domain.ScoreStore = (*DB)(nil)
