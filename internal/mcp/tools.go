package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blackwell-systems/mindweather/internal/domain"
	"github.com/blackwell-systems/mindweather/internal/pattern"
)

// errNoStore is returned by tools that need persisted data when the server
// was started without a database.
var errNoStore = errors.New("no journal store configured")

// ComputeArgs is the input of compute_mind_weather.
type ComputeArgs struct {
	Entries       []domain.JournalEntry    `json:"entries"`
	PreviousScore *domain.MindWeatherScore `json:"previous_score,omitempty"`
	Now           *time.Time               `json:"now,omitempty"`
}

// MindWeatherResult is returned by get_mind_weather.
type MindWeatherResult struct {
	UserID     domain.UserID           `json:"user_id"`
	ComputedOn string                  `json:"computed_on,omitempty"`
	Stored     bool                    `json:"stored"`
	Score      domain.MindWeatherScore `json:"score"`
}

// BehaviorPatternsResult is returned by get_behavior_patterns.
type BehaviorPatternsResult struct {
	UserID     domain.UserID `json:"user_id"`
	EntryCount int           `json:"entry_count"`
	pattern.BehaviorPatterns
}

// ScoreHistoryResult is returned by get_score_history.
type ScoreHistoryResult struct {
	UserID domain.UserID        `json:"user_id"`
	Scores []domain.StoredScore `json:"scores"`
}

var (
	computeSchema = json.RawMessage(`{"type":"object","properties":{` +
		`"entries":{"type":"array","description":"Journal entries with text and created_at (RFC3339)","items":{"type":"object","properties":{"text":{"type":"string"},"created_at":{"type":"string"}},"required":["text"]}},` +
		`"previous_score":{"type":"object","description":"Prior MindWeatherScore used for the trend"},` +
		`"now":{"type":"string","description":"Evaluation time (RFC3339), defaults to the current time"}` +
		`},"required":["entries"],"additionalProperties":false}`)
	userSchema = json.RawMessage(`{"type":"object","properties":{` +
		`"user_id":{"type":"string","description":"User to read (defaults to the configured user)"},` +
		`"recompute":{"type":"boolean","description":"Compute from the current window instead of returning the stored score"}` +
		`},"additionalProperties":false}`)
	patternsSchema = json.RawMessage(`{"type":"object","properties":{` +
		`"user_id":{"type":"string","description":"User to read (defaults to the configured user)"},` +
		`"days":{"type":"integer","description":"Window length in days, at most 365 (defaults to the configured lookback)"}` +
		`},"additionalProperties":false}`)
	historySchema = json.RawMessage(`{"type":"object","properties":{` +
		`"user_id":{"type":"string","description":"User to read (defaults to the configured user)"},` +
		`"n":{"type":"integer","description":"Number of scores to return (default 7)"}` +
		`},"additionalProperties":false}`)
)

// maxPatternDays caps the get_behavior_patterns window.
const maxPatternDays = 365

// addTools registers all MCP tool handlers on s.
func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "compute_mind_weather",
		Description: "Compute a mind-weather score (wellbeing score, burnout risk, themes, recommendations) from the given journal entries. Nothing is stored.",
		InputSchema: computeSchema,
		Handler:     s.handleComputeMindWeather,
	})
	s.registerTool(toolDef{
		Name:        "get_mind_weather",
		Description: "Latest stored mind-weather score for a user, or a fresh computation over their recent entries.",
		InputSchema: userSchema,
		Handler:     s.handleGetMindWeather,
	})
	s.registerTool(toolDef{
		Name:        "get_behavior_patterns",
		Description: "Trigger and response sentences extracted from a user's recent journal entries.",
		InputSchema: patternsSchema,
		Handler:     s.handleGetBehaviorPatterns,
	})
	s.registerTool(toolDef{
		Name:        "get_score_history",
		Description: "Last N stored mind-weather scores for a user, newest first.",
		InputSchema: historySchema,
		Handler:     s.handleGetScoreHistory,
	})
}

// decodeArgs unmarshals tool arguments, treating empty or null as {}.
func decodeArgs(args json.RawMessage, v any) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (s *Server) resolveUser(id string) domain.UserID {
	if id = strings.TrimSpace(id); id != "" {
		return domain.UserID(id)
	}
	return s.user
}

// handleComputeMindWeather scores the entries passed in the arguments.
func (s *Server) handleComputeMindWeather(_ context.Context, args json.RawMessage) (any, error) {
	var params ComputeArgs
	if err := decodeArgs(args, &params); err != nil {
		return nil, err
	}
	if params.Entries == nil {
		return nil, errors.New("entries is required")
	}

	now := s.now()
	if params.Now != nil {
		now = *params.Now
	}
	return s.calc.Analyze(params.Entries, params.PreviousScore, now), nil
}

// handleGetMindWeather returns the user's latest stored score, falling back
// to computing over the lookback window when none exists.
func (s *Server) handleGetMindWeather(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		UserID    string `json:"user_id"`
		Recompute bool   `json:"recompute"`
	}
	if err := decodeArgs(args, &params); err != nil {
		return nil, err
	}
	if s.entries == nil || s.scores == nil {
		return nil, errNoStore
	}
	user := s.resolveUser(params.UserID)
	now := s.now()

	if !params.Recompute {
		stored, err := s.scores.GetLatestScore(ctx, user, time.Time{})
		if err != nil {
			return nil, err
		}
		if stored != nil {
			return MindWeatherResult{
				UserID:     user,
				ComputedOn: stored.ComputedOn,
				Stored:     true,
				Score:      stored.Score,
			}, nil
		}
	}

	entries, err := s.entries.ListEntriesSince(ctx, user, now.Add(-s.lookback))
	if err != nil {
		return nil, err
	}
	var previous *domain.MindWeatherScore
	if prev, err := s.scores.GetLatestScore(ctx, user, now); err != nil {
		return nil, err
	} else if prev != nil {
		previous = &prev.Score
	}

	return MindWeatherResult{
		UserID: user,
		Score:  s.calc.Compute(entries, previous, now),
	}, nil
}

// handleGetBehaviorPatterns extracts triggers and responses from the user's
// entries in the window.
func (s *Server) handleGetBehaviorPatterns(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		UserID string `json:"user_id"`
		Days   int    `json:"days"`
	}
	if err := decodeArgs(args, &params); err != nil {
		return nil, err
	}
	if s.entries == nil {
		return nil, errNoStore
	}
	user := s.resolveUser(params.UserID)

	window := s.lookback
	if params.Days > 0 {
		window = time.Duration(min(params.Days, maxPatternDays)) * 24 * time.Hour
	}

	entries, err := s.entries.ListEntriesSince(ctx, user, s.now().Add(-window))
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}

	return BehaviorPatternsResult{
		UserID:           user,
		EntryCount:       len(entries),
		BehaviorPatterns: pattern.ExtractBehaviorPatterns(texts),
	}, nil
}

// handleGetScoreHistory returns the last N stored scores.
func (s *Server) handleGetScoreHistory(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		UserID string `json:"user_id"`
		N      *int   `json:"n"`
	}
	if err := decodeArgs(args, &params); err != nil {
		return nil, err
	}
	if s.scores == nil {
		return nil, errNoStore
	}

	n := 7
	if params.N != nil && *params.N > 0 {
		n = *params.N
	}
	if n > 90 {
		n = 90
	}

	user := s.resolveUser(params.UserID)
	scores, err := s.scores.ListScores(ctx, user, n)
	if err != nil {
		return nil, err
	}
	if scores == nil {
		scores = []domain.StoredScore{}
	}
	return ScoreHistoryResult{UserID: user, Scores: scores}, nil
}
