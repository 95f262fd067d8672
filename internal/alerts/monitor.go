package alerts

import (
	"context"
	"fmt"
	"time"
)

// CheckFunc produces the alerts for one monitoring cycle.
type CheckFunc func(ctx context.Context) ([]Alert, error)

// Monitor runs a check at a fixed interval and emits the alerts that differ
// from the previous cycle's.
type Monitor struct {
	interval      time.Duration
	check         CheckFunc
	alertFn       func(Alert)
	lastAlertKeys map[string]bool
}

// NewMonitor creates a Monitor calling check every interval and alertFn for
// each new alert.
func NewMonitor(interval time.Duration, check CheckFunc, alertFn func(Alert)) *Monitor {
	return &Monitor{
		interval:      interval,
		check:         check,
		alertFn:       alertFn,
		lastAlertKeys: make(map[string]bool),
	}
}

// Run checks once immediately, then at every interval. Blocks until ctx is
// cancelled and returns ctx.Err().
func (m *Monitor) Run(ctx context.Context) error {
	m.emit(m.Check(ctx))

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.emit(m.Check(ctx))
		}
	}
}

func (m *Monitor) emit(alerts []Alert) {
	if m.alertFn == nil {
		return
	}
	for _, a := range alerts {
		m.alertFn(a)
	}
}

// Check performs a single cycle. A failed check becomes a warning alert.
// Alerts identical to the previous cycle's are suppressed.
func (m *Monitor) Check(ctx context.Context) []Alert {
	raw, err := m.check(ctx)
	if err != nil {
		raw = []Alert{{
			Level:   LevelWarning,
			Title:   "Check failed",
			Message: fmt.Sprintf("Could not compute mind weather: %v", err),
			Time:    time.Now(),
		}}
	}

	currentKeys := make(map[string]bool, len(raw))
	var alerts []Alert
	for _, a := range raw {
		key := a.Level + ":" + a.Title + ":" + a.Message
		currentKeys[key] = true
		if !m.lastAlertKeys[key] {
			alerts = append(alerts, a)
		}
	}
	m.lastAlertKeys = currentKeys
	return alerts
}
