// Package model defines shared data structures.
package model

import "time"

// Config defines typing test settings.
type Config struct {
	Amount    int
	Lang      string
	Code      string
	ReadyText string
	Timeout   time.Duration
	JSON      bool
	Save      bool
	Seed      int64
	CapsPct   float64
	PunctPct  float64
	PunctSet  string
}

// PublishConfig defines where completed runs are announced.
type PublishConfig struct {
	NatsURL string
	Subject string
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Lang   string
	Since  *time.Time
	Last   int
	Window int
}

// Run captures a completed, scored typing test.
type Run struct {
	ID           int64
	RunID        string
	StartedAt    time.Time
	EndedAt      time.Time
	Lang         string
	Words        int
	TypedWords   int
	CorrectWords int
	DurationS    int
	WPM          float64
	Accuracy     float64
	Consistency  float64
	Code         string
}
