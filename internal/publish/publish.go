// Package publish announces completed runs over NATS.
package publish

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/verte-zerg/katype/internal/model"
)

// DefaultSubject is the subject results are published on.
const DefaultSubject = "katype.results"

// Event is the JSON payload of a published run.
type Event struct {
	RunID       string    `json:"run_id"`
	Lang        string    `json:"lang"`
	Words       int       `json:"words"`
	WPM         float64   `json:"wpm"`
	Accuracy    float64   `json:"acc"`
	Consistency float64   `json:"consistency"`
	DurationS   int       `json:"duration_s"`
	EndedAt     time.Time `json:"ended_at"`
	Code        string    `json:"code"`
}

// NewEvent builds the payload for run.
func NewEvent(run model.Run) Event {
	return Event{
		RunID:       run.RunID,
		Lang:        run.Lang,
		Words:       run.Words,
		WPM:         run.WPM,
		Accuracy:    run.Accuracy,
		Consistency: run.Consistency,
		DurationS:   run.DurationS,
		EndedAt:     run.EndedAt.UTC(),
		Code:        run.Code,
	}
}

// Publisher sends run events to a NATS subject.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

// Connect dials the NATS server described by cfg.
func Connect(cfg model.PublishConfig) (*Publisher, error) {
	if cfg.NatsURL == "" {
		return nil, fmt.Errorf("nats url is empty")
	}
	subject := cfg.Subject
	if subject == "" {
		subject = DefaultSubject
	}
	nc, err := nats.Connect(cfg.NatsURL, nats.Name("katype"), nats.Timeout(3*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return &Publisher{nc: nc, subject: subject}, nil
}

// Publish sends run and waits for the server to acknowledge the flush.
func (p *Publisher) Publish(run model.Run) error {
	data, err := json.Marshal(NewEvent(run))
	if err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}
	if err := p.nc.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish run: %w", err)
	}
	if err := p.nc.FlushTimeout(3 * time.Second); err != nil {
		return fmt.Errorf("failed to flush nats connection: %w", err)
	}
	return nil
}

// Close drains and closes the connection.
func (p *Publisher) Close() error {
	return p.nc.Drain()
}
