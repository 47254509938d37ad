// Package events carries daily-menu change notifications to live
// subscribers and to the message broker.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/krapesto/menu-api/internal/enum"
)

// MenuUpdated is emitted after any change to a daily menu or its links.
type MenuUpdated struct {
	DailyMenuID uuid.UUID `json:"daily_menu_id"`
	Date        string    `json:"date"`
	Reason      string    `json:"reason"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Envelope is the wire shape shared by websocket and broker messages.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Encode wraps e in an Envelope and marshals it.
func (e MenuUpdated) Encode() ([]byte, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: enum.EventMenuUpdated, Payload: payload})
}

type Publisher interface {
	PublishMenuUpdated(ctx context.Context, e MenuUpdated) error
}

// Fanout publishes to every publisher and joins their errors.
type Fanout []Publisher

func (f Fanout) PublishMenuUpdated(ctx context.Context, e MenuUpdated) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.PublishMenuUpdated(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards events.
type Nop struct{}

func (Nop) PublishMenuUpdated(context.Context, MenuUpdated) error { return nil }
