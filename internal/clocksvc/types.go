package clocksvc

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ekimwerac/observable-clock-demo/internal/stream"
)

var _ stream.CursorAware = (*Tick)(nil)

// Tick is one emitted clock value as it appears in the tick stream.
type Tick struct {
	Cursor  stream.Cursor `json:"cursor,omitempty"`
	Time    time.Time     `json:"time"`
	Display string        `json:"display"`
	Source  string        `json:"source,omitempty"`
}

func (s *Tick) SetCursor(cursor stream.Cursor) {
	s.Cursor = cursor
}

// Activation describes one active run of the clock source.
type Activation struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartedAt time.Time `json:"started_at"`
}

func (a Activation) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", a.ID.String()),
		slog.String("name", a.Name),
	)
}
