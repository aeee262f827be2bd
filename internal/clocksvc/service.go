package clocksvc

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ekimwerac/observable-clock-demo/internal/clock"
	"github.com/ekimwerac/observable-clock-demo/internal/metrics"
	"github.com/ekimwerac/observable-clock-demo/internal/stream"
)

// DefaultSourceName is the activation the service starts on its own.
const DefaultSourceName = "wall"

// Service owns the tick stream and a registry of clock activations. Every
// activation appends its emissions to the shared stream, tagged with the
// activation name, so stream listeners can follow one source or all of them.
type Service struct {
	logger     *slog.Logger
	source     *clock.Source
	tickStream *stream.Buffered[Tick]

	mu          sync.Mutex
	stopped     bool
	activations map[uuid.UUID]*activationEntry
}

type activationEntry struct {
	info   Activation
	handle *clock.Activation
}

func NewService(logger *slog.Logger, source *clock.Source, tickHistorySize int) *Service {
	return &Service{
		logger:      logger,
		source:      source,
		tickStream:  stream.NewBufferedStream[Tick](tickHistorySize),
		activations: map[uuid.UUID]*activationEntry{},
	}
}

func (s *Service) TickStream() *stream.Buffered[Tick] {
	return s.tickStream
}

// Start activates the default source and tears everything down when ctx is done.
func (s *Service) Start(ctx context.Context) {
	if _, err := s.StartActivation(DefaultSourceName); err != nil {
		s.logger.Error("failed to start default activation", "err", err)
	}
	context.AfterFunc(ctx, s.stopAll)
}

// StartActivation activates the clock source under the given name. The handler
// registered with the source appends each emitted value to the tick stream.
func (s *Service) StartActivation(name string) (Activation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Activation{}, fmt.Errorf("activation name must not be empty")
	}

	info := Activation{
		ID:        uuid.New(),
		Name:      name,
		StartedAt: time.Now(),
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return Activation{}, fmt.Errorf("service is stopped")
	}
	handle := s.source.Activate(func(value string) {
		s.tickStream.Append(Tick{
			Time:    s.source.Clock().Now(),
			Display: value,
			Source:  name,
		})
		metrics.TrackTick(name)
	})
	s.activations[info.ID] = &activationEntry{info: info, handle: handle}
	s.mu.Unlock()
	metrics.TrackActivations(1)

	s.logger.Info("activation started", "activation", info, "period", s.source.Period())
	return info, nil
}

// StopActivation deactivates the activation with the given id. Other
// activations keep ticking.
func (s *Service) StopActivation(id uuid.UUID) error {
	s.mu.Lock()
	entry, ok := s.activations[id]
	if ok {
		delete(s.activations, id)
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("unknown activation %q", id)
	}

	entry.handle.Deactivate()
	metrics.TrackActivations(-1)
	s.logger.Info("activation stopped", "activation", entry.info)
	return nil
}

// Activations lists active activations ordered by start time.
func (s *Service) Activations() []Activation {
	s.mu.Lock()
	res := make([]Activation, 0, len(s.activations))
	for _, entry := range s.activations {
		res = append(res, entry.info)
	}
	s.mu.Unlock()

	slices.SortFunc(res, func(a, b Activation) int {
		return a.StartedAt.Compare(b.StartedAt)
	})
	return res
}

func (s *Service) stopAll() {
	s.mu.Lock()
	s.stopped = true
	entries := make([]*activationEntry, 0, len(s.activations))
	for id, entry := range s.activations {
		entries = append(entries, entry)
		delete(s.activations, id)
	}
	s.mu.Unlock()

	for _, entry := range entries {
		entry.handle.Deactivate()
		metrics.TrackActivations(-1)
	}
	s.logger.Info("all activations stopped", "count", len(entries))
}
