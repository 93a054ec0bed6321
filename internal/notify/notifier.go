package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Event describes one completed record mutation.
type Event struct {
	ID         string    `json:"id"`
	Collection string    `json:"collection"`
	RecordID   string    `json:"recordId"`
	Tag        string    `json:"tag"`
	Occurred   time.Time `json:"occurred"`
}

// Notifier observes completed mutations. It is the seam for a future
// messaging integration: today it logs each event, counts it on a
// notifier-owned prometheus registry, and forwards it to an optional sink.
// It never fails or blocks the calling operation.
type Notifier struct {
	logger   *zap.Logger
	registry *prometheus.Registry
	events   *prometheus.CounterVec
	sink     func(Event)
	now      func() time.Time
}

// Option customises a Notifier.
type Option func(*Notifier)

// WithSink forwards every event to fn after logging.
func WithSink(fn func(Event)) Option {
	return func(n *Notifier) {
		n.sink = fn
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) {
		if now != nil {
			n.now = now
		}
	}
}

// New registers the event counter on a fresh registry.
func New(logger *zap.Logger, opts ...Option) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := prometheus.NewRegistry()
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_record_events_total",
		Help: "Total record events by collection and event tag",
	}, []string{"collection", "event"})
	registry.MustRegister(events)

	n := &Notifier{
		logger:   logger,
		registry: registry,
		events:   events,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify records one event. Safe on a nil receiver.
func (n *Notifier) Notify(ctx context.Context, collection, recordID, tag string) {
	if n == nil {
		return
	}
	event := Event{
		ID:         uuid.NewString(),
		Collection: collection,
		RecordID:   recordID,
		Tag:        tag,
		Occurred:   n.now(),
	}
	n.events.WithLabelValues(event.Collection, event.Tag).Inc()
	n.logger.Info("record_event",
		zap.String("event_id", event.ID),
		zap.String("collection", event.Collection),
		zap.String("record_id", event.RecordID),
		zap.String("event", event.Tag),
		zap.Time("occurred", event.Occurred),
	)
	if n.sink != nil {
		n.sink(event)
	}
}

// Registry exposes the notifier-owned prometheus registry so a host can
// scrape it.
func (n *Notifier) Registry() *prometheus.Registry {
	if n == nil {
		return nil
	}
	return n.registry
}
