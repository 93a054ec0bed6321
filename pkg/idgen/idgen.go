package idgen

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Generator mints human-readable record identifiers of the form
// PREFIX-YYMMDD-NNN, e.g. DOC-250314-042.
type Generator struct {
	mu  sync.Mutex
	now func() time.Time
	rnd *rand.Rand
}

// Option customises a Generator.
type Option func(*Generator)

// WithClock overrides the wall clock used for the date segment.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithRand overrides the random source used for the numeric suffix.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) {
		if rnd != nil {
			g.rnd = rnd
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		now: time.Now,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewID returns the next identifier for the given prefix.
func (g *Generator) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("%s-%s-%03d", prefix, g.now().Format("060102"), g.rnd.Intn(1000))
}
