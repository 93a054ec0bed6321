package assistant

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/iesanmartin/portal-core/internal/store"
)

// Engine answers visitor messages by running them through an ordered rule
// table. Matching is lexical over the lowercased input; the only state it
// keeps outside the rule table is the first-greeting flag persisted in the
// portal document.
type Engine struct {
	store  *store.Store
	logger *zap.Logger

	mu    sync.Mutex
	rnd   *rand.Rand
	rules []rule
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand replaces the reply-pool randomness source.
func WithRand(rnd *rand.Rand) Option {
	return func(e *Engine) {
		e.rnd = rnd
	}
}

// New creates an Engine backed by the given document store.
func New(st *store.Store, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		store:  st,
		logger: logger,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rules = e.buildRules()
	return e
}

// Respond routes the message through the rule table and returns the first
// matching reply. The closing fallback rule matches everything, so exactly
// one rule answers each call. An error is only possible when the greeting
// rule fails to persist the first-greeting flag.
func (e *Engine) Respond(ctx context.Context, message string) (string, error) {
	in := normalize(message)
	for _, r := range e.rules {
		if !r.match(in) {
			continue
		}
		reply, err := r.respond(ctx, in)
		if err != nil {
			return "", err
		}
		e.logger.Debug("assistant reply",
			zap.String("rule", r.name),
		)
		return reply, nil
	}
	return fallbackResponse, nil
}

// RuleNames returns the evaluation order of the rule table.
func (e *Engine) RuleNames() []string {
	names := make([]string, 0, len(e.rules))
	for _, r := range e.rules {
		names = append(names, r.name)
	}
	return names
}

// greet answers greetings. The very first greeting over the lifetime of the
// portal document gets the long introduction and clears the persisted flag;
// every later greeting draws from the pool.
func (e *Engine) greet(ctx context.Context, _ string) (string, error) {
	first := false
	if err := e.store.View(func(doc *store.Document) {
		first = doc.FirstGreeting
	}); err != nil {
		return "", err
	}
	if !first {
		return e.pick(greetingPool), nil
	}
	if err := e.store.Mutate(ctx, func(doc *store.Document) error {
		doc.FirstGreeting = false
		return nil
	}); err != nil {
		return "", err
	}
	return firstGreetingResponse, nil
}

func (e *Engine) fromPool(pool []string) func(context.Context, string) (string, error) {
	return func(context.Context, string) (string, error) {
		return e.pick(pool), nil
	}
}

func (e *Engine) pick(pool []string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return pool[e.rnd.Intn(len(pool))]
}

func normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}
