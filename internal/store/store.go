package store

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	appErrors "github.com/iesanmartin/portal-core/pkg/errors"
)

// Store owns the in-memory document and its durability boundary. Every
// mutation rewrites the whole document through the backend synchronously;
// the mutex serializes in-process access but offers no cross-process
// conflict detection.
type Store struct {
	mu      sync.Mutex
	backend Backend
	cfg     Config
	logger  *zap.Logger
	doc     *Document
}

// New builds a Store over the given backend. The document is not loaded
// until Open is called.
func New(backend Backend, cfg Config, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{backend: backend, cfg: cfg, logger: logger}
}

// Open loads the persisted document. An absent document yields a freshly
// initialized one; a corrupt document is discarded with a warning and
// replaced by a fresh one.
func (s *Store) Open(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.backend.Load()
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, "load portal document")
	}
	if len(raw) == 0 {
		s.doc = newDocument(s.cfg)
		s.logger.Info("portal document initialized")
		return nil
	}

	doc := &Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		s.logger.Warn("portal document corrupt, starting fresh", zap.Error(err))
		s.doc = newDocument(s.cfg)
		return nil
	}
	doc.normalize()
	s.doc = doc
	return nil
}

// View runs fn against the document under the store lock without saving.
func (s *Store) View(fn func(doc *Document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return appErrors.Clone(appErrors.ErrInternal, "store not opened")
	}
	fn(s.doc)
	return nil
}

// Mutate runs fn against the document under the store lock, then saves the
// whole document. When fn fails nothing is written and its error is
// returned unchanged. When the save fails the document is rolled back to
// its pre-mutation state, keeping memory and disk in agreement.
func (s *Store) Mutate(ctx context.Context, fn func(doc *Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return appErrors.Clone(appErrors.ErrInternal, "store not opened")
	}
	snapshot, err := json.Marshal(s.doc)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, "snapshot portal document")
	}
	if err := fn(s.doc); err != nil {
		return err
	}
	if err := s.saveLocked(); err != nil {
		s.restoreLocked(snapshot)
		return err
	}
	return nil
}

// restoreLocked swaps the document back to a previously marshaled state.
func (s *Store) restoreLocked(snapshot []byte) {
	doc := &Document{}
	if err := json.Unmarshal(snapshot, doc); err != nil {
		s.logger.Error("portal document rollback failed", zap.Error(err))
		return
	}
	doc.normalize()
	s.doc = doc
}

func (s *Store) saveLocked() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, "encode portal document")
	}
	if err := s.backend.Save(raw); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, "write portal document")
	}
	return nil
}
