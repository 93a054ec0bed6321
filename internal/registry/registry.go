package registry

import (
	"context"

	"github.com/iesanmartin/portal-core/internal/notify"
	"github.com/iesanmartin/portal-core/internal/store"
	appErrors "github.com/iesanmartin/portal-core/pkg/errors"
)

// Collection binds generic record operations to one named collection inside
// the store document. slice locates the collection, id extracts a record's
// identifier.
type Collection[T any] struct {
	store    *store.Store
	notifier *notify.Notifier
	name     string
	slice    func(*store.Document) *[]*T
	id       func(*T) string
}

// NewCollection wires a collection handle. All mutations save the whole
// document and emit exactly one event.
func NewCollection[T any](
	st *store.Store,
	notifier *notify.Notifier,
	name string,
	slice func(*store.Document) *[]*T,
	id func(*T) string,
) *Collection[T] {
	return &Collection[T]{store: st, notifier: notifier, name: name, slice: slice, id: id}
}

// Name returns the collection name inside the document.
func (c *Collection[T]) Name() string {
	return c.name
}

// Append adds the record, persists and notifies with the given event tag.
func (c *Collection[T]) Append(ctx context.Context, rec *T, tag string) error {
	err := c.store.Mutate(ctx, func(doc *store.Document) error {
		target := c.slice(doc)
		*target = append(*target, rec)
		return nil
	})
	if err != nil {
		return err
	}
	c.notifier.Notify(ctx, c.name, c.id(rec), tag)
	return nil
}

// Get returns the first record whose id matches. Linear scan; collections
// are small and local.
func (c *Collection[T]) Get(id string) (*T, error) {
	var found *T
	err := c.store.View(func(doc *store.Document) {
		for _, rec := range *c.slice(doc) {
			if c.id(rec) == id {
				found = rec
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, c.name+": record not found")
	}
	return found, nil
}

// All returns the ordered live view of the collection. Callers must not
// assume isolation from subsequent mutation.
func (c *Collection[T]) All() ([]*T, error) {
	var out []*T
	err := c.store.View(func(doc *store.Document) {
		out = *c.slice(doc)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Filter returns the records matching pred, insertion order preserved. The
// result shares record pointers with the collection.
func (c *Collection[T]) Filter(pred func(*T) bool) ([]*T, error) {
	var out []*T
	err := c.store.View(func(doc *store.Document) {
		for _, rec := range *c.slice(doc) {
			if pred(rec) {
				out = append(out, rec)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update locates the record, applies mutate in place, persists and notifies.
// An unknown id returns ErrNotFound with state unchanged; a mutate error
// aborts before anything is written.
func (c *Collection[T]) Update(ctx context.Context, id, tag string, mutate func(*T) error) (*T, error) {
	var updated *T
	err := c.store.Mutate(ctx, func(doc *store.Document) error {
		for _, rec := range *c.slice(doc) {
			if c.id(rec) == id {
				if err := mutate(rec); err != nil {
					return err
				}
				updated = rec
				return nil
			}
		}
		return appErrors.Clone(appErrors.ErrNotFound, c.name+": record not found")
	})
	if err != nil {
		return nil, err
	}
	c.notifier.Notify(ctx, c.name, id, tag)
	return updated, nil
}

// Remove deletes the record with the given id. Only the news collection
// uses it; every other record type is retained indefinitely.
func (c *Collection[T]) Remove(ctx context.Context, id, tag string) error {
	err := c.store.Mutate(ctx, func(doc *store.Document) error {
		target := c.slice(doc)
		for i, rec := range *target {
			if c.id(rec) == id {
				*target = append((*target)[:i], (*target)[i+1:]...)
				return nil
			}
		}
		return appErrors.Clone(appErrors.ErrNotFound, c.name+": record not found")
	})
	if err != nil {
		return err
	}
	c.notifier.Notify(ctx, c.name, id, tag)
	return nil
}
