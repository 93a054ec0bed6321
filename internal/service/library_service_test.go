package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iesanmartin/portal-core/internal/notify"
	"github.com/iesanmartin/portal-core/internal/registry"
	appErrors "github.com/iesanmartin/portal-core/pkg/errors"
)

func newLibraryService(t *testing.T, events *[]notify.Event) *LibraryService {
	t.Helper()
	st := newTestStore(t)
	return NewLibraryService(registry.LibraryInventory(st, newRecordingNotifier(events)), nil, nil)
}

func TestLibraryServiceCatalogSeeded(t *testing.T) {
	svc := newLibraryService(t, nil)

	books, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 10)
	assert.Equal(t, "LIB-001", books[0].Code)
	assert.Equal(t, "Tradiciones peruanas", books[0].Title)
	for _, book := range books {
		assert.True(t, book.Available, "catalog seeds every title available: %s", book.Code)
	}
}

func TestLibraryServiceSetAvailability(t *testing.T) {
	var events []notify.Event
	svc := newLibraryService(t, &events)
	ctx := context.Background()

	updated, err := svc.SetAvailability(ctx, "LIB-003", false)
	require.NoError(t, err)
	assert.False(t, updated.Available)

	book, err := svc.Get(ctx, "LIB-003")
	require.NoError(t, err)
	assert.False(t, book.Available)
	assert.Equal(t, []string{"availability_updated"}, eventTags(events))

	returned, err := svc.SetAvailability(ctx, "LIB-003", true)
	require.NoError(t, err)
	assert.True(t, returned.Available)
}

func TestLibraryServiceGetUnknownCode(t *testing.T) {
	svc := newLibraryService(t, nil)

	_, err := svc.Get(context.Background(), "LIB-999")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = svc.SetAvailability(context.Background(), "LIB-999", false)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}
