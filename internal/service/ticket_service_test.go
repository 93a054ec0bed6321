package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iesanmartin/portal-core/internal/models"
	"github.com/iesanmartin/portal-core/internal/notify"
	"github.com/iesanmartin/portal-core/internal/registry"
	appErrors "github.com/iesanmartin/portal-core/pkg/errors"
)

func newTicketService(t *testing.T, events *[]notify.Event) *TicketService {
	t.Helper()
	st := newTestStore(t)
	return NewTicketService(registry.SupportTickets(st, newRecordingNotifier(events)), newTestIDs(), nil, nil)
}

func TestTicketServiceOpen(t *testing.T) {
	var events []notify.Event
	svc := newTicketService(t, &events)

	rec, err := svc.Open(context.Background(), OpenTicketRequest{
		Subject:     "No puedo acceder al aula virtual",
		Description: "La clave no funciona desde ayer",
		Requester:   "apoderado de 3ro B",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^TICK-250314-\d{3}$`, rec.ID)
	assert.Equal(t, models.TicketStatusOpen, rec.Status)
	assert.Nil(t, rec.ResolvedDate)
	assert.NotNil(t, rec.Comments)
	assert.Equal(t, []string{"created"}, eventTags(events))
}

func TestTicketServiceOpenValidation(t *testing.T) {
	svc := newTicketService(t, nil)

	_, err := svc.Open(context.Background(), OpenTicketRequest{Subject: "sin detalle"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestTicketServiceResolve(t *testing.T) {
	var events []notify.Event
	svc := newTicketService(t, &events)
	ctx := context.Background()

	rec, err := svc.Open(ctx, OpenTicketRequest{Subject: "s", Description: "d", Requester: "r"})
	require.NoError(t, err)

	resolved, err := svc.Resolve(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusResolved, resolved.Status)
	require.NotNil(t, resolved.ResolvedDate)
	assert.Equal(t, []string{"created", "resolved"}, eventTags(events))
}

func TestTicketServiceResolveTwiceConflicts(t *testing.T) {
	var events []notify.Event
	svc := newTicketService(t, &events)
	ctx := context.Background()

	rec, err := svc.Open(ctx, OpenTicketRequest{Subject: "s", Description: "d", Requester: "r"})
	require.NoError(t, err)

	first, err := svc.Resolve(ctx, rec.ID)
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, rec.ID)
	assert.True(t, errors.Is(err, appErrors.ErrConflict))

	// Second attempt left the record and the event stream untouched.
	kept, err := svc.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusResolved, kept.Status)
	assert.Equal(t, first.ResolvedDate, kept.ResolvedDate)
	assert.Equal(t, []string{"created", "resolved"}, eventTags(events))
}

func TestTicketServiceAddCommentAfterResolve(t *testing.T) {
	svc := newTicketService(t, nil)
	ctx := context.Background()

	rec, err := svc.Open(ctx, OpenTicketRequest{Subject: "s", Description: "d", Requester: "r"})
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, rec.ID)
	require.NoError(t, err)

	updated, err := svc.AddComment(ctx, rec.ID, AddTicketCommentRequest{
		Text:   "Se verificó con el apoderado que ya tiene acceso",
		Author: "soporte",
	})
	require.NoError(t, err)
	require.Len(t, updated.Comments, 1)
	assert.Equal(t, models.TicketStatusResolved, updated.Status)
}

func TestTicketServiceFilterByStatus(t *testing.T) {
	svc := newTicketService(t, nil)
	ctx := context.Background()

	first, err := svc.Open(ctx, OpenTicketRequest{Subject: "a", Description: "d", Requester: "r"})
	require.NoError(t, err)
	second, err := svc.Open(ctx, OpenTicketRequest{Subject: "b", Description: "d", Requester: "r"})
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, first.ID)
	require.NoError(t, err)

	open, err := svc.FilterByStatus(ctx, models.TicketStatusOpen)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, second.ID, open[0].ID)
}
