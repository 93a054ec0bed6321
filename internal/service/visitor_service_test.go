package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iesanmartin/portal-core/internal/models"
	"github.com/iesanmartin/portal-core/internal/notify"
	"github.com/iesanmartin/portal-core/internal/registry"
)

func newVisitorService(t *testing.T, events *[]notify.Event) *VisitorService {
	t.Helper()
	st := newTestStore(t)
	return NewVisitorService(registry.VisitorLogs(st, newRecordingNotifier(events)), newTestIDs(), nil, nil)
}

func TestVisitorServiceCheckIn(t *testing.T) {
	var events []notify.Event
	svc := newVisitorService(t, &events)

	rec, err := svc.CheckIn(context.Background(), CheckInVisitorRequest{
		VisitorName: "Rosa Mendoza",
		DNI:         "45678912",
		Purpose:     "Recoger libreta de notas",
		Area:        "secretaría",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^VISIT-250314-\d{3}$`, rec.ID)
	assert.Equal(t, models.VisitorStatusActive, rec.Status)
	assert.Nil(t, rec.CheckOut)
	assert.False(t, rec.CheckIn.IsZero())
	assert.Equal(t, []string{"checked_in"}, eventTags(events))
}

func TestVisitorServiceCheckout(t *testing.T) {
	var events []notify.Event
	svc := newVisitorService(t, &events)
	ctx := context.Background()

	rec, err := svc.CheckIn(ctx, CheckInVisitorRequest{VisitorName: "v", DNI: "1", Purpose: "p", Area: "a"})
	require.NoError(t, err)

	require.NoError(t, svc.Checkout(ctx, rec.ID))

	closed, err := svc.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VisitorStatusCompleted, closed.Status)
	require.NotNil(t, closed.CheckOut)
	assert.Equal(t, []string{"checked_in", "checked_out"}, eventTags(events))
}

func TestVisitorServiceCheckoutTwiceIsNoOp(t *testing.T) {
	var events []notify.Event
	svc := newVisitorService(t, &events)
	ctx := context.Background()

	rec, err := svc.CheckIn(ctx, CheckInVisitorRequest{VisitorName: "v", DNI: "1", Purpose: "p", Area: "a"})
	require.NoError(t, err)
	require.NoError(t, svc.Checkout(ctx, rec.ID))

	first, err := svc.Get(ctx, rec.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Checkout(ctx, rec.ID))

	second, err := svc.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, first.CheckOut, second.CheckOut)
	assert.Equal(t, []string{"checked_in", "checked_out"}, eventTags(events))
}

func TestVisitorServiceCheckoutUnknownIsNoOp(t *testing.T) {
	var events []notify.Event
	svc := newVisitorService(t, &events)

	require.NoError(t, svc.Checkout(context.Background(), "VISIT-000000-000"))
	assert.Empty(t, events)
}

func TestVisitorServiceActiveVisitors(t *testing.T) {
	svc := newVisitorService(t, nil)
	ctx := context.Background()

	first, err := svc.CheckIn(ctx, CheckInVisitorRequest{VisitorName: "a", DNI: "1", Purpose: "p", Area: "x"})
	require.NoError(t, err)
	second, err := svc.CheckIn(ctx, CheckInVisitorRequest{VisitorName: "b", DNI: "2", Purpose: "p", Area: "x"})
	require.NoError(t, err)
	third, err := svc.CheckIn(ctx, CheckInVisitorRequest{VisitorName: "c", DNI: "3", Purpose: "p", Area: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Checkout(ctx, second.ID))

	active, err := svc.ActiveVisitors(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, third.ID, active[1].ID)
}
