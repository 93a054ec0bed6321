package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iesanmartin/portal-core/internal/models"
	"github.com/iesanmartin/portal-core/internal/notify"
	"github.com/iesanmartin/portal-core/internal/registry"
	appErrors "github.com/iesanmartin/portal-core/pkg/errors"
)

func newReservationService(t *testing.T, events *[]notify.Event) *ReservationService {
	t.Helper()
	st := newTestStore(t)
	return NewReservationService(registry.Reservations(st, newRecordingNotifier(events)), newTestIDs(), nil, nil)
}

func TestReservationServiceRequest(t *testing.T) {
	var events []notify.Event
	svc := newReservationService(t, &events)

	rec, err := svc.Request(context.Background(), RequestReservationRequest{
		Space:       "auditorio",
		RequestedBy: "coordinación de primaria",
		EventDate:   time.Date(2025, 6, 6, 15, 0, 0, 0, time.UTC),
		Purpose:     "Ensayo de danza por el Día del Padre",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^RES-250314-\d{3}$`, rec.ID)
	assert.Equal(t, models.ReservationStatusPending, rec.Status)
	assert.Equal(t, []string{"created"}, eventTags(events))
}

func TestReservationServiceRequestRequiresEventDate(t *testing.T) {
	svc := newReservationService(t, nil)

	_, err := svc.Request(context.Background(), RequestReservationRequest{
		Space:       "auditorio",
		RequestedBy: "coordinación",
		Purpose:     "ensayo",
	})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestReservationServiceUpdateStatus(t *testing.T) {
	var events []notify.Event
	svc := newReservationService(t, &events)
	ctx := context.Background()

	rec, err := svc.Request(ctx, RequestReservationRequest{
		Space:       "losa deportiva",
		RequestedBy: "profesor de educación física",
		EventDate:   time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC),
		Purpose:     "campeonato interaulas",
	})
	require.NoError(t, err)

	confirmed, err := svc.UpdateStatus(ctx, rec.ID, UpdateReservationStatusRequest{Status: models.ReservationStatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, confirmed.Status)
	assert.Equal(t, []string{"created", "status_updated"}, eventTags(events))
}

func TestReservationServiceUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := newReservationService(t, nil)
	ctx := context.Background()

	rec, err := svc.Request(ctx, RequestReservationRequest{
		Space:       "s",
		RequestedBy: "r",
		EventDate:   time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC),
		Purpose:     "p",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, rec.ID, UpdateReservationStatusRequest{Status: "reservada"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}
