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

func newDocumentRequestService(t *testing.T, events *[]notify.Event) *DocumentRequestService {
	t.Helper()
	st := newTestStore(t)
	return NewDocumentRequestService(registry.DocumentRequests(st, newRecordingNotifier(events)), newTestIDs(), nil, nil)
}

func TestDocumentRequestServiceCreate(t *testing.T) {
	var events []notify.Event
	svc := newDocumentRequestService(t, &events)

	rec, err := svc.Create(context.Background(), CreateDocumentRequest{
		StudentName:  "María Quispe",
		DocumentType: "constancia de estudios",
		Contact:      "951234567",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^DOC-250314-\d{3}$`, rec.ID)
	assert.Equal(t, models.DocumentStatusPending, rec.Status)
	assert.NotNil(t, rec.Comments)
	assert.Empty(t, rec.Comments)
	assert.False(t, rec.RequestDate.IsZero())
	assert.Equal(t, rec.RequestDate, rec.LastUpdate)

	require.Len(t, events, 1)
	assert.Equal(t, "created", events[0].Tag)
	assert.Equal(t, rec.ID, events[0].RecordID)
}

func TestDocumentRequestServiceCreateValidation(t *testing.T) {
	svc := newDocumentRequestService(t, nil)

	_, err := svc.Create(context.Background(), CreateDocumentRequest{DocumentType: "constancia"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestDocumentRequestServiceUpdateStatusWithComment(t *testing.T) {
	var events []notify.Event
	svc := newDocumentRequestService(t, &events)

	rec, err := svc.Create(context.Background(), CreateDocumentRequest{
		StudentName:  "María Quispe",
		DocumentType: "certificado de conducta",
		Contact:      "informes@familia.pe",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), rec.ID, UpdateDocumentStatusRequest{
		Status:  models.DocumentStatusInProcess,
		Comment: "Derivado a dirección para firma",
		Author:  "secretaría",
	})
	require.NoError(t, err)

	assert.Equal(t, models.DocumentStatusInProcess, updated.Status)
	require.Len(t, updated.Comments, 1)
	assert.Equal(t, "Derivado a dirección para firma", updated.Comments[0].Text)
	assert.Equal(t, "secretaría", updated.Comments[0].Author)
	assert.Equal(t, []string{"created", "status_updated"}, eventTags(events))
}

func TestDocumentRequestServiceUpdateStatusWithoutComment(t *testing.T) {
	svc := newDocumentRequestService(t, nil)

	rec, err := svc.Create(context.Background(), CreateDocumentRequest{
		StudentName:  "José Ñahui",
		DocumentType: "traslado",
		Contact:      "987654321",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), rec.ID, UpdateDocumentStatusRequest{
		Status: models.DocumentStatusCompleted,
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Comments)
}

func TestDocumentRequestServiceUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := newDocumentRequestService(t, nil)

	rec, err := svc.Create(context.Background(), CreateDocumentRequest{
		StudentName:  "María Quispe",
		DocumentType: "constancia",
		Contact:      "951234567",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), rec.ID, UpdateDocumentStatusRequest{Status: "archivado"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestDocumentRequestServiceFilterByStatus(t *testing.T) {
	svc := newDocumentRequestService(t, nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateDocumentRequest{StudentName: "A", DocumentType: "constancia", Contact: "1"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, CreateDocumentRequest{StudentName: "B", DocumentType: "constancia", Contact: "2"})
	require.NoError(t, err)
	third, err := svc.Create(ctx, CreateDocumentRequest{StudentName: "C", DocumentType: "constancia", Contact: "3"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, second.ID, UpdateDocumentStatusRequest{Status: models.DocumentStatusCompleted})
	require.NoError(t, err)

	pending, err := svc.FilterByStatus(ctx, models.DocumentStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, third.ID, pending[1].ID)
}

func TestDocumentRequestServiceGetUnknown(t *testing.T) {
	svc := newDocumentRequestService(t, nil)

	_, err := svc.Get(context.Background(), "DOC-000000-000")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}
