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

func newEnrollmentService(t *testing.T, events *[]notify.Event) *EnrollmentService {
	t.Helper()
	st := newTestStore(t)
	return NewEnrollmentService(registry.Enrollments(st, newRecordingNotifier(events)), newTestIDs(), nil, nil)
}

func TestEnrollmentServiceCreate(t *testing.T) {
	var events []notify.Event
	svc := newEnrollmentService(t, &events)

	rec, err := svc.Create(context.Background(), CreateEnrollmentRequest{
		StudentName:  "Luis Mendoza",
		Grade:        "1ro de secundaria",
		GuardianName: "Rosa Mendoza",
		Contact:      "987654321",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^MAT-250314-\d{3}$`, rec.ID)
	assert.Equal(t, models.EnrollmentStatusPending, rec.Status)
	assert.Equal(t, []string{"created"}, eventTags(events))
}

func TestEnrollmentServiceCreateValidation(t *testing.T) {
	svc := newEnrollmentService(t, nil)

	_, err := svc.Create(context.Background(), CreateEnrollmentRequest{StudentName: "Luis"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestEnrollmentServiceUpdateStatus(t *testing.T) {
	var events []notify.Event
	svc := newEnrollmentService(t, &events)
	ctx := context.Background()

	rec, err := svc.Create(ctx, CreateEnrollmentRequest{StudentName: "s", Grade: "g", GuardianName: "gn", Contact: "c"})
	require.NoError(t, err)

	reviewed, err := svc.UpdateStatus(ctx, rec.ID, UpdateEnrollmentStatusRequest{Status: models.EnrollmentStatusInReview})
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusInReview, reviewed.Status)

	approved, err := svc.UpdateStatus(ctx, rec.ID, UpdateEnrollmentStatusRequest{Status: models.EnrollmentStatusApproved})
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusApproved, approved.Status)
	assert.Equal(t, []string{"created", "status_updated", "status_updated"}, eventTags(events))
}

func TestEnrollmentServiceUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := newEnrollmentService(t, nil)
	ctx := context.Background()

	rec, err := svc.Create(ctx, CreateEnrollmentRequest{StudentName: "s", Grade: "g", GuardianName: "gn", Contact: "c"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, rec.ID, UpdateEnrollmentStatusRequest{Status: "matriculado"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}
