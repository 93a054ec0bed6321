package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iesanmartin/portal-core/internal/notify"
	"github.com/iesanmartin/portal-core/internal/store"
	"github.com/iesanmartin/portal-core/pkg/idgen"
)

var testClock = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(store.NewMemoryBackend(), store.Config{SchoolName: "I.E. San Martín de Porres", AcademicYear: 2025}, zap.NewNop())
	require.NoError(t, st.Open(context.Background()))
	return st
}

func newRecordingNotifier(events *[]notify.Event) *notify.Notifier {
	if events == nil {
		return notify.New(zap.NewNop())
	}
	return notify.New(zap.NewNop(), notify.WithSink(func(e notify.Event) {
		*events = append(*events, e)
	}))
}

func newTestIDs() *idgen.Generator {
	return idgen.New(
		idgen.WithClock(func() time.Time { return testClock }),
		idgen.WithRand(rand.New(rand.NewSource(7))),
	)
}

func eventTags(events []notify.Event) []string {
	tags := make([]string, 0, len(events))
	for _, e := range events {
		tags = append(tags, e.Tag)
	}
	return tags
}
