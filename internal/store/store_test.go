package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iesanmartin/portal-core/internal/models"
	appErrors "github.com/iesanmartin/portal-core/pkg/errors"
)

var testConfig = Config{SchoolName: "I.E. San Martín de Porres", AcademicYear: 2025}

func TestOpenSeedsFreshDocument(t *testing.T) {
	st := New(NewMemoryBackend(), testConfig, zap.NewNop())
	require.NoError(t, st.Open(context.Background()))

	err := st.View(func(doc *Document) {
		assert.True(t, doc.FirstGreeting)
		assert.Equal(t, "I.E. San Martín de Porres", doc.Config.SchoolName)
		assert.Equal(t, 2025, doc.Config.AcademicYear)
		assert.Len(t, doc.LibraryInventory, 10)
		assert.NotNil(t, doc.DocumentRequests)
		assert.Empty(t, doc.DocumentRequests)
	})
	require.NoError(t, err)
}

func TestMutatePersistsAcrossReopen(t *testing.T) {
	backend := NewMemoryBackend()
	st := New(backend, testConfig, zap.NewNop())
	require.NoError(t, st.Open(context.Background()))

	require.NoError(t, st.Mutate(context.Background(), func(doc *Document) error {
		doc.News = append(doc.News, &models.NewsItem{ID: "NEWS-250314-001", Title: "Matrícula 2025", Body: "Inscripciones abiertas"})
		doc.FirstGreeting = false
		return nil
	}))

	again := New(backend, testConfig, zap.NewNop())
	require.NoError(t, again.Open(context.Background()))
	err := again.View(func(doc *Document) {
		require.Len(t, doc.News, 1)
		assert.Equal(t, "Matrícula 2025", doc.News[0].Title)
		assert.False(t, doc.FirstGreeting)
	})
	require.NoError(t, err)
}

func TestMutateErrorWritesNothing(t *testing.T) {
	backend := NewMemoryBackend()
	st := New(backend, testConfig, zap.NewNop())
	require.NoError(t, st.Open(context.Background()))

	boom := errors.New("refused")
	err := st.Mutate(context.Background(), func(doc *Document) error {
		return boom
	})
	assert.Equal(t, boom, err)

	data, loadErr := backend.Load()
	require.NoError(t, loadErr)
	assert.Nil(t, data)
}

type failingBackend struct {
	mem  *MemoryBackend
	fail bool
}

func (b *failingBackend) Load() ([]byte, error) { return b.mem.Load() }

func (b *failingBackend) Save(data []byte) error {
	if b.fail {
		return errors.New("disk full")
	}
	return b.mem.Save(data)
}

func TestMutateSaveFailureRollsBack(t *testing.T) {
	backend := &failingBackend{mem: NewMemoryBackend()}
	st := New(backend, testConfig, zap.NewNop())
	require.NoError(t, st.Open(context.Background()))
	require.NoError(t, st.Mutate(context.Background(), func(doc *Document) error {
		doc.News = append(doc.News, &models.NewsItem{ID: "NEWS-250314-001", Title: "Matrícula 2025"})
		return nil
	}))

	backend.fail = true
	err := st.Mutate(context.Background(), func(doc *Document) error {
		doc.News = append(doc.News, &models.NewsItem{ID: "NEWS-250314-002", Title: "Simulacro"})
		doc.FirstGreeting = false
		return nil
	})
	assert.True(t, errors.Is(err, appErrors.ErrStorage))

	viewErr := st.View(func(doc *Document) {
		require.Len(t, doc.News, 1)
		assert.Equal(t, "NEWS-250314-001", doc.News[0].ID)
		assert.True(t, doc.FirstGreeting)
	})
	require.NoError(t, viewErr)

	backend.fail = false
	require.NoError(t, st.Mutate(context.Background(), func(doc *Document) error {
		doc.Config.AcademicYear = 2026
		return nil
	}))

	raw, loadErr := backend.mem.Load()
	require.NoError(t, loadErr)
	persisted := &Document{}
	require.NoError(t, json.Unmarshal(raw, persisted))
	require.Len(t, persisted.News, 1)
	assert.Equal(t, "NEWS-250314-001", persisted.News[0].ID)
	assert.True(t, persisted.FirstGreeting)
	assert.Equal(t, 2026, persisted.Config.AcademicYear)
}

func TestOpenCorruptDocumentStartsFresh(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Save([]byte("{not json")))

	st := New(backend, testConfig, zap.NewNop())
	require.NoError(t, st.Open(context.Background()))

	err := st.View(func(doc *Document) {
		assert.True(t, doc.FirstGreeting)
		assert.Empty(t, doc.SupportTickets)
		assert.Len(t, doc.LibraryInventory, 10)
	})
	require.NoError(t, err)
}

func TestOpenNormalizesOlderDocument(t *testing.T) {
	raw, err := json.Marshal(map[string]any{
		"config":        map[string]any{"schoolName": "I.E. San Martín de Porres", "academicYear": 2024},
		"firstGreeting": false,
		"news": []map[string]any{
			{"id": "NEWS-240601-001", "title": "Simulacro", "body": "Participación obligatoria"},
		},
	})
	require.NoError(t, err)
	backend := NewMemoryBackend()
	require.NoError(t, backend.Save(raw))

	st := New(backend, testConfig, zap.NewNop())
	require.NoError(t, st.Open(context.Background()))

	viewErr := st.View(func(doc *Document) {
		assert.False(t, doc.FirstGreeting)
		assert.Equal(t, 2024, doc.Config.AcademicYear)
		require.Len(t, doc.News, 1)
		assert.NotNil(t, doc.VisitorLogs)
		assert.Empty(t, doc.VisitorLogs)
		// an absent inventory reseeds the catalog
		assert.Len(t, doc.LibraryInventory, 10)
	})
	require.NoError(t, viewErr)
}

func TestViewBeforeOpenFails(t *testing.T) {
	st := New(NewMemoryBackend(), testConfig, zap.NewNop())

	err := st.View(func(*Document) {})
	assert.True(t, errors.Is(err, appErrors.ErrInternal))

	err = st.Mutate(context.Background(), func(*Document) error { return nil })
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "portal.json")
	backend := NewFileBackend(path)

	data, err := backend.Load()
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, backend.Save([]byte(`{"firstGreeting":true}`)))

	data, err = backend.Load()
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstGreeting":true}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestFileBackendSaveReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.json")
	backend := NewFileBackend(path)

	require.NoError(t, backend.Save([]byte(`{"firstGreeting":true}`)))
	require.NoError(t, backend.Save([]byte(`{"firstGreeting":false}`)))

	data, err := backend.Load()
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstGreeting":false}`, string(data))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileBackendThroughStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.json")

	st := New(NewFileBackend(path), testConfig, zap.NewNop())
	require.NoError(t, st.Open(context.Background()))
	require.NoError(t, st.Mutate(context.Background(), func(doc *Document) error {
		doc.FirstGreeting = false
		return nil
	}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"firstGreeting": false`)
	assert.Contains(t, string(raw), `"libraryInventory"`)
}
