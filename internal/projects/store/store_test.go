package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bokyaa/portfolio-backend/internal/projects/domain"
)

func sampleRecords() []domain.ProjectRecord {
	return []domain.ProjectRecord{
		{
			ID:          1700000000000,
			Title:       "Neon Logo",
			Description: "x",
			Images:      []string{"https://example.com/logo.png", "data:image/png;base64,aGk="},
			Tags:        []string{"logo", "neon"},
			Link:        "https://example.com",
			GithubURL:   "https://github.com/bokyaa/neon",
			Category:    "Branding",
		},
		{
			ID:          1700000000001,
			Title:       "Holo Site",
			Description: "y",
			Images:      []string{"https://example.com/site.png"},
			Tags:        []string{"web"},
			Category:    "Web Design",
		},
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend())

	in := sampleRecords()
	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadAbsentValue(t *testing.T) {
	s := New(NewMemoryBackend())

	out, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestLegacyImageMigration(t *testing.T) {
	backend := NewMemoryBackend()
	backend.Seed([]byte(`[{"id": 1, "title": "Old", "image": "x.png", "tags": ["a"]}]`))
	s := New(backend)

	out, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"x.png"}, out[0].Images)
}

func TestMigrationWithoutAnyImage(t *testing.T) {
	backend := NewMemoryBackend()
	backend.Seed([]byte(`[{"id": 1, "title": "Bare"}]`))
	s := New(backend)

	out, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotNil(t, out[0].Images)
	assert.Empty(t, out[0].Images)
	assert.NotNil(t, out[0].Tags)
}

func TestMigrationDoesNotOverrideImages(t *testing.T) {
	backend := NewMemoryBackend()
	backend.Seed([]byte(`[{"id": 1, "title": "Both", "image": "old.png", "images": ["new.png"]}]`))
	s := New(backend)

	out, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"new.png"}, out[0].Images)
}

func TestCorruptValue(t *testing.T) {
	backend := NewMemoryBackend()
	backend.Seed([]byte(`not json`))
	s := New(backend)

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorruptStore)
}

func TestNonListValueIsCorrupt(t *testing.T) {
	backend := NewMemoryBackend()
	backend.Seed([]byte(`{"id": 1}`))
	s := New(backend)

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorruptStore)
}

func TestSaveFailureIsQuotaError(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	s := New(backend)
	require.NoError(t, s.Save(ctx, sampleRecords()))

	backend.SaveErr = errors.New("disk full")
	updated, err := s.Add(ctx, domain.ProjectRecord{ID: 42, Title: "Doomed"})
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)

	// The returned list is the pre-write state, nothing half-committed.
	assert.Len(t, updated, 2)
	backend.SaveErr = nil
	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestAddAppends(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend())
	require.NoError(t, s.Save(ctx, sampleRecords()))

	rec := domain.ProjectRecord{ID: 3, Title: "Third", Images: []string{"z.png"}, Tags: []string{}}
	updated, err := s.Add(ctx, rec)
	require.NoError(t, err)
	require.Len(t, updated, 3)
	assert.Equal(t, rec, updated[2])
}

func TestUpdatePreservesID(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend())
	require.NoError(t, s.Save(ctx, sampleRecords()[:1]))

	patch := domain.ProjectRecord{ID: 999, Title: "New Title", Images: []string{"a.png"}, Tags: []string{}}
	updated, err := s.Update(ctx, 1700000000000, patch)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, int64(1700000000000), updated[0].ID)
	assert.Equal(t, "New Title", updated[0].Title)
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend())
	in := sampleRecords()
	require.NoError(t, s.Save(ctx, in))

	updated, err := s.Update(ctx, 12345, domain.ProjectRecord{Title: "Nobody"})
	require.NoError(t, err)
	assert.Equal(t, in, updated)
}

func TestRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend())
	in := sampleRecords()
	require.NoError(t, s.Save(ctx, in))

	updated, err := s.Remove(ctx, 404404)
	require.NoError(t, err)
	assert.Equal(t, in, updated)

	updated, err = s.Remove(ctx, 1700000000000)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, "Holo Site", updated[0].Title)
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend())
	require.NoError(t, s.Save(ctx, sampleRecords()))

	rec, err := s.Find(ctx, "1700000000001")
	require.NoError(t, err)
	assert.Equal(t, "Holo Site", rec.Title)

	_, err = s.Find(ctx, "0")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisBackendRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	s := New(NewRedisBackend(client, ""))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)

	in := sampleRecords()
	require.NoError(t, s.Save(ctx, in))

	out, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// The whole list lives under the one well-known key.
	raw, err := mr.Get(DefaultKey)
	require.NoError(t, err)
	assert.Contains(t, raw, "Neon Logo")
}

func TestFileBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "admin-projects.json")
	s := New(NewFileBackend(path))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)

	in := sampleRecords()
	require.NoError(t, s.Save(ctx, in))

	out, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
