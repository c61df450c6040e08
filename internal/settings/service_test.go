package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sunnahtracker/internal/logging"
	"github.com/example/sunnahtracker/internal/storage"
	"github.com/example/sunnahtracker/pkg/models"
)

type failingStore struct {
	storage.Store
}

func (failingStore) Set(context.Context, string, any) error {
	return errors.New("disk full")
}

func TestInitializeCreatesDefaults(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store, logging.Discard())

	got, err := svc.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), got)

	raw, ok := store.Raw(storage.KeySettings)
	require.True(t, ok)
	assert.JSONEq(t, `{"language":"en","theme":"light"}`, string(raw))
}

func TestInitializeLoadsStored(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, storage.KeySettings, models.Settings{Language: models.LanguageGerman, Theme: models.ThemeDark}))

	got, err := NewService(store, logging.Discard()).GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LanguageGerman, got.Language)
	assert.Equal(t, models.ThemeDark, got.Theme)
}

func TestSetLanguageAndThemePersist(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	svc := NewService(store, logging.Discard())

	require.NoError(t, svc.SetLanguage(ctx, models.LanguageGerman))
	require.NoError(t, svc.SetTheme(ctx, models.ThemeDark))

	reloaded, err := NewService(store, logging.Discard()).GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Settings{Language: models.LanguageGerman, Theme: models.ThemeDark}, reloaded)
}

func TestUpdateRejectsUnknownValues(t *testing.T) {
	svc := NewService(storage.NewMemoryStore(), logging.Discard())
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetLanguage(ctx, "fr"), ErrInvalidLanguage)
	assert.ErrorIs(t, svc.SetTheme(ctx, "sepia"), ErrInvalidTheme)

	got, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), got)
}

func TestUpdateWriteFailureKeepsMemoryAhead(t *testing.T) {
	svc := NewService(failingStore{storage.NewMemoryStore()}, logging.Discard())
	ctx := context.Background()

	err := svc.SetTheme(ctx, models.ThemeDark)
	assert.Error(t, err)

	got, _ := svc.GetSettings(ctx)
	assert.Equal(t, models.ThemeDark, got.Theme)
}
