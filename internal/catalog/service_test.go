package catalog

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sunnahtracker/internal/logging"
	"github.com/example/sunnahtracker/internal/storage"
	"github.com/example/sunnahtracker/pkg/models"
)

type staticSettings struct {
	settings models.Settings
}

func (s staticSettings) GetSettings(context.Context) (models.Settings, error) {
	return s.settings, nil
}

func newTestService(t *testing.T, language models.Language) (*Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	svc := NewService(store, staticSettings{models.Settings{Language: language, Theme: models.ThemeLight}}, logging.Discard())
	require.NoError(t, svc.Initialize(context.Background()))
	return svc, store
}

func TestDateHashMatchesReferenceValues(t *testing.T) {
	assert.Equal(t, int32(-613282015), dateHash("2024-03-15"))
	assert.Equal(t, int32(-613282014), dateHash("2024-03-16"))
	assert.Equal(t, int32(1162559495), dateHash("2026-10-15"))
	assert.Equal(t, int32(0), dateHash(""))
	assert.Equal(t, int32(233), dateHash("é"))
	// surrogate pair: 0xD83D*31 + 0xDE00
	assert.Equal(t, int32(1772899), dateHash("😀"))
}

func TestPickIndexHandlesMinInt32(t *testing.T) {
	assert.Equal(t, 2, pickIndex(math.MinInt32, 3))
	assert.Equal(t, 3, pickIndex(-613282015, 4))
	assert.Equal(t, 0, pickIndex(0, 7))
}

func TestInitializeSeedsFromSettingsLanguage(t *testing.T) {
	svc, store := newTestService(t, models.LanguageGerman)
	ctx := context.Background()

	assert.Equal(t, 12, svc.Count(ctx))
	assert.Equal(t, "Bismillah vor dem Essen sagen", svc.GetByID(ctx, "sunnah-001").Title)

	_, ok := store.Raw(storage.KeySunnahs)
	assert.True(t, ok)
}

func TestInitializePrefersStoredCatalog(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	custom := []models.Sunnah{{ID: "custom-1", Title: "Custom", Category: models.CategoryDaily, Difficulty: models.DifficultyEasy}}
	require.NoError(t, store.Set(ctx, storage.KeySunnahs, custom))

	svc := NewService(store, staticSettings{models.DefaultSettings()}, logging.Discard())
	assert.Equal(t, custom, svc.GetAll(ctx))
}

func TestGetDailySunnahIsDeterministic(t *testing.T) {
	svc, store := newTestService(t, models.LanguageEnglish)
	ctx := context.Background()

	first := svc.GetDailySunnah(ctx, "2024-03-15", models.DifficultyEasy)
	require.NotNil(t, first)
	assert.Equal(t, "sunnah-004", first.ID)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, svc.GetDailySunnah(ctx, "2024-03-15", models.DifficultyEasy))
	}

	// a fresh service over the same store behaves like a restarted process
	restarted := NewService(store, staticSettings{models.DefaultSettings()}, logging.Discard())
	assert.Equal(t, first, restarted.GetDailySunnah(ctx, "2024-03-15", models.DifficultyEasy))

	assert.Equal(t, "sunnah-011", svc.GetDailySunnah(ctx, "2024-03-16", models.DifficultyHard).ID)
	assert.Equal(t, "sunnah-005", svc.GetDailySunnah(ctx, "2024-01-01", models.DifficultyMedium).ID)
}

func TestGetDailySunnahEmptyTier(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, storage.KeySunnahs, []models.Sunnah{
		{ID: "only-easy", Title: "Easy", Category: models.CategoryDaily, Difficulty: models.DifficultyEasy},
	}))
	svc := NewService(store, staticSettings{models.DefaultSettings()}, logging.Discard())

	assert.Nil(t, svc.GetDailySunnah(ctx, "2024-03-15", models.DifficultyHard))
	assert.Equal(t, "only-easy", svc.GetDailySunnah(ctx, "2024-03-15", models.DifficultyEasy).ID)
}

func TestReloadForLanguageKeepsSelectedIndex(t *testing.T) {
	svc, store := newTestService(t, models.LanguageEnglish)
	ctx := context.Background()

	en := svc.GetDailySunnah(ctx, "2024-03-15", models.DifficultyMedium)
	require.NoError(t, svc.ReloadForLanguage(ctx, models.LanguageGerman))
	de := svc.GetDailySunnah(ctx, "2024-03-15", models.DifficultyMedium)

	assert.Equal(t, en.ID, de.ID)
	assert.NotEqual(t, en.Title, de.Title)

	var stored []models.Sunnah
	found, err := store.Get(ctx, storage.KeySunnahs, &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Den Miswak benutzen", stored[4].Title)

	assert.Error(t, svc.ReloadForLanguage(ctx, "fr"))
}

func TestSampleVariantsShareIDsAndOrder(t *testing.T) {
	en := SampleSunnahs(models.LanguageEnglish)
	de := SampleSunnahs(models.LanguageGerman)
	require.Len(t, de, len(en))
	for i := range en {
		assert.Equal(t, en[i].ID, de[i].ID)
		assert.Equal(t, en[i].Difficulty, de[i].Difficulty)
		assert.Equal(t, en[i].Category, de[i].Category)
		assert.NoError(t, validate.Struct(en[i]))
	}
	assert.Equal(t, en, SampleSunnahs("xx"))
}

func TestSearchAndCategoryQueries(t *testing.T) {
	svc, _ := newTestService(t, models.LanguageEnglish)
	ctx := context.Background()

	hits := svc.Search(ctx, "MISWAK")
	require.Len(t, hits, 1)
	assert.Equal(t, "sunnah-005", hits[0].ID)

	assert.Len(t, svc.Search(ctx, "social"), 3)
	assert.Len(t, svc.ByCategory(ctx, models.CategoryWorship), 4)
	assert.Len(t, svc.ByDifficulty(ctx, models.DifficultyHard), 4)
	assert.Nil(t, svc.GetByID(ctx, "missing"))
}

func TestFilterCombinesLibraryFilters(t *testing.T) {
	svc, _ := newTestService(t, models.LanguageEnglish)
	ctx := context.Background()
	completed := models.NewIDSet("sunnah-001", "sunnah-009")

	done := svc.Filter(ctx, LibraryFilter{Completion: CompletionCompleted}, completed)
	assert.Len(t, done, 2)

	open := svc.Filter(ctx, LibraryFilter{Difficulty: models.DifficultyHard, Completion: CompletionIncomplete}, completed)
	require.Len(t, open, 3)
	assert.Equal(t, "sunnah-010", open[0].ID)

	worship := svc.Filter(ctx, LibraryFilter{Query: "  prayer ", Category: models.CategoryWorship}, completed)
	for _, item := range worship {
		assert.Equal(t, models.CategoryWorship, item.Category)
	}
	assert.NotEmpty(t, worship)

	assert.Len(t, svc.Filter(ctx, LibraryFilter{}, completed), 12)
}

func TestAddAndUpsert(t *testing.T) {
	svc, _ := newTestService(t, models.LanguageEnglish)
	ctx := context.Background()

	assert.Error(t, svc.Add(ctx, models.Sunnah{ID: "x", Title: "X", Category: "sport", Difficulty: models.DifficultyEasy}))

	item := models.Sunnah{ID: "sunnah-100", Title: "Drinking in Three Breaths", Category: models.CategoryDaily, Difficulty: models.DifficultyEasy}
	require.NoError(t, svc.Add(ctx, item))
	assert.Equal(t, 13, svc.Count(ctx))

	item.Title = "Drinking Water Sitting Down"
	created, err := svc.Upsert(ctx, item)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Drinking Water Sitting Down", svc.GetByID(ctx, "sunnah-100").Title)

	created, err = svc.Upsert(ctx, models.Sunnah{ID: "sunnah-101", Title: "Sleeping on the Right Side", Category: models.CategoryDaily, Difficulty: models.DifficultyMedium})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 14, svc.Count(ctx))
}
