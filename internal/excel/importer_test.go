package excel

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/example/sunnahtracker/internal/catalog"
	"github.com/example/sunnahtracker/internal/logging"
	"github.com/example/sunnahtracker/internal/storage"
	"github.com/example/sunnahtracker/pkg/models"
)

type staticSettings struct{}

func (staticSettings) GetSettings(context.Context) (models.Settings, error) {
	return models.DefaultSettings(), nil
}

func newCatalog(t *testing.T) *catalog.Service {
	t.Helper()
	svc := catalog.NewService(storage.NewMemoryStore(), staticSettings{}, logging.Discard())
	require.NoError(t, svc.Initialize(context.Background()))
	return svc
}

var testRows = [][]any{
	{"id", "title", "description", "category", "difficulty", "source"},
	{"sunnah-001", "Bismillah Before Eating", "Say Bismillah", "Daily", "EASY", "Bukhari"},
	{"sunnah-100", "Sleeping on the Right Side", "Lie on your right side", "daily", "medium", "Bukhari 247"},
	{"", "", "", "", "", ""},
	{"sunnah-101", "Broken Row", "", "sport", "easy", ""},
	{"", "No Id", "", "daily", "easy", ""},
}

func writeXLSX(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "sunnahs.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImportExcel(t *testing.T) {
	cat := newCatalog(t)
	ctx := context.Background()
	config := DefaultImportConfig()
	config.FilePath = writeXLSX(t, testRows)

	result, err := ImportSunnahs(ctx, config, cat)
	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalProcessed)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 3, result.Skipped)
	assert.Len(t, result.Errors, 2)

	assert.Equal(t, 13, cat.Count(ctx))
	updated := cat.GetByID(ctx, "sunnah-001")
	require.NotNil(t, updated)
	assert.Equal(t, "Bismillah Before Eating", updated.Title)
	assert.Equal(t, models.DifficultyEasy, updated.Difficulty)

	added := cat.GetByID(ctx, "sunnah-100")
	require.NotNil(t, added)
	assert.Equal(t, "Bukhari 247", added.Source)
}

func TestImportCSV(t *testing.T) {
	cat := newCatalog(t)
	content := "id,title,description,category,difficulty,source\n" +
		"sunnah-200,\"Drinking in Three Breaths\",Pause twice while drinking,daily,easy,Muslim\n" +
		"sunnah-201,Short Row,,social,hard\n"
	path := filepath.Join(t.TempDir(), "sunnahs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config := DefaultImportConfig()
	config.FilePath = path
	result, err := ImportSunnahs(context.Background(), config, cat)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalProcessed)
	assert.Equal(t, 2, result.Created)
	assert.Empty(t, result.Errors)
	assert.Equal(t, models.DifficultyHard, cat.GetByID(context.Background(), "sunnah-201").Difficulty)
}

func TestImportCustomColumns(t *testing.T) {
	cat := newCatalog(t)
	rows := [][]any{
		{"hard", "worship", "sunnah-300", "Night Prayer"},
	}
	config := ImportConfig{
		FilePath:         writeXLSX(t, rows),
		IDColumn:         "C",
		TitleColumn:      "D",
		CategoryColumn:   "B",
		DifficultyColumn: "A",
		SheetName:        "Sheet1",
		StartRow:         1,
	}
	result, err := ImportSunnahs(context.Background(), config, cat)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, "Night Prayer", cat.GetByID(context.Background(), "sunnah-300").Title)
}

func TestImportMissingFile(t *testing.T) {
	config := DefaultImportConfig()
	config.FilePath = filepath.Join(t.TempDir(), "missing.xlsx")
	_, err := ImportSunnahs(context.Background(), config, newCatalog(t))
	assert.Error(t, err)

	config.FilePath = writeXLSX(t, testRows)
	config.SheetName = "Nope"
	_, err = ImportSunnahs(context.Background(), config, newCatalog(t))
	assert.Error(t, err)
}

func TestColumnToIndex(t *testing.T) {
	assert.Equal(t, 0, columnToIndex("A"))
	assert.Equal(t, 5, columnToIndex("f"))
	assert.Equal(t, 26, columnToIndex("AA"))
}
