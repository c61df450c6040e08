package excel

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/sunnahtracker/pkg/models"
)

// CatalogWriter receives imported items
type CatalogWriter interface {
	Upsert(ctx context.Context, item models.Sunnah) (created bool, err error)
}

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath          string // Path to the Excel or CSV file
	IDColumn          string
	TitleColumn       string
	DescriptionColumn string
	CategoryColumn    string
	DifficultyColumn  string
	SourceColumn      string
	SheetName         string // Name of the sheet to import (xlsx only)
	StartRow          int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		IDColumn:          "A",
		TitleColumn:       "B",
		DescriptionColumn: "C",
		CategoryColumn:    "D",
		DifficultyColumn:  "E",
		SourceColumn:      "F",
		SheetName:         "Sheet1",
		StartRow:          2, // skip the header row
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Updated        int
	Skipped        int
	Errors         []string
}

var errEmptyRow = errors.New("empty row")

// ImportSunnahs imports catalog items from an Excel or CSV file
func ImportSunnahs(ctx context.Context, config ImportConfig, catalog CatalogWriter) (*ImportResult, error) {
	if config.StartRow < 1 {
		config.StartRow = 1
	}

	var (
		rows [][]string
		err  error
	)
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		rows, err = readCSV(config.FilePath)
	} else {
		rows, err = readExcel(config.FilePath, config.SheetName)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.TotalProcessed++

		item, err := parseRow(row, config)
		if errors.Is(err, errEmptyRow) {
			result.Skipped++
			continue
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}

		created, err := catalog.Upsert(ctx, item)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}
	return result, nil
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseRow maps the configured columns of row onto a validated item
func parseRow(row []string, config ImportConfig) (models.Sunnah, error) {
	cell := func(column string) string {
		if column == "" {
			return ""
		}
		if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	item := models.Sunnah{
		ID:          cell(config.IDColumn),
		Title:       cell(config.TitleColumn),
		Description: cell(config.DescriptionColumn),
		Source:      cell(config.SourceColumn),
	}
	rawCategory := strings.ToLower(cell(config.CategoryColumn))
	rawDifficulty := strings.ToLower(cell(config.DifficultyColumn))

	if item.ID == "" && item.Title == "" && item.Description == "" && rawCategory == "" && rawDifficulty == "" {
		return item, errEmptyRow
	}
	if item.ID == "" {
		return item, fmt.Errorf("id cannot be empty")
	}
	if item.Title == "" {
		return item, fmt.Errorf("title cannot be empty")
	}

	category, err := models.ParseCategory(rawCategory)
	if err != nil {
		return item, err
	}
	difficulty, err := models.ParseDifficulty(rawDifficulty)
	if err != nil {
		return item, err
	}
	item.Category = category
	item.Difficulty = difficulty
	return item, nil
}

// columnToIndex converts an Excel column letter to a zero-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
