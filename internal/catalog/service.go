package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/example/sunnahtracker/internal/storage"
	"github.com/example/sunnahtracker/pkg/models"
)

var validate = validator.New()

// SettingsReader supplies the language used to seed an empty catalog
type SettingsReader interface {
	GetSettings(ctx context.Context) (models.Settings, error)
}

// CompletionFilter narrows the library by completion state
type CompletionFilter string

const (
	CompletionAll        CompletionFilter = "all"
	CompletionCompleted  CompletionFilter = "completed"
	CompletionIncomplete CompletionFilter = "incomplete"
)

// LibraryFilter combines the library screen filters. Empty fields match everything.
type LibraryFilter struct {
	Query      string
	Difficulty models.Difficulty
	Category   models.Category
	Completion CompletionFilter
}

// Service holds the active-language catalog
type Service struct {
	store    storage.Store
	settings SettingsReader
	logger   *log.Logger
	sunnahs  []models.Sunnah
}

// NewService creates a catalog service
func NewService(store storage.Store, settings SettingsReader, logger *log.Logger) *Service {
	return &Service{store: store, settings: settings, logger: logger}
}

// Initialize loads the stored catalog, or seeds it from the sample data in the
// current settings language.
func (s *Service) Initialize(ctx context.Context) error {
	var stored []models.Sunnah
	found, err := s.store.Get(ctx, storage.KeySunnahs, &stored)
	if err != nil {
		s.logger.Error("failed to read catalog, reseeding", "err", err)
	}
	if found && err == nil && len(stored) > 0 {
		s.sunnahs = stored
		return nil
	}

	language := models.LanguageEnglish
	if settings, err := s.settings.GetSettings(ctx); err == nil {
		language = settings.Language
	}
	s.sunnahs = SampleSunnahs(language)
	if err := s.store.Set(ctx, storage.KeySunnahs, s.sunnahs); err != nil {
		s.logger.Error("failed to persist catalog", "err", err)
		return err
	}
	return nil
}

func (s *Service) ensure(ctx context.Context) {
	if len(s.sunnahs) == 0 {
		// errors are logged inside; the in-memory seed is still usable
		_ = s.Initialize(ctx)
	}
}

// ReloadForLanguage replaces the whole catalog with the language variant and persists it
func (s *Service) ReloadForLanguage(ctx context.Context, language models.Language) error {
	if !language.Valid() {
		return fmt.Errorf("reload catalog: unknown language %q", language)
	}
	s.sunnahs = SampleSunnahs(language)
	if err := s.store.Set(ctx, storage.KeySunnahs, s.sunnahs); err != nil {
		s.logger.Error("failed to persist catalog", "language", language, "err", err)
		return err
	}
	s.logger.Debug("catalog reloaded", "language", language, "count", len(s.sunnahs))
	return nil
}

// GetAll returns a copy of the catalog in declaration order
func (s *Service) GetAll(ctx context.Context) []models.Sunnah {
	s.ensure(ctx)
	out := make([]models.Sunnah, len(s.sunnahs))
	copy(out, s.sunnahs)
	return out
}

// Count returns the catalog size
func (s *Service) Count(ctx context.Context) int {
	s.ensure(ctx)
	return len(s.sunnahs)
}

// GetByID returns the item with id, or nil
func (s *Service) GetByID(ctx context.Context, id string) *models.Sunnah {
	s.ensure(ctx)
	for i := range s.sunnahs {
		if s.sunnahs[i].ID == id {
			item := s.sunnahs[i]
			return &item
		}
	}
	return nil
}

// ByDifficulty returns the items of one tier in declaration order
func (s *Service) ByDifficulty(ctx context.Context, difficulty models.Difficulty) []models.Sunnah {
	s.ensure(ctx)
	return filter(s.sunnahs, func(item models.Sunnah) bool { return item.Difficulty == difficulty })
}

// ByCategory returns the items of one category in declaration order
func (s *Service) ByCategory(ctx context.Context, category models.Category) []models.Sunnah {
	s.ensure(ctx)
	return filter(s.sunnahs, func(item models.Sunnah) bool { return item.Category == category })
}

// Search matches query case-insensitively against title, description and category
func (s *Service) Search(ctx context.Context, query string) []models.Sunnah {
	s.ensure(ctx)
	q := strings.ToLower(query)
	return filter(s.sunnahs, func(item models.Sunnah) bool { return matches(item, q) })
}

// Filter applies the library filters. completed is the set of ids the user has finished.
func (s *Service) Filter(ctx context.Context, f LibraryFilter, completed models.IDSet) []models.Sunnah {
	s.ensure(ctx)
	q := strings.ToLower(strings.TrimSpace(f.Query))
	return filter(s.sunnahs, func(item models.Sunnah) bool {
		if q != "" && !matches(item, q) {
			return false
		}
		if f.Difficulty != "" && item.Difficulty != f.Difficulty {
			return false
		}
		if f.Category != "" && item.Category != f.Category {
			return false
		}
		switch f.Completion {
		case CompletionCompleted:
			return completed.Has(item.ID)
		case CompletionIncomplete:
			return !completed.Has(item.ID)
		}
		return true
	})
}

// Add appends a validated item and persists the catalog
func (s *Service) Add(ctx context.Context, item models.Sunnah) error {
	if err := validate.Struct(item); err != nil {
		return fmt.Errorf("invalid sunnah: %w", err)
	}
	s.ensure(ctx)
	s.sunnahs = append(s.sunnahs, item)
	return s.persist(ctx)
}

// Upsert replaces the item with the same id in place, or appends it.
// created reports whether the item was new.
func (s *Service) Upsert(ctx context.Context, item models.Sunnah) (created bool, err error) {
	if err := validate.Struct(item); err != nil {
		return false, fmt.Errorf("invalid sunnah: %w", err)
	}
	s.ensure(ctx)
	for i := range s.sunnahs {
		if s.sunnahs[i].ID == item.ID {
			s.sunnahs[i] = item
			return false, s.persist(ctx)
		}
	}
	s.sunnahs = append(s.sunnahs, item)
	return true, s.persist(ctx)
}

// GetDailySunnah picks the item for (date, difficulty) deterministically.
// The same pair always yields the same position within the tier, in every language.
func (s *Service) GetDailySunnah(ctx context.Context, date string, difficulty models.Difficulty) *models.Sunnah {
	s.ensure(ctx)
	candidates := filter(s.sunnahs, func(item models.Sunnah) bool { return item.Difficulty == difficulty })
	if len(candidates) == 0 {
		return nil
	}
	item := candidates[pickIndex(dateHash(date), len(candidates))]
	return &item
}

func (s *Service) persist(ctx context.Context) error {
	if err := s.store.Set(ctx, storage.KeySunnahs, s.sunnahs); err != nil {
		s.logger.Error("failed to persist catalog", "err", err)
		return err
	}
	return nil
}

func matches(item models.Sunnah, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(item.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(item.Description), lowerQuery) ||
		strings.Contains(strings.ToLower(string(item.Category)), lowerQuery)
}

func filter(items []models.Sunnah, keep func(models.Sunnah) bool) []models.Sunnah {
	out := make([]models.Sunnah, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
