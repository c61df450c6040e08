package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/example/sunnahtracker/internal/storage"
	"github.com/example/sunnahtracker/pkg/models"
)

var (
	// ErrInvalidLanguage indicates an unsupported language code
	ErrInvalidLanguage = errors.New("invalid language")
	// ErrInvalidTheme indicates an unsupported theme
	ErrInvalidTheme = errors.New("invalid theme")
)

// Patch is a partial settings update; nil fields are left unchanged
type Patch struct {
	Language *models.Language
	Theme    *models.Theme
}

// Service owns the in-memory settings record
type Service struct {
	store    storage.Store
	logger   *log.Logger
	settings *models.Settings
}

// NewService creates a settings service backed by store
func NewService(store storage.Store, logger *log.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Initialize loads persisted settings or creates and persists the defaults
func (s *Service) Initialize(ctx context.Context) (models.Settings, error) {
	var stored models.Settings
	found, err := s.store.Get(ctx, storage.KeySettings, &stored)
	if err != nil {
		s.logger.Error("failed to read settings, using defaults", "err", err)
	}
	if found && err == nil {
		s.settings = &stored
		return stored, nil
	}

	defaults := models.DefaultSettings()
	s.settings = &defaults
	if err := s.store.Set(ctx, storage.KeySettings, defaults); err != nil {
		s.logger.Error("failed to persist default settings", "err", err)
		return defaults, err
	}
	return defaults, nil
}

// GetSettings returns the current settings, initializing on first use
func (s *Service) GetSettings(ctx context.Context) (models.Settings, error) {
	if s.settings == nil {
		return s.Initialize(ctx)
	}
	return *s.settings, nil
}

// SetLanguage changes the active language
func (s *Service) SetLanguage(ctx context.Context, language models.Language) error {
	return s.Update(ctx, Patch{Language: &language})
}

// SetTheme changes the color scheme
func (s *Service) SetTheme(ctx context.Context, theme models.Theme) error {
	return s.Update(ctx, Patch{Theme: &theme})
}

// Update applies patch and persists the result. Nothing changes if a field is invalid.
func (s *Service) Update(ctx context.Context, patch Patch) error {
	if patch.Language != nil && !patch.Language.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, *patch.Language)
	}
	if patch.Theme != nil && !patch.Theme.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, *patch.Theme)
	}
	if s.settings == nil {
		// a failed default write is already logged; the patch below retries it
		_, _ = s.Initialize(ctx)
	}

	if patch.Language != nil {
		s.settings.Language = *patch.Language
	}
	if patch.Theme != nil {
		s.settings.Theme = *patch.Theme
	}
	if err := s.store.Set(ctx, storage.KeySettings, *s.settings); err != nil {
		s.logger.Error("failed to persist settings", "err", err)
		return err
	}
	return nil
}
