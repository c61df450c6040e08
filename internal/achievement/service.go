package achievement

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/example/sunnahtracker/internal/storage"
	"github.com/example/sunnahtracker/pkg/models"
)

// ProgressReader supplies the progress snapshot rules are evaluated against
type ProgressReader interface {
	GetProgress(ctx context.Context) *models.UserProgress
}

// Service caches achievement unlock state and evaluates the fixed rule table.
// Unlocks are never revoked, including after a progress reset.
type Service struct {
	store        storage.Store
	progress     ProgressReader
	logger       *log.Logger
	achievements []models.Achievement
	now          func() time.Time
}

// NewService creates an achievement service
func NewService(store storage.Store, progress ProgressReader, logger *log.Logger) *Service {
	return &Service{store: store, progress: progress, logger: logger, now: time.Now}
}

// SetClock replaces the clock used to stamp unlock dates
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Initialize loads stored unlock state, or persists the locked defaults, and
// then runs an evaluation pass.
func (s *Service) Initialize(ctx context.Context) ([]models.Achievement, error) {
	var stored []models.Achievement
	found, err := s.store.Get(ctx, storage.KeyAchievements, &stored)
	if err != nil {
		s.logger.Error("failed to read achievements, using defaults", "err", err)
	}

	var writeErr error
	if found && err == nil && len(stored) > 0 {
		s.achievements = stored
	} else {
		s.achievements = Defaults()
		writeErr = s.persist(ctx)
	}

	all, err := s.CheckAchievements(ctx)
	if err != nil {
		return all, err
	}
	return all, writeErr
}

func (s *Service) ensure(ctx context.Context) {
	if len(s.achievements) == 0 {
		// write failures are logged; the locked defaults stay in memory
		_, _ = s.Initialize(ctx)
	}
}

// CheckAchievements unlocks every locked achievement whose rule now holds and
// returns the full list.
func (s *Service) CheckAchievements(ctx context.Context) ([]models.Achievement, error) {
	_, err := s.CheckNewlyUnlocked(ctx)
	return s.snapshot(), err
}

// CheckNewlyUnlocked runs the same pass as CheckAchievements but returns only
// the achievements unlocked by this call.
func (s *Service) CheckNewlyUnlocked(ctx context.Context) ([]models.Achievement, error) {
	s.ensure(ctx)
	progress := s.progress.GetProgress(ctx)
	today := models.FormatDate(s.now())

	var unlocked []models.Achievement
	for i := range s.achievements {
		a := &s.achievements[i]
		if a.Unlocked {
			continue
		}
		def, ok := lookup(a.ID)
		if !ok || !def.satisfied(progress) {
			continue
		}
		a.Unlocked = true
		a.UnlockedDate = today
		unlocked = append(unlocked, *a)
		s.logger.Info("achievement unlocked", "id", a.ID, "date", today)
	}

	if len(unlocked) == 0 {
		return nil, nil
	}
	return unlocked, s.persist(ctx)
}

// GetAllAchievements returns every achievement in table order
func (s *Service) GetAllAchievements(ctx context.Context) []models.Achievement {
	s.ensure(ctx)
	return s.snapshot()
}

// GetUnlockedAchievements returns only the unlocked achievements
func (s *Service) GetUnlockedAchievements(ctx context.Context) []models.Achievement {
	s.ensure(ctx)
	out := make([]models.Achievement, 0, len(s.achievements))
	for _, a := range s.achievements {
		if a.Unlocked {
			out = append(out, a)
		}
	}
	return out
}

func (s *Service) snapshot() []models.Achievement {
	out := make([]models.Achievement, len(s.achievements))
	copy(out, s.achievements)
	return out
}

func (s *Service) persist(ctx context.Context) error {
	if err := s.store.Set(ctx, storage.KeyAchievements, s.achievements); err != nil {
		s.logger.Error("failed to persist achievements", "err", err)
		return err
	}
	return nil
}
