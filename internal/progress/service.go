package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/example/sunnahtracker/internal/storage"
	"github.com/example/sunnahtracker/pkg/models"
)

// ErrInvalidDifficulty is returned when a tier outside easy/medium/hard is supplied
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Service owns the user progress aggregate. It loads lazily on first access and
// writes the full snapshot after every mutation.
type Service struct {
	store    storage.Store
	logger   *log.Logger
	progress *models.UserProgress
	now      func() time.Time
}

// NewService creates a progress service backed by store
func NewService(store storage.Store, logger *log.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

// Initialize loads the persisted snapshot or creates and persists the defaults.
// Later calls return the cached aggregate without touching the store.
func (s *Service) Initialize(ctx context.Context) (*models.UserProgress, error) {
	if s.progress != nil {
		return s.progress.Clone(), nil
	}

	var stored models.UserProgress
	found, err := s.store.Get(ctx, storage.KeyUserProgress, &stored)
	if err != nil {
		s.logger.Error("failed to read progress, using defaults", "err", err)
	}
	if found && err == nil {
		stored.Normalize()
		s.progress = &stored
		return s.progress.Clone(), nil
	}

	s.progress = models.NewUserProgress()
	if err := s.persist(ctx); err != nil {
		return s.progress.Clone(), err
	}
	return s.progress.Clone(), nil
}

func (s *Service) ensure(ctx context.Context) {
	if s.progress == nil {
		// write failures are logged; defaults stay in memory
		_, _ = s.Initialize(ctx)
	}
}

// SetClock replaces the clock used to find today
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// GetProgress returns a snapshot of the aggregate
func (s *Service) GetProgress(ctx context.Context) *models.UserProgress {
	s.ensure(ctx)
	return s.progress.Clone()
}

// SetDailyDifficulty records the tier chosen for date, overwriting any earlier choice
func (s *Service) SetDailyDifficulty(ctx context.Context, date string, difficulty models.Difficulty) error {
	if !difficulty.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, difficulty)
	}
	s.ensure(ctx)
	s.progress.DailyDifficulty[date] = difficulty
	return s.persist(ctx)
}

// GetDailyDifficulty returns the tier locked in for date, or nil
func (s *Service) GetDailyDifficulty(ctx context.Context, date string) *models.Difficulty {
	s.ensure(ctx)
	d, ok := s.progress.DailyDifficulty[date]
	if !ok {
		return nil
	}
	return &d
}

// MarkComplete records the completion of sunnahID on date. A date that is
// already complete is left untouched and reported as success.
func (s *Service) MarkComplete(ctx context.Context, date, sunnahID string, difficulty models.Difficulty) error {
	if !difficulty.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, difficulty)
	}
	s.ensure(ctx)
	p := s.progress
	if p.Completions[date] {
		return nil
	}

	p.Completions[date] = true
	p.CompletedSunnahs.Add(sunnahID)
	p.TotalCompletions++
	p.DifficultyStats.Increment(difficulty)

	p.CurrentStreak = s.calculateStreak()
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}

	s.logger.Debug("day completed", "date", date, "sunnah", sunnahID, "streak", p.CurrentStreak)
	return s.persist(ctx)
}

// IsCompleted reports whether date has been marked complete
func (s *Service) IsCompleted(ctx context.Context, date string) bool {
	s.ensure(ctx)
	return s.progress.Completions[date]
}

// GetCompletionRate returns the share of tracked days that are complete, 0-100
func (s *Service) GetCompletionRate(ctx context.Context) float64 {
	s.ensure(ctx)
	total := len(s.progress.Completions)
	if total == 0 {
		return 0
	}
	completed := 0
	for _, done := range s.progress.Completions {
		if done {
			completed++
		}
	}
	return float64(completed) / float64(total) * 100
}

// GetCalendarDays returns one entry per day of the month, keyed by date string
func (s *Service) GetCalendarDays(ctx context.Context, year int, month time.Month) (map[string]models.CalendarDay, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month %d", month)
	}
	s.ensure(ctx)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make(map[string]models.CalendarDay, daysInMonth)
	for day := 0; day < daysInMonth; day++ {
		date := models.FormatDate(first.AddDate(0, 0, day))
		entry := models.CalendarDay{Date: date, Completed: s.progress.Completions[date]}
		if d, ok := s.progress.DailyDifficulty[date]; ok {
			entry.Difficulty = &d
		}
		days[date] = entry
	}
	return days, nil
}

// GetMonthStats summarizes the calendar days of a month. Tier counts include
// days where a tier was locked in but not completed.
func (s *Service) GetMonthStats(ctx context.Context, year int, month time.Month) (models.MonthStats, error) {
	days, err := s.GetCalendarDays(ctx, year, month)
	if err != nil {
		return models.MonthStats{}, err
	}
	stats := models.MonthStats{Total: len(days)}
	for _, day := range days {
		if day.Completed {
			stats.Completed++
		}
		if day.Difficulty == nil {
			continue
		}
		switch *day.Difficulty {
		case models.DifficultyEasy:
			stats.Easy++
		case models.DifficultyMedium:
			stats.Medium++
		case models.DifficultyHard:
			stats.Hard++
		}
	}
	return stats, nil
}

// GetCompletedSunnahs returns a copy of the ids ever completed
func (s *Service) GetCompletedSunnahs(ctx context.Context) models.IDSet {
	s.ensure(ctx)
	return s.progress.CompletedSunnahs.Clone()
}

// ResetProgress discards all progress and persists the empty aggregate
func (s *Service) ResetProgress(ctx context.Context) error {
	s.progress = models.NewUserProgress()
	s.logger.Info("progress reset")
	return s.persist(ctx)
}

// calculateStreak counts consecutive completed days walking back from today
func (s *Service) calculateStreak() int {
	day := models.TruncateToDay(s.now())
	streak := 0
	for s.progress.Completions[models.FormatDate(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func (s *Service) persist(ctx context.Context) error {
	if err := s.store.Set(ctx, storage.KeyUserProgress, s.progress); err != nil {
		s.logger.Error("failed to persist progress", "err", err)
		return err
	}
	return nil
}
