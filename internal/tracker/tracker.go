package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/example/sunnahtracker/internal/achievement"
	"github.com/example/sunnahtracker/internal/catalog"
	"github.com/example/sunnahtracker/internal/progress"
	"github.com/example/sunnahtracker/internal/settings"
	"github.com/example/sunnahtracker/internal/storage"
	"github.com/example/sunnahtracker/internal/user"
	"github.com/example/sunnahtracker/pkg/models"
)

var (
	// ErrNoDifficulty is returned when completing a day that has no locked tier
	ErrNoDifficulty = errors.New("no difficulty locked for date")
	// ErrNoSunnah is returned when the catalog has no item for the locked tier
	ErrNoSunnah = errors.New("no sunnah available for difficulty")
)

// Tracker is the application handle. It owns one instance of every engine,
// all sharing the same store.
type Tracker struct {
	settings     *settings.Service
	catalog      *catalog.Service
	progress     *progress.Service
	achievements *achievement.Service
	users        *user.Service
	logger       *log.Logger
	now          func() time.Time
	userID       string
}

// New wires the engines over store
func New(store storage.Store, logger *log.Logger) *Tracker {
	settingsService := settings.NewService(store, logger.WithPrefix("settings"))
	progressService := progress.NewService(store, logger.WithPrefix("progress"))
	return &Tracker{
		settings:     settingsService,
		catalog:      catalog.NewService(store, settingsService, logger.WithPrefix("catalog")),
		progress:     progressService,
		achievements: achievement.NewService(store, progressService, logger.WithPrefix("achievements")),
		users:        user.NewService(store, logger.WithPrefix("user")),
		logger:       logger,
		now:          time.Now,
	}
}

// SetClock replaces the clock of the tracker and every date-aware engine
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
	t.progress.SetClock(now)
	t.achievements.SetClock(now)
}

// Settings returns the settings engine
func (t *Tracker) Settings() *settings.Service { return t.settings }

// Catalog returns the content catalog
func (t *Tracker) Catalog() *catalog.Service { return t.catalog }

// Progress returns the progress engine
func (t *Tracker) Progress() *progress.Service { return t.progress }

// Achievements returns the achievement engine
func (t *Tracker) Achievements() *achievement.Service { return t.achievements }

// UserID returns the id resolved by Initialize
func (t *Tracker) UserID() string { return t.userID }

// Initialize loads every engine in dependency order. Failed writes are logged
// and the first one is returned after all engines have loaded.
func (t *Tracker) Initialize(ctx context.Context) error {
	var errs []error
	if _, err := t.settings.Initialize(ctx); err != nil {
		errs = append(errs, fmt.Errorf("settings: %w", err))
	}
	if err := t.catalog.Initialize(ctx); err != nil {
		errs = append(errs, fmt.Errorf("catalog: %w", err))
	}
	if _, err := t.progress.Initialize(ctx); err != nil {
		errs = append(errs, fmt.Errorf("progress: %w", err))
	}
	if _, err := t.achievements.Initialize(ctx); err != nil {
		errs = append(errs, fmt.Errorf("achievements: %w", err))
	}
	id, err := t.users.GetUserID(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("user id: %w", err))
	}
	t.userID = id

	t.logger.Info("tracker initialized", "user", id, "sunnahs", t.catalog.Count(ctx))
	return errors.Join(errs...)
}

// Today returns the current local date
func (t *Tracker) Today() string {
	return models.FormatDate(t.now())
}

// SetLanguage persists the language and reloads the catalog in that language
func (t *Tracker) SetLanguage(ctx context.Context, language models.Language) error {
	if err := t.settings.SetLanguage(ctx, language); err != nil {
		return err
	}
	return t.catalog.ReloadForLanguage(ctx, language)
}

// LockDifficulty records the tier chosen for date. It may be called again to re-pick.
func (t *Tracker) LockDifficulty(ctx context.Context, date string, difficulty models.Difficulty) error {
	return t.progress.SetDailyDifficulty(ctx, date, difficulty)
}

// DailySunnah returns the item for the tier locked on date, or nil when none is locked
func (t *Tracker) DailySunnah(ctx context.Context, date string) *models.Sunnah {
	difficulty := t.progress.GetDailyDifficulty(ctx, date)
	if difficulty == nil {
		return nil
	}
	return t.catalog.GetDailySunnah(ctx, date, *difficulty)
}

// CompleteDay marks the daily sunnah of date complete and returns the
// achievements unlocked as a result.
func (t *Tracker) CompleteDay(ctx context.Context, date string) ([]models.Achievement, error) {
	difficulty := t.progress.GetDailyDifficulty(ctx, date)
	if difficulty == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoDifficulty, date)
	}
	item := t.catalog.GetDailySunnah(ctx, date, *difficulty)
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSunnah, *difficulty)
	}
	if err := t.progress.MarkComplete(ctx, date, item.ID, item.Difficulty); err != nil {
		return nil, fmt.Errorf("mark complete: %w", err)
	}
	return t.achievements.CheckNewlyUnlocked(ctx)
}

// IsCompleted reports whether date has been completed
func (t *Tracker) IsCompleted(ctx context.Context, date string) bool {
	return t.progress.IsCompleted(ctx, date)
}

// Streak returns the current and longest streak
func (t *Tracker) Streak(ctx context.Context) (current, longest int) {
	p := t.progress.GetProgress(ctx)
	return p.CurrentStreak, p.LongestStreak
}

// CheckAchievements runs an achievement pass and returns what it unlocked
func (t *Tracker) CheckAchievements(ctx context.Context) ([]models.Achievement, error) {
	return t.achievements.CheckNewlyUnlocked(ctx)
}

// Library filters the catalog against the set of completed ids
func (t *Tracker) Library(ctx context.Context, filter catalog.LibraryFilter) []models.Sunnah {
	return t.catalog.Filter(ctx, filter, t.progress.GetCompletedSunnahs(ctx))
}
