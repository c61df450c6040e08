package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron"

	"github.com/example/sunnahtracker/internal/config"
	"github.com/example/sunnahtracker/pkg/models"
)

// RolloverAt is the local time of the daily achievement pass
const RolloverAt = "00:05"

// App is the part of the tracker the scheduled jobs need
type App interface {
	Today() string
	DailySunnah(ctx context.Context, date string) *models.Sunnah
	IsCompleted(ctx context.Context, date string) bool
	Streak(ctx context.Context) (current, longest int)
	CheckAchievements(ctx context.Context) ([]models.Achievement, error)
}

// Reminder is sent while today's practice is still open
type Reminder struct {
	Date          string
	Sunnah        *models.Sunnah // nil until a difficulty is locked in
	CurrentStreak int
}

// Notifier delivers reminders
type Notifier interface {
	SendReminder(ctx context.Context, r Reminder) error
}

// Options configures the notification window, in local hours inclusive
type Options struct {
	StartHour int
	EndHour   int
	Location  *time.Location
}

// DefaultOptions returns the window used when nothing is configured
func DefaultOptions() Options {
	return Options{
		StartHour: config.DefaultNotificationStartHour,
		EndHour:   config.DefaultNotificationEndHour,
		Location:  time.Local,
	}
}

// Scheduler manages the periodic reminder and rollover jobs
type Scheduler struct {
	scheduler *gocron.Scheduler
	app       App
	notifier  Notifier
	logger    *log.Logger
	opts      Options
	now       func() time.Time
	ctx       context.Context
}

// New creates a scheduler; jobs are registered by Start
func New(app App, notifier Notifier, logger *log.Logger, opts Options) *Scheduler {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(opts.Location),
		app:       app,
		notifier:  notifier,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
		ctx:       context.Background(),
	}
}

// Start registers the jobs and runs them in the background until Stop.
// ctx is passed to every job run.
func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx = ctx
	if _, err := s.scheduler.Every(1).Hour().Do(s.checkAndSendReminder); err != nil {
		return fmt.Errorf("schedule reminder: %w", err)
	}
	if _, err := s.scheduler.Every(1).Day().At(RolloverAt).Do(s.rollover); err != nil {
		return fmt.Errorf("schedule rollover: %w", err)
	}
	s.scheduler.StartAsync()
	s.logger.Info("scheduler started", "window_start", s.opts.StartHour, "window_end", s.opts.EndHour)
	return nil
}

// Stop terminates all scheduled jobs
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// Jobs returns the number of registered jobs
func (s *Scheduler) Jobs() int {
	return len(s.scheduler.Jobs())
}

func (s *Scheduler) checkAndSendReminder() {
	hour := s.now().In(s.opts.Location).Hour()
	if hour < s.opts.StartHour || hour > s.opts.EndHour {
		s.logger.Debug("outside notification hours, skipping reminder",
			"hour", hour, "start", s.opts.StartHour, "end", s.opts.EndHour)
		return
	}
	if err := s.RunManualCheck(s.ctx); err != nil {
		s.logger.Error("failed to send reminder", "err", err)
	}
}

// RunManualCheck sends a reminder if today is not completed, regardless of hour
func (s *Scheduler) RunManualCheck(ctx context.Context) error {
	today := s.app.Today()
	if s.app.IsCompleted(ctx, today) {
		return nil
	}
	current, _ := s.app.Streak(ctx)
	return s.notifier.SendReminder(ctx, Reminder{
		Date:          today,
		Sunnah:        s.app.DailySunnah(ctx, today),
		CurrentStreak: current,
	})
}

func (s *Scheduler) rollover() {
	if err := s.RunRollover(s.ctx); err != nil {
		s.logger.Error("rollover failed", "err", err)
	}
}

// RunRollover runs the daily achievement pass and logs the streak summary
func (s *Scheduler) RunRollover(ctx context.Context) error {
	unlocked, err := s.app.CheckAchievements(ctx)
	if err != nil {
		return err
	}
	current, longest := s.app.Streak(ctx)
	s.logger.Info("day rolled over", "date", s.app.Today(), "streak", current, "longest", longest, "unlocked", len(unlocked))
	return nil
}
