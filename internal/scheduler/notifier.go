package scheduler

import (
	"context"

	"github.com/charmbracelet/log"
)

// LogNotifier writes reminders to the log
type LogNotifier struct {
	logger *log.Logger
}

// NewLogNotifier creates a notifier that logs through logger
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// SendReminder logs r
func (n *LogNotifier) SendReminder(_ context.Context, r Reminder) error {
	if r.Sunnah == nil {
		n.logger.Info("reminder: choose today's difficulty", "date", r.Date, "streak", r.CurrentStreak)
		return nil
	}
	n.logger.Info("reminder: today's sunnah is still open",
		"date", r.Date, "sunnah", r.Sunnah.Title, "difficulty", r.Sunnah.Difficulty, "streak", r.CurrentStreak)
	return nil
}
