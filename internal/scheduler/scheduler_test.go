package scheduler

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sunnahtracker/internal/logging"
	"github.com/example/sunnahtracker/internal/storage"
	"github.com/example/sunnahtracker/internal/tracker"
	"github.com/example/sunnahtracker/pkg/models"
)

type recordingNotifier struct {
	reminders []Reminder
	err       error
}

func (n *recordingNotifier) SendReminder(_ context.Context, r Reminder) error {
	n.reminders = append(n.reminders, r)
	return n.err
}

func newTestScheduler(t *testing.T, hour int) (*Scheduler, *tracker.Tracker, *recordingNotifier) {
	t.Helper()
	now := time.Date(2024, time.March, 15, hour, 0, 0, 0, time.Local)
	tr := tracker.New(storage.NewMemoryStore(), logging.Discard())
	tr.SetClock(func() time.Time { return now })
	require.NoError(t, tr.Initialize(context.Background()))

	notifier := &recordingNotifier{}
	s := New(tr, notifier, logging.Discard(), DefaultOptions())
	s.now = func() time.Time { return now }
	return s, tr, notifier
}

func TestReminderInsideWindow(t *testing.T) {
	s, tr, notifier := newTestScheduler(t, 10)
	require.NoError(t, tr.LockDifficulty(context.Background(), "2024-03-15", models.DifficultyEasy))

	s.checkAndSendReminder()
	require.Len(t, notifier.reminders, 1)
	r := notifier.reminders[0]
	assert.Equal(t, "2024-03-15", r.Date)
	require.NotNil(t, r.Sunnah)
	assert.Equal(t, "sunnah-004", r.Sunnah.ID)
}

func TestReminderWindowBounds(t *testing.T) {
	for hour, want := range map[int]int{3: 0, 4: 1, 18: 1, 19: 0, 23: 0} {
		s, _, notifier := newTestScheduler(t, hour)
		s.checkAndSendReminder()
		assert.Len(t, notifier.reminders, want, "hour %d", hour)
	}
}

func TestNoReminderWhenCompleted(t *testing.T) {
	s, tr, notifier := newTestScheduler(t, 12)
	ctx := context.Background()
	require.NoError(t, tr.LockDifficulty(ctx, "2024-03-15", models.DifficultyHard))
	_, err := tr.CompleteDay(ctx, "2024-03-15")
	require.NoError(t, err)

	s.checkAndSendReminder()
	assert.Empty(t, notifier.reminders)
}

func TestManualCheckIgnoresWindow(t *testing.T) {
	s, _, notifier := newTestScheduler(t, 2)
	require.NoError(t, s.RunManualCheck(context.Background()))
	require.Len(t, notifier.reminders, 1)
	assert.Nil(t, notifier.reminders[0].Sunnah)

	notifier.err = errors.New("unavailable")
	assert.Error(t, s.RunManualCheck(context.Background()))
}

func TestRolloverRunsAchievementPass(t *testing.T) {
	s, tr, _ := newTestScheduler(t, 0)
	ctx := context.Background()
	require.NoError(t, tr.LockDifficulty(ctx, "2024-03-15", models.DifficultyEasy))
	require.NoError(t, tr.Progress().MarkComplete(ctx, "2024-03-15", "sunnah-004", models.DifficultyEasy))

	require.NoError(t, s.RunRollover(ctx))
	assert.Len(t, tr.Achievements().GetUnlockedAchievements(ctx), 1)
}

func TestStartRegistersJobs(t *testing.T) {
	s, _, _ := newTestScheduler(t, 10)
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()
	assert.Equal(t, 2, s.Jobs())
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(logging.NewWithWriter(&buf, "info"))
	sunnah := &models.Sunnah{ID: "sunnah-004", Title: "Spreading Salam", Difficulty: models.DifficultyEasy}

	require.NoError(t, n.SendReminder(context.Background(), Reminder{Date: "2024-03-15", Sunnah: sunnah, CurrentStreak: 2}))
	assert.Contains(t, buf.String(), "Spreading Salam")
}
