package storage

import "context"

// Keys of the logical aggregates, one per record
const (
	KeySettings     = "settings"
	KeyUserProgress = "user_progress"
	KeySunnahs      = "sunnahs"
	KeyAchievements = "achievements"
	KeyUserID       = "user_id"
)

// Store is the asynchronous key-value persistence used by every engine.
//
// Get decodes the value stored under key into dest and reports whether it was
// present; a miss is not an error. Set replaces the whole value (last write wins).
type Store interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}
