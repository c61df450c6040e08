package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/example/sunnahtracker/internal/storage"
)

const randomSuffixLen = 9

// Service hands out the opaque local user identifier
type Service struct {
	store  storage.Store
	logger *log.Logger
	now    func() time.Time
}

// NewService creates a user id service
func NewService(store storage.Store, logger *log.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

// GetUserID returns the stored id, creating and persisting one on first call.
// The id has the form user_<unix millis>_<9 lowercase hex chars>.
func (s *Service) GetUserID(ctx context.Context) (string, error) {
	var id string
	found, err := s.store.Get(ctx, storage.KeyUserID, &id)
	if err != nil {
		s.logger.Error("failed to read user id", "err", err)
	}
	if found && err == nil && id != "" {
		return id, nil
	}

	id = s.newID()
	if err := s.store.Set(ctx, storage.KeyUserID, id); err != nil {
		s.logger.Error("failed to persist user id", "err", err)
		return id, err
	}
	s.logger.Info("created user id", "id", id)
	return id, nil
}

func (s *Service) newID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("user_%d_%s", s.now().UnixMilli(), random[:randomSuffixLen])
}
