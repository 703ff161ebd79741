package meeting

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Schedule records a meeting. Participants are free-form employee ids; the
// meeting is informational and does not gate on their existence.
func (s *Service) Schedule(ctx context.Context, title, description string, scheduledAt time.Time, participants []string, createdBy string) (Meeting, error) {
	title = strings.TrimSpace(title)
	if title == "" || scheduledAt.IsZero() {
		return Meeting{}, ErrInvalidInput
	}

	cleaned := make([]string, 0, len(participants))
	for _, p := range participants {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	return s.store.Insert(ctx, Meeting{
		Title:        title,
		Description:  strings.TrimSpace(description),
		ScheduledAt:  scheduledAt,
		Participants: cleaned,
		CreatedBy:    createdBy,
	})
}

func (s *Service) List(ctx context.Context) ([]Meeting, error) {
	return s.store.List(ctx)
}
