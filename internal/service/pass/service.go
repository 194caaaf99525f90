package pass

import (
	"context"
	"fmt"
	"sync"

	"github.com/worklogix/attendance-backend-go/internal/domain/pass"
)

const latestLimit = 50

// PassServiceImpl serves the access-event read endpoints. The onsite list
// is expensive on the access-log view, so it is cached until the scheduler
// evicts it.
type PassServiceImpl struct {
	pass.PassRepository

	mu     sync.Mutex
	onsite []pass.PassResponse
}

func NewPassService(passes pass.PassRepository) *PassServiceImpl {
	return &PassServiceImpl{PassRepository: passes}
}

// ListPasses implements pass.PassService.
func (s *PassServiceImpl) ListPasses(ctx context.Context, username string) ([]pass.PassResponse, error) {
	events, err := s.PassRepository.FindLatest(ctx, username, latestLimit)
	if err != nil {
		return nil, fmt.Errorf("load latest badge events: %w", err)
	}
	return toResponses(events), nil
}

// ListOnsite implements pass.PassService.
func (s *PassServiceImpl) ListOnsite(ctx context.Context) ([]pass.PassResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.onsite != nil {
		return s.onsite, nil
	}

	events, err := s.PassRepository.FindOnsite(ctx)
	if err != nil {
		return nil, fmt.Errorf("load onsite presence: %w", err)
	}
	s.onsite = toResponses(events)
	return s.onsite, nil
}

// EvictOnsite drops the cached presence list. Wired to the scheduler.
func (s *PassServiceImpl) EvictOnsite(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onsite = nil
	return nil
}

func toResponses(events []pass.Pass) []pass.PassResponse {
	out := make([]pass.PassResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, pass.PassResponse{
			ID:         ev.ID,
			Category:   int(ev.Category),
			Name:       ev.CategoryName,
			Time:       ev.Time.Format("2006-01-02 15:04:05"),
			PersonCode: ev.PersonCode,
			PersonName: ev.PersonName,
			Department: ev.Department,
			Username:   ev.Username,
		})
	}
	return out
}
