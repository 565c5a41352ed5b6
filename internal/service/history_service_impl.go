package service

import (
	"context"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/repository"
)

type historyService struct {
	sessions repository.SessionRepo
	observer UseCaseObserver
}

func NewHistoryService(sessions repository.SessionRepo, observers ...UseCaseObserver) HistoryService {
	return &historyService{
		sessions: sessions,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *historyService) GetByID(ctx context.Context, id string) (*domain.FocusSession, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *historyService) ListRecent(ctx context.Context, limit int) ([]*domain.FocusSession, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.sessions.ListRecent(ctx, limit)
}

func (s *historyService) ListRange(ctx context.Context, from, to time.Time) ([]*domain.FocusSession, error) {
	return s.sessions.ListRange(ctx, from, to)
}

func (s *historyService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "delete-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"session": id},
		})
	}()
	return s.sessions.Delete(ctx, id)
}
