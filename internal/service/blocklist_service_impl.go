package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/repository"
	"github.com/google/uuid"
)

type blocklistService struct {
	entries  repository.BlocklistRepo
	observer UseCaseObserver
}

func NewBlocklistService(entries repository.BlocklistRepo, observers ...UseCaseObserver) BlocklistService {
	return &blocklistService{
		entries:  entries,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *blocklistService) Add(ctx context.Context, kind domain.BlockKind, pattern string) (entry *domain.BlocklistEntry, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "blocklist-add",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"kind": string(kind), "pattern": pattern},
		})
	}()

	if !domain.ValidBlockKinds[string(kind)] {
		return nil, fmt.Errorf("unknown block kind %q (use 'app' or 'site')", kind)
	}
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil, fmt.Errorf("block pattern is required")
	}

	entry = &domain.BlocklistEntry{
		ID:        uuid.New().String(),
		Kind:      kind,
		Pattern:   pattern,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("adding blocklist entry: %w", err)
	}
	return entry, nil
}

func (s *blocklistService) List(ctx context.Context) ([]*domain.BlocklistEntry, error) {
	return s.entries.List(ctx)
}

func (s *blocklistService) ListByKind(ctx context.Context, kind domain.BlockKind) ([]*domain.BlocklistEntry, error) {
	if !domain.ValidBlockKinds[string(kind)] {
		return nil, fmt.Errorf("unknown block kind %q (use 'app' or 'site')", kind)
	}
	return s.entries.ListByKind(ctx, kind)
}

func (s *blocklistService) Remove(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}
