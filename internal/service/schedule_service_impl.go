package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/countdown"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/repository"
	"github.com/google/uuid"
)

type scheduleService struct {
	schedules repository.ScheduleRepo
	observer  UseCaseObserver
}

func NewScheduleService(schedules repository.ScheduleRepo, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		schedules: schedules,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func validateSchedule(s *domain.FocusSchedule) error {
	if strings.TrimSpace(s.Label) == "" {
		return fmt.Errorf("schedule label is required")
	}
	if s.Days == 0 {
		return fmt.Errorf("schedule needs at least one weekday")
	}
	if s.StartMinute < 0 || s.StartMinute > 1439 {
		return fmt.Errorf("start minute %d out of range (0-1439)", s.StartMinute)
	}
	seconds := s.DurationMin * 60
	if seconds < countdown.MinDurationSeconds || seconds > countdown.MaxDurationSeconds {
		return fmt.Errorf("duration %dm out of range (%dm-%dm)",
			s.DurationMin, countdown.MinDurationSeconds/60, countdown.MaxDurationSeconds/60)
	}
	return nil
}

func (s *scheduleService) Create(ctx context.Context, sched *domain.FocusSchedule) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "schedule-create",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"label": sched.Label},
		})
	}()

	if err = validateSchedule(sched); err != nil {
		return err
	}
	if sched.ID == "" {
		sched.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sched.CreatedAt = now
	sched.UpdatedAt = now
	if err = s.schedules.Create(ctx, sched); err != nil {
		return fmt.Errorf("creating schedule: %w", err)
	}
	return nil
}

func (s *scheduleService) GetByID(ctx context.Context, id string) (*domain.FocusSchedule, error) {
	return s.schedules.GetByID(ctx, id)
}

func (s *scheduleService) List(ctx context.Context, enabledOnly bool) ([]*domain.FocusSchedule, error) {
	return s.schedules.List(ctx, enabledOnly)
}

func (s *scheduleService) Update(ctx context.Context, sched *domain.FocusSchedule) error {
	if err := validateSchedule(sched); err != nil {
		return err
	}
	sched.UpdatedAt = time.Now().UTC()
	return s.schedules.Update(ctx, sched)
}

func (s *scheduleService) SetEnabled(ctx context.Context, id string, enabled bool) error {
	sched, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sched.Enabled == enabled {
		return nil
	}
	sched.Enabled = enabled
	sched.UpdatedAt = time.Now().UTC()
	return s.schedules.Update(ctx, sched)
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	return s.schedules.Delete(ctx, id)
}
