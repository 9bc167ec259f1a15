package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/athletics-system/models"
	"github.com/Dosada05/athletics-system/repositories"
	"github.com/Dosada05/athletics-system/scheduling"
)

// EventSummary — конкуренция со сводной длительностью для интерфейса
// организатора.
type EventSummary struct {
	*models.Event
	EstimatedDurationMinutes int `json:"estimated_duration_minutes"`
}

type EventService interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	GetByID(ctx context.Context, id int) (*EventSummary, error)
	ListByCompetition(ctx context.Context, competitionID int) ([]*EventSummary, error)
	Delete(ctx context.Context, id int) error
}

type eventService struct {
	eventRepo       repositories.EventRepository
	competitionRepo repositories.CompetitionRepository
}

func NewEventService(eventRepo repositories.EventRepository, competitionRepo repositories.CompetitionRepository) EventService {
	return &eventService{
		eventRepo:       eventRepo,
		competitionRepo: competitionRepo,
	}
}

func (s *eventService) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	if event.Name == "" {
		return nil, ErrEventNameRequired
	}
	switch event.Type {
	case models.EventTrack, models.EventField, models.EventCombined, models.EventRelay, models.EventRoad:
	default:
		return nil, ErrEventInvalidType
	}

	if _, err := s.competitionRepo.GetByID(ctx, event.CompetitionID); err != nil {
		if errors.Is(err, repositories.ErrCompetitionNotFound) {
			return nil, ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("failed to check competition %d: %w", event.CompetitionID, err)
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id int) (*EventSummary, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event %d: %w", id, err)
	}
	return summarize(event), nil
}

func (s *eventService) ListByCompetition(ctx context.Context, competitionID int) ([]*EventSummary, error) {
	events, err := s.eventRepo.ListByCompetition(ctx, competitionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for competition %d: %w", competitionID, err)
	}
	summaries := make([]*EventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, summarize(event))
	}
	return summaries, nil
}

func (s *eventService) Delete(ctx context.Context, id int) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}
	return nil
}

// summarize считает сводную длительность конкуренции; для беговых она
// включает пятиминутные паузы между сериями, в отличие от раскладки по
// таймлайну (см. scheduling.CalculateTrackEventDuration).
func summarize(event *models.Event) *EventSummary {
	summary := &EventSummary{Event: event}
	switch event.Type {
	case models.EventField:
		summary.EstimatedDurationMinutes = scheduling.FieldEventDuration(event.ParticipantsCount)
	case models.EventCombined:
		summary.EstimatedDurationMinutes = scheduling.CombinedEventDuration(event.ParticipantsCount)
	default:
		summary.EstimatedDurationMinutes = scheduling.CalculateTrackEventDuration(event.DisciplineText(), event.ParticipantsCount)
	}
	return summary
}
