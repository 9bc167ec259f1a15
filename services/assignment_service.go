package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/Dosada05/athletics-system/live"
	"github.com/Dosada05/athletics-system/models"
	"github.com/Dosada05/athletics-system/repositories"
	"github.com/Dosada05/athletics-system/seeding"
)

// AssignHeatsInput — параметры посева раунда.
type AssignHeatsInput struct {
	Round        models.EventRound    `json:"round"`
	SeriesMethod seeding.SeriesMethod `json:"series_method"`
	LaneMethod   seeding.LaneMethod   `json:"lane_method"`
	MaxLanes     int                  `json:"max_lanes"`
	HeatsCount   int                  `json:"heats_count"`
}

type AssignmentService interface {
	// AssignHeats пересчитывает забеги раунда; повторный вызов полностью
	// заменяет прежний посев этого раунда и не трогает другие раунды.
	AssignHeats(ctx context.Context, eventID int, input AssignHeatsInput) ([]models.Heat, error)
	ListHeats(ctx context.Context, eventID int, round models.EventRound) ([]*models.Heat, error)
}

type assignmentService struct {
	eventRepo        repositories.EventRepository
	registrationRepo repositories.RegistrationRepository
	heatRepo         repositories.HeatRepository
	hub              *live.Hub
	logger           *slog.Logger
	rng              *rand.Rand
}

func NewAssignmentService(
	eventRepo repositories.EventRepository,
	registrationRepo repositories.RegistrationRepository,
	heatRepo repositories.HeatRepository,
	hub *live.Hub,
	logger *slog.Logger,
) AssignmentService {
	return &assignmentService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		heatRepo:         heatRepo,
		hub:              hub,
		logger:           logger,
	}
}

func (s *assignmentService) AssignHeats(ctx context.Context, eventID int, input AssignHeatsInput) ([]models.Heat, error) {
	// Все проверки до какой-либо записи: неизвестный метод или раунд не
	// должны оставить частичный посев.
	if !input.Round.Valid() {
		return nil, ErrInvalidRound
	}
	if !input.SeriesMethod.Valid() {
		return nil, ErrUnsupportedSeriesMethod
	}
	if !input.LaneMethod.Valid() {
		return nil, ErrUnsupportedLaneMethod
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrInvalidEvent
		}
		return nil, fmt.Errorf("failed to load event %d: %w", eventID, err)
	}
	if event.Type == models.EventCombined {
		// Многоборья не сеются по дорожкам.
		return nil, ErrInvalidEvent
	}

	participants, err := s.loadParticipants(ctx, event, input.Round)
	if err != nil {
		return nil, err
	}
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	maxLanes := input.MaxLanes
	if maxLanes <= 0 {
		maxLanes = seeding.DefaultMaxLanes
		if event.Type == models.EventField {
			maxLanes = seeding.DefaultFieldMaxLanes
		}
	}
	heatsCount := input.HeatsCount
	if event.Type == models.EventField {
		// Технические конкуренции — один "flight" на раунд.
		heatsCount = 1
	}

	assigned, err := seeding.AssignHeats(seeding.AssignParams{
		Participants: participants,
		Unit:         event.ResultUnit(),
		SeriesMethod: input.SeriesMethod,
		LaneMethod:   input.LaneMethod,
		MaxLanes:     maxLanes,
		HeatsCount:   heatsCount,
		Rand:         s.rng,
	})
	if err != nil {
		switch {
		case errors.Is(err, seeding.ErrUnsupportedSeriesMethod):
			return nil, ErrUnsupportedSeriesMethod
		case errors.Is(err, seeding.ErrUnsupportedLaneMethod), errors.Is(err, seeding.ErrUnsupportedLaneCount):
			return nil, ErrUnsupportedLaneMethod
		case errors.Is(err, seeding.ErrNoParticipants):
			return nil, ErrNoParticipants
		}
		return nil, fmt.Errorf("failed to assign heats for event %d: %w", eventID, err)
	}

	heats := make([]models.Heat, 0, len(assigned))
	for _, heat := range assigned {
		m := models.Heat{
			EventID: eventID,
			Round:   input.Round,
			Number:  heat.Number,
		}
		for _, lane := range heat.Lanes {
			m.Lanes = append(m.Lanes, models.Lane{
				LaneNumber:      lane.LaneNumber,
				AthleteID:       lane.AthleteID,
				SeedPerformance: lane.SeedPerformance,
			})
		}
		heats = append(heats, m)
	}

	if err := s.heatRepo.ReplaceForRound(ctx, eventID, input.Round, heats); err != nil {
		return nil, fmt.Errorf("failed to persist heats for event %d: %w", eventID, err)
	}

	s.logger.Info("heats assigned",
		slog.Int("event_id", eventID),
		slog.String("round", string(input.Round)),
		slog.Int("heats", len(heats)),
		slog.String("series_method", string(input.SeriesMethod)),
		slog.String("lane_method", string(input.LaneMethod)),
	)

	if s.hub != nil {
		s.hub.BroadcastToRoom(fmt.Sprintf("competition:%d", event.CompetitionID), live.Message{
			Type:    live.MessageHeatsUpdated,
			Payload: map[string]interface{}{"event_id": eventID, "round": input.Round, "heats": heats},
		})
	}

	return heats, nil
}

func (s *assignmentService) ListHeats(ctx context.Context, eventID int, round models.EventRound) ([]*models.Heat, error) {
	if !round.Valid() {
		return nil, ErrInvalidRound
	}
	heats, err := s.heatRepo.ListByEventRound(ctx, eventID, round)
	if err != nil {
		return nil, fmt.Errorf("failed to list heats for event %d: %w", eventID, err)
	}
	return heats, nil
}

// loadParticipants собирает пул участников раунда: для первого раунда — все
// заявки, для последующих — квалифицированные по результатам предыдущего.
func (s *assignmentService) loadParticipants(ctx context.Context, event *models.Event, round models.EventRound) ([]seeding.Participant, error) {
	var registrations []*models.Registration
	var err error

	if previous, ok := round.Previous(); ok {
		limit := 2 * seeding.DefaultMaxLanes
		if round == models.RoundFinal {
			limit = seeding.DefaultMaxLanes
		}
		registrations, err = s.registrationRepo.ListQualifiers(ctx, event.ID, previous, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list qualifiers of event %d: %w", event.ID, err)
		}
		// Раунд может быть и первым для конкуренции: при <=16 участниках
		// полуфинала нет, а финал при <=8 сеется прямо из заявок.
		if len(registrations) == 0 {
			registrations, err = s.registrationRepo.ListByEvent(ctx, event.ID)
		}
	} else {
		registrations, err = s.registrationRepo.ListByEvent(ctx, event.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations of event %d: %w", event.ID, err)
	}

	participants := make([]seeding.Participant, 0, len(registrations))
	for _, reg := range registrations {
		p := seeding.Participant{
			AthleteID:       reg.AthleteID,
			SeedPerformance: reg.SeedPerformance,
		}
		if reg.Athlete != nil {
			p.Surname = reg.Athlete.LastName
			p.BibNumber = reg.Athlete.BibNumber
		}
		participants = append(participants, p)
	}
	return participants, nil
}
