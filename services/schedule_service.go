package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/athletics-system/live"
	"github.com/Dosada05/athletics-system/models"
	"github.com/Dosada05/athletics-system/repositories"
	"github.com/Dosada05/athletics-system/scheduling"
	"github.com/Dosada05/athletics-system/storage"
	"golang.org/x/sync/errgroup"
)

// GenerateScheduleInput — параметры генерации программы. Нулевые значения
// опций трактуются как значения по умолчанию (перерыв 15 минут, параллельные
// технические конкуренции, многоборья отдельным блоком).
type GenerateScheduleInput struct {
	Name                   string    `json:"name"`
	StartTime              time.Time `json:"start_time"`
	BreakMinutes           int       `json:"break_minutes"`
	ParallelFieldEvents    *bool     `json:"parallel_field_events"`
	SeparateCombinedEvents *bool     `json:"separate_combined_events"`
	EventIDs               []int     `json:"event_ids"`
}

// MinuteProgram — публичное, сгруппированное по минутам представление самой
// свежей программы соревнования.
type MinuteProgram struct {
	Competition *models.Competition             `json:"competition"`
	Schedule    *models.CompetitionSchedule     `json:"schedule"`
	TimeGroups  []scheduling.MinuteProgramGroup `json:"time_groups"`
}

type ScheduleService interface {
	GenerateSchedule(ctx context.Context, competitionID int, input GenerateScheduleInput) (*models.CompetitionSchedule, error)
	ListSchedules(ctx context.Context, competitionID int) ([]*models.CompetitionSchedule, error)
	GenerateMinuteProgram(ctx context.Context, competitionID int) (*MinuteProgram, error)
	ExportMinuteProgram(ctx context.Context, competitionID int) (string, error)
}

type scheduleService struct {
	competitionRepo repositories.CompetitionRepository
	eventRepo       repositories.EventRepository
	scheduleRepo    repositories.ScheduleRepository
	uploader        storage.FileUploader
	hub             *live.Hub
	logger          *slog.Logger
}

func NewScheduleService(
	competitionRepo repositories.CompetitionRepository,
	eventRepo repositories.EventRepository,
	scheduleRepo repositories.ScheduleRepository,
	uploader storage.FileUploader,
	hub *live.Hub,
	logger *slog.Logger,
) ScheduleService {
	return &scheduleService{
		competitionRepo: competitionRepo,
		eventRepo:       eventRepo,
		scheduleRepo:    scheduleRepo,
		uploader:        uploader,
		hub:             hub,
		logger:          logger,
	}
}

func (s *scheduleService) GenerateSchedule(ctx context.Context, competitionID int, input GenerateScheduleInput) (*models.CompetitionSchedule, error) {
	competition, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompetitionNotFound) {
			return nil, ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("failed to load competition %d: %w", competitionID, err)
	}

	events, err := s.eventRepo.ListByCompetition(ctx, competitionID, input.EventIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for competition %d: %w", competitionID, err)
	}
	if len(events) == 0 {
		return nil, ErrNoEventsFound
	}

	entries := make([]scheduling.EventEntry, 0, len(events))
	for _, event := range events {
		entries = append(entries, scheduling.EventEntry{
			Event:             *event,
			ParticipantsCount: event.ParticipantsCount,
		})
	}

	startTime := input.StartTime
	if startTime.IsZero() {
		startTime = competition.StartDate
	}

	items, err := scheduling.BuildProgram(scheduling.BuildParams{
		Entries:                entries,
		StartTime:              startTime,
		BreakMinutes:           input.BreakMinutes,
		ParallelFieldEvents:    boolOrDefault(input.ParallelFieldEvents, true),
		SeparateCombinedEvents: boolOrDefault(input.SeparateCombinedEvents, true),
	})
	if err != nil {
		if errors.Is(err, scheduling.ErrNoEvents) {
			return nil, ErrNoEventsFound
		}
		return nil, fmt.Errorf("failed to build program for competition %d: %w", competitionID, err)
	}

	name := input.Name
	if name == "" {
		name = fmt.Sprintf("Program %s", startTime.Format("2006-01-02"))
	}
	schedule := &models.CompetitionSchedule{
		CompetitionID: competitionID,
		Name:          name,
	}

	// Новая версия программы полностью заменяет предыдущую для читателей:
	// минутная программа всегда берет самую свежую.
	if err := s.scheduleRepo.CreateWithItems(ctx, schedule, items); err != nil {
		return nil, fmt.Errorf("failed to persist schedule for competition %d: %w", competitionID, err)
	}

	s.logger.Info("schedule generated",
		slog.Int("competition_id", competitionID),
		slog.Int("schedule_id", schedule.ID),
		slog.Int("items", len(schedule.Items)),
	)

	if s.hub != nil {
		s.hub.BroadcastToRoom(fmt.Sprintf("competition:%d", competitionID), live.Message{
			Type:    live.MessageScheduleUpdated,
			Payload: schedule,
		})
	}

	return schedule, nil
}

func (s *scheduleService) ListSchedules(ctx context.Context, competitionID int) ([]*models.CompetitionSchedule, error) {
	schedules, err := s.scheduleRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules for competition %d: %w", competitionID, err)
	}
	return schedules, nil
}

func (s *scheduleService) GenerateMinuteProgram(ctx context.Context, competitionID int) (*MinuteProgram, error) {
	schedule, err := s.scheduleRepo.GetLatestByCompetition(ctx, competitionID)
	if err != nil {
		if errors.Is(err, repositories.ErrScheduleNotFound) {
			return nil, ErrNoSchedule
		}
		return nil, fmt.Errorf("failed to load latest schedule for competition %d: %w", competitionID, err)
	}

	program := &MinuteProgram{Schedule: schedule}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		competition, err := s.competitionRepo.GetByID(gCtx, competitionID)
		if err != nil {
			return fmt.Errorf("failed to load competition %d: %w", competitionID, err)
		}
		program.Competition = competition
		return nil
	})
	g.Go(func() error {
		items, err := s.scheduleRepo.ListItems(gCtx, schedule.ID)
		if err != nil {
			return fmt.Errorf("failed to load items of schedule %d: %w", schedule.ID, err)
		}
		schedule.Items = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	program.TimeGroups = scheduling.GroupItemsByTime(schedule.Items)
	return program, nil
}

// ExportMinuteProgram выгружает текстовую версию минутной программы в
// объектное хранилище и возвращает публичный URL.
func (s *scheduleService) ExportMinuteProgram(ctx context.Context, competitionID int) (string, error) {
	program, err := s.GenerateMinuteProgram(ctx, competitionID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s — program minutowy\n\n", program.Competition.Name)
	for _, group := range program.TimeGroups {
		fmt.Fprintf(&b, "%s\n", group.Time)
		for _, entry := range group.Events {
			fmt.Fprintf(&b, "  %s — %s", entry.Name, entry.Round)
			if entry.Notes != "" {
				fmt.Fprintf(&b, " (%s)", entry.Notes)
			}
			b.WriteString("\n")
		}
	}

	key := fmt.Sprintf("competitions/%d/minute-program-%d.txt", competitionID, program.Schedule.ID)
	result, err := s.uploader.Upload(ctx, key, "text/plain; charset=utf-8", strings.NewReader(b.String()))
	if err != nil {
		return "", fmt.Errorf("failed to upload minute program for competition %d: %w", competitionID, err)
	}
	return result.Location, nil
}

func boolOrDefault(value *bool, def bool) bool {
	if value == nil {
		return def
	}
	return *value
}
