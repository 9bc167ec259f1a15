package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/athletics-system/models"
)

var ErrScheduleNotFound = errors.New("schedule not found")

type ScheduleRepository interface {
	// CreateWithItems сохраняет новую версию программы вместе со всеми
	// пунктами в одной транзакции: либо все, либо ничего.
	CreateWithItems(ctx context.Context, schedule *models.CompetitionSchedule, items []models.ScheduleItem) error
	GetLatestByCompetition(ctx context.Context, competitionID int) (*models.CompetitionSchedule, error)
	ListByCompetition(ctx context.Context, competitionID int) ([]*models.CompetitionSchedule, error)
	// ListItems возвращает пункты программы по времени старта, с
	// подгруженными конкуренциями.
	ListItems(ctx context.Context, scheduleID int) ([]models.ScheduleItem, error)
}

type postgresScheduleRepository struct {
	db *sql.DB
}

func NewPostgresScheduleRepository(db *sql.DB) ScheduleRepository {
	return &postgresScheduleRepository{db: db}
}

func (r *postgresScheduleRepository) CreateWithItems(ctx context.Context, schedule *models.CompetitionSchedule, items []models.ScheduleItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO competition_schedules (competition_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		schedule.CompetitionID,
		schedule.Name,
	).Scan(&schedule.ID, &schedule.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}

	insertItem := `
		INSERT INTO schedule_items (schedule_id, event_id, scheduled_time, duration_minutes, round, series_count, finalists_count, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	for i := range items {
		items[i].ScheduleID = schedule.ID
		err = tx.QueryRowContext(ctx, insertItem,
			items[i].ScheduleID,
			items[i].EventID,
			items[i].ScheduledTime,
			items[i].DurationMinutes,
			items[i].Round,
			items[i].SeriesCount,
			items[i].FinalistsCount,
			items[i].Notes,
		).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert schedule item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schedule transaction: %w", err)
	}
	schedule.Items = items
	return nil
}

func (r *postgresScheduleRepository) GetLatestByCompetition(ctx context.Context, competitionID int) (*models.CompetitionSchedule, error) {
	query := `
		SELECT id, competition_id, name, created_at
		FROM competition_schedules
		WHERE competition_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	s := &models.CompetitionSchedule{}
	err := r.db.QueryRowContext(ctx, query, competitionID).Scan(&s.ID, &s.CompetitionID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to find latest schedule: %w", err)
	}
	return s, nil
}

func (r *postgresScheduleRepository) ListByCompetition(ctx context.Context, competitionID int) ([]*models.CompetitionSchedule, error) {
	query := `
		SELECT id, competition_id, name, created_at
		FROM competition_schedules
		WHERE competition_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	schedules := make([]*models.CompetitionSchedule, 0)
	for rows.Next() {
		var s models.CompetitionSchedule
		if err := rows.Scan(&s.ID, &s.CompetitionID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		schedules = append(schedules, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule rows: %w", err)
	}
	return schedules, nil
}

func (r *postgresScheduleRepository) ListItems(ctx context.Context, scheduleID int) ([]models.ScheduleItem, error) {
	query := `
		SELECT si.id, si.schedule_id, si.event_id, si.scheduled_time, si.duration_minutes, si.round, si.series_count, si.finalists_count, si.notes,
		       e.id, e.competition_id, e.name, e.distance, e.gender, e.category, e.type, e.created_at
		FROM schedule_items si
		JOIN events e ON e.id = si.event_id
		WHERE si.schedule_id = $1
		ORDER BY si.scheduled_time ASC, si.id ASC`

	rows, err := r.db.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule items: %w", err)
	}
	defer rows.Close()

	items := make([]models.ScheduleItem, 0)
	for rows.Next() {
		var item models.ScheduleItem
		var e models.Event
		err := rows.Scan(
			&item.ID, &item.ScheduleID, &item.EventID, &item.ScheduledTime, &item.DurationMinutes,
			&item.Round, &item.SeriesCount, &item.FinalistsCount, &item.Notes,
			&e.ID, &e.CompetitionID, &e.Name, &e.Distance, &e.Gender, &e.Category, &e.Type, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule item row: %w", err)
		}
		item.Event = &e
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule item rows: %w", err)
	}
	return items, nil
}
