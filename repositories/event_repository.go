package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/athletics-system/models"
	"github.com/lib/pq"
)

var (
	ErrEventNotFound           = errors.New("event not found")
	ErrEventCompetitionInvalid = errors.New("event competition conflict or invalid")
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int) (*models.Event, error)
	// ListByCompetition возвращает конкуренции с числом заявленных
	// участников; idFilter nil — без фильтра.
	ListByCompetition(ctx context.Context, competitionID int, idFilter []int) ([]*models.Event, error)
	Delete(ctx context.Context, id int) error
}

type postgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) EventRepository {
	return &postgresEventRepository{db: db}
}

func (r *postgresEventRepository) Create(ctx context.Context, e *models.Event) error {
	query := `
		INSERT INTO events (competition_id, name, distance, gender, category, type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		e.CompetitionID,
		e.Name,
		e.Distance,
		e.Gender,
		e.Category,
		e.Type,
	).Scan(&e.ID, &e.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrEventCompetitionInvalid
		}
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *postgresEventRepository) GetByID(ctx context.Context, id int) (*models.Event, error) {
	query := `
		SELECT e.id, e.competition_id, e.name, e.distance, e.gender, e.category, e.type, e.created_at,
		       COUNT(reg.id) AS participants_count
		FROM events e
		LEFT JOIN registrations reg ON reg.event_id = e.id
		WHERE e.id = $1
		GROUP BY e.id`

	e := &models.Event{}
	err := r.scanEvent(r.db.QueryRowContext(ctx, query, id), e)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return e, nil
}

func (r *postgresEventRepository) ListByCompetition(ctx context.Context, competitionID int, idFilter []int) ([]*models.Event, error) {
	query := `
		SELECT e.id, e.competition_id, e.name, e.distance, e.gender, e.category, e.type, e.created_at,
		       COUNT(reg.id) AS participants_count
		FROM events e
		LEFT JOIN registrations reg ON reg.event_id = e.id
		WHERE e.competition_id = $1`
	args := []interface{}{competitionID}

	if len(idFilter) > 0 {
		query += ` AND e.id = ANY($2)`
		args = append(args, pq.Array(idFilter))
	}
	query += ` GROUP BY e.id ORDER BY e.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by competition: %w", err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		var e models.Event
		if err := r.scanEvent(rows, &e); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

func (r *postgresEventRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return checkAffectedRows(result, ErrEventNotFound)
}

func (r *postgresEventRepository) scanEvent(rowScanner interface {
	Scan(dest ...interface{}) error
}, e *models.Event) error {
	return rowScanner.Scan(
		&e.ID,
		&e.CompetitionID,
		&e.Name,
		&e.Distance,
		&e.Gender,
		&e.Category,
		&e.Type,
		&e.CreatedAt,
		&e.ParticipantsCount,
	)
}
