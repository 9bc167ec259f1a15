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
	ErrRegistrationNotFound       = errors.New("registration not found")
	ErrRegistrationConflict       = errors.New("athlete is already registered for this event")
	ErrRegistrationEventInvalid   = errors.New("registration event conflict or invalid")
	ErrRegistrationAthleteInvalid = errors.New("registration athlete conflict or invalid")
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration *models.Registration) error
	ListByEvent(ctx context.Context, eventID int) ([]*models.Registration, error)
	// ListQualifiers возвращает первых limit атлетов по зафиксированным
	// результатам раунда round; используется для посева следующего раунда.
	ListQualifiers(ctx context.Context, eventID int, round models.EventRound, limit int) ([]*models.Registration, error)
	Delete(ctx context.Context, id int) error
}

type postgresRegistrationRepository struct {
	db *sql.DB
}

func NewPostgresRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &postgresRegistrationRepository{db: db}
}

func (r *postgresRegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	query := `
		INSERT INTO registrations (event_id, athlete_id, seed_performance)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		reg.EventID,
		reg.AthleteID,
		reg.SeedPerformance,
	).Scan(&reg.ID, &reg.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return ErrRegistrationConflict
			case "23503":
				switch pqErr.Constraint {
				case "registrations_event_id_fkey":
					return ErrRegistrationEventInvalid
				case "registrations_athlete_id_fkey":
					return ErrRegistrationAthleteInvalid
				}
			}
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

func (r *postgresRegistrationRepository) ListByEvent(ctx context.Context, eventID int) ([]*models.Registration, error) {
	query := `
		SELECT reg.id, reg.event_id, reg.athlete_id, reg.seed_performance, reg.created_at,
		       a.id, a.first_name, a.last_name, a.gender, a.bib_number, a.club, a.birth_year, a.created_at
		FROM registrations reg
		JOIN athletes a ON a.id = reg.athlete_id
		WHERE reg.event_id = $1
		ORDER BY reg.created_at ASC`

	return r.queryRegistrations(ctx, query, eventID)
}

func (r *postgresRegistrationRepository) ListQualifiers(ctx context.Context, eventID int, round models.EventRound, limit int) ([]*models.Registration, error) {
	query := `
		SELECT reg.id, reg.event_id, reg.athlete_id, rr.performance, reg.created_at,
		       a.id, a.first_name, a.last_name, a.gender, a.bib_number, a.club, a.birth_year, a.created_at
		FROM round_results rr
		JOIN registrations reg ON reg.event_id = rr.event_id AND reg.athlete_id = rr.athlete_id
		JOIN athletes a ON a.id = reg.athlete_id
		WHERE rr.event_id = $1 AND rr.round = $2
		ORDER BY rr.rank ASC
		LIMIT $3`

	return r.queryRegistrations(ctx, query, eventID, round, limit)
}

func (r *postgresRegistrationRepository) queryRegistrations(ctx context.Context, query string, args ...interface{}) ([]*models.Registration, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	registrations := make([]*models.Registration, 0)
	for rows.Next() {
		var reg models.Registration
		var a models.Athlete
		err := rows.Scan(
			&reg.ID, &reg.EventID, &reg.AthleteID, &reg.SeedPerformance, &reg.CreatedAt,
			&a.ID, &a.FirstName, &a.LastName, &a.Gender, &a.BibNumber, &a.Club, &a.BirthYear, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration row: %w", err)
		}
		reg.Athlete = &a
		registrations = append(registrations, &reg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registration rows: %w", err)
	}
	return registrations, nil
}

func (r *postgresRegistrationRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM registrations WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}
	return checkAffectedRows(result, ErrRegistrationNotFound)
}
