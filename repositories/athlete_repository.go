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
	ErrAthleteNotFound    = errors.New("athlete not found")
	ErrAthleteBibConflict = errors.New("bib number is already in use")
)

type AthleteRepository interface {
	Create(ctx context.Context, athlete *models.Athlete) error
	GetByID(ctx context.Context, id int) (*models.Athlete, error)
	List(ctx context.Context, limit, offset int) ([]*models.Athlete, error)
}

type postgresAthleteRepository struct {
	db *sql.DB
}

func NewPostgresAthleteRepository(db *sql.DB) AthleteRepository {
	return &postgresAthleteRepository{db: db}
}

func (r *postgresAthleteRepository) Create(ctx context.Context, athlete *models.Athlete) error {
	query := `
		INSERT INTO athletes (first_name, last_name, gender, bib_number, club, birth_year)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		athlete.FirstName,
		athlete.LastName,
		athlete.Gender,
		athlete.BibNumber,
		athlete.Club,
		athlete.BirthYear,
	).Scan(&athlete.ID, &athlete.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrAthleteBibConflict
		}
		return fmt.Errorf("failed to create athlete: %w", err)
	}
	return nil
}

func (r *postgresAthleteRepository) GetByID(ctx context.Context, id int) (*models.Athlete, error) {
	query := `SELECT id, first_name, last_name, gender, bib_number, club, birth_year, created_at FROM athletes WHERE id = $1`

	athlete := &models.Athlete{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&athlete.ID,
		&athlete.FirstName,
		&athlete.LastName,
		&athlete.Gender,
		&athlete.BibNumber,
		&athlete.Club,
		&athlete.BirthYear,
		&athlete.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAthleteNotFound
		}
		return nil, fmt.Errorf("failed to find athlete: %w", err)
	}
	return athlete, nil
}

func (r *postgresAthleteRepository) List(ctx context.Context, limit, offset int) ([]*models.Athlete, error) {
	query := `
		SELECT id, first_name, last_name, gender, bib_number, club, birth_year, created_at
		FROM athletes
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}
	defer rows.Close()

	athletes := make([]*models.Athlete, 0)
	for rows.Next() {
		var a models.Athlete
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Gender, &a.BibNumber, &a.Club, &a.BirthYear, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan athlete row: %w", err)
		}
		athletes = append(athletes, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating athlete rows: %w", err)
	}
	return athletes, nil
}
