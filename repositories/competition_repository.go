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
	ErrCompetitionNotFound     = errors.New("competition not found")
	ErrCompetitionNameConflict = errors.New("competition name already exists")
)

type CompetitionRepository interface {
	Create(ctx context.Context, competition *models.Competition) error
	GetByID(ctx context.Context, id int) (*models.Competition, error)
	List(ctx context.Context, limit, offset int) ([]*models.Competition, error)
	Update(ctx context.Context, competition *models.Competition) error
	UpdateLogoKey(ctx context.Context, id int, logoKey *string) error
	Delete(ctx context.Context, id int) error
}

type postgresCompetitionRepository struct {
	db *sql.DB
}

func NewPostgresCompetitionRepository(db *sql.DB) CompetitionRepository {
	return &postgresCompetitionRepository{db: db}
}

const competitionColumns = `id, name, description, location, organizer_id, start_date, end_date, status, created_at, logo_key`

func (r *postgresCompetitionRepository) Create(ctx context.Context, c *models.Competition) error {
	query := `
		INSERT INTO competitions (name, description, location, organizer_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		c.Name,
		c.Description,
		c.Location,
		c.OrganizerID,
		c.StartDate,
		c.EndDate,
		c.Status,
	).Scan(&c.ID, &c.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrCompetitionNameConflict
		}
		return fmt.Errorf("failed to create competition: %w", err)
	}
	return nil
}

func (r *postgresCompetitionRepository) GetByID(ctx context.Context, id int) (*models.Competition, error) {
	query := `SELECT ` + competitionColumns + ` FROM competitions WHERE id = $1`

	c := &models.Competition{}
	err := r.scanCompetition(r.db.QueryRowContext(ctx, query, id), c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("failed to find competition: %w", err)
	}
	return c, nil
}

func (r *postgresCompetitionRepository) List(ctx context.Context, limit, offset int) ([]*models.Competition, error) {
	query := `SELECT ` + competitionColumns + ` FROM competitions ORDER BY start_date DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	defer rows.Close()

	competitions := make([]*models.Competition, 0)
	for rows.Next() {
		var c models.Competition
		if err := r.scanCompetition(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan competition row: %w", err)
		}
		competitions = append(competitions, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating competition rows: %w", err)
	}
	return competitions, nil
}

func (r *postgresCompetitionRepository) Update(ctx context.Context, c *models.Competition) error {
	query := `
		UPDATE competitions
		SET name = $1, description = $2, location = $3, start_date = $4, end_date = $5, status = $6
		WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query, c.Name, c.Description, c.Location, c.StartDate, c.EndDate, c.Status, c.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrCompetitionNameConflict
		}
		return fmt.Errorf("failed to update competition: %w", err)
	}
	return checkAffectedRows(result, ErrCompetitionNotFound)
}

func (r *postgresCompetitionRepository) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	query := `UPDATE competitions SET logo_key = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, logoKey, id)
	if err != nil {
		return fmt.Errorf("failed to update competition logo key: %w", err)
	}
	return checkAffectedRows(result, ErrCompetitionNotFound)
}

func (r *postgresCompetitionRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM competitions WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete competition: %w", err)
	}
	return checkAffectedRows(result, ErrCompetitionNotFound)
}

func (r *postgresCompetitionRepository) scanCompetition(rowScanner interface {
	Scan(dest ...interface{}) error
}, c *models.Competition) error {
	return rowScanner.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Location,
		&c.OrganizerID,
		&c.StartDate,
		&c.EndDate,
		&c.Status,
		&c.CreatedAt,
		&c.LogoKey,
	)
}
