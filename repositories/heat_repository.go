package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/athletics-system/models"
)

type HeatRepository interface {
	// ReplaceForRound заменяет все забеги раунда (event, round) в одной
	// транзакции; забеги других раундов не трогаются.
	ReplaceForRound(ctx context.Context, eventID int, round models.EventRound, heats []models.Heat) error
	ListByEventRound(ctx context.Context, eventID int, round models.EventRound) ([]*models.Heat, error)
}

type postgresHeatRepository struct {
	db *sql.DB
}

func NewPostgresHeatRepository(db *sql.DB) HeatRepository {
	return &postgresHeatRepository{db: db}
}

func (r *postgresHeatRepository) ReplaceForRound(ctx context.Context, eventID int, round models.EventRound, heats []models.Heat) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Дорожки каскадом через FK heat_id; достаточно удалить забеги.
	_, err = tx.ExecContext(ctx, `DELETE FROM heats WHERE event_id = $1 AND round = $2`, eventID, round)
	if err != nil {
		return fmt.Errorf("failed to delete heats for round: %w", err)
	}

	insertHeat := `INSERT INTO heats (event_id, round, number) VALUES ($1, $2, $3) RETURNING id`
	insertLane := `INSERT INTO lanes (heat_id, lane_number, athlete_id, seed_performance) VALUES ($1, $2, $3, $4) RETURNING id`

	for i := range heats {
		heats[i].EventID = eventID
		heats[i].Round = round
		if err = tx.QueryRowContext(ctx, insertHeat, eventID, round, heats[i].Number).Scan(&heats[i].ID); err != nil {
			return fmt.Errorf("failed to insert heat %d: %w", heats[i].Number, err)
		}
		for j := range heats[i].Lanes {
			lane := &heats[i].Lanes[j]
			lane.HeatID = heats[i].ID
			if err = tx.QueryRowContext(ctx, insertLane, lane.HeatID, lane.LaneNumber, lane.AthleteID, lane.SeedPerformance).Scan(&lane.ID); err != nil {
				return fmt.Errorf("failed to insert lane %d of heat %d: %w", lane.LaneNumber, heats[i].Number, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit heats transaction: %w", err)
	}
	return nil
}

func (r *postgresHeatRepository) ListByEventRound(ctx context.Context, eventID int, round models.EventRound) ([]*models.Heat, error) {
	query := `
		SELECT h.id, h.event_id, h.round, h.number,
		       l.id, l.heat_id, l.lane_number, l.athlete_id, l.seed_performance,
		       a.id, a.first_name, a.last_name, a.gender, a.bib_number, a.club, a.birth_year, a.created_at
		FROM heats h
		LEFT JOIN lanes l ON l.heat_id = h.id
		LEFT JOIN athletes a ON a.id = l.athlete_id
		WHERE h.event_id = $1 AND h.round = $2
		ORDER BY h.number ASC, l.lane_number ASC`

	rows, err := r.db.QueryContext(ctx, query, eventID, round)
	if err != nil {
		return nil, fmt.Errorf("failed to list heats: %w", err)
	}
	defer rows.Close()

	heats := make([]*models.Heat, 0)
	byID := make(map[int]*models.Heat)

	for rows.Next() {
		var h models.Heat
		var laneID, laneHeatID, laneNumber, laneAthleteID sql.NullInt64
		var seedPerformance sql.NullString
		var aID, aBib, aBirthYear sql.NullInt64
		var aFirstName, aLastName, aGender, aClub sql.NullString
		var aCreatedAt sql.NullTime

		err := rows.Scan(
			&h.ID, &h.EventID, &h.Round, &h.Number,
			&laneID, &laneHeatID, &laneNumber, &laneAthleteID, &seedPerformance,
			&aID, &aFirstName, &aLastName, &aGender, &aBib, &aClub, &aBirthYear, &aCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan heat row: %w", err)
		}

		heat, ok := byID[h.ID]
		if !ok {
			heat = &models.Heat{ID: h.ID, EventID: h.EventID, Round: h.Round, Number: h.Number}
			byID[h.ID] = heat
			heats = append(heats, heat)
		}

		if !laneID.Valid {
			continue
		}
		lane := models.Lane{
			ID:         int(laneID.Int64),
			HeatID:     int(laneHeatID.Int64),
			LaneNumber: int(laneNumber.Int64),
			AthleteID:  int(laneAthleteID.Int64),
		}
		if seedPerformance.Valid {
			sp := seedPerformance.String
			lane.SeedPerformance = &sp
		}
		if aID.Valid {
			athlete := &models.Athlete{
				ID:        int(aID.Int64),
				FirstName: aFirstName.String,
				LastName:  aLastName.String,
				Gender:    aGender.String,
				CreatedAt: aCreatedAt.Time,
			}
			if aBib.Valid {
				bib := int(aBib.Int64)
				athlete.BibNumber = &bib
			}
			if aClub.Valid {
				club := aClub.String
				athlete.Club = &club
			}
			if aBirthYear.Valid {
				year := int(aBirthYear.Int64)
				athlete.BirthYear = &year
			}
			lane.Athlete = athlete
		}
		heat.Lanes = append(heat.Lanes, lane)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating heat rows: %w", err)
	}
	return heats, nil
}
