package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/athletics-system/models"
	"github.com/Dosada05/athletics-system/repositories"
)

type AthleteService interface {
	Create(ctx context.Context, athlete *models.Athlete) (*models.Athlete, error)
	GetByID(ctx context.Context, id int) (*models.Athlete, error)
	List(ctx context.Context, limit, offset int) ([]*models.Athlete, error)
}

type athleteService struct {
	athleteRepo repositories.AthleteRepository
}

func NewAthleteService(athleteRepo repositories.AthleteRepository) AthleteService {
	return &athleteService{athleteRepo: athleteRepo}
}

func (s *athleteService) Create(ctx context.Context, athlete *models.Athlete) (*models.Athlete, error) {
	if athlete.FirstName == "" || athlete.LastName == "" {
		return nil, ErrValidationFailed
	}
	if err := s.athleteRepo.Create(ctx, athlete); err != nil {
		if errors.Is(err, repositories.ErrAthleteBibConflict) {
			return nil, ErrAthleteBibConflict
		}
		return nil, fmt.Errorf("failed to create athlete: %w", err)
	}
	return athlete, nil
}

func (s *athleteService) GetByID(ctx context.Context, id int) (*models.Athlete, error) {
	athlete, err := s.athleteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAthleteNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, fmt.Errorf("failed to get athlete %d: %w", id, err)
	}
	return athlete, nil
}

func (s *athleteService) List(ctx context.Context, limit, offset int) ([]*models.Athlete, error) {
	athletes, err := s.athleteRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}
	return athletes, nil
}
