package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/athletics-system/models"
	"github.com/Dosada05/athletics-system/repositories"
)

type RegistrationService interface {
	Register(ctx context.Context, registration *models.Registration) (*models.Registration, error)
	ListByEvent(ctx context.Context, eventID int) ([]*models.Registration, error)
	Delete(ctx context.Context, id int) error
}

type registrationService struct {
	registrationRepo repositories.RegistrationRepository
	eventRepo        repositories.EventRepository
	athleteRepo      repositories.AthleteRepository
}

func NewRegistrationService(
	registrationRepo repositories.RegistrationRepository,
	eventRepo repositories.EventRepository,
	athleteRepo repositories.AthleteRepository,
) RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		athleteRepo:      athleteRepo,
	}
}

func (s *registrationService) Register(ctx context.Context, registration *models.Registration) (*models.Registration, error) {
	if registration.AthleteID == 0 {
		return nil, ErrRegistrationAthleteNeeded
	}

	if _, err := s.eventRepo.GetByID(ctx, registration.EventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to check event %d: %w", registration.EventID, err)
	}
	if _, err := s.athleteRepo.GetByID(ctx, registration.AthleteID); err != nil {
		if errors.Is(err, repositories.ErrAthleteNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, fmt.Errorf("failed to check athlete %d: %w", registration.AthleteID, err)
	}

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		if errors.Is(err, repositories.ErrRegistrationConflict) {
			return nil, ErrRegistrationConflict
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}
	return registration, nil
}

func (s *registrationService) ListByEvent(ctx context.Context, eventID int) ([]*models.Registration, error) {
	registrations, err := s.registrationRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations for event %d: %w", eventID, err)
	}
	return registrations, nil
}

func (s *registrationService) Delete(ctx context.Context, id int) error {
	if err := s.registrationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRegistrationNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete registration %d: %w", id, err)
	}
	return nil
}
