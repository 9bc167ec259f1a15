package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Dosada05/athletics-system/models"
	"github.com/Dosada05/athletics-system/repositories"
	"github.com/Dosada05/athletics-system/storage"
)

type CompetitionService interface {
	Create(ctx context.Context, organizerID int, competition *models.Competition) (*models.Competition, error)
	GetByID(ctx context.Context, id int) (*models.Competition, error)
	List(ctx context.Context, limit, offset int) ([]*models.Competition, error)
	Update(ctx context.Context, currentUserID int, competition *models.Competition) (*models.Competition, error)
	Delete(ctx context.Context, currentUserID, id int) error
	UploadLogo(ctx context.Context, currentUserID, id int, contentType string, file io.Reader) (*models.Competition, error)
}

type competitionService struct {
	competitionRepo repositories.CompetitionRepository
	uploader        storage.FileUploader
}

func NewCompetitionService(competitionRepo repositories.CompetitionRepository, uploader storage.FileUploader) CompetitionService {
	return &competitionService{
		competitionRepo: competitionRepo,
		uploader:        uploader,
	}
}

func (s *competitionService) Create(ctx context.Context, organizerID int, competition *models.Competition) (*models.Competition, error) {
	if competition.Name == "" {
		return nil, ErrCompetitionNameRequired
	}
	if competition.EndDate.Before(competition.StartDate) {
		return nil, ErrCompetitionInvalidDates
	}
	competition.OrganizerID = organizerID
	if competition.Status == "" {
		competition.Status = models.CompetitionSoon
	}

	if err := s.competitionRepo.Create(ctx, competition); err != nil {
		if errors.Is(err, repositories.ErrCompetitionNameConflict) {
			return nil, ErrCompetitionNameConflict
		}
		return nil, fmt.Errorf("failed to create competition: %w", err)
	}
	return competition, nil
}

func (s *competitionService) GetByID(ctx context.Context, id int) (*models.Competition, error) {
	competition, err := s.competitionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompetitionNotFound) {
			return nil, ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("failed to get competition %d: %w", id, err)
	}
	s.fillLogoURL(competition)
	return competition, nil
}

func (s *competitionService) List(ctx context.Context, limit, offset int) ([]*models.Competition, error) {
	competitions, err := s.competitionRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	for _, c := range competitions {
		s.fillLogoURL(c)
	}
	return competitions, nil
}

func (s *competitionService) Update(ctx context.Context, currentUserID int, competition *models.Competition) (*models.Competition, error) {
	existing, err := s.GetByID(ctx, competition.ID)
	if err != nil {
		return nil, err
	}
	if existing.OrganizerID != currentUserID {
		return nil, ErrForbiddenOperation
	}
	if competition.Name == "" {
		return nil, ErrCompetitionNameRequired
	}
	if competition.EndDate.Before(competition.StartDate) {
		return nil, ErrCompetitionInvalidDates
	}

	if err := s.competitionRepo.Update(ctx, competition); err != nil {
		if errors.Is(err, repositories.ErrCompetitionNotFound) {
			return nil, ErrCompetitionNotFound
		}
		if errors.Is(err, repositories.ErrCompetitionNameConflict) {
			return nil, ErrCompetitionNameConflict
		}
		return nil, fmt.Errorf("failed to update competition %d: %w", competition.ID, err)
	}
	return s.GetByID(ctx, competition.ID)
}

func (s *competitionService) Delete(ctx context.Context, currentUserID, id int) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OrganizerID != currentUserID {
		return ErrForbiddenOperation
	}

	if err := s.competitionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCompetitionNotFound) {
			return ErrCompetitionNotFound
		}
		return fmt.Errorf("failed to delete competition %d: %w", id, err)
	}
	return nil
}

func (s *competitionService) UploadLogo(ctx context.Context, currentUserID, id int, contentType string, file io.Reader) (*models.Competition, error) {
	competition, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if competition.OrganizerID != currentUserID {
		return nil, ErrForbiddenOperation
	}

	key := fmt.Sprintf("competitions/%d/logo", id)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload competition logo: %w", err)
	}

	if err := s.competitionRepo.UpdateLogoKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to store competition logo key: %w", err)
	}
	competition.LogoKey = &result.Key
	s.fillLogoURL(competition)
	return competition, nil
}

func (s *competitionService) fillLogoURL(c *models.Competition) {
	if c.LogoKey == nil || s.uploader == nil {
		return
	}
	url := s.uploader.GetPublicURL(*c.LogoKey)
	if url != "" {
		c.LogoURL = &url
	}
}
