package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/L4U04/salvaluno/internal/dto"
	"github.com/L4U04/salvaluno/internal/repository"
)

// UniversityService serves the public university/campus lookup used by
// the signup and profile screens.
type UniversityService interface {
	List(ctx context.Context) ([]dto.UniversityResponse, error)
}

type universityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUniversityService creates a UniversityService.
func NewUniversityService(repo *repository.Repository, logger *zap.Logger) UniversityService {
	return &universityService{repo: repo, logger: logger}
}

func (s *universityService) List(ctx context.Context) ([]dto.UniversityResponse, error) {
	universities, err := s.repo.University.List(ctx)
	if err != nil {
		s.logger.Error("failed to list universities", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UniversityResponse, 0, len(universities))
	for _, u := range universities {
		entry := dto.UniversityResponse{
			ID:        u.UniversityID,
			Name:      u.Name,
			ShortName: u.ShortName,
			Campuses:  make([]dto.CampusResponse, 0, len(u.Campuses)),
		}
		for _, c := range u.Campuses {
			campus := dto.CampusResponse{
				ID:             c.CampusID,
				Name:           c.Name,
				HasCircularBus: c.HasCircularBus,
				UniversityID:   c.UniversityID,
			}
			if c.City != nil {
				campus.City = *c.City
			}
			entry.Campuses = append(entry.Campuses, campus)
		}
		result = append(result, entry)
	}
	return result, nil
}
