package converter

import (
	"styledecor/internal/delivery/dto"
	"styledecor/internal/domain/entity"
)

// DecoratorToResponse converts a DecoratorProfile entity (with its User
// preloaded) to DecoratorResponse DTO
func DecoratorToResponse(profile *entity.DecoratorProfile) *dto.DecoratorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DecoratorResponse{
		UserID:    profile.UserID,
		Email:     profile.User.Email,
		FullName:  profile.User.FullName,
		IsActive:  profile.User.IsActive,
		Specialty: profile.Specialty,
		TeamName:  profile.TeamName,
		Biography: profile.Biography,
		PhotoURL:  profile.PhotoURL,
		Rating:    profile.Rating,
		CreatedAt: profile.User.CreatedAt,
	}
}

// DecoratorsToResponses converts a slice of DecoratorProfile entities to slice of DecoratorResponse DTOs
func DecoratorsToResponses(profiles []entity.DecoratorProfile) []dto.DecoratorResponse {
	responses := make([]dto.DecoratorResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = *DecoratorToResponse(&profile)
	}
	return responses
}
