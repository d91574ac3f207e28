package converter

import (
	"styledecor/internal/delivery/dto"
	"styledecor/internal/domain/entity"
)

// ServiceToResponse converts a DecorService entity to ServiceResponse DTO
func ServiceToResponse(service *entity.DecorService) *dto.ServiceResponse {
	if service == nil {
		return nil
	}

	return &dto.ServiceResponse{
		ID:           service.ID,
		Title:        service.Title,
		Description:  service.Description,
		Price:        service.Price,
		Category:     service.Category,
		Type:         service.Type,
		DurationMins: service.DurationMins,
		ImageURL:     service.ImageURL,
		Tags:         service.Tags,
		Active:       service.Active,
		CreatedAt:    service.CreatedAt,
		UpdatedAt:    service.UpdatedAt,
	}
}

// ServicesToResponses converts a slice of DecorService entities to slice of ServiceResponse DTOs
func ServicesToResponses(services []entity.DecorService) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i, service := range services {
		responses[i] = *ServiceToResponse(&service)
	}
	return responses
}
