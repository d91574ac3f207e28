package converter

import (
	"styledecor/internal/delivery/dto"
	"styledecor/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
// Includes DecoratorProfile and CustomerProfile if they are loaded
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	roleName := user.Role.RoleName
	if roleName == "" {
		roleName = entity.RoleName(user.RoleID)
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      roleName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	// Include DecoratorProfile if exists
	if user.DecoratorProfile != nil {
		response.DecoratorProfile = &dto.DecoratorProfileResponse{
			Specialty: user.DecoratorProfile.Specialty,
			TeamName:  user.DecoratorProfile.TeamName,
			Biography: user.DecoratorProfile.Biography,
			PhotoURL:  user.DecoratorProfile.PhotoURL,
			Rating:    user.DecoratorProfile.Rating,
		}
	}

	// Include CustomerProfile if exists
	if user.CustomerProfile != nil {
		response.CustomerProfile = &dto.CustomerProfileResponse{
			PhoneNumber: user.CustomerProfile.PhoneNumber,
			Address:     user.CustomerProfile.Address,
		}
	}

	return response
}
