package converter

import (
	"styledecor/internal/delivery/dto"
	"styledecor/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:                  booking.ID,
		CustomerID:          booking.CustomerID,
		CustomerEmail:       booking.CustomerEmail,
		CustomerName:        booking.CustomerName,
		Phone:               booking.Phone,
		ServiceID:           booking.ServiceID,
		ServiceTitle:        booking.ServiceTitle,
		Price:               booking.Price,
		EventDate:           booking.EventDate.Format("2006-01-02"),
		Slot:                booking.Slot,
		Venue:               booking.Venue,
		Address:             booking.Address,
		Notes:               booking.Notes,
		Status:              string(booking.Status),
		PaymentStatus:       string(booking.PaymentStatus),
		TransactionID:       booking.TransactionID,
		AssignedDecoratorID: booking.AssignedDecoratorID,
		AssignedTeam:        booking.AssignedTeam,
		CreatedAt:           booking.CreatedAt,
		UpdatedAt:           booking.UpdatedAt,
	}

	// Include decorator name if preloaded
	if booking.AssignedDecorator != nil {
		response.AssignedDecorator = booking.AssignedDecorator.FullName
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
