package converter

import (
	"styledecor/internal/delivery/dto"
	"styledecor/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		ServiceTitle:  payment.ServiceTitle,
		Amount:        payment.Amount,
		TransactionID: payment.TransactionID,
		Status:        payment.Status,
		CreatedAt:     payment.CreatedAt,
	}
}

// PaymentsToResponses converts a slice of Payment entities to slice of PaymentResponse DTOs
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = *PaymentToResponse(&payment)
	}
	return responses
}
