package cancel_booking

import (
	cancelBooking "github.com/edubridge/EduBridge-BookingService/internal/usecase/cancel_booking"
)

// Действия над бронированием
const (
	actionCancel     = "cancel"
	actionMarkRated  = "mark_rated"
	actionClosePopup = "close_popup"
)

// BookingActionRequest HTTP request model
type BookingActionRequest struct {
	Action string `json:"action"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID                int64  `json:"id"`
	Status            string `json:"status"`
	Date              string `json:"date"`
	Time              string `json:"time"`
	PromotedBookingID *int64 `json:"promotedBookingId,omitempty"`
}

// ActionResponse подтверждение действия без смены статуса
type ActionResponse struct {
	ID     int64  `json:"id"`
	Action string `json:"action"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		ID:                resp.ID,
		Status:            resp.Status,
		Date:              resp.Date.String(),
		Time:              resp.Time.String(),
		PromotedBookingID: resp.PromotedBookingID,
	}
}
