package create_booking

import (
	"time"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	createBooking "github.com/edubridge/EduBridge-BookingService/internal/usecase/create_booking"
	"github.com/edubridge/EduBridge-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TeacherID int64  `json:"teacherId"`
	Subject   string `json:"subject"`
	Date      string `json:"date"`  // "2025-06-01"
	Time      string `json:"time"`  // "2:00 PM", "14:00" или "14:00:00"
	Place     string `json:"place"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	TeacherID int64  `json:"teacherId"`
	Subject   string `json:"subject"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Place     string `json:"place"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) *createBooking.Request {
	return &createBooking.Request{
		Actor:     actor,
		TeacherID: r.TeacherID,
		Subject:   r.Subject,
		Date:      types.DateString(r.Date),
		Time:      types.TimeLabel(r.Time),
		Place:     r.Place,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		TeacherID: resp.TeacherID,
		Subject:   resp.Subject,
		Date:      resp.Date.String(),
		Time:      resp.Time.String(),
		Place:     resp.Place,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
