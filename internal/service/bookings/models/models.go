package models

import (
	"time"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
)

// BookingResponse бронирование в ответах API
type BookingResponse struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"userId"`
	TeacherID     int64      `json:"teacherId"`
	Subject       string     `json:"subject"`
	Date          string     `json:"date"`
	Time          string     `json:"time"`
	Place         string     `json:"place"`
	Status        string     `json:"status"`
	Rated         bool       `json:"rated"`
	ClosedPopupAt *time.Time `json:"closedPopupAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain бронирование в response модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		TeacherID:     b.TeacherID,
		Subject:       b.Subject,
		Date:          b.Date.String(),
		Time:          b.Time.String(),
		Place:         b.Place,
		Status:        string(b.Status),
		Rated:         b.Rated,
		ClosedPopupAt: b.ClosedPopupAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookings конвертирует список domain бронирований
func FromDomainBookings(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
