package update_capacity

import (
	updateCapacity "github.com/edubridge/EduBridge-BookingService/internal/usecase/update_capacity"
)

// UpdateCapacityRequest HTTP request model
type UpdateCapacityRequest struct {
	MaxStudents int `json:"maxStudents"`
}

// PromotedBooking продвинутое бронирование в HTTP ответе
type PromotedBooking struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
}

// UpdateCapacityResponse HTTP response model
type UpdateCapacityResponse struct {
	TeacherID   int64             `json:"teacherId"`
	MaxStudents int               `json:"maxStudents"`
	Promoted    []PromotedBooking `json:"promoted"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateCapacity.Response) *UpdateCapacityResponse {
	out := &UpdateCapacityResponse{
		TeacherID:   resp.TeacherID,
		MaxStudents: resp.MaxStudents,
		Promoted:    make([]PromotedBooking, 0, len(resp.Promoted)),
	}
	for _, p := range resp.Promoted {
		out.Promoted = append(out.Promoted, PromotedBooking{ID: p.ID, UserID: p.UserID})
	}
	return out
}
