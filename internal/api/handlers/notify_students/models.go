package notify_students

import (
	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	notifyStudents "github.com/edubridge/EduBridge-BookingService/internal/usecase/notify_students"
	"github.com/edubridge/EduBridge-BookingService/pkg/types"
)

// NewSlotRequest новый слот в HTTP запросе (обязателен для reschedule)
type NewSlotRequest struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Place string `json:"place"`
}

// NotifyStudentsRequest HTTP request model
type NotifyStudentsRequest struct {
	BookingIDs []int64         `json:"bookingIds"`
	Action     string          `json:"action"` // cancel или reschedule
	Message    string          `json:"message,omitempty"`
	NewSlot    *NewSlotRequest `json:"newSlot,omitempty"`
}

// PromotedBooking продвинутое бронирование в HTTP ответе
type PromotedBooking struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
}

// NotifyStudentsResponse HTTP response model
type NotifyStudentsResponse struct {
	Action       string            `json:"action"`
	UpdatedIDs   []int64           `json:"updatedIds"`
	EmailsSent   int               `json:"emailsSent"`
	EmailsFailed int               `json:"emailsFailed"`
	Promoted     []PromotedBooking `json:"promoted"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *NotifyStudentsRequest) ToUseCaseRequest(actor domain.Actor, teacherID int64) *notifyStudents.Request {
	req := &notifyStudents.Request{
		Actor:      actor,
		TeacherID:  teacherID,
		BookingIDs: r.BookingIDs,
		Action:     notifyStudents.Action(r.Action),
		Message:    r.Message,
	}
	if r.NewSlot != nil {
		req.NewSlot = notifyStudents.NewSlot{
			Date:  types.DateString(r.NewSlot.Date),
			Time:  types.TimeLabel(r.NewSlot.Time),
			Place: r.NewSlot.Place,
		}
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *notifyStudents.Response) *NotifyStudentsResponse {
	out := &NotifyStudentsResponse{
		Action:       string(resp.Action),
		UpdatedIDs:   resp.UpdatedIDs,
		EmailsSent:   resp.EmailsSent,
		EmailsFailed: resp.EmailsFailed,
		Promoted:     make([]PromotedBooking, 0, len(resp.Promoted)),
	}
	for _, p := range resp.Promoted {
		out.Promoted = append(out.Promoted, PromotedBooking{ID: p.ID, UserID: p.UserID})
	}
	return out
}
