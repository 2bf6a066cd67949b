package check_schedule_changes

import (
	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	checkScheduleChanges "github.com/edubridge/EduBridge-BookingService/internal/usecase/check_schedule_changes"
	"github.com/edubridge/EduBridge-BookingService/pkg/types"
)

// NewSlotRequest новый слот в HTTP запросе
type NewSlotRequest struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Place string `json:"place"`
}

// CheckScheduleChangesRequest HTTP request model
// Расписания передаются в формате хранения: date -> time -> place
type CheckScheduleChangesRequest struct {
	OldSchedule map[string]map[string]string `json:"oldSchedule"`
	NewSchedule map[string]map[string]string `json:"newSchedule"`
	NewSlot     NewSlotRequest               `json:"newSlot"`
}

// AffectedBooking затронутое бронирование в HTTP ответе
type AffectedBooking struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
}

// CheckScheduleChangesResponse HTTP response model
type CheckScheduleChangesResponse struct {
	Affected     []AffectedBooking `json:"affected"`
	EmailsSent   int               `json:"emailsSent"`
	EmailsFailed int               `json:"emailsFailed"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckScheduleChangesRequest) ToUseCaseRequest(actor domain.Actor, teacherID int64) *checkScheduleChanges.Request {
	return &checkScheduleChanges.Request{
		Actor:       actor,
		TeacherID:   teacherID,
		OldSchedule: domain.Schedule(r.OldSchedule),
		NewSchedule: domain.Schedule(r.NewSchedule),
		NewSlot: checkScheduleChanges.NewSlot{
			Date:  types.DateString(r.NewSlot.Date),
			Time:  types.TimeLabel(r.NewSlot.Time),
			Place: r.NewSlot.Place,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkScheduleChanges.Response) *CheckScheduleChangesResponse {
	out := &CheckScheduleChangesResponse{
		Affected:     make([]AffectedBooking, 0, len(resp.Affected)),
		EmailsSent:   resp.EmailsSent,
		EmailsFailed: resp.EmailsFailed,
	}
	for _, a := range resp.Affected {
		out.Affected = append(out.Affected, AffectedBooking{ID: a.ID, UserID: a.UserID})
	}
	return out
}
