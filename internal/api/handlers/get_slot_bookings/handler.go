package get_slot_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/edubridge/EduBridge-BookingService/internal/api/handlers"
	"github.com/edubridge/EduBridge-BookingService/internal/api/middleware"
	bookingsService "github.com/edubridge/EduBridge-BookingService/internal/service/bookings"
	"github.com/edubridge/EduBridge-BookingService/pkg/types"
)

const (
	msgInvalidTeacherID = "некорректный ID преподавателя"
	msgInvalidSlot      = "некорректные параметры слота: нужны date, time и place"
	msgAccessDenied     = "операция доступна только администратору"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/teachers/{teacherId}/slot-bookings?date=...&time=...&place=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	teacherID, err := strconv.ParseInt(mux.Vars(r)["teacherId"], 10, 64)
	if err != nil || teacherID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	query := r.URL.Query()
	date := types.DateString(query.Get("date"))
	timeLabel := types.TimeLabel(query.Get("time"))
	place := query.Get("place")

	result, err := h.service.GetSlotBookings(r.Context(), actor, teacherID, date, timeLabel, place)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("GET /teachers/%d/slot-bookings - Access denied for user=%d", teacherID, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /teachers/%d/slot-bookings - Invalid slot parameters: %v", teacherID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("GET /teachers/%d/slot-bookings - Failed to fetch: error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
