package notify_students

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/edubridge/EduBridge-BookingService/internal/api/handlers"
	"github.com/edubridge/EduBridge-BookingService/internal/api/middleware"
	notifyStudents "github.com/edubridge/EduBridge-BookingService/internal/usecase/notify_students"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTeacherID   = "некорректный ID преподавателя"
	msgInvalidInput       = "некорректные параметры массового уведомления"
	msgTeacherNotFound    = "преподаватель не найден"
	msgNoValidBookings    = "нет подходящих бронирований для обработки"
	msgAccessDenied       = "операция доступна только администратору"
)

type Handler struct {
	useCase NotifyStudentsUseCase
	logger  Logger
}

func NewHandler(useCase NotifyStudentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/teachers/{teacherId}/notify-students
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

	var req NotifyStudentsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /teachers/%d/notify-students - Invalid request body: %v", teacherID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor, teacherID))
	if err != nil {
		switch {
		case errors.Is(err, notifyStudents.ErrForbidden):
			h.logger.Warn("POST /teachers/%d/notify-students - Access denied for user=%d", teacherID, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, notifyStudents.ErrInvalidInput):
			h.logger.Warn("POST /teachers/%d/notify-students - Invalid input: %v", teacherID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, notifyStudents.ErrTeacherNotFound):
			h.logger.Warn("POST /teachers/%d/notify-students - Teacher not found", teacherID)
			handlers.RespondNotFound(w, msgTeacherNotFound)

		case errors.Is(err, notifyStudents.ErrNoValidBookings):
			h.logger.Warn("POST /teachers/%d/notify-students - No valid bookings", teacherID)
			handlers.RespondBadRequest(w, msgNoValidBookings)

		default:
			h.logger.Error("POST /teachers/%d/notify-students - Failed: error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /teachers/%d/notify-students - Action=%s, updated=%d, emails sent=%d failed=%d",
		teacherID, result.Action, len(result.UpdatedIDs), result.EmailsSent, result.EmailsFailed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
