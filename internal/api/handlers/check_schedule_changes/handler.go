package check_schedule_changes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/edubridge/EduBridge-BookingService/internal/api/handlers"
	"github.com/edubridge/EduBridge-BookingService/internal/api/middleware"
	checkScheduleChanges "github.com/edubridge/EduBridge-BookingService/internal/usecase/check_schedule_changes"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTeacherID   = "некорректный ID преподавателя"
	msgInvalidNewSlot     = "новый слот должен содержать date, time и place"
	msgTeacherNotFound    = "преподаватель не найден"
	msgAccessDenied       = "операция доступна только администратору"
)

type Handler struct {
	useCase CheckScheduleChangesUseCase
	logger  Logger
}

func NewHandler(useCase CheckScheduleChangesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/teachers/{teacherId}/schedule-changes
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

	var req CheckScheduleChangesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /teachers/%d/schedule-changes - Invalid request body: %v", teacherID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor, teacherID))
	if err != nil {
		switch {
		case errors.Is(err, checkScheduleChanges.ErrForbidden):
			h.logger.Warn("POST /teachers/%d/schedule-changes - Access denied for user=%d", teacherID, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, checkScheduleChanges.ErrInvalidInput):
			h.logger.Warn("POST /teachers/%d/schedule-changes - Invalid input: %v", teacherID, err)
			handlers.RespondBadRequest(w, msgInvalidNewSlot)

		case errors.Is(err, checkScheduleChanges.ErrTeacherNotFound):
			h.logger.Warn("POST /teachers/%d/schedule-changes - Teacher not found", teacherID)
			handlers.RespondNotFound(w, msgTeacherNotFound)

		default:
			h.logger.Error("POST /teachers/%d/schedule-changes - Failed: error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /teachers/%d/schedule-changes - Affected=%d, emails sent=%d failed=%d",
		teacherID, len(result.Affected), result.EmailsSent, result.EmailsFailed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
