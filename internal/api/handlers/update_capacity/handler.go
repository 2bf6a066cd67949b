package update_capacity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/edubridge/EduBridge-BookingService/internal/api/handlers"
	"github.com/edubridge/EduBridge-BookingService/internal/api/middleware"
	updateCapacity "github.com/edubridge/EduBridge-BookingService/internal/usecase/update_capacity"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTeacherID   = "некорректный ID преподавателя"
	msgInvalidCapacity    = "некорректная вместимость группы"
	msgTeacherNotFound    = "преподаватель не найден"
	msgAccessDenied       = "операция доступна только администратору"
)

type Handler struct {
	useCase UpdateCapacityUseCase
	logger  Logger
}

func NewHandler(useCase UpdateCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/teachers/{teacherId}/capacity
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

	var req UpdateCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /teachers/%d/capacity - Invalid request body: %v", teacherID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateCapacity.Request{
		Actor:       actor,
		TeacherID:   teacherID,
		MaxStudents: req.MaxStudents,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateCapacity.ErrForbidden):
			h.logger.Warn("PUT /teachers/%d/capacity - Access denied for user=%d", teacherID, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, updateCapacity.ErrInvalidInput):
			h.logger.Warn("PUT /teachers/%d/capacity - Invalid capacity %d", teacherID, req.MaxStudents)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, updateCapacity.ErrTeacherNotFound):
			h.logger.Warn("PUT /teachers/%d/capacity - Teacher not found", teacherID)
			handlers.RespondNotFound(w, msgTeacherNotFound)

		default:
			h.logger.Error("PUT /teachers/%d/capacity - Failed to update: error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /teachers/%d/capacity - Capacity set to %d, promoted=%d",
		teacherID, result.MaxStudents, len(result.Promoted))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
