package rate_teacher

import (
	"errors"
	"net/http"

	"github.com/edubridge/EduBridge-BookingService/internal/api/handlers"
	"github.com/edubridge/EduBridge-BookingService/internal/api/middleware"
	ratingsService "github.com/edubridge/EduBridge-BookingService/internal/service/ratings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRating      = "оценка должна быть от 1 до 5"
	msgTeacherNotFound    = "преподаватель не найден"
)

// RateTeacherRequest HTTP request model
type RateTeacherRequest struct {
	TeacherID int64   `json:"teacherId"`
	Value     float64 `json:"value"`
}

type Handler struct {
	service RatingsService
	logger  Logger
}

func NewHandler(service RatingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/ratings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	var req RateTeacherRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /ratings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Rate(r.Context(), actor, req.TeacherID, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, ratingsService.ErrInvalidInput):
			h.logger.Warn("POST /ratings - Invalid rating: user=%d, teacher=%d, value=%.1f",
				actor.UserID, req.TeacherID, req.Value)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, ratingsService.ErrTeacherNotFound):
			h.logger.Warn("POST /ratings - Teacher not found: teacher=%d", req.TeacherID)
			handlers.RespondNotFound(w, msgTeacherNotFound)

		default:
			h.logger.Error("POST /ratings - Failed: user=%d, teacher=%d, error=%v", actor.UserID, req.TeacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /ratings - Teacher=%d rated by user=%d, display=%.2f",
		req.TeacherID, actor.UserID, result.DisplayRating)
	handlers.RespondJSON(w, http.StatusOK, result)
}
