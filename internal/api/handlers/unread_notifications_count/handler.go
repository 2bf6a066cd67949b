package unread_notifications_count

import (
	"net/http"

	"github.com/edubridge/EduBridge-BookingService/internal/api/handlers"
	"github.com/edubridge/EduBridge-BookingService/internal/api/middleware"
)

// UnreadCountResponse HTTP response model
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

type Handler struct {
	service NotificationsService
	logger  Logger
}

func NewHandler(service NotificationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/notifications/unread-count
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	count, err := h.service.UnreadCount(r.Context(), actor)
	if err != nil {
		h.logger.Error("GET /notifications/unread-count - Failed for user=%d: %v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, UnreadCountResponse{Unread: count})
}
