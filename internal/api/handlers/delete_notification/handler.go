package delete_notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/edubridge/EduBridge-BookingService/internal/api/handlers"
	"github.com/edubridge/EduBridge-BookingService/internal/api/middleware"
	notificationsService "github.com/edubridge/EduBridge-BookingService/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "некорректный ID уведомления"
	msgNotificationNotFound  = "уведомление не найдено"
)

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

// Handle DELETE /api/v1/notifications/{notificationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	notificationID, err := strconv.ParseInt(mux.Vars(r)["notificationId"], 10, 64)
	if err != nil || notificationID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	if err := h.service.Delete(r.Context(), actor, notificationID); err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrNotificationNotFound):
			h.logger.Warn("DELETE /notifications/%d - Not found for user=%d", notificationID, actor.UserID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		case errors.Is(err, notificationsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidNotificationID)

		default:
			h.logger.Error("DELETE /notifications/%d - Failed for user=%d: %v", notificationID, actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /notifications/%d - Deleted by user=%d", notificationID, actor.UserID)
	w.WriteHeader(http.StatusNoContent)
}
