package cancel_booking

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/edubridge/EduBridge-BookingService/internal/api/handlers"
	"github.com/edubridge/EduBridge-BookingService/internal/api/middleware"
	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	bookingsService "github.com/edubridge/EduBridge-BookingService/internal/service/bookings"
	cancelBooking "github.com/edubridge/EduBridge-BookingService/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgUnknownAction      = "неизвестное действие над бронированием"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "нет прав на это бронирование"
	msgAlreadyCancelled   = "бронирование уже отменено"
	msgTooLateToCancel    = "отмена возможна не позднее чем за 48 часов до начала занятия"
	msgInvalidBookingTime = "время бронирования не распознано, отмена невозможна"
)

type Handler struct {
	useCase CancelBookingUseCase
	service BookingsService
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, service BookingsService, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
// Действие задаётся полем action: cancel, mark_rated или close_popup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req BookingActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	switch req.Action {
	case actionCancel:
		h.handleCancel(w, r, actor, bookingID)
	case actionMarkRated:
		h.handleServiceAction(w, r, actor, bookingID, req.Action, h.service.MarkRated)
	case actionClosePopup:
		h.handleServiceAction(w, r, actor, bookingID, req.Action, h.service.ClosePopup)
	default:
		h.logger.Warn("PATCH /bookings/%d - Unknown action %q from user=%d", bookingID, req.Action, actor.UserID)
		handlers.RespondBadRequest(w, msgUnknownAction)
	}
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request, actor domain.Actor, bookingID int64) {
	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{
		Actor:     actor,
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelBooking.ErrForbidden):
			h.logger.Warn("PATCH /bookings/%d - Access denied for user=%d", bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cancelBooking.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /bookings/%d - Already cancelled", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		case errors.Is(err, cancelBooking.ErrTooLateToCancel):
			h.logger.Warn("PATCH /bookings/%d - Too late to cancel: user=%d", bookingID, actor.UserID)
			handlers.RespondBadRequest(w, msgTooLateToCancel)

		case errors.Is(err, cancelBooking.ErrInvalidBookingTime):
			h.logger.Warn("PATCH /bookings/%d - Unparseable booking time", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingTime)

		default:
			h.logger.Error("PATCH /bookings/%d - Failed to cancel: user=%d, error=%v", bookingID, actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d - Booking cancelled by user=%d", bookingID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) handleServiceAction(
	w http.ResponseWriter,
	r *http.Request,
	actor domain.Actor,
	bookingID int64,
	action string,
	fn func(ctx context.Context, actor domain.Actor, id int64) error,
) {
	if err := fn(r.Context(), actor, bookingID); err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("PATCH /bookings/%d - Action %s failed: user=%d, error=%v", bookingID, action, actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d - Action %s applied by user=%d", bookingID, action, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, ActionResponse{ID: bookingID, Action: action})
}
