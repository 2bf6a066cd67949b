package create_booking

import (
	"errors"
	"net/http"

	"github.com/edubridge/EduBridge-BookingService/internal/api/handlers"
	"github.com/edubridge/EduBridge-BookingService/internal/api/middleware"
	createBooking "github.com/edubridge/EduBridge-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgTeacherNotFound    = "преподаватель не найден"
	msgSlotNotAvailable   = "выбранный слот отсутствует в расписании преподавателя"
	msgPlaceMismatch      = "место не совпадает с расписанием преподавателя"
	msgSubjectMismatch    = "предмет не совпадает с предметом преподавателя"
	msgAlreadyBooked      = "у вас уже есть активное бронирование этого слота"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrTeacherNotFound):
			h.logger.Warn("POST /bookings - Teacher not found: teacher_id=%d", req.TeacherID)
			handlers.RespondNotFound(w, msgTeacherNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, teacher_id=%d", actor.UserID, req.TeacherID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrPlaceMismatch):
			h.logger.Warn("POST /bookings - Place mismatch: user_id=%d, teacher_id=%d", actor.UserID, req.TeacherID)
			handlers.RespondBadRequest(w, msgPlaceMismatch)

		case errors.Is(err, createBooking.ErrSubjectMismatch):
			h.logger.Warn("POST /bookings - Subject mismatch: user_id=%d, teacher_id=%d", actor.UserID, req.TeacherID)
			handlers.RespondBadRequest(w, msgSubjectMismatch)

		case errors.Is(err, createBooking.ErrAlreadyBooked):
			h.logger.Warn("POST /bookings - Already booked: user_id=%d, teacher_id=%d", actor.UserID, req.TeacherID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyBooked)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, teacher_id=%d, error=%v",
				actor.UserID, req.TeacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, status=%s",
		result.ID, actor.UserID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
