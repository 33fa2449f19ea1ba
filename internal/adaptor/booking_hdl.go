package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"artstudio-booking/internal/dto/request"
	"artstudio-booking/internal/dto/response"
	"artstudio-booking/internal/usecase"
	"artstudio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings. It answers with the booking API
// contract {success, data, error} rather than the usual envelope.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBookingResult(w, http.StatusBadRequest, response.BookingCreateResponse{Error: "Invalid request body"})
		return
	}

	created, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		var svcErr *usecase.Error
		switch {
		case errors.As(err, &svcErr) && errors.Is(err, usecase.ErrConflict):
			h.log.Warn("Booking refused", zap.Error(err))
			writeBookingResult(w, http.StatusConflict, response.BookingCreateResponse{Error: svcErr.Message})
		case errors.As(err, &svcErr) && errors.Is(err, usecase.ErrPaymentRequired):
			h.log.Warn("Booking payment not accepted", zap.Error(err))
			writeBookingResult(w, http.StatusPaymentRequired, response.BookingCreateResponse{Error: svcErr.Message})
		case errors.As(err, &svcErr) && errors.Is(err, usecase.ErrNotFound):
			writeBookingResult(w, http.StatusNotFound, response.BookingCreateResponse{Error: svcErr.Message})
		case errors.As(err, &svcErr):
			writeBookingResult(w, http.StatusBadRequest, response.BookingCreateResponse{Error: svcErr.Message})
		default:
			h.log.Error("Create booking failed", zap.Error(err))
			writeBookingResult(w, http.StatusInternalServerError, response.BookingCreateResponse{Error: "Internal server error"})
		}
		return
	}

	writeBookingResult(w, http.StatusCreated, response.BookingCreateResponse{Success: true, Data: created})
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetBookingByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved successfully", booking)
}

func writeBookingResult(w http.ResponseWriter, code int, body response.BookingCreateResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
