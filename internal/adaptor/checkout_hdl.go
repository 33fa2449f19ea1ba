package adaptor

import (
	"encoding/json"
	"net/http"

	"artstudio-booking/internal/dto/request"
	"artstudio-booking/internal/usecase"
	"artstudio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	service usecase.CheckoutService
	log     *zap.Logger
}

func NewCheckoutHandler(service usecase.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		log:     log.With(zap.String("handler", "checkout")),
	}
}

// Checkout handles POST /api/reservations/{id}/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	id := chi.URLParam(r, "id")
	ip, _ := utils.GetClientIP(r.Context())
	h.log.Info("Checkout requested",
		zap.String("reservation_id", id),
		zap.Int("dates", len(req.SelectedDates)),
		zap.String("client_ip", ip),
	)

	result, err := h.service.Checkout(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "checkout")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", result)
}
