package adaptor

import (
	"errors"
	"net/http"

	"artstudio-booking/internal/checkout"
	"artstudio-booking/internal/reservation"
	"artstudio-booking/internal/usecase"
	"artstudio-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service errors to the response envelope.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var (
		changed    *usecase.SelectionChangedError
		validation *checkout.ValidationError
		incomplete *reservation.IncompleteSelectionError
		payment    *checkout.PaymentError
		submission *checkout.SubmissionError
		svcErr     *usecase.Error
	)

	switch {
	case errors.As(err, &changed):
		log.Info(operation+" refused - availability changed", zap.Error(err), zap.String("operation", operation))
		utils.ResponseConflict(w, changed.Message, map[string]any{"adjustments": changed.Adjustments})

	case errors.As(err, &validation):
		log.Info(operation+" validation failed", zap.Error(err), zap.String("operation", operation))
		utils.ResponseUnprocessable(w, validation.Message, map[string]string{"field": validation.Field})

	case errors.As(err, &incomplete):
		log.Info(operation+" incomplete selection", zap.Error(err), zap.String("operation", operation))
		utils.ResponseUnprocessable(w, incomplete.Message, nil)

	case errors.As(err, &payment):
		log.Warn(operation+" payment failed", zap.Error(err), zap.String("operation", operation), zap.String("code", payment.Code))
		utils.ResponsePaymentRequired(w, payment.Message, map[string]string{"code": payment.Code})

	case errors.As(err, &submission):
		guidance := map[string]string{"guidance": submission.Guidance()}
		if submission.Err != nil {
			log.Error(operation+" failed - booking service unreachable", zap.Error(err), zap.String("operation", operation))
			utils.ResponseBadGateway(w, submission.Message, guidance)
			return
		}
		log.Error(operation+" failed - booking refused after payment", zap.Error(err), zap.String("operation", operation))
		utils.ResponseJSON(w, http.StatusConflict, false, submission.Message, nil, guidance)

	case errors.Is(err, checkout.ErrAlreadySubmitted):
		utils.ResponseConflict(w, "This checkout was already submitted", nil)

	case errors.Is(err, reservation.ErrConfiguration):
		log.Error(operation+" failed - availability misconfigured", zap.Error(err), zap.String("operation", operation))
		utils.ResponseServiceUnavailable(w, "This reservation is temporarily unavailable")

	case errors.As(err, &svcErr):
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			log.Warn(operation+" failed - not found", zap.Error(err), zap.String("operation", operation))
			utils.ResponseNotFound(w, svcErr.Message)
		case errors.Is(err, usecase.ErrConflict):
			log.Warn(operation+" failed - conflict", zap.Error(err), zap.String("operation", operation))
			utils.ResponseConflict(w, svcErr.Message, nil)
		case errors.Is(err, usecase.ErrPaymentRequired):
			log.Warn(operation+" failed - payment not accepted", zap.Error(err), zap.String("operation", operation))
			utils.ResponseJSON(w, http.StatusPaymentRequired, false, svcErr.Message, nil, nil)
		default:
			log.Warn("Invalid input for "+operation, zap.Error(err), zap.String("operation", operation))
			utils.ResponseBadRequest(w, svcErr.Message, nil)
		}

	default:
		log.Error(operation+" failed", zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
