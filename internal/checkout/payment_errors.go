package checkout

import (
	"fmt"
	"strings"
)

var paymentMessages = map[string]string{
	"CARD_DECLINED":                       "Your card was declined. Please try a different card.",
	"GENERIC_DECLINE":                     "Your card was declined. Please try a different card.",
	"CARD_DECLINED_VERIFICATION_REQUIRED": "Your bank needs to verify this payment. Please try again or use a different card.",
	"CVV_FAILURE":                         "The security code (CVV) is incorrect. Please check and try again.",
	"VERIFY_CVV_FAILURE":                  "The security code (CVV) is incorrect. Please check and try again.",
	"INVALID_EXPIRATION":                  "The expiration date is invalid. Please check and try again.",
	"EXPIRATION_FAILURE":                  "Your card has expired. Please use a different card.",
	"CARD_EXPIRED":                        "Your card has expired. Please use a different card.",
	"INSUFFICIENT_FUNDS":                  "Your card has insufficient funds. Please use a different card.",
	"ADDRESS_VERIFICATION_FAILURE":        "The billing postal code does not match your card. Please check your billing details.",
	"VERIFY_AVS_FAILURE":                  "The billing postal code does not match your card. Please check your billing details.",
	"INVALID_POSTAL_CODE":                 "The billing postal code is invalid. Please check your billing details.",
	"INVALID_CARD":                        "The card number is invalid. Please check and try again.",
	"INVALID_CARD_DATA":                   "The card details are invalid. Please check and try again.",
	"PAN_FAILURE":                         "The card number is invalid. Please check and try again.",
	"CARD_NOT_SUPPORTED":                  "This card type is not supported. Please use a different card.",
	"TRANSACTION_LIMIT":                   "This payment exceeds your card's limit. Please use a different card.",
	"RATE_LIMITED":                        "Too many payment attempts. Please wait a moment and try again.",
}

// PaymentMessage translates a processor error code into a customer-facing
// message. Unknown codes get a generic message that still names the code.
func PaymentMessage(code string) string {
	key := strings.ToUpper(strings.TrimSpace(code))
	if msg, ok := paymentMessages[key]; ok {
		return msg
	}
	if key == "" {
		return "Payment failed. Please check your card details and try again."
	}
	return fmt.Sprintf("Payment failed (%s). Please check your card details or try a different card.", strings.ToLower(strings.ReplaceAll(key, "_", " ")))
}

// paymentErrorFrom picks the first reported processor error.
func paymentErrorFrom(result *TokenResult) *PaymentError {
	if result == nil || len(result.Errors) == 0 {
		return &PaymentError{Message: PaymentMessage("")}
	}
	first := result.Errors[0]
	return &PaymentError{Code: first.Code, Message: PaymentMessage(first.Code)}
}
