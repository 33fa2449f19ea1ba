package utils

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

// ParseInt converts a query value to a positive int, falling back to defaultValue
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

const confirmationAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateConfirmationCode returns a customer-facing booking reference.
// Format: RSV-YYMMDD-XXXXXX
func GenerateConfirmationCode(now time.Time) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms; fall back to the clock
		nanos := strconv.FormatInt(now.UnixNano(), 36)
		return "RSV-" + now.Format("060102") + "-" + strings.ToUpper(nanos[len(nanos)-6:])
	}

	var sb strings.Builder
	sb.WriteString("RSV-")
	sb.WriteString(now.Format("060102"))
	sb.WriteByte('-')
	for _, b := range buf {
		sb.WriteByte(confirmationAlphabet[int(b)%len(confirmationAlphabet)])
	}
	return sb.String()
}
