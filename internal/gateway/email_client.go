package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"artstudio-booking/internal/checkout"
)

// EmailClient asks the email service to send a booking confirmation.
type EmailClient struct {
	rest *RESTClient
	path string
}

func NewEmailClient(baseURL, path string, timeout time.Duration, client *http.Client) *EmailClient {
	if strings.TrimSpace(path) == "" {
		path = "/api/send-confirmation-email"
	}
	return &EmailClient{rest: NewRESTClient(baseURL, timeout, client), path: path}
}

func (c *EmailClient) SendConfirmation(ctx context.Context, confirmation checkout.Confirmation) error {
	req, err := c.rest.NewJSONRequest(ctx, http.MethodPost, c.path, confirmation)
	if err != nil {
		return err
	}

	res, err := c.rest.Do(req)
	if err != nil {
		return fmt.Errorf("confirmation request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode/100 != 2 {
		body, _ := readBody(res, maxErrorBody)
		return fmt.Errorf("confirmation email for booking %s: status %d: %s", confirmation.BookingID, res.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
