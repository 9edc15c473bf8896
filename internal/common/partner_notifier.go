package common

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Notifier is the contract the seat ledger uses to tell an airline's own
// system about booking changes. Both calls are best-effort: errors are
// returned for logging but never abort the committed booking.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, endpoint, airlineCode, bookingRef string, passportNumber int64, flightCode string) error
	NotifyBookingCancelled(ctx context.Context, endpoint, airlineCode, bookingRef string) error
}

// BookingNotification is the JSON body POSTed to the airline's endpoint.
type BookingNotification struct {
	BookingRef     string `json:"booking_ref"`
	PassportNumber int64  `json:"passport_number,omitempty"`
	FlightCode     string `json:"flight_code,omitempty"`
}

// PartnerNotifier calls the airline-supplied address over HTTP with a short
// timeout. Outbound calls are throttled so a flood of bookings cannot hammer
// a partner system.
type PartnerNotifier struct {
	Client  *http.Client
	signer  *WebhookSigner
	limiter *rate.Limiter
}

const notifyTimeout = 3 * time.Second

// NewPartnerNotifier creates a notifier reading the signing secret from the
// environment.
func NewPartnerNotifier() *PartnerNotifier {
	secret := os.Getenv("WEBHOOK_SECRET")
	if secret == "" {
		secret = "dev-webhook-secret"
	}
	return &PartnerNotifier{
		Client:  &http.Client{Timeout: notifyTimeout},
		signer:  NewWebhookSigner([]byte(secret)),
		limiter: rate.NewLimiter(20, 40),
	}
}

// NotifyBookingCreated POSTs the new booking to the airline's endpoint.
func (n *PartnerNotifier) NotifyBookingCreated(ctx context.Context, endpoint, airlineCode, bookingRef string, passportNumber int64, flightCode string) error {
	payload := BookingNotification{
		BookingRef:     bookingRef,
		PassportNumber: passportNumber,
		FlightCode:     flightCode,
	}
	return n.send(ctx, http.MethodPost, endpoint, airlineCode, payload)
}

// NotifyBookingCancelled tells the airline's endpoint the booking is gone.
func (n *PartnerNotifier) NotifyBookingCancelled(ctx context.Context, endpoint, airlineCode, bookingRef string) error {
	payload := BookingNotification{BookingRef: bookingRef}
	return n.send(ctx, http.MethodDelete, endpoint, airlineCode, payload)
}

func (n *PartnerNotifier) send(ctx context.Context, method, endpoint, airlineCode string, payload BookingNotification) error {
	if endpoint == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("notification throttled: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	deliveryID := uuid.NewString()
	req.Header.Set("X-Delivery-Id", deliveryID)
	if token, err := n.signer.Sign(airlineCode, deliveryID, notifyTimeout); err == nil {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := n.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("partner returned status %d", resp.StatusCode)
	}
	return nil
}

var _ Notifier = (*PartnerNotifier)(nil)
