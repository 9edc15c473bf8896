package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithBooking_ScopesFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := globalLogger
	globalLogger = zap.New(core).Sugar()
	defer func() { globalLogger = prev }()

	WithBooking("ABC123XYZ0", "SL1234567").Infow("Booking created")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["booking_ref"] != "ABC123XYZ0" {
		t.Errorf("Expected booking_ref ABC123XYZ0, got %v", fields["booking_ref"])
	}
	if fields["flight_code"] != "SL1234567" {
		t.Errorf("Expected flight_code SL1234567, got %v", fields["flight_code"])
	}
}
