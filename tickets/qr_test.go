package tickets

import (
	"strings"
	"testing"
	"time"
)

func TestSignedPayloadRoundTrip(t *testing.T) {
	payload := SignedPayload("k-leo-1", "TCK-9F3A2B", "12", time.Now())

	tripID, ticketID, seat, err := VerifyPayload(payload)
	if err != nil {
		t.Fatalf("VerifyPayload: %v", err)
	}
	if tripID != "k-leo-1" || ticketID != "TCK-9F3A2B" || seat != "12" {
		t.Errorf("decoded %s/%s/%s", tripID, ticketID, seat)
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	payload := SignedPayload("k-leo-1", "TCK-9F3A2B", "12", time.Now())
	tampered := strings.Replace(payload, "|12|", "|13|", 1)

	if _, _, _, err := VerifyPayload(tampered); err == nil {
		t.Error("tampered seat accepted")
	}
}

func TestVerifyRejectsStaleCode(t *testing.T) {
	payload := SignedPayload("k-leo-1", "TCK-9F3A2B", "12", time.Now().Add(-allowedDrift-time.Minute))
	if _, _, _, err := VerifyPayload(payload); err == nil {
		t.Error("stale code accepted")
	}

	future := SignedPayload("k-leo-1", "TCK-9F3A2B", "12", time.Now().Add(allowedDrift+time.Minute))
	if _, _, _, err := VerifyPayload(future); err == nil {
		t.Error("future-dated code accepted")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	for _, payload := range []string{"", "a|b", "a|b|c|d|e|f", "a|b|c|notatime|sig"} {
		if _, _, _, err := VerifyPayload(payload); err == nil {
			t.Errorf("payload %q accepted", payload)
		}
	}
}
