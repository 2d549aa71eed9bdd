package tickets

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var hmacSecret = func() []byte {
	if s := os.Getenv("QR_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("dev-qr-secret-change-me")
}()

// allowedDrift bounds how old a scanned code may be. Boarding clients
// fetch a fresh code right before the gate, so a tight window is fine.
const allowedDrift = 5 * time.Minute

// SignedPayload builds the QR content: tripID|ticketID|seat|timestamp|HMAC.
func SignedPayload(tripID, ticketID, seat string, at time.Time) string {
	data := fmt.Sprintf("%s|%s|%s|%d", tripID, ticketID, seat, at.Unix())
	h := hmac.New(sha256.New, hmacSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// VerifyPayload checks the signature and the timestamp window and returns
// the identifying fields.
func VerifyPayload(payload string) (tripID, ticketID, seat string, err error) {
	parts := strings.Split(payload, "|")
	if len(parts) != 5 {
		return "", "", "", errors.New("invalid QR format")
	}
	tripID, ticketID, seat = parts[0], parts[1], parts[2]
	timestampStr, signature := parts[3], parts[4]

	ts, err := strconv.ParseInt(timestampStr, 10, 64)
	if err != nil {
		return "", "", "", errors.New("invalid timestamp")
	}
	drift := time.Now().Unix() - ts
	if drift < 0 {
		drift = -drift
	}
	if drift > int64(allowedDrift.Seconds()) {
		return "", "", "", errors.New("code expired or from the future")
	}

	data := fmt.Sprintf("%s|%s|%s|%s", tripID, ticketID, seat, timestampStr)
	h := hmac.New(sha256.New, hmacSecret)
	h.Write([]byte(data))
	expected := base64.StdEncoding.EncodeToString(h.Sum(nil))
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return "", "", "", errors.New("invalid signature")
	}
	return tripID, ticketID, seat, nil
}
