// Package auth verifies that inbound webhook requests were signed by the chat
// platform with the shared signing secret.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

// Header names carrying the request signature.
const (
	HeaderTimestamp = "X-Slack-Request-Timestamp"
	HeaderSignature = "X-Slack-Signature"
)

const (
	// ReplayWindow bounds the distance between a request timestamp and now.
	ReplayWindow = 300 * time.Second

	signatureVersion = "v0"
)

// Rejection reasons. Each wraps domain.ErrUnauthorized.
var (
	ErrMissingHeader = fmt.Errorf("missing signature header: %w", domain.ErrUnauthorized)
	ErrBadTimestamp  = fmt.Errorf("malformed request timestamp: %w", domain.ErrUnauthorized)
	ErrExpired       = fmt.Errorf("request timestamp outside replay window: %w", domain.ErrUnauthorized)
	ErrBadSignature  = fmt.Errorf("signature mismatch: %w", domain.ErrUnauthorized)
)

// Verifier checks timestamped HMAC-SHA256 request signatures.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

// NewVerifier creates a Verifier for the given signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret), now: time.Now}
}

// WithClock returns a copy of v that reads the current time from now.
func (v *Verifier) WithClock(now func() time.Time) *Verifier {
	c := *v
	c.now = now
	return &c
}

// Verify validates signature for the exact raw body bytes. It returns nil
// only for a fresh, correctly signed request.
func (v *Verifier) Verify(body []byte, timestamp, signature string) error {
	if timestamp == "" || signature == "" {
		return ErrMissingHeader
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadTimestamp, timestamp)
	}

	skew := v.now().Sub(time.Unix(ts, 0))
	if skew < 0 {
		skew = -skew
	}
	if skew > ReplayWindow {
		return fmt.Errorf("%w: skew %s", ErrExpired, skew.Truncate(time.Second))
	}

	expected := []byte(Sign(v.secret, timestamp, body))
	if !hmac.Equal(expected, []byte(signature)) {
		return ErrBadSignature
	}
	return nil
}

// Sign computes the "v0=<hex>" signature of body at timestamp.
func Sign(secret []byte, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(signatureVersion + ":" + timestamp + ":"))
	mac.Write(body)
	return signatureVersion + "=" + hex.EncodeToString(mac.Sum(nil))
}
