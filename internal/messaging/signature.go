package messaging

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/feral-file/wt-exchange/internal/adapter"
	"github.com/feral-file/wt-exchange/internal/domain"
)

const (
	// SIGNATURE_HEADER carries the "sha256=<hex>" signature of a published event
	SIGNATURE_HEADER = "Wt-Signature"
	// TIMESTAMP_HEADER carries the unix timestamp the signature was computed for
	TIMESTAMP_HEADER = "Wt-Timestamp"
)

// SignedPayload is a canonical event body with its signature
type SignedPayload struct {
	Payload   []byte
	Signature string
	Timestamp int64
}

// Signer signs economy events so consumers can verify their origin
//
//go:generate mockgen -source=signature.go -destination=../mocks/signature.go -package=mocks -mock_names=Signer=MockSigner
type Signer interface {
	Sign(event *domain.Event) (SignedPayload, error)
}

type hmacSigner struct {
	secret []byte
	json   adapter.JSON
	jcs    adapter.JCS
	clock  adapter.Clock
}

// NewSigner creates an HMAC-SHA256 signer over the JCS canonical form of an event
func NewSigner(secret string, jsonAdapter adapter.JSON, jcsAdapter adapter.JCS, clock adapter.Clock) Signer {
	return &hmacSigner{
		secret: []byte(secret),
		json:   jsonAdapter,
		jcs:    jcsAdapter,
		clock:  clock,
	}
}

// Sign canonicalizes the event and signs "{timestamp}.{event_id}.{payload}"
func (s *hmacSigner) Sign(event *domain.Event) (SignedPayload, error) {
	raw, err := s.json.Marshal(event)
	if err != nil {
		return SignedPayload{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	payload, err := s.jcs.Transform(raw)
	if err != nil {
		return SignedPayload{}, fmt.Errorf("failed to canonicalize event: %w", err)
	}

	timestamp := s.clock.Now().Unix()

	return SignedPayload{
		Payload:   payload,
		Signature: Signature(s.secret, timestamp, event.ID, payload),
		Timestamp: timestamp,
	}, nil
}

// Signature computes the header value for a payload
func Signature(secret []byte, timestamp int64, eventID string, payload []byte) string {
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(fmt.Sprintf("%d.%s.%s", timestamp, eventID, payload)))
	return "sha256=" + hex.EncodeToString(h.Sum(nil))
}

// Verify reports whether signature matches the payload
func Verify(secret []byte, timestamp int64, eventID string, payload []byte, signature string) bool {
	return hmac.Equal([]byte(Signature(secret, timestamp, eventID, payload)), []byte(signature))
}
