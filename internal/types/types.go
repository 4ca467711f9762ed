package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// TimePtr converts a time to a pointer to a time
func TimePtr(t time.Time) *time.Time {
	return &t
}

// StringNilOrEmpty checks if a pointer to a string is nil or empty
func StringNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// SafeString returns a safe string from a pointer to a string
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GenerateUUID returns a new random UUID string
func GenerateUUID() string {
	return uuid.NewString()
}

// NormalizeIdentity trims an identity received from a client.
// An empty result means no identity was provided.
func NormalizeIdentity(s string) string {
	return strings.TrimSpace(s)
}

// SameIdentity compares two identities the way ownership checks do
func SameIdentity(a, b string) bool {
	return NormalizeIdentity(a) == NormalizeIdentity(b)
}
