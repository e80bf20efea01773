// Package qrtoken issues and verifies the signed check-in tokens that are
// embedded in booking QR codes.
//
// A token is the canonical JSON object
//
//	{"bookingId":"<id>","timestamp":<unix ms>,"signature":"<hex hmac-sha256>"}
//
// where signature = HMAC-SHA256(secret, bookingId + "-" + timestamp).
// Tokens carry no version field; changing the signed payload invalidates
// every outstanding token.
package qrtoken

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// TTL is how long a token stays valid after it was issued.
const TTL = 24 * time.Hour

const signatureLength = 64

var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpired          = errors.New("token expired")
	ErrEmptyBookingID   = errors.New("booking id is required")
	ErrEmptySecret      = errors.New("signing secret is required")
)

type Token struct {
	BookingID string `json:"bookingId"`
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
}

func (t Token) IssuedAt() time.Time {
	return time.UnixMilli(t.Timestamp).UTC()
}

func (t Token) ExpiresAt() time.Time {
	return t.IssuedAt().Add(TTL)
}

// Encode serializes t into its canonical wire form.
func Encode(t Token) (string, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// wireKeys are the only keys a token may carry. Keys are compared exactly;
// the JSON decoder alone would also accept case-folded variants.
var wireKeys = []string{"bookingId", "timestamp", "signature"}

// Parse decodes a scanned token. It does not check the signature.
func Parse(raw string) (Token, error) {
	dec := json.NewDecoder(strings.NewReader(raw))

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return Token{}, ErrMalformedToken
	}
	var trailing interface{}
	if err := dec.Decode(&trailing); err != io.EOF {
		return Token{}, ErrMalformedToken
	}

	if len(fields) != len(wireKeys) {
		return Token{}, ErrMalformedToken
	}
	for _, key := range wireKeys {
		if _, ok := fields[key]; !ok {
			return Token{}, ErrMalformedToken
		}
	}

	var t Token
	if err := json.Unmarshal(fields["bookingId"], &t.BookingID); err != nil {
		return Token{}, ErrMalformedToken
	}
	if err := json.Unmarshal(fields["timestamp"], &t.Timestamp); err != nil {
		return Token{}, ErrMalformedToken
	}
	if err := json.Unmarshal(fields["signature"], &t.Signature); err != nil {
		return Token{}, ErrMalformedToken
	}

	if t.BookingID == "" || t.Timestamp <= 0 || !isLowerHex(t.Signature) {
		return Token{}, ErrMalformedToken
	}

	return t, nil
}

func isLowerHex(s string) bool {
	if len(s) != signatureLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
