package qrtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

type Signer struct {
	secret []byte
}

func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Sign returns the lowercase hex HMAC-SHA256 of "bookingID-timestamp".
func (s *Signer) Sign(bookingID string, timestamp int64) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(bookingID + "-" + strconv.FormatInt(timestamp, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Signer) Valid(t Token) bool {
	expected := s.Sign(t.BookingID, t.Timestamp)
	return hmac.Equal([]byte(expected), []byte(t.Signature))
}
