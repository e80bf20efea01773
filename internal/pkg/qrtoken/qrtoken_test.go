package qrtoken_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"
	"time"

	"turf-booking/internal/pkg/clock"
	"turf-booking/internal/pkg/qrtoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

var issuedAt = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func newSigner(t *testing.T) *qrtoken.Signer {
	t.Helper()
	signer, err := qrtoken.NewSigner(testSecret)
	require.NoError(t, err)
	return signer
}

func issue(t *testing.T, signer *qrtoken.Signer, bookingID string) string {
	t.Helper()
	token, err := qrtoken.NewIssuer(signer, clock.NewFixed(issuedAt)).Issue(bookingID)
	require.NoError(t, err)
	payload, err := qrtoken.Encode(token)
	require.NoError(t, err)
	return payload
}

func TestNewSigner(t *testing.T) {
	_, err := qrtoken.NewSigner("")
	assert.Equal(t, qrtoken.ErrEmptySecret, err)
}

func TestSigner_Sign(t *testing.T) {
	signer := newSigner(t)

	sig := signer.Sign("booking-1", 1700000000000)
	assert.Len(t, sig, 64)
	assert.Equal(t, strings.ToLower(sig), sig)
	assert.Equal(t, sig, signer.Sign("booking-1", 1700000000000))
	assert.NotEqual(t, sig, signer.Sign("booking-1", 1700000000001))
	assert.NotEqual(t, sig, signer.Sign("booking-2", 1700000000000))

	other, err := qrtoken.NewSigner("another-secret")
	require.NoError(t, err)
	assert.NotEqual(t, sig, other.Sign("booking-1", 1700000000000))
}

func TestIssuer_Issue(t *testing.T) {
	signer := newSigner(t)
	issuer := qrtoken.NewIssuer(signer, clock.NewFixed(issuedAt))

	t.Run("stamps current time and signs", func(t *testing.T) {
		token, err := issuer.Issue("booking-1")
		require.NoError(t, err)

		assert.Equal(t, "booking-1", token.BookingID)
		assert.Equal(t, issuedAt.UnixMilli(), token.Timestamp)
		assert.True(t, signer.Valid(token))
		assert.Equal(t, issuedAt, token.IssuedAt())
		assert.Equal(t, issuedAt.Add(24*time.Hour), token.ExpiresAt())
	})

	t.Run("empty booking id", func(t *testing.T) {
		_, err := issuer.Issue("")
		assert.Equal(t, qrtoken.ErrEmptyBookingID, err)
	})

	t.Run("reissue later yields a different signature", func(t *testing.T) {
		first, err := issuer.Issue("booking-1")
		require.NoError(t, err)
		second, err := qrtoken.NewIssuer(signer, clock.NewFixed(issuedAt.Add(time.Minute))).Issue("booking-1")
		require.NoError(t, err)

		assert.NotEqual(t, first.Signature, second.Signature)
		assert.True(t, second.ExpiresAt().After(first.ExpiresAt()))
	})
}

func TestEncode(t *testing.T) {
	payload, err := qrtoken.Encode(qrtoken.Token{
		BookingID: "b1",
		Timestamp: 1700000000000,
		Signature: strings.Repeat("a", 64),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"bookingId":"b1","timestamp":1700000000000,"signature":"`+strings.Repeat("a", 64)+`"}`, payload)
}

func TestParse(t *testing.T) {
	sig := strings.Repeat("0f", 32)

	testCases := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"valid", `{"bookingId":"b1","timestamp":1700000000000,"signature":"` + sig + `"}`, nil},
		{"not json", `booking b1`, qrtoken.ErrMalformedToken},
		{"empty", ``, qrtoken.ErrMalformedToken},
		{"missing signature", `{"bookingId":"b1","timestamp":1700000000000}`, qrtoken.ErrMalformedToken},
		{"missing timestamp", `{"bookingId":"b1","signature":"` + sig + `"}`, qrtoken.ErrMalformedToken},
		{"empty booking id", `{"bookingId":"","timestamp":1700000000000,"signature":"` + sig + `"}`, qrtoken.ErrMalformedToken},
		{"string timestamp", `{"bookingId":"b1","timestamp":"1700000000000","signature":"` + sig + `"}`, qrtoken.ErrMalformedToken},
		{"negative timestamp", `{"bookingId":"b1","timestamp":-1,"signature":"` + sig + `"}`, qrtoken.ErrMalformedToken},
		{"uppercase signature", `{"bookingId":"b1","timestamp":1700000000000,"signature":"` + strings.ToUpper(sig) + `"}`, qrtoken.ErrMalformedToken},
		{"short signature", `{"bookingId":"b1","timestamp":1700000000000,"signature":"abc"}`, qrtoken.ErrMalformedToken},
		{"unknown field", `{"bookingId":"b1","timestamp":1700000000000,"signature":"` + sig + `","v":1}`, qrtoken.ErrMalformedToken},
		{"legacy hash field", `{"bookingId":"b1","timestamp":1700000000000,"hash":"` + sig + `"}`, qrtoken.ErrMalformedToken},
		{"case-folded booking id key", `{"BookingId":"b1","timestamp":1700000000000,"signature":"` + sig + `"}`, qrtoken.ErrMalformedToken},
		{"case-folded timestamp key", `{"bookingId":"b1","timeStamp":1700000000000,"signature":"` + sig + `"}`, qrtoken.ErrMalformedToken},
		{"case-folded signature key", `{"bookingId":"b1","timestamp":1700000000000,"signaturE":"` + sig + `"}`, qrtoken.ErrMalformedToken},
		{"null booking id", `{"bookingId":null,"timestamp":1700000000000,"signature":"` + sig + `"}`, qrtoken.ErrMalformedToken},
		{"fractional timestamp", `{"bookingId":"b1","timestamp":1.5,"signature":"` + sig + `"}`, qrtoken.ErrMalformedToken},
		{"whitespace between fields", `{ "bookingId": "b1", "timestamp": 1700000000000, "signature": "` + sig + `" }`, nil},
		{"trailing data", `{"bookingId":"b1","timestamp":1700000000000,"signature":"` + sig + `"}{}`, qrtoken.ErrMalformedToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := qrtoken.Parse(tc.raw)
			assert.Equal(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, qrtoken.Token{BookingID: "b1", Timestamp: 1700000000000, Signature: sig}, token)
			}
		})
	}
}

func TestVerifier_Verify(t *testing.T) {
	signer := newSigner(t)
	payload := issue(t, signer, "booking-1")

	testCases := []struct {
		name    string
		raw     string
		now     time.Time
		wantErr error
	}{
		{"fresh token", payload, issuedAt, nil},
		{"exactly at expiry", payload, issuedAt.Add(24 * time.Hour), nil},
		{"one millisecond past expiry", payload, issuedAt.Add(24*time.Hour + time.Millisecond), qrtoken.ErrExpired},
		{"malformed", "not-a-token", issuedAt, qrtoken.ErrMalformedToken},
		{
			"forged booking id",
			strings.Replace(payload, `"booking-1"`, `"booking-2"`, 1),
			issuedAt,
			qrtoken.ErrInvalidSignature,
		},
		{
			"expired and forged reports signature",
			strings.Replace(payload, `"booking-1"`, `"booking-2"`, 1),
			issuedAt.Add(48 * time.Hour),
			qrtoken.ErrInvalidSignature,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verifier := qrtoken.NewVerifier(signer, clock.NewFixed(tc.now))
			token, err := verifier.Verify(tc.raw)
			assert.Equal(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, "booking-1", token.BookingID)
			}
		})
	}

	t.Run("wrong secret", func(t *testing.T) {
		other, err := qrtoken.NewSigner("other-secret")
		require.NoError(t, err)

		_, err = qrtoken.NewVerifier(other, clock.NewFixed(issuedAt)).Verify(payload)
		assert.Equal(t, qrtoken.ErrInvalidSignature, err)
	})
}

func TestVerifier_EveryByteMutationRejected(t *testing.T) {
	signer := newSigner(t)
	payload := issue(t, signer, "3f2c8a56-0d1e-4b7a-9c11-5e6f7a8b9c0d")
	verifier := qrtoken.NewVerifier(signer, clock.NewFixed(issuedAt.Add(time.Hour)))

	for i := 0; i < len(payload); i++ {
		// 0x20 flips letter case
		for _, mask := range []byte{0x01, 0x20, 0x80} {
			mutated := []byte(payload)
			mutated[i] ^= mask

			_, err := verifier.Verify(string(mutated))
			if err != qrtoken.ErrMalformedToken && err != qrtoken.ErrInvalidSignature {
				t.Fatalf("byte %d mask %#x (%s): expected malformed or invalid signature, got %v", i, mask, mutated, err)
			}
		}

		for c := byte(0x20); c < 0x7f; c++ {
			if c == payload[i] {
				continue
			}
			mutated := []byte(payload)
			mutated[i] = c

			_, err := verifier.Verify(string(mutated))
			if err != qrtoken.ErrMalformedToken && err != qrtoken.ErrInvalidSignature {
				t.Fatalf("byte %d replaced with %q (%s): expected malformed or invalid signature, got %v", i, c, mutated, err)
			}
		}
	}
}

func TestIssuer_IssueCode(t *testing.T) {
	signer := newSigner(t)
	issuer := qrtoken.NewIssuer(signer, clock.NewFixed(issuedAt))

	code, err := issuer.IssueCode("booking-1")
	require.NoError(t, err)

	encoded, err := qrtoken.Encode(code.Token)
	require.NoError(t, err)
	assert.Equal(t, encoded, code.Payload)
	require.True(t, strings.HasPrefix(code.DataURL, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(code.DataURL, "data:image/png;base64,"))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 300, bounds.Dx())
	assert.Equal(t, 300, bounds.Dy())

	// quiet zone corner is white
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})

	_, err = qrtoken.NewVerifier(signer, clock.NewFixed(issuedAt)).Verify(code.Payload)
	assert.NoError(t, err)
}
