package qrtoken

import "turf-booking/internal/pkg/clock"

type Verifier struct {
	signer *Signer
	clock  clock.Clock
}

func NewVerifier(signer *Signer, clk clock.Clock) *Verifier {
	return &Verifier{
		signer: signer,
		clock:  clk,
	}
}

// Verify parses raw and checks its signature, then its age. The signature
// is checked first so a forged token never reports as merely expired.
// A token exactly TTL old is still valid.
func (v *Verifier) Verify(raw string) (Token, error) {
	token, err := Parse(raw)
	if err != nil {
		return Token{}, err
	}

	if !v.signer.Valid(token) {
		return Token{}, ErrInvalidSignature
	}

	if v.clock.Now().UnixMilli()-token.Timestamp > TTL.Milliseconds() {
		return Token{}, ErrExpired
	}

	return token, nil
}
