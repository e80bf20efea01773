package qrtoken

import "turf-booking/internal/pkg/clock"

// Code is an issued token together with its serialized and rendered forms.
type Code struct {
	Token   Token
	Payload string
	DataURL string
}

type Issuer struct {
	signer *Signer
	clock  clock.Clock
}

func NewIssuer(signer *Signer, clk clock.Clock) *Issuer {
	return &Issuer{
		signer: signer,
		clock:  clk,
	}
}

// Issue signs a fresh token for bookingID stamped with the current time.
func (i *Issuer) Issue(bookingID string) (Token, error) {
	if bookingID == "" {
		return Token{}, ErrEmptyBookingID
	}

	timestamp := i.clock.Now().UnixMilli()
	return Token{
		BookingID: bookingID,
		Timestamp: timestamp,
		Signature: i.signer.Sign(bookingID, timestamp),
	}, nil
}

// IssueCode issues a token and renders it as a QR code image.
func (i *Issuer) IssueCode(bookingID string) (Code, error) {
	token, err := i.Issue(bookingID)
	if err != nil {
		return Code{}, err
	}

	payload, err := Encode(token)
	if err != nil {
		return Code{}, err
	}

	dataURL, err := Render(payload)
	if err != nil {
		return Code{}, err
	}

	return Code{
		Token:   token,
		Payload: payload,
		DataURL: dataURL,
	}, nil
}
