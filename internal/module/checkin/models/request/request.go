package request

type VerifyQR struct {
	QRData string `json:"qr_data" validate:"required"`
}

// BookingVerified is published on booking_verified after a first check-in.
type BookingVerified struct {
	BookingID  string `json:"booking_id"`
	CustomerID string `json:"customer_id"`
	TurfID     string `json:"turf_id"`
	VerifiedBy string `json:"verified_by"`
	VerifiedAt string `json:"verified_at"`
}
