package response

type UserServiceValidate struct {
	IsValid   bool   `json:"is_valid"`
	UserID    string `json:"user_id"`
	EmailUser string `json:"email_user"`
}

type Booking struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	TurfID        string  `json:"turf_id"`
	TurfName      string  `json:"turf_name"`
	SportName     string  `json:"sport_name"`
	SlotStartTime string  `json:"slot_start_time"`
	SlotEndTime   string  `json:"slot_end_time"`
	PlayersCount  int     `json:"players_count"`
	Status        string  `json:"status"`
	BookingCode   string  `json:"booking_code,omitempty"`
	QRCodeData    string  `json:"qr_code_data,omitempty"`
	VerifiedAt    *string `json:"verified_at,omitempty"`
}

type QRCode struct {
	BookingID   string `json:"booking_id"`
	BookingCode string `json:"booking_code,omitempty"`
	QRCodeData  string `json:"qr_code_data"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}
