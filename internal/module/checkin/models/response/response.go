package response

type Booking struct {
	ID            string  `json:"id"`
	BookingCode   string  `json:"booking_code,omitempty"`
	Status        string  `json:"status"`
	PlayersCount  int     `json:"players_count"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone,omitempty"`
	TurfName      string  `json:"turf_name"`
	SportName     string  `json:"sport_name"`
	SlotStartTime string  `json:"slot_start_time"`
	SlotEndTime   string  `json:"slot_end_time"`
	VerifiedAt    *string `json:"verified_at"`
}

type Verification struct {
	Booking         Booking `json:"booking"`
	AlreadyVerified bool    `json:"already_verified"`
}

type SlotTime struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// OutsideWindowDetails is attached to outside_window errors.
type OutsideWindowDetails struct {
	SlotTime SlotTime `json:"slot_time"`
}
