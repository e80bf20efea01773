package request

type UpdateStatus struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// ReissueCode is consumed from the booking_qr_reissue queue.
type ReissueCode struct {
	BookingID string `json:"booking_id" validate:"required"`
}

// CheckInReminder is the asynq payload scheduled when a booking is accepted.
type CheckInReminder struct {
	BookingID string `json:"booking_id" validate:"required"`
}

type BookingStatusChanged struct {
	BookingID  string `json:"booking_id"`
	CustomerID string `json:"customer_id"`
	TurfID     string `json:"turf_id"`
	Status     string `json:"status"`
	ChangedAt  string `json:"changed_at"`
}

type NotificationMessage struct {
	Recipient string `json:"recipient" validate:"required"`
	BookingID string `json:"booking_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}
