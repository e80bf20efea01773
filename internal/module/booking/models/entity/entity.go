package entity

import (
	"database/sql"
	"time"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type Booking struct {
	ID           string         `db:"id"`
	CustomerID   string         `db:"customer_id"`
	TurfID       string         `db:"turf_id"`
	SportID      string         `db:"sport_id"`
	SlotID       string         `db:"slot_id"`
	PlayersCount int            `db:"players_count"`
	Status       string         `db:"status"`
	BookingCode  sql.NullString `db:"booking_code"`
	QRCodeData   sql.NullString `db:"qr_code_data"`
	VerifiedAt   sql.NullTime   `db:"verified_at"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// BookingDetail is a booking joined with the rows needed to authorize and
// present it.
type BookingDetail struct {
	Booking
	TurfOwnerID   string         `db:"turf_owner_id"`
	TurfName      string         `db:"turf_name"`
	SportName     string         `db:"sport_name"`
	SlotStartTime time.Time      `db:"slot_start_time"`
	SlotEndTime   time.Time      `db:"slot_end_time"`
	CustomerName  string         `db:"customer_name"`
	CustomerPhone sql.NullString `db:"customer_phone"`
}

type StatusUpdate struct {
	ID          string         `db:"id"`
	Status      string         `db:"status"`
	BookingCode sql.NullString `db:"booking_code"`
	QRCodeData  sql.NullString `db:"qr_code_data"`
	UpdatedAt   time.Time      `db:"updated_at"`
}
