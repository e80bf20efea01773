package entity

import (
	"database/sql"
	"time"
)

const StatusAccepted = "accepted"

// BookingDetail is the read model a venue scan is checked against.
type BookingDetail struct {
	ID            string         `db:"id"`
	CustomerID    string         `db:"customer_id"`
	TurfID        string         `db:"turf_id"`
	PlayersCount  int            `db:"players_count"`
	Status        string         `db:"status"`
	BookingCode   sql.NullString `db:"booking_code"`
	VerifiedAt    sql.NullTime   `db:"verified_at"`
	TurfOwnerID   string         `db:"turf_owner_id"`
	TurfName      string         `db:"turf_name"`
	SportName     string         `db:"sport_name"`
	SlotStartTime time.Time      `db:"slot_start_time"`
	SlotEndTime   time.Time      `db:"slot_end_time"`
	CustomerName  string         `db:"customer_name"`
	CustomerPhone sql.NullString `db:"customer_phone"`
}
