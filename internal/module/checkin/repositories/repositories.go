package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"turf-booking/internal/module/checkin/models/entity"
	"turf-booking/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const findBookingDetailQuery = `SELECT b.id, b.customer_id, b.turf_id, b.players_count, b.status, b.booking_code, b.verified_at,
	t.owner_id AS turf_owner_id, t.name AS turf_name, s.name AS sport_name,
	sl.start_time AS slot_start_time, sl.end_time AS slot_end_time,
	p.name AS customer_name, p.phone AS customer_phone
FROM bookings b
JOIN turfs t ON t.id = b.turf_id
JOIN sports s ON s.id = b.sport_id
JOIN slots sl ON sl.id = b.slot_id
JOIN profiles p ON p.id = b.customer_id
WHERE b.id = $1`

const markVerifiedQuery = `UPDATE bookings SET verified_at = $2, updated_at = $2
WHERE id = $1 AND status = 'accepted' AND verified_at IS NULL`

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

type Repositories interface {
	FindBookingDetailByID(ctx context.Context, bookingID string) (entity.BookingDetail, error)
	// MarkVerified reports false when another scan already set verified_at.
	MarkVerified(ctx context.Context, bookingID string, verifiedAt time.Time) (bool, error)
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

func (r *repositories) FindBookingDetailByID(ctx context.Context, bookingID string) (entity.BookingDetail, error) {
	var booking entity.BookingDetail
	err := r.db.GetContext(ctx, &booking, findBookingDetailQuery, bookingID)
	if err == sql.ErrNoRows {
		return entity.BookingDetail{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find booking detail: %v", err))
		return entity.BookingDetail{}, errors.InternalServerError("error find booking by id")
	}

	return booking, nil
}

func (r *repositories) MarkVerified(ctx context.Context, bookingID string, verifiedAt time.Time) (bool, error) {
	result, err := r.db.ExecContext(ctx, markVerifiedQuery, bookingID, verifiedAt)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error mark booking verified: %v", err))
		return false, errors.InternalServerError("error verify booking")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error read affected rows: %v", err))
		return false, errors.InternalServerError("error verify booking")
	}

	return rows == 1, nil
}
