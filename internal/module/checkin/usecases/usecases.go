package usecases

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"turf-booking/internal/module/checkin/models/entity"
	"turf-booking/internal/module/checkin/models/request"
	"turf-booking/internal/module/checkin/models/response"
	"turf-booking/internal/module/checkin/repositories"
	"turf-booking/internal/pkg/clock"
	"turf-booking/internal/pkg/errors"
	"turf-booking/internal/pkg/helpers"
	"turf-booking/internal/pkg/messagestream"
	"turf-booking/internal/pkg/qrtoken"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// CheckInLeadTime is how early before slot start a scan is accepted.
const CheckInLeadTime = 30 * time.Minute

const (
	KindInvalidCode   = "invalid_code"
	KindNotAccepted   = "not_accepted"
	KindOutsideWindow = "outside_window"
)

var (
	// ErrInvalidCode covers malformed, forged and expired tokens alike.
	ErrInvalidCode = errors.New(http.StatusBadRequest, KindInvalidCode, "invalid or expired QR code")
	ErrNotAccepted = errors.New(http.StatusBadRequest, KindNotAccepted, "booking is not accepted")
)

type usecase struct {
	repo     repositories.Repositories
	log      *otelzap.Logger
	publish  message.Publisher
	verifier *qrtoken.Verifier
	clock    clock.Clock
}

type Usecase interface {
	Verify(ctx context.Context, userID string, payload *request.VerifyQR) (response.Verification, error)
}

func New(repo repositories.Repositories, log *otelzap.Logger, publish message.Publisher, verifier *qrtoken.Verifier, clk clock.Clock) Usecase {
	return &usecase{
		repo:     repo,
		log:      log,
		publish:  publish,
		verifier: verifier,
		clock:    clk,
	}
}

func (u *usecase) Verify(ctx context.Context, userID string, payload *request.VerifyQR) (response.Verification, error) {
	token, err := u.verifier.Verify(payload.QRData)
	if err != nil {
		u.log.Ctx(ctx).Warn(fmt.Sprintf("rejected qr code: %v", err))
		return response.Verification{}, ErrInvalidCode
	}

	booking, err := u.repo.FindBookingDetailByID(ctx, token.BookingID)
	if err != nil {
		return response.Verification{}, err
	}

	if booking.TurfOwnerID != userID {
		return response.Verification{}, errors.Forbidden("only the turf owner can verify this booking")
	}

	if booking.Status != entity.StatusAccepted {
		return response.Verification{}, ErrNotAccepted
	}

	// repeat scans succeed without re-checking the window
	if booking.VerifiedAt.Valid {
		return response.Verification{Booking: toBookingResponse(booking), AlreadyVerified: true}, nil
	}

	now := u.clock.Now()
	if !withinWindow(now, booking.SlotStartTime, booking.SlotEndTime) {
		return response.Verification{}, errOutsideWindow(booking)
	}

	updated, err := u.repo.MarkVerified(ctx, booking.ID, now)
	if err != nil {
		return response.Verification{}, err
	}

	if !updated {
		return u.lostRace(ctx, booking.ID)
	}

	booking.VerifiedAt.Time, booking.VerifiedAt.Valid = now, true

	event := request.BookingVerified{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		TurfID:     booking.TurfID,
		VerifiedBy: userID,
		VerifiedAt: helpers.FormatTime(now),
	}
	if err := messagestream.PublishJSON(u.publish, messagestream.TopicBookingVerified, event); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish booking verified: %v", err))
	}

	return response.Verification{Booking: toBookingResponse(booking), AlreadyVerified: false}, nil
}

// lostRace re-reads a booking whose guarded update touched no row.
func (u *usecase) lostRace(ctx context.Context, bookingID string) (response.Verification, error) {
	booking, err := u.repo.FindBookingDetailByID(ctx, bookingID)
	if err != nil {
		return response.Verification{}, err
	}

	if booking.VerifiedAt.Valid {
		return response.Verification{Booking: toBookingResponse(booking), AlreadyVerified: true}, nil
	}

	if booking.Status != entity.StatusAccepted {
		return response.Verification{}, ErrNotAccepted
	}

	u.log.Ctx(ctx).Error(fmt.Sprintf("booking %s was not marked verified", bookingID))
	return response.Verification{}, errors.InternalServerError("error verify booking")
}

// withinWindow reports whether now lies in [start-CheckInLeadTime, end].
func withinWindow(now, start, end time.Time) bool {
	return !now.Before(start.Add(-CheckInLeadTime)) && !now.After(end)
}

func errOutsideWindow(booking entity.BookingDetail) error {
	return errors.New(http.StatusBadRequest, KindOutsideWindow,
		"check-in is only allowed from 30 minutes before the slot starts until it ends").
		WithDetails(response.OutsideWindowDetails{
			SlotTime: response.SlotTime{
				Start: helpers.FormatTime(booking.SlotStartTime),
				End:   helpers.FormatTime(booking.SlotEndTime),
			},
		})
}

func toBookingResponse(booking entity.BookingDetail) response.Booking {
	resp := response.Booking{
		ID:            booking.ID,
		BookingCode:   booking.BookingCode.String,
		Status:        booking.Status,
		PlayersCount:  booking.PlayersCount,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone.String,
		TurfName:      booking.TurfName,
		SportName:     booking.SportName,
		SlotStartTime: helpers.FormatTime(booking.SlotStartTime),
		SlotEndTime:   helpers.FormatTime(booking.SlotEndTime),
	}
	if booking.VerifiedAt.Valid {
		verifiedAt := helpers.FormatTime(booking.VerifiedAt.Time)
		resp.VerifiedAt = &verifiedAt
	}
	return resp
}
