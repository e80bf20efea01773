package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"turf-booking/internal/module/booking/models/entity"
	"turf-booking/internal/module/booking/models/request"
	"turf-booking/internal/module/booking/models/response"
	"turf-booking/internal/module/booking/repositories"
	"turf-booking/internal/pkg/clock"
	"turf-booking/internal/pkg/errors"
	"turf-booking/internal/pkg/helpers"
	"turf-booking/internal/pkg/messagestream"
	"turf-booking/internal/pkg/qrtoken"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// ReminderLeadTime is how long before slot start the customer receives a
// fresh check-in code.
const ReminderLeadTime = 2 * time.Hour

type usecase struct {
	repo    repositories.Repositories
	log     *otelzap.Logger
	publish message.Publisher
	issuer  *qrtoken.Issuer
	clock   clock.Clock
}

type Usecase interface {
	// http
	UpdateStatus(ctx context.Context, bookingID, userID string, payload *request.UpdateStatus) (response.Booking, error)
	GetCode(ctx context.Context, bookingID, userID string) (response.QRCode, error)
	RefreshCode(ctx context.Context, bookingID, userID string) (response.QRCode, error)
	// consumer
	ReissueCode(ctx context.Context, payload *request.ReissueCode) (response.QRCode, error)
	// scheduler
	SendCheckInReminder(ctx context.Context, payload *request.CheckInReminder) error
}

func New(repo repositories.Repositories, log *otelzap.Logger, publish message.Publisher, issuer *qrtoken.Issuer, clk clock.Clock) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		issuer:  issuer,
		clock:   clk,
	}
}

func (u *usecase) UpdateStatus(ctx context.Context, bookingID, userID string, payload *request.UpdateStatus) (response.Booking, error) {
	booking, err := u.repo.FindBookingDetailByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	if booking.TurfOwnerID != userID {
		return response.Booking{}, errors.Forbidden("only the turf owner can update this booking")
	}

	if booking.VerifiedAt.Valid {
		return response.Booking{}, errors.BadRequest("booking already checked in")
	}

	now := u.clock.Now()
	update := entity.StatusUpdate{
		ID:          booking.ID,
		Status:      payload.Status,
		BookingCode: booking.BookingCode,
		UpdatedAt:   now,
	}

	// a QR code only exists while the booking is accepted
	if payload.Status == entity.StatusAccepted {
		code, err := u.issuer.IssueCode(booking.ID)
		if err != nil {
			u.log.Ctx(ctx).Error(fmt.Sprintf("error issue qr code: %v", err))
			return response.Booking{}, errors.InternalServerError("error issue qr code")
		}
		update.QRCodeData = sql.NullString{String: code.DataURL, Valid: true}
		if !update.BookingCode.Valid {
			update.BookingCode = sql.NullString{String: newBookingCode(), Valid: true}
		}
	}

	if err := u.repo.UpdateBookingStatus(ctx, update); err != nil {
		return response.Booking{}, err
	}

	booking.Status = update.Status
	booking.BookingCode = update.BookingCode
	booking.QRCodeData = update.QRCodeData
	booking.UpdatedAt = now

	if booking.Status == entity.StatusAccepted {
		u.scheduleReminder(ctx, booking)
	}

	event := request.BookingStatusChanged{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		TurfID:     booking.TurfID,
		Status:     booking.Status,
		ChangedAt:  helpers.FormatTime(now),
	}
	if err := messagestream.PublishJSON(u.publish, messagestream.TopicBookingStatusChanged, event); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish booking status changed: %v", err))
	}

	return toBookingResponse(booking), nil
}

func (u *usecase) GetCode(ctx context.Context, bookingID, userID string) (response.QRCode, error) {
	booking, err := u.repo.FindBookingDetailByID(ctx, bookingID)
	if err != nil {
		return response.QRCode{}, err
	}

	if !canAccessCode(booking, userID) {
		return response.QRCode{}, errors.Forbidden("you are not allowed to view this booking")
	}

	if booking.Status != entity.StatusAccepted || !booking.QRCodeData.Valid {
		return response.QRCode{}, errors.NotFound("qr code not available")
	}

	return response.QRCode{
		BookingID:   booking.ID,
		BookingCode: booking.BookingCode.String,
		QRCodeData:  booking.QRCodeData.String,
	}, nil
}

func (u *usecase) RefreshCode(ctx context.Context, bookingID, userID string) (response.QRCode, error) {
	booking, err := u.repo.FindBookingDetailByID(ctx, bookingID)
	if err != nil {
		return response.QRCode{}, err
	}

	if !canAccessCode(booking, userID) {
		return response.QRCode{}, errors.Forbidden("you are not allowed to view this booking")
	}

	return u.reissue(ctx, booking)
}

func (u *usecase) ReissueCode(ctx context.Context, payload *request.ReissueCode) (response.QRCode, error) {
	booking, err := u.repo.FindBookingDetailByID(ctx, payload.BookingID)
	if err != nil {
		return response.QRCode{}, err
	}

	return u.reissue(ctx, booking)
}

func (u *usecase) SendCheckInReminder(ctx context.Context, payload *request.CheckInReminder) error {
	booking, err := u.repo.FindBookingDetailByID(ctx, payload.BookingID)
	if err != nil {
		return err
	}

	// rejected or already checked in since the reminder was scheduled
	if booking.Status != entity.StatusAccepted || booking.VerifiedAt.Valid {
		u.log.Ctx(ctx).Info(fmt.Sprintf("skip check-in reminder for booking %s", booking.ID))
		return nil
	}

	if _, err := u.reissue(ctx, booking); err != nil {
		return err
	}

	notification := request.NotificationMessage{
		Recipient: booking.CustomerID,
		BookingID: booking.ID,
		Message: fmt.Sprintf("Your booking at %s starts at %s. Show your check-in QR code at the venue.",
			booking.TurfName, helpers.FormatTime(booking.SlotStartTime)),
	}
	if err := messagestream.PublishJSON(u.publish, messagestream.TopicNotification, notification); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish check-in reminder: %v", err))
		return errors.InternalServerError("error publish check-in reminder")
	}

	return nil
}

func (u *usecase) reissue(ctx context.Context, booking entity.BookingDetail) (response.QRCode, error) {
	if booking.Status != entity.StatusAccepted {
		return response.QRCode{}, errors.BadRequest("booking is not accepted")
	}
	if booking.VerifiedAt.Valid {
		return response.QRCode{}, errors.BadRequest("booking already checked in")
	}

	code, err := u.issuer.IssueCode(booking.ID)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error issue qr code: %v", err))
		return response.QRCode{}, errors.InternalServerError("error issue qr code")
	}

	if err := u.repo.UpdateQRCode(ctx, booking.ID, code.DataURL, u.clock.Now()); err != nil {
		return response.QRCode{}, err
	}

	return response.QRCode{
		BookingID:   booking.ID,
		BookingCode: booking.BookingCode.String,
		QRCodeData:  code.DataURL,
		ExpiresAt:   helpers.FormatTime(code.Token.ExpiresAt()),
	}, nil
}

func (u *usecase) scheduleReminder(ctx context.Context, booking entity.BookingDetail) {
	processAt := booking.SlotStartTime.Add(-ReminderLeadTime)
	if now := u.clock.Now(); processAt.Before(now) {
		processAt = now
	}

	payload, err := json.Marshal(request.CheckInReminder{BookingID: booking.ID})
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error marshal check-in reminder: %v", err))
		return
	}

	if _, err := u.repo.SetTaskScheduler(ctx, booking.ID, processAt, payload); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error schedule check-in reminder: %v", err))
	}
}

func canAccessCode(booking entity.BookingDetail, userID string) bool {
	return booking.CustomerID == userID || booking.TurfOwnerID == userID
}

func newBookingCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func toBookingResponse(booking entity.BookingDetail) response.Booking {
	resp := response.Booking{
		ID:            booking.ID,
		CustomerID:    booking.CustomerID,
		CustomerName:  booking.CustomerName,
		TurfID:        booking.TurfID,
		TurfName:      booking.TurfName,
		SportName:     booking.SportName,
		SlotStartTime: helpers.FormatTime(booking.SlotStartTime),
		SlotEndTime:   helpers.FormatTime(booking.SlotEndTime),
		PlayersCount:  booking.PlayersCount,
		Status:        booking.Status,
		BookingCode:   booking.BookingCode.String,
		QRCodeData:    booking.QRCodeData.String,
	}
	if booking.VerifiedAt.Valid {
		verifiedAt := helpers.FormatTime(booking.VerifiedAt.Time)
		resp.VerifiedAt = &verifiedAt
	}
	return resp
}
