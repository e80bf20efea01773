package repositories

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"turf-booking/config"
	"turf-booking/internal/module/booking/models/entity"
	"turf-booking/internal/module/booking/models/response"
	"turf-booking/internal/pkg/errors"
	"turf-booking/internal/pkg/scheduler"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const tokenCachePrefix = "auth:token:"

const findBookingDetailQuery = `SELECT b.id, b.customer_id, b.turf_id, b.sport_id, b.slot_id, b.players_count, b.status,
	b.booking_code, b.qr_code_data, b.verified_at, b.created_at, b.updated_at,
	t.owner_id AS turf_owner_id, t.name AS turf_name, s.name AS sport_name,
	sl.start_time AS slot_start_time, sl.end_time AS slot_end_time,
	p.name AS customer_name, p.phone AS customer_phone
FROM bookings b
JOIN turfs t ON t.id = b.turf_id
JOIN sports s ON s.id = b.sport_id
JOIN slots sl ON sl.id = b.slot_id
JOIN profiles p ON p.id = b.customer_id
WHERE b.id = $1`

type repositories struct {
	db             *sqlx.DB
	log            *otelzap.Logger
	httpClient     *circuit.HTTPClient
	cfgUserService *config.UserServiceConfig
	redisClient    *redis.Client
	taskClient     *asynq.Client
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	// db
	FindBookingDetailByID(ctx context.Context, bookingID string) (entity.BookingDetail, error)
	UpdateBookingStatus(ctx context.Context, update entity.StatusUpdate) error
	UpdateQRCode(ctx context.Context, bookingID, qrCodeData string, updatedAt time.Time) error
	// scheduler
	SetTaskScheduler(ctx context.Context, bookingID string, processAt time.Time, payload []byte) (string, error)
}

func New(db *sqlx.DB, log *otelzap.Logger, httpClient *circuit.HTTPClient, redisClient *redis.Client, cfgUserService *config.UserServiceConfig, taskClient *asynq.Client) Repositories {
	return &repositories{
		db:             db,
		log:            log,
		httpClient:     httpClient,
		cfgUserService: cfgUserService,
		redisClient:    redisClient,
		taskClient:     taskClient,
	}
}

// FindBookingDetailByID implements Repositories.
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

// UpdateBookingStatus implements Repositories. Checked-in bookings are never
// touched.
func (r *repositories) UpdateBookingStatus(ctx context.Context, update entity.StatusUpdate) error {
	query := `UPDATE bookings
		SET status = :status, booking_code = :booking_code, qr_code_data = :qr_code_data, updated_at = :updated_at
		WHERE id = :id AND verified_at IS NULL`

	result, err := r.db.NamedExecContext(ctx, query, update)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update booking status: %v", err))
		return errors.InternalServerError("error update booking status")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error update booking status")
	}
	// checked in or removed since it was read
	if affected == 0 {
		return errors.BadRequest("booking can no longer be updated")
	}
	return nil
}

// UpdateQRCode implements Repositories. Only accepted bookings that have not
// been checked in receive a new code.
func (r *repositories) UpdateQRCode(ctx context.Context, bookingID, qrCodeData string, updatedAt time.Time) error {
	query := `UPDATE bookings SET qr_code_data = $2, updated_at = $3
		WHERE id = $1 AND status = 'accepted' AND verified_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, bookingID, qrCodeData, updatedAt)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update qr code: %v", err))
		return errors.InternalServerError("error update qr code")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error update qr code")
	}
	if affected == 0 {
		return errors.BadRequest("booking is no longer eligible for a new qr code")
	}
	return nil
}

// SetTaskScheduler implements Repositories. One reminder is kept per
// booking; scheduling it again is a no-op.
func (r *repositories) SetTaskScheduler(ctx context.Context, bookingID string, processAt time.Time, payload []byte) (string, error) {
	taskID := fmt.Sprintf("%s:%s", scheduler.TypeSendCheckInReminder, bookingID)
	task := asynq.NewTask(scheduler.TypeSendCheckInReminder, payload, asynq.MaxRetry(3), asynq.TaskID(taskID))

	info, err := r.taskClient.EnqueueContext(ctx, task, asynq.ProcessAt(processAt))
	if err == asynq.ErrTaskIDConflict {
		return taskID, nil
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error enqueue task: %v", err))
		return "", errors.InternalServerError("error set task scheduler")
	}
	return info.ID, nil
}

func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	cacheKey := tokenCacheKey(token)

	if cached, err := r.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var respData response.UserServiceValidate
		if err := json.Unmarshal([]byte(cached), &respData); err == nil && respData.IsValid {
			return respData, nil
		}
	} else if err != redis.Nil {
		r.log.Ctx(ctx).Warn(fmt.Sprintf("error read token cache: %v", err))
	}

	// http call to user service
	endpoint := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", r.cfgUserService.Host, r.cfgUserService.Port, url.QueryEscape(token))
	resp, err := r.httpClient.Get(endpoint)
	if err != nil {
		return response.UserServiceValidate{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Ctx(ctx).Error(fmt.Sprintf("invalid token, user service status %d", resp.StatusCode))
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.UserServiceValidate{}, err
	}

	if !respData.IsValid || respData.UserID == "" {
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	if data, err := json.Marshal(respData); err == nil {
		if err := r.redisClient.Set(ctx, cacheKey, string(data), r.cfgUserService.CacheTTL).Err(); err != nil {
			r.log.Ctx(ctx).Warn(fmt.Sprintf("error write token cache: %v", err))
		}
	}

	return respData, nil
}

func tokenCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return tokenCachePrefix + hex.EncodeToString(sum[:])
}
