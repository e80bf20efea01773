package main

import (
	"context"

	"turf-booking/config"
	bookingHandler "turf-booking/internal/module/booking/handler"
	bookingRepositories "turf-booking/internal/module/booking/repositories"
	bookingUsecases "turf-booking/internal/module/booking/usecases"
	checkinHandler "turf-booking/internal/module/checkin/handler"
	checkinRepositories "turf-booking/internal/module/checkin/repositories"
	checkinUsecases "turf-booking/internal/module/checkin/usecases"
	"turf-booking/internal/pkg/clock"
	"turf-booking/internal/pkg/database"
	"turf-booking/internal/pkg/http"
	"turf-booking/internal/pkg/httpclient"
	log_internal "turf-booking/internal/pkg/log"
	"turf-booking/internal/pkg/messagestream"
	"turf-booking/internal/pkg/middleware"
	"turf-booking/internal/pkg/qrtoken"
	"turf-booking/internal/pkg/redis"
	"turf-booking/internal/pkg/scheduler"
	router "turf-booking/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func main() {
	cfg := config.InitConfig()

	// init logger
	logger := log_internal.Setup()

	app, messageRouters := initService(cfg, logger)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				logger.Ctx(ctx).Fatal("Failed to run message router", zap.Error(err))
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port, logger)
}

func initService(cfg *config.Config, logger *otelzap.Logger) (*fiber.App, []*message.Router) {
	ctx := context.Background()

	secret, fallback, err := cfg.SigningSecret()
	if err != nil {
		logger.Fatal("Failed to load qr signing secret", zap.Error(err))
	}
	if fallback {
		logger.Warn("QR_SECRET is not set, using the built-in default secret")
	}

	// init database
	db := database.GetConnection(&cfg.Database, logger)
	// init redis
	redis := redis.SetupClient(&cfg.Redis, logger)
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Ctx(ctx).Fatal("Failed to create subscriber", zap.Error(err))
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Ctx(ctx).Fatal("Failed to create publisher", zap.Error(err))
	}

	// init scheduler
	sch := scheduler.Scheduler{Log: logger}
	taskClient := sch.InitClient(&cfg.Redis)

	// init qr code
	clk := clock.NewSystem()
	signer, err := qrtoken.NewSigner(secret)
	if err != nil {
		logger.Ctx(ctx).Fatal("Failed to create qr signer", zap.Error(err))
	}
	issuer := qrtoken.NewIssuer(signer, clk)
	verifier := qrtoken.NewVerifier(signer, clk)

	validator := validator.New()

	bookingRepo := bookingRepositories.New(db, logger, httpClient, redis, &cfg.UserService, taskClient)
	bookingUsecase := bookingUsecases.New(bookingRepo, logger, publisher, issuer, clk)
	bookingHandler := bookingHandler.BookingHandler{
		Log:       logger,
		Validator: validator,
		Usecase:   bookingUsecase,
	}

	checkinRepo := checkinRepositories.New(db, logger)
	checkinUsecase := checkinUsecases.New(checkinRepo, logger, publisher, verifier, clk)
	checkinHandler := checkinHandler.CheckinHandler{
		Log:       logger,
		Validator: validator,
		Usecase:   checkinUsecase,
	}

	middleware := middleware.Middleware{
		Log:  logger,
		Repo: bookingRepo,
	}

	var messageRouters []*message.Router

	consumeReissueQueueRouter, err := messagestream.NewRouter(publisher, messagestream.TopicBookingQRReissuePoisoned, "booking_qr_reissue_handler", messagestream.TopicBookingQRReissue, subscriber, bookingHandler.ConsumeReissueQueue)
	if err != nil {
		logger.Ctx(ctx).Fatal("Failed to create booking_qr_reissue router", zap.Error(err))
	}

	messageRouters = append(messageRouters, consumeReissueQueueRouter)

	// start scheduler
	go sch.StartHandler(&cfg.Redis, cfg.Scheduler.Concurrency,
		[]string{scheduler.TypeSendCheckInReminder},
		[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.SendCheckInReminder},
	)
	go sch.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringPort)

	serverHttp := http.SetupHttpEngine(&cfg.HttpServer)

	r := router.Initialize(serverHttp, &bookingHandler, &checkinHandler, &middleware)

	return r, messageRouters

}
