package scheduler

import (
	"context"
	"fmt"
	"net/http"

	"turf-booking/config"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	TypeSendCheckInReminder = "send_checkin_reminder"
)

type Scheduler struct {
	Log *otelzap.Logger
}

func redisConnOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// StartMonitoring serves the asynqmon dashboard under /monitoring on port.
func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig, port string) {
	ctx := context.Background()
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisConnOpt(cfg),
	})

	mux := http.NewServeMux()
	// trailing slash is required by net/http.ServeMux
	mux.Handle(h.RootPath()+"/", h)

	err := http.ListenAndServe(fmt.Sprintf(":%s", port), mux)
	s.Log.Ctx(ctx).Error(fmt.Sprintf("error start monitoring scheduler: %v", err))
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisConnOpt(cfg))
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, concurrency int, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	ctx := context.Background()
	srv := asynq.NewServer(
		redisConnOpt(cfg),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)

	mux := asynq.NewServeMux()
	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Ctx(ctx).Error(fmt.Sprintf("error start handler scheduler: %v", err))
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}
