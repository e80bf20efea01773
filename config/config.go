package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const DefaultQRSecret = "turf-booking-qr-secret-key"

type Config struct {
	App           AppConfig           `envconfig:"APP"`
	HttpServer    HttpServerConfig    `envconfig:"HTTP"`
	Database      DatabaseConfig      `envconfig:"DB"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	HttpClient    HttpClientConfig    `envconfig:"HTTP_CLIENT"`
	MessageStream MessageStreamConfig `envconfig:"AMQP"`
	UserService   UserServiceConfig   `envconfig:"USER_SERVICE"`
	Scheduler     SchedulerConfig     `envconfig:"SCHEDULER"`
	QRCode        QRCodeConfig        `envconfig:"QR"`
}

type AppConfig struct {
	Name string `envconfig:"NAME" default:"turf-booking"`
	Env  string `envconfig:"ENV" default:"development"`
}

type HttpServerConfig struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:"postgres"`
	Name            string        `envconfig:"NAME" default:"turf_booking"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

type HttpClientConfig struct {
	// Type selects the breaker: consecutive, threshold or rate.
	Type       string        `envconfig:"TYPE" default:"consecutive"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"5s"`
	Threshold  int64         `envconfig:"THRESHOLD" default:"5"`
	Rate       float64       `envconfig:"RATE" default:"0.5"`
	MinSamples int64         `envconfig:"MIN_SAMPLES" default:"10"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
}

type UserServiceConfig struct {
	Host     string        `envconfig:"HOST" default:"localhost"`
	Port     string        `envconfig:"PORT" default:"8081"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"5m"`
}

type SchedulerConfig struct {
	MonitoringPort string `envconfig:"MONITORING_PORT" default:"8082"`
	Concurrency    int    `envconfig:"CONCURRENCY" default:"10"`
}

type QRCodeConfig struct {
	Secret string `envconfig:"SECRET"`
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// SigningSecret returns the configured QR secret, falling back to DefaultQRSecret
// outside production. The boolean reports whether the fallback was used.
func (c *Config) SigningSecret() (string, bool, error) {
	if c.QRCode.Secret != "" {
		return c.QRCode.Secret, false, nil
	}
	if c.IsProduction() {
		return "", false, ErrMissingQRSecret
	}
	return DefaultQRSecret, true, nil
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}
	return &cfg
}
