package httpclient

import (
	"net/http"

	"turf-booking/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	BreakerConsecutive = "consecutive"
	BreakerThreshold   = "threshold"
	BreakerRate        = "rate"
)

// InitCircuitBreaker builds the breaker guarding calls to other services.
// Unknown types fall back to a consecutive breaker.
func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case BreakerThreshold:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	case BreakerRate:
		return circuit.NewRateBreaker(cfg.Rate, cfg.MinSamples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.Threshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, &http.Client{})
}
