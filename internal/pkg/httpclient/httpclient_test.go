package httpclient_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"turf-booking/config"
	"turf-booking/internal/pkg/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitHttpClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.HttpClientConfig{
		Timeout:    time.Second,
		Threshold:  3,
		Rate:       0.5,
		MinSamples: 10,
	}

	for _, breakerType := range []string{httpclient.BreakerConsecutive, httpclient.BreakerThreshold, httpclient.BreakerRate, "unknown"} {
		t.Run(breakerType, func(t *testing.T) {
			cb := httpclient.InitCircuitBreaker(cfg, breakerType)
			require.NotNil(t, cb)

			client := httpclient.InitHttpClient(cfg, cb)
			resp, err := client.Get(server.URL)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.False(t, cb.Tripped())
		})
	}
}
