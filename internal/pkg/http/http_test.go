package http_test

import (
	"net"
	"strconv"
	"testing"
	"time"

	"turf-booking/config"
	internalHttp "turf-booking/internal/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStartHttpServer_LogsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	port := strconv.Itoa(busy.Addr().(*net.TCPAddr).Port)

	core, logs := observer.New(zapcore.InfoLevel)
	logger := otelzap.New(zap.New(core))

	app := internalHttp.SetupHttpEngine(&config.HttpServerConfig{
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	done := make(chan struct{})
	go func() {
		internalHttp.StartHttpServer(app, port, logger)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not return after listen failure")
	}

	assert.Equal(t, 1, logs.FilterMessage("server error").Len())
	assert.Equal(t, 1, logs.FilterMessage("server stopped").Len())
}
