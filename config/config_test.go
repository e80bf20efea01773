package config_test

import (
	"testing"

	"turf-booking/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigningSecret(t *testing.T) {
	tests := []struct {
		name         string
		env          string
		secret       string
		want         string
		wantFallback bool
		wantErr      error
	}{
		{name: "configured", env: "production", secret: "s3cret", want: "s3cret"},
		{name: "fallback outside production", env: "development", want: config.DefaultQRSecret, wantFallback: true},
		{name: "missing in production", env: "production", wantErr: config.ErrMissingQRSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				App:    config.AppConfig{Env: tt.env},
				QRCode: config.QRCodeConfig{Secret: tt.secret},
			}

			got, fallback, err := cfg.SigningSecret()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFallback, fallback)
		})
	}
}
