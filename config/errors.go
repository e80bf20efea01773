package config

import "errors"

var ErrMissingQRSecret = errors.New("QR_SECRET must be set in production")
