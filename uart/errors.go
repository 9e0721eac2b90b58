package uart

import "errors"

var (
	// ErrNotConfigured is returned by transmit operations issued before
	// Configure has completed.
	ErrNotConfigured = errors.New("uart: not configured")

	// ErrNoReceive is returned by the receive-side methods; this driver
	// is transmit-only.
	ErrNoReceive = errors.New("uart: receive not supported")

	// ErrBadRegisterMap marks a structurally unusable RegisterMap.
	ErrBadRegisterMap = errors.New("uart: bad register map")
)
