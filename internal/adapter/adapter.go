package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-auth-form/internal/config"
	"github.com/MKhiriev/go-auth-form/internal/logger"
)

// New returns the [AuthAdapter] selected by adapterCfg.Transport.
func New(adapterCfg config.ClientAdapter, log *logger.Logger) (AuthAdapter, error) {
	switch adapterCfg.Transport {
	case config.TransportHTTP, "":
		return NewHTTPAuthAdapter(adapterCfg, log)
	case config.TransportWebSocket:
		return NewWebSocketAuthAdapter(adapterCfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTransport, adapterCfg.Transport)
	}
}
