package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	ErrNotConnected         = errors.New("adapter is not connected")
	ErrClosed               = errors.New("adapter is closed")
	ErrUnexpectedFrame      = errors.New("unexpected websocket frame")
	ErrUnsupportedTransport = errors.New("unsupported transport")
	ErrEmptyAddress         = errors.New("empty address")
)
