// Package http implements the HTTP transport layer of the auth server.
//
// It exposes route wiring, request handlers, the websocket endpoint and the
// middleware used by the API. Request tracing, access logging and token
// authentication are handled in this package before requests are delegated
// to the service layer.
package http
