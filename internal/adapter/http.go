// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-auth-form/internal/config"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/utils"
	"github.com/MKhiriev/go-auth-form/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathPing     = "/api/ping"
	pathLogin    = "/api/auth/login"
	pathRegister = "/api/auth/register"
	pathDebug    = "/api/debug"
)

type httpAuthAdapter struct {
	client *utils.HTTPClient
	sessionStore

	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs the REST implementation of [AuthAdapter].
// adapterCfg.Address may omit the scheme, "http://" is assumed then.
func NewHTTPAuthAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (AuthAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.Address, "http")
	if err != nil {
		return nil, fmt.Errorf("invalid adapter address: %w", err)
	}

	return &httpAuthAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw, scheme string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = scheme + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Open implements [AuthAdapter]. It checks that the server answers
// GET /api/ping.
func (h *httpAuthAdapter) Open(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(pathPing)
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

// Authenticate implements [AuthAdapter]. It POSTs the credentials to the
// login or register endpoint. On success the bearer token from the
// Authorization response header becomes the current session.
func (h *httpAuthAdapter) Authenticate(ctx context.Context, req models.AuthRequest) (models.AuthResult, error) {
	path := pathRegister
	if req.IsLogin {
		path = pathLogin
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.Credentials{Email: req.Email, Password: req.Password}).
		Post(path)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("auth request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if isRejection(err) {
			h.logger.Debug().Err(err).Str("path", path).Msg("credentials rejected")
			return models.ErrResult(), nil
		}
		return models.AuthResult{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("auth parse bearer token: %w", err)
	}
	if err = h.store(token); err != nil {
		return models.AuthResult{}, err
	}

	return models.OkResult(), nil
}

// SetDebug implements [AuthAdapter]. It POSTs the new verbosity to
// POST /api/debug.
func (h *httpAuthAdapter) SetDebug(ctx context.Context, enabled bool) error {
	resp, err := h.authedRequest(ctx).
		SetBody(models.DebugToggleRequest{Enabled: enabled}).
		Post(pathDebug)
	if err != nil {
		return fmt.Errorf("debug request: %w", err)
	}

	return mapHTTPError(resp)
}

// Close implements [AuthAdapter]. It drops idle keep-alive connections.
func (h *httpAuthAdapter) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}

func (h *httpAuthAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Session().Token; token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
