package client

import (
	"context"
	"net/url"
	"strconv"
)

// SecurityService handles security data and action API calls
type SecurityService struct {
	client *Client
}

// actionRequest is the POST /api/security body
type actionRequest struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data,omitempty"`
}

func (s *SecurityService) get(ctx context.Context, view string, limit int, result interface{}) error {
	params := url.Values{}
	if view != "" {
		params.Set("type", view)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/security"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return s.client.doRequest(ctx, "GET", path, nil, result)
}

// Metrics returns the aggregate counters
func (s *SecurityService) Metrics(ctx context.Context) (*Metrics, error) {
	var m Metrics
	if err := s.get(ctx, "metrics", 0, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Threats returns up to limit threats; zero uses the server default
func (s *SecurityService) Threats(ctx context.Context, limit int) ([]Threat, error) {
	var threats []Threat
	if err := s.get(ctx, "threats", limit, &threats); err != nil {
		return nil, err
	}
	return threats, nil
}

// Alerts returns up to limit alerts; zero uses the server default
func (s *SecurityService) Alerts(ctx context.Context, limit int) ([]Alert, error) {
	var alerts []Alert
	if err := s.get(ctx, "alerts", limit, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// All returns metrics with every threat and alert
func (s *SecurityService) All(ctx context.Context) (*Bundle, error) {
	var b Bundle
	if err := s.get(ctx, "all", 0, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Overview returns metrics with the most recent threats and alerts
func (s *SecurityService) Overview(ctx context.Context) (*Bundle, error) {
	var b Bundle
	if err := s.get(ctx, "", 0, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Modules returns the security module catalog
func (s *SecurityService) Modules(ctx context.Context) ([]Module, error) {
	var modules []Module
	if err := s.client.doRequest(ctx, "GET", "/api/security/modules", nil, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

// Scan requests a security scan
func (s *SecurityService) Scan(ctx context.Context) (*ActionResponse, error) {
	return s.act(ctx, actionRequest{Action: "scan"})
}

// Quarantine requests that a threat be quarantined
func (s *SecurityService) Quarantine(ctx context.Context, threatID string) (*ActionResponse, error) {
	return s.act(ctx, actionRequest{
		Action: "quarantine",
		Data:   map[string]string{"threatId": threatID},
	})
}

// ResolveAlert requests that an alert be marked resolved
func (s *SecurityService) ResolveAlert(ctx context.Context, alertID string) (*ActionResponse, error) {
	return s.act(ctx, actionRequest{
		Action: "resolve_alert",
		Data:   map[string]string{"alertId": alertID},
	})
}

func (s *SecurityService) act(ctx context.Context, req actionRequest) (*ActionResponse, error) {
	var resp ActionResponse
	if err := s.client.doRequest(ctx, "POST", "/api/security", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
