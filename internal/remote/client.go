// Package remote provides the HTTP client for the optional mirror server.
// The server keeps its own field names and status enum; everything is
// translated to the canonical local model at this boundary.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/areuok/areuok/internal/config"
	"github.com/areuok/areuok/internal/models"
)

// APIError is a non-2xx response from the mirror server.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote API error %d: %s", e.StatusCode, e.Body)
}

// Client talks to the mirror server. Requests are rate-limited client-side;
// there is no retry or backoff.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// New creates a mirror client from configuration.
func New(cfg config.RemoteConfig) *Client {
	perSecond := rate.Limit(float64(cfg.RateLimit) / 60.0)
	if cfg.RateLimit <= 0 {
		perSecond = rate.Inf
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(perSecond, 5),
	}
}

// do performs one API request, decoding the JSON response into out when
// out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return nil
}

// RegisterDevice registers or updates the local device on the server.
func (c *Client) RegisterDevice(ctx context.Context, name, imei string, mode models.DeviceMode) (*Device, error) {
	body := struct {
		DeviceName string `json:"device_name"`
		IMEI       string `json:"imei,omitempty"`
		Mode       string `json:"mode"`
	}{DeviceName: name, IMEI: imei, Mode: string(mode)}

	var dev Device
	if err := c.do(ctx, http.MethodPost, "/devices/register", body, &dev); err != nil {
		return nil, err
	}
	return &dev, nil
}

// GetDevice looks up a device by id.
func (c *Client) GetDevice(ctx context.Context, deviceID string) (*Device, error) {
	var dev Device
	if err := c.do(ctx, http.MethodGet, "/devices/"+url.PathEscape(deviceID), nil, &dev); err != nil {
		return nil, err
	}
	return &dev, nil
}

// UpdateDeviceName renames a device on the server.
func (c *Client) UpdateDeviceName(ctx context.Context, deviceID, newName string) (*Device, error) {
	body := struct {
		DeviceName string `json:"device_name"`
	}{DeviceName: newName}

	var dev Device
	if err := c.do(ctx, http.MethodPatch, "/devices/"+url.PathEscape(deviceID)+"/name", body, &dev); err != nil {
		return nil, err
	}
	return &dev, nil
}

// DeviceSignin records a sign-in for a device on the server and returns the
// server-computed streak.
func (c *Client) DeviceSignin(ctx context.Context, deviceID string) (*SigninResponse, error) {
	var resp SigninResponse
	if err := c.do(ctx, http.MethodPost, "/devices/"+url.PathEscape(deviceID)+"/signin", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDeviceStatus fetches the server-side status for a device.
func (c *Client) GetDeviceStatus(ctx context.Context, deviceID string) (*DeviceStatus, error) {
	var status DeviceStatus
	if err := c.do(ctx, http.MethodGet, "/devices/"+url.PathEscape(deviceID)+"/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// SearchDevices searches registered devices by name.
func (c *Client) SearchDevices(ctx context.Context, query string) ([]Device, error) {
	var devices []Device
	path := "/search/devices?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// supervisionPair is the request body shared by the supervision endpoints.
type supervisionPair struct {
	SupervisorID string `json:"supervisor_id"`
	TargetID     string `json:"target_id"`
}

// SendSupervisionRequest creates a supervision request on the server and
// returns it in the canonical local shape.
func (c *Client) SendSupervisionRequest(ctx context.Context, supervisorID, targetID string) (*models.SupervisionRequest, error) {
	var req Request
	body := supervisionPair{SupervisorID: supervisorID, TargetID: targetID}
	if err := c.do(ctx, http.MethodPost, "/supervision/request", body, &req); err != nil {
		return nil, err
	}
	local := LocalRequest(req)
	return &local, nil
}

// PendingRequests lists the server's pending requests targeting a device,
// in the canonical local shape.
func (c *Client) PendingRequests(ctx context.Context, deviceID string) ([]models.SupervisionRequest, error) {
	var reqs []Request
	if err := c.do(ctx, http.MethodGet, "/supervision/pending/"+url.PathEscape(deviceID), nil, &reqs); err != nil {
		return nil, err
	}
	return LocalRequests(reqs), nil
}

// AcceptSupervisionRequest accepts a pending request on the server.
func (c *Client) AcceptSupervisionRequest(ctx context.Context, supervisorID, targetID string) error {
	body := supervisionPair{SupervisorID: supervisorID, TargetID: targetID}
	return c.do(ctx, http.MethodPost, "/supervision/accept", body, nil)
}

// RejectSupervisionRequest rejects a pending request on the server.
func (c *Client) RejectSupervisionRequest(ctx context.Context, supervisorID, targetID string) error {
	body := supervisionPair{SupervisorID: supervisorID, TargetID: targetID}
	return c.do(ctx, http.MethodPost, "/supervision/reject", body, nil)
}

// ListRelations lists a device's supervision relationships, in the
// canonical local shape.
func (c *Client) ListRelations(ctx context.Context, deviceID string) ([]models.SupervisionRelationship, error) {
	var relations []Relation
	if err := c.do(ctx, http.MethodGet, "/supervision/list/"+url.PathEscape(deviceID), nil, &relations); err != nil {
		return nil, err
	}
	return LocalRelationships(relations), nil
}

// RemoveRelation deletes a supervision relationship on the server.
func (c *Client) RemoveRelation(ctx context.Context, relationID string) error {
	return c.do(ctx, http.MethodDelete, "/supervision/"+url.PathEscape(relationID), nil, nil)
}
