// Package remote talks to the plant device service: one endpoint reports the
// raw soil humidity, the other starts the watering motor.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	humidityPath = "/gethumidity"
	motorPath    = "/startmotor"
)

var (
	// ErrStatus is returned for any non-2xx response.
	ErrStatus = errors.New("unexpected status")
	// ErrMalformed is returned when the body is not the expected JSON.
	ErrMalformed = errors.New("malformed response")
)

// Client issues requests against a single device service.
type Client struct {
	base string
	http *http.Client
}

// MotorResponse is the raw /startmotor body. Any JSON value is accepted and
// none of it is interpreted; it is kept for logging.
type MotorResponse json.RawMessage

func (r MotorResponse) String() string {
	return string(r)
}

// New returns a client for baseURL. A zero timeout means requests are never
// cut short by the client.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the service root the client was built with.
func (c *Client) BaseURL() string {
	return c.base
}

type humidityBody struct {
	Humidity *float64 `json:"humidity"`
}

// ReadHumidity fetches the current raw humidity value.
func (c *Client) ReadHumidity(ctx context.Context) (float64, error) {
	var body humidityBody
	if err := c.do(ctx, http.MethodGet, humidityPath, &body); err != nil {
		return 0, err
	}
	if body.Humidity == nil {
		return 0, fmt.Errorf("%s: %w: missing humidity field", humidityPath, ErrMalformed)
	}
	return *body.Humidity, nil
}

// StartMotor asks the device to run one watering cycle.
func (c *Client) StartMotor(ctx context.Context) (MotorResponse, error) {
	var body json.RawMessage
	if err := c.do(ctx, http.MethodPost, motorPath, &body); err != nil {
		return nil, err
	}
	return MotorResponse(body), nil
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s: %w %d", path, ErrStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrMalformed, err)
	}
	return nil
}
