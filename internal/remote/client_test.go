package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", 0)
}

func TestReadHumidity(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/gethumidity" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"humidity": 812}`))
	})

	got, err := c.ReadHumidity(context.Background())
	if err != nil {
		t.Fatalf("ReadHumidity: %v", err)
	}
	if got != 812 {
		t.Errorf("ReadHumidity = %v, want 812", got)
	}
}

func TestReadHumidityMalformed(t *testing.T) {
	bodies := []string{
		`not json`,
		`{}`,
		`{"humidity": "812"}`,
		`{"humidity": null}`,
		`[]`,
	}
	for _, body := range bodies {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})
		_, err := c.ReadHumidity(context.Background())
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("body %q: err = %v, want ErrMalformed", body, err)
		}
	}
}

func TestReadHumidityStatus(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"humidity": 800}`))
	})
	_, err := c.ReadHumidity(context.Background())
	if !errors.Is(err, ErrStatus) {
		t.Fatalf("err = %v, want ErrStatus", err)
	}
}

func TestReadHumidityTransport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, 0).ReadHumidity(context.Background())
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	if errors.Is(err, ErrStatus) || errors.Is(err, ErrMalformed) {
		t.Errorf("transport failure classified as %v", err)
	}
}

func TestStartMotor(t *testing.T) {
	var calls atomic.Int32
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method != http.MethodPost || r.URL.Path != "/startmotor" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.ContentLength > 0 {
			t.Errorf("expected empty body, got %d bytes", r.ContentLength)
		}
		w.Write([]byte(`{"status":"started","run_id":"abc"}`))
	})

	resp, err := c.StartMotor(context.Background())
	if err != nil {
		t.Fatalf("StartMotor: %v", err)
	}
	if resp.String() != `{"status":"started","run_id":"abc"}` {
		t.Errorf("body = %s", resp)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestStartMotorAcceptsAnyJSON(t *testing.T) {
	for _, body := range []string{`null`, `"ok"`, `[1]`, `true`, `42`} {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})
		resp, err := c.StartMotor(context.Background())
		if err != nil {
			t.Errorf("body %q: %v", body, err)
			continue
		}
		if resp.String() != body {
			t.Errorf("body %q: got %q", body, resp)
		}
	}
}

func TestStartMotorRejectsNonJSON(t *testing.T) {
	for _, body := range []string{``, `started`, `{"status":`} {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})
		if _, err := c.StartMotor(context.Background()); !errors.Is(err, ErrMalformed) {
			t.Errorf("body %q: err = %v, want ErrMalformed", body, err)
		}
	}
}

func TestBaseURLTrimmed(t *testing.T) {
	c := New(" http://device.local:8080// ", 0)
	if c.BaseURL() != "http://device.local:8080" {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}
}
