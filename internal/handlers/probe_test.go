package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestPing(t *testing.T) {
	app := fiber.New()
	app.Get("/ping", NewProbeHandler(nil).Ping)

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["message"] != "pong" {
		t.Errorf("message = %q, want pong", body["message"])
	}
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		ping       func(ctx context.Context) error
		wantStatus int
	}{
		{"memory store", nil, 200},
		{"database ok", func(ctx context.Context) error { return nil }, 200},
		{"database down", func(ctx context.Context) error { return errors.New("down") }, 503},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/readyz", NewProbeHandler(tt.ping).Readiness)

			resp, err := app.Test(httptest.NewRequest("GET", "/readyz", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
