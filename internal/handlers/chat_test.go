package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"gatbot/internal/chat"
	"gatbot/internal/models"
	"gatbot/internal/testutil"
)

type staticAI struct{ reply string }

func (s staticAI) Ask(ctx context.Context, question string) string { return s.reply }

func chatApp(t *testing.T) *fiber.App {
	t.Helper()

	faqs, _ := testutil.SeededStores(t)
	resolver := chat.NewResolver(chat.ResolverConfig{
		FAQs:       faqs,
		AI:         staticAI{reply: "ai answer"},
		Matcher:    chat.NewMatcher(70, 5),
		AdminName:  "GAT Admin",
		AdminEmail: "admin@example.com",
	})

	app := fiber.New()
	app.Post("/chat", NewChatHandler(resolver).Chat)
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) (int, *models.Resolution) {
	t.Helper()

	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return resp.StatusCode, nil
	}

	var res models.Resolution
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.StatusCode, &res
}

func TestChatEndpoint(t *testing.T) {
	app := chatApp(t)

	tests := []struct {
		name       string
		message    string
		wantSource models.Source
	}{
		{"rule", "Who is the HOD of Mechanical Engineering?", models.SourceRule},
		{"faq", "When was GAT established?", models.SourceFAQ},
		{"fallback", "What's your favorite movie?", models.SourceFallback},
		{"empty message", "", models.SourceFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(models.ChatRequest{UserMessage: tt.message})
			status, res := postChat(t, app, string(body))

			if status != 200 {
				t.Fatalf("status = %d, want 200", status)
			}
			if res.Source != tt.wantSource {
				t.Errorf("source = %q, want %q", res.Source, tt.wantSource)
			}
			if res.Response == "" {
				t.Error("response is empty")
			}
		})
	}
}

func TestChatEndpointMalformedBody(t *testing.T) {
	app := chatApp(t)

	status, _ := postChat(t, app, "{not json")
	if status != 400 {
		t.Errorf("status = %d, want 400 for malformed body", status)
	}
}

func TestChatEndpointOversizedMessage(t *testing.T) {
	app := chatApp(t)

	body, _ := json.Marshal(models.ChatRequest{UserMessage: strings.Repeat("a", 5000)})
	status, _ := postChat(t, app, string(body))
	if status != 400 {
		t.Errorf("status = %d, want 400 for oversized message", status)
	}
}
