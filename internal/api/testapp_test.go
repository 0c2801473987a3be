package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aerosenselabs/aerosense/internal/db"
	"github.com/aerosenselabs/aerosense/internal/services"
	"github.com/aerosenselabs/aerosense/internal/weather"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "aerosense-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	credentials := services.NewCredentialService("test-secret-key", time.Hour)
	weatherClient := weather.NewClient("http://127.0.0.1:1/unreachable", nil, zap.NewNop())
	handler := NewHandler(database, credentials, weatherClient, zap.NewNop())

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler, database
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	response.Body.Close()
	return response, responseBody
}

func decodeJSON(t *testing.T, raw []byte, dest any) {
	t.Helper()
	if err := json.Unmarshal(raw, dest); err != nil {
		t.Fatalf("decode response %q: %v", string(raw), err)
	}
}

func registerTestUser(t *testing.T, app *fiber.App, username string, email string) (token string, userID string) {
	t.Helper()

	response, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username":  username,
		"email":     email,
		"password":  "StrongPass1",
		"full_name": fmt.Sprintf("%s Test", username),
		"city":      "Paris",
		"latitude":  48.85,
		"longitude": 2.35,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s expected status 201, got %d: %s", username, response.StatusCode, string(body))
	}

	var envelope struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decodeJSON(t, body, &envelope)
	if envelope.AccessToken == "" {
		t.Fatalf("register %s returned empty access token", username)
	}
	return envelope.AccessToken, envelope.User.ID
}
