package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/aerosenselabs/aerosense/internal/models"
)

func TestListUsersOmitsPasswordHash(t *testing.T) {
	app, _, _ := newTestApp(t)

	registerTestUser(t, app, "alice", "a@x.com")
	registerTestUser(t, app, "bob", "b@x.com")

	response, body := doJSON(t, app, http.MethodGet, "/api/users", "", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if strings.Contains(string(body), "password") {
		t.Fatalf("user listing leaked password material: %s", string(body))
	}

	var users []models.User
	decodeJSON(t, body, &users)
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "alice" || users[1].Username != "bob" {
		t.Fatalf("expected registration order, got %+v", users)
	}
}

func TestGetUserByID(t *testing.T) {
	app, _, _ := newTestApp(t)

	_, userID := registerTestUser(t, app, "alice", "a@x.com")

	response, body := doJSON(t, app, http.MethodGet, "/api/users/"+userID, "", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var user models.User
	decodeJSON(t, body, &user)
	if user.ID != userID || user.Email != "a@x.com" {
		t.Fatalf("unexpected user %+v", user)
	}

	response, _ = doJSON(t, app, http.MethodGet, "/api/users/no-such-id", "", nil)
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t)

	response, body := doJSON(t, app, http.MethodGet, "/api/health", "", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var result map[string]string
	decodeJSON(t, body, &result)
	if result["status"] != "ok" {
		t.Fatalf("unexpected health payload %+v", result)
	}
}
