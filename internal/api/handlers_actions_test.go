package api

import (
	"net/http"
	"testing"

	"github.com/aerosenselabs/aerosense/internal/models"
	"github.com/gofiber/fiber/v2"
)

func listCatalog(t *testing.T, app *fiber.App) []models.EcoAction {
	t.Helper()

	response, body := doJSON(t, app, http.MethodGet, "/api/eco-actions", "", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", response.StatusCode, string(body))
	}
	var actions []models.EcoAction
	decodeJSON(t, body, &actions)
	return actions
}

func TestCatalogSeedsOnFirstReadWithoutDuplicates(t *testing.T) {
	app, _, _ := newTestApp(t)

	first := listCatalog(t, app)
	if len(first) != len(models.DefaultCatalog()) {
		t.Fatalf("expected %d seeded actions, got %d", len(models.DefaultCatalog()), len(first))
	}

	second := listCatalog(t, app)
	if len(second) != len(first) {
		t.Fatalf("re-read grew the catalog from %d to %d", len(first), len(second))
	}

	titles := make(map[string]bool, len(second))
	for _, action := range second {
		if titles[action.Title] {
			t.Fatalf("duplicate title %q", action.Title)
		}
		titles[action.Title] = true
	}
}

func TestCompleteActionIsOncePerUser(t *testing.T) {
	app, _, database := newTestApp(t)

	token, userID := registerTestUser(t, app, "alice", "a@x.com")
	catalog := listCatalog(t, app)

	payload := fiber.Map{"action_id": catalog[0].ID, "notes": "took the bus"}

	response, body := doJSON(t, app, http.MethodPost, "/api/eco-actions/complete", token, payload)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", response.StatusCode, string(body))
	}
	var result map[string]string
	decodeJSON(t, body, &result)
	if result["status"] != "success" {
		t.Fatalf("expected success, got %+v", result)
	}

	response, body = doJSON(t, app, http.MethodPost, "/api/eco-actions/complete", token, payload)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	decodeJSON(t, body, &result)
	if result["status"] != "already_done" {
		t.Fatalf("expected already_done on repeat, got %+v", result)
	}

	var count int64
	if err := database.Model(&models.UserAction{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count records: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one completion record, got %d", count)
	}
}

func TestCompleteUnknownActionNotFound(t *testing.T) {
	app, _, _ := newTestApp(t)

	token, _ := registerTestUser(t, app, "alice", "a@x.com")

	response, _ := doJSON(t, app, http.MethodPost, "/api/eco-actions/complete", token, fiber.Map{
		"action_id": "no-such-action",
	})
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
}

func TestActionHistoryNewestFirstWithJoinedAction(t *testing.T) {
	app, _, _ := newTestApp(t)

	token, _ := registerTestUser(t, app, "alice", "a@x.com")
	catalog := listCatalog(t, app)

	for _, action := range catalog[:2] {
		response, _ := doJSON(t, app, http.MethodPost, "/api/eco-actions/complete", token, fiber.Map{"action_id": action.ID})
		if response.StatusCode != http.StatusOK {
			t.Fatalf("complete failed with status %d", response.StatusCode)
		}
	}

	response, body := doJSON(t, app, http.MethodGet, "/api/eco-actions/history", token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var history []models.HistoryEntry
	decodeJSON(t, body, &history)
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	if history[0].CompletedAt.Before(history[1].CompletedAt) {
		t.Fatalf("history not newest-first: %v then %v", history[0].CompletedAt, history[1].CompletedAt)
	}
	for _, entry := range history {
		if entry.Action == nil || entry.Action.ID != entry.ActionID {
			t.Fatalf("expected joined catalog entry, got %+v", entry)
		}
	}
}

func TestActionHistoryKeepsRecordForDeletedAction(t *testing.T) {
	app, _, database := newTestApp(t)

	token, _ := registerTestUser(t, app, "alice", "a@x.com")
	catalog := listCatalog(t, app)

	response, _ := doJSON(t, app, http.MethodPost, "/api/eco-actions/complete", token, fiber.Map{"action_id": catalog[0].ID})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("complete failed with status %d", response.StatusCode)
	}

	if err := database.Delete(&models.EcoAction{}, "id = ?", catalog[0].ID).Error; err != nil {
		t.Fatalf("delete catalog entry: %v", err)
	}

	_, body := doJSON(t, app, http.MethodGet, "/api/eco-actions/history", token, nil)
	var history []models.HistoryEntry
	decodeJSON(t, body, &history)
	if len(history) != 1 {
		t.Fatalf("expected the record to survive catalog deletion, got %d entries", len(history))
	}
	if history[0].Action != nil {
		t.Fatalf("expected nil action for deleted catalog entry, got %+v", history[0].Action)
	}
}
