package handlers_test

import (
	"net/http"
	"testing"
)

func TestCreateGalleryItem(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedAdmin(t, "admin@test.dev", "admin")

	t.Run("g-prefixed sequential ids", func(t *testing.T) {
		for i, want := range []string{"g1", "g2"} {
			status, body := env.doJSON(t, http.MethodPost, "/api/gallery", token, map[string]any{
				"title":       "Wedding Cake",
				"description": "Three tiers",
				"image":       "https://media.test/wedding.jpg",
				"category":    "cakes",
			})
			if status != http.StatusCreated {
				t.Fatalf("create #%d: status = %d, body = %v", i+1, status, body)
			}
			if got := dataField(t, body)["id"]; got != want {
				t.Errorf("create #%d: id = %v, want %q", i+1, got, want)
			}
		}
	})

	t.Run("missing fields aggregated", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodPost, "/api/gallery", token, map[string]any{
			"title": "Untagged",
		})
		if status != http.StatusBadRequest {
			t.Fatalf("status = %d", status)
		}
		if msg := body["message"]; msg != "Please provide: description, image, category" {
			t.Errorf("message = %v", msg)
		}
	})
}

func TestDeleteGalleryItem(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedAdmin(t, "admin@test.dev", "admin")

	_, body := env.doJSON(t, http.MethodPost, "/api/gallery", token, map[string]any{
		"title": "Bread Rack", "description": "Morning batch",
		"image": "https://media.test/rack.jpg", "category": "bread",
	})
	id := dataField(t, body)["id"].(string)

	status, _ := env.doJSON(t, http.MethodDelete, "/api/gallery/"+id, token, nil)
	if status != http.StatusOK {
		t.Fatalf("delete: status = %d", status)
	}

	status, body = env.doJSON(t, http.MethodDelete, "/api/gallery/"+id, token, nil)
	if status != http.StatusNotFound {
		t.Fatalf("second delete: status = %d, body = %v", status, body)
	}
}
