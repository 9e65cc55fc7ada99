package handlers_test

import (
	"net/http"
	"testing"
	"time"
)

func TestCreateBlogPost(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedAdmin(t, "admin@test.dev", "admin")

	t.Run("defaults date and tags", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodPost, "/api/blog/posts", token, map[string]any{
			"title":   "Sourdough Secrets",
			"content": "Long fermentation is the trick.",
			"excerpt": "Why our sourdough tastes different.",
			"author":  "Amina",
			"image":   "https://media.test/sourdough.jpg",
		})
		if status != http.StatusCreated {
			t.Fatalf("status = %d, body = %v", status, body)
		}
		data := dataField(t, body)
		if data["id"] != "1" {
			t.Errorf("id = %v, want 1", data["id"])
		}
		dateStr, _ := data["date"].(string)
		parsed, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			t.Fatalf("date %q not RFC3339: %v", dateStr, err)
		}
		if time.Since(parsed) > time.Minute {
			t.Errorf("date not defaulted to now: %v", parsed)
		}
		if _, ok := data["tags"].([]any); !ok {
			t.Errorf("tags = %v, want empty array", data["tags"])
		}
	})

	t.Run("missing fields aggregated", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodPost, "/api/blog/posts", token, map[string]any{
			"title": "Untitled",
		})
		if status != http.StatusBadRequest {
			t.Fatalf("status = %d", status)
		}
		if msg := body["message"]; msg != "Please provide: content, excerpt, author, image" {
			t.Errorf("message = %v", msg)
		}
	})
}

func TestListBlogPostsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedAdmin(t, "admin@test.dev", "admin")

	older := time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339)
	for _, p := range []map[string]any{
		{"title": "Old News", "date": older},
		{"title": "Fresh Out the Oven"},
	} {
		p["content"] = "body"
		p["excerpt"] = "excerpt"
		p["author"] = "Amina"
		p["image"] = "https://media.test/p.jpg"
		status, body := env.doJSON(t, http.MethodPost, "/api/blog/posts", token, p)
		if status != http.StatusCreated {
			t.Fatalf("create %q: status = %d, body = %v", p["title"], status, body)
		}
	}

	status, body := env.doJSON(t, http.MethodGet, "/api/blog/posts", "", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	posts := dataList(t, body)
	if len(posts) != 2 {
		t.Fatalf("count = %d, want 2", len(posts))
	}
	first := posts[0].(map[string]any)
	if first["title"] != "Fresh Out the Oven" {
		t.Errorf("first post = %v, want the newest", first["title"])
	}
}

func TestGetBlogPostNotFound(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.doJSON(t, http.MethodGet, "/api/blog/posts/42", "", nil)
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if msg := body["message"]; msg != "Blog post not found" {
		t.Errorf("message = %v", msg)
	}
}
