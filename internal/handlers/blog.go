package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/abdul977/diamondbakes-sub000/internal/models"
	"github.com/abdul977/diamondbakes-sub000/internal/store"
	"github.com/abdul977/diamondbakes-sub000/internal/utils"
)

// BlogHandler manages blog posts.
type BlogHandler struct {
	posts store.BlogStore
}

// NewBlogHandler constructs BlogHandler.
func NewBlogHandler(posts store.BlogStore) *BlogHandler {
	return &BlogHandler{posts: posts}
}

// ListPosts returns all blog posts, newest first.
func (h *BlogHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.posts.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "count": len(posts), "data": posts})
}

// GetPost returns a single post by display ID.
func (h *BlogHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.posts.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "Blog post not found")
	}
	return c.JSON(fiber.Map{"success": true, "data": post})
}

// CreatePost persists a new post with the next numeric display ID.
func (h *BlogHandler) CreatePost(c *fiber.Ctx) error {
	var payload models.BlogPost
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fields := new(utils.FieldSet).
		Require("title", payload.Title).
		Require("content", payload.Content).
		Require("excerpt", payload.Excerpt).
		Require("author", payload.Author).
		Require("image", payload.Image)
	if missing := fields.Missing(); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, utils.MissingFieldsMessage(missing))
	}

	if payload.Date.IsZero() {
		payload.Date = time.Now().UTC()
	}
	if payload.Tags == nil {
		payload.Tags = []string{}
	}

	existing, err := h.posts.List(c.Context())
	if err != nil {
		return err
	}
	payload.ID = utils.NextID(postIDs(existing), "")

	if err := h.posts.Insert(c.Context(), &payload); err != nil {
		return storeError(err, "Blog post not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdatePost merges provided fields into an existing post.
func (h *BlogHandler) UpdatePost(c *fiber.Ctx) error {
	post, err := h.posts.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "Blog post not found")
	}

	var payload models.BlogPost
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.Title != "" {
		post.Title = payload.Title
	}
	if payload.Content != "" {
		post.Content = payload.Content
	}
	if payload.Excerpt != "" {
		post.Excerpt = payload.Excerpt
	}
	if payload.Author != "" {
		post.Author = payload.Author
	}
	if payload.Image != "" {
		post.Image = payload.Image
	}
	if !payload.Date.IsZero() {
		post.Date = payload.Date
	}
	if payload.Tags != nil {
		post.Tags = payload.Tags
	}

	if err := h.posts.Update(c.Context(), post); err != nil {
		return storeError(err, "Blog post not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": post})
}

// DeletePost removes a post by display ID.
func (h *BlogHandler) DeletePost(c *fiber.Ctx) error {
	if err := h.posts.Delete(c.Context(), c.Params("id")); err != nil {
		return storeError(err, "Blog post not found")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Blog post deleted"})
}

func postIDs(posts []models.BlogPost) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}
