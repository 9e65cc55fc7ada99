package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abdul977/diamondbakes-sub000/internal/models"
	"github.com/abdul977/diamondbakes-sub000/internal/store"
	"github.com/abdul977/diamondbakes-sub000/internal/utils"
)

// galleryIDPrefix marks gallery display IDs ("g1", "g2", ...).
const galleryIDPrefix = "g"

// GalleryHandler manages gallery items.
type GalleryHandler struct {
	items store.GalleryStore
}

// NewGalleryHandler constructs GalleryHandler.
func NewGalleryHandler(items store.GalleryStore) *GalleryHandler {
	return &GalleryHandler{items: items}
}

// ListItems returns all gallery items, newest first.
func (h *GalleryHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.items.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "count": len(items), "data": items})
}

// GetItem returns a single gallery item by display ID.
func (h *GalleryHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.items.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "Gallery item not found")
	}
	return c.JSON(fiber.Map{"success": true, "data": item})
}

// CreateItem persists a new gallery item with the next g-prefixed display
// ID.
func (h *GalleryHandler) CreateItem(c *fiber.Ctx) error {
	var payload models.GalleryItem
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fields := new(utils.FieldSet).
		Require("title", payload.Title).
		Require("description", payload.Description).
		Require("image", payload.Image).
		Require("category", payload.Category)
	if missing := fields.Missing(); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, utils.MissingFieldsMessage(missing))
	}

	existing, err := h.items.List(c.Context())
	if err != nil {
		return err
	}
	payload.ID = utils.NextID(galleryIDs(existing), galleryIDPrefix)

	if err := h.items.Insert(c.Context(), &payload); err != nil {
		return storeError(err, "Gallery item not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateItem merges provided fields into an existing gallery item.
func (h *GalleryHandler) UpdateItem(c *fiber.Ctx) error {
	item, err := h.items.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "Gallery item not found")
	}

	var payload models.GalleryItem
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.Title != "" {
		item.Title = payload.Title
	}
	if payload.Description != "" {
		item.Description = payload.Description
	}
	if payload.Image != "" {
		item.Image = payload.Image
	}
	if payload.Category != "" {
		item.Category = payload.Category
	}

	if err := h.items.Update(c.Context(), item); err != nil {
		return storeError(err, "Gallery item not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": item})
}

// DeleteItem removes a gallery item by display ID.
func (h *GalleryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.items.Delete(c.Context(), c.Params("id")); err != nil {
		return storeError(err, "Gallery item not found")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Gallery item deleted"})
}

func galleryIDs(items []models.GalleryItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
