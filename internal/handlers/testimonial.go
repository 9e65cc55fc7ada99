package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abdul977/diamondbakes-sub000/internal/models"
	"github.com/abdul977/diamondbakes-sub000/internal/store"
	"github.com/abdul977/diamondbakes-sub000/internal/utils"
)

// TestimonialHandler manages customer testimonials.
type TestimonialHandler struct {
	testimonials store.TestimonialStore
}

// NewTestimonialHandler constructs TestimonialHandler.
func NewTestimonialHandler(testimonials store.TestimonialStore) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

// ListTestimonials returns all testimonials, newest first.
func (h *TestimonialHandler) ListTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.testimonials.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "count": len(testimonials), "data": testimonials})
}

// GetTestimonial returns a single testimonial by document ID.
func (h *TestimonialHandler) GetTestimonial(c *fiber.Ctx) error {
	testimonial, err := h.testimonials.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "Testimonial not found")
	}
	return c.JSON(fiber.Map{"success": true, "data": testimonial})
}

// CreateTestimonial persists a new testimonial.
func (h *TestimonialHandler) CreateTestimonial(c *fiber.Ctx) error {
	var payload models.Testimonial
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fields := new(utils.FieldSet).
		Require("name", payload.Name).
		Require("role", payload.Role).
		Require("content", payload.Content).
		Require("image", payload.Image)
	if missing := fields.Missing(); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, utils.MissingFieldsMessage(missing))
	}

	if payload.Rating < 1 || payload.Rating > 5 {
		return fiber.NewError(fiber.StatusBadRequest, "rating must be between 1 and 5")
	}

	if err := h.testimonials.Insert(c.Context(), &payload); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateTestimonial merges provided fields into an existing testimonial.
func (h *TestimonialHandler) UpdateTestimonial(c *fiber.Ctx) error {
	testimonial, err := h.testimonials.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "Testimonial not found")
	}

	var payload models.Testimonial
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.Name != "" {
		testimonial.Name = payload.Name
	}
	if payload.Role != "" {
		testimonial.Role = payload.Role
	}
	if payload.Content != "" {
		testimonial.Content = payload.Content
	}
	if payload.Image != "" {
		testimonial.Image = payload.Image
	}
	if payload.Rating != 0 {
		if payload.Rating < 1 || payload.Rating > 5 {
			return fiber.NewError(fiber.StatusBadRequest, "rating must be between 1 and 5")
		}
		testimonial.Rating = payload.Rating
	}

	if err := h.testimonials.Update(c.Context(), testimonial); err != nil {
		return storeError(err, "Testimonial not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": testimonial})
}

// DeleteTestimonial removes a testimonial by document ID.
func (h *TestimonialHandler) DeleteTestimonial(c *fiber.Ctx) error {
	if err := h.testimonials.Delete(c.Context(), c.Params("id")); err != nil {
		return storeError(err, "Testimonial not found")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Testimonial deleted"})
}
