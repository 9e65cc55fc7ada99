package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abdul977/diamondbakes-sub000/internal/models"
	"github.com/abdul977/diamondbakes-sub000/internal/store"
	"github.com/abdul977/diamondbakes-sub000/internal/utils"
)

// onlyOneAboutMessage is the dedicated error for attempts to create a
// second About document.
const onlyOneAboutMessage = "Only one About document can exist. Use the update endpoint to modify it."

// AboutHandler manages the about-page singleton.
type AboutHandler struct {
	about store.AboutStore
}

// NewAboutHandler constructs AboutHandler.
func NewAboutHandler(about store.AboutStore) *AboutHandler {
	return &AboutHandler{about: about}
}

func defaultAbout() models.About {
	return models.About{
		Heading:      "About Diamond Bakes",
		Introduction: "Diamond Bakes is a family bakery serving cakes, bread, pies and small chops made from scratch.",
		Features: []models.AboutFeature{
			{Icon: "FaBirthdayCake", Title: "Custom Cakes", Description: "Celebration cakes made to order for every occasion."},
			{Icon: "FaBreadSlice", Title: "Fresh Bread", Description: "Loaves baked every morning with simple ingredients."},
			{Icon: "FaHeart", Title: "Baked with Love", Description: "Small-batch baking with attention to every detail."},
		},
		Story: models.AboutStory{
			Title:   "Our Story",
			Content: []string{"What started as weekend baking for friends grew into a full bakery loved by the whole neighbourhood."},
			Images:  []models.AboutImage{},
		},
		Commitment: models.AboutCommitment{
			Title:   "Our Commitment",
			Content: "Quality ingredients, honest prices and bakes that make your day better.",
		},
	}
}

func validateFeatureIcons(features []models.AboutFeature) error {
	for _, f := range features {
		if !models.ValidFeatureIcon(f.Icon) {
			return fiber.NewError(fiber.StatusBadRequest, "invalid feature icon: "+f.Icon)
		}
	}
	return nil
}

// GetAbout returns the about-page content, creating it with defaults on
// first read.
func (h *AboutHandler) GetAbout(c *fiber.Ctx) error {
	about, err := h.about.Get(c.Context())
	if err == store.ErrNotFound {
		defaults := defaultAbout()
		if err := h.about.Insert(c.Context(), &defaults); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": defaults})
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": about})
}

// CreateAbout persists the about document. A second create is rejected
// with a dedicated error; callers must update instead.
func (h *AboutHandler) CreateAbout(c *fiber.Ctx) error {
	count, err := h.about.Count(c.Context())
	if err != nil {
		return err
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusBadRequest, onlyOneAboutMessage)
	}

	var payload models.About
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fields := new(utils.FieldSet).
		Require("heading", payload.Heading).
		Require("introduction", payload.Introduction)
	if missing := fields.Missing(); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, utils.MissingFieldsMessage(missing))
	}
	if err := validateFeatureIcons(payload.Features); err != nil {
		return err
	}

	if err := h.about.Insert(c.Context(), &payload); err != nil {
		if err == store.ErrDuplicate {
			// Lost a race with another create; the unique key caught it.
			return fiber.NewError(fiber.StatusBadRequest, onlyOneAboutMessage)
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateAbout merges provided fields into the about document, creating it
// when none exists yet.
func (h *AboutHandler) UpdateAbout(c *fiber.Ctx) error {
	var payload models.About
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validateFeatureIcons(payload.Features); err != nil {
		return err
	}

	about, err := h.about.Get(c.Context())
	if err == store.ErrNotFound {
		defaults := defaultAbout()
		about = &defaults
	} else if err != nil {
		return err
	}

	if payload.Heading != "" {
		about.Heading = payload.Heading
	}
	if payload.Introduction != "" {
		about.Introduction = payload.Introduction
	}
	if payload.Features != nil {
		about.Features = payload.Features
	}
	if payload.Story.Title != "" {
		about.Story.Title = payload.Story.Title
	}
	if payload.Story.Content != nil {
		about.Story.Content = payload.Story.Content
	}
	if payload.Story.Images != nil {
		about.Story.Images = payload.Story.Images
	}
	if payload.Commitment.Title != "" {
		about.Commitment.Title = payload.Commitment.Title
	}
	if payload.Commitment.Content != "" {
		about.Commitment.Content = payload.Commitment.Content
	}

	if about.OID.IsZero() {
		if err := h.about.Insert(c.Context(), about); err != nil {
			if err == store.ErrDuplicate {
				return fiber.NewError(fiber.StatusBadRequest, onlyOneAboutMessage)
			}
			return err
		}
	} else if err := h.about.Update(c.Context(), about); err != nil {
		return storeError(err, "About content not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": about})
}

// DeleteAbout removes all about documents. Intended for non-production
// resets only.
func (h *AboutHandler) DeleteAbout(c *fiber.Ctx) error {
	if err := h.about.DeleteAll(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "About content deleted"})
}
