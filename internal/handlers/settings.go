package handlers

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/abdul977/diamondbakes-sub000/internal/models"
	"github.com/abdul977/diamondbakes-sub000/internal/store"
)

// SettingsHandler manages the site settings singleton.
type SettingsHandler struct {
	settings store.SettingsStore
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(settings store.SettingsStore) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

const (
	defaultPrimaryColor    = "#92400E"
	defaultSecondaryColor  = "#F59E0B"
	defaultFontFamily      = "Poppins, sans-serif"
	defaultBackgroundColor = "#FFFBEB"
	defaultHeroTitle       = "Welcome to Diamond Bakes"
	defaultHeroDescription = "Freshly baked cakes, bread and pastries made with love every day."
	defaultSiteName        = "DIAMOND BAKES"
	defaultMetaDescription = "Diamond Bakes - cakes, bread, pies and small chops baked fresh daily."
	defaultOpeningHours    = "Mon - Sat: 8:00 AM - 8:00 PM"
)

func defaultSettings() models.Settings {
	settings := models.Settings{
		SiteName:        defaultSiteName,
		OpeningHours:    defaultOpeningHours,
		MetaDescription: defaultMetaDescription,
	}
	applySettingsDefaults(&settings)
	return settings
}

// applySettingsDefaults back-fills blank theme and hero fields so partial
// documents never surface empty values to the front-end.
func applySettingsDefaults(settings *models.Settings) {
	if settings == nil {
		return
	}
	if strings.TrimSpace(settings.Theme.PrimaryColor) == "" {
		settings.Theme.PrimaryColor = defaultPrimaryColor
	}
	if strings.TrimSpace(settings.Theme.SecondaryColor) == "" {
		settings.Theme.SecondaryColor = defaultSecondaryColor
	}
	if strings.TrimSpace(settings.Theme.FontFamily) == "" {
		settings.Theme.FontFamily = defaultFontFamily
	}
	if strings.TrimSpace(settings.Theme.BackgroundColor) == "" {
		settings.Theme.BackgroundColor = defaultBackgroundColor
	}
	if strings.TrimSpace(settings.Hero.Title) == "" {
		settings.Hero.Title = defaultHeroTitle
	}
	if strings.TrimSpace(settings.Hero.Description) == "" {
		settings.Hero.Description = defaultHeroDescription
	}
}

// GetSettings returns the settings singleton, creating it with defaults
// on first read.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settings.Get(c.Context())
	if err == store.ErrNotFound {
		defaults := defaultSettings()
		if err := h.settings.Upsert(c.Context(), &defaults); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": defaults})
	}
	if err != nil {
		return err
	}

	applySettingsDefaults(settings)
	return c.JSON(fiber.Map{"success": true, "data": settings})
}

// UpdateSettings merges provided fields into the singleton, creating it
// first when absent. Unspecified theme/hero fields keep their previous
// values.
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var input models.Settings
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(input.ContactEmail) != "" {
		if _, err := mail.ParseAddress(input.ContactEmail); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid contactEmail format")
		}
	}

	existing, err := h.settings.Get(c.Context())
	if err == store.ErrNotFound {
		defaults := defaultSettings()
		existing = &defaults
	} else if err != nil {
		return err
	}

	mergeSettings(existing, &input)
	applySettingsDefaults(existing)

	if err := h.settings.Upsert(c.Context(), existing); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": existing})
}

func mergeSettings(dst, src *models.Settings) {
	if src.Theme.PrimaryColor != "" {
		dst.Theme.PrimaryColor = src.Theme.PrimaryColor
	}
	if src.Theme.SecondaryColor != "" {
		dst.Theme.SecondaryColor = src.Theme.SecondaryColor
	}
	if src.Theme.FontFamily != "" {
		dst.Theme.FontFamily = src.Theme.FontFamily
	}
	if src.Theme.BackgroundColor != "" {
		dst.Theme.BackgroundColor = src.Theme.BackgroundColor
	}
	if src.Hero.Title != "" {
		dst.Hero.Title = src.Hero.Title
	}
	if src.Hero.Description != "" {
		dst.Hero.Description = src.Hero.Description
	}
	if src.Hero.ImageURL != "" {
		dst.Hero.ImageURL = src.Hero.ImageURL
	}
	if src.SiteName != "" {
		dst.SiteName = src.SiteName
	}
	if src.ContactEmail != "" {
		dst.ContactEmail = src.ContactEmail
	}
	if src.ContactPhone != "" {
		dst.ContactPhone = src.ContactPhone
	}
	if src.Address != "" {
		dst.Address = src.Address
	}
	if src.OpeningHours != "" {
		dst.OpeningHours = src.OpeningHours
	}
	if src.SocialMedia.Facebook != "" {
		dst.SocialMedia.Facebook = src.SocialMedia.Facebook
	}
	if src.SocialMedia.Instagram != "" {
		dst.SocialMedia.Instagram = src.SocialMedia.Instagram
	}
	if src.SocialMedia.Twitter != "" {
		dst.SocialMedia.Twitter = src.SocialMedia.Twitter
	}
	if src.SocialMedia.Whatsapp != "" {
		dst.SocialMedia.Whatsapp = src.SocialMedia.Whatsapp
	}
	if src.MetaDescription != "" {
		dst.MetaDescription = src.MetaDescription
	}
	if src.OrderingInstructions != "" {
		dst.OrderingInstructions = src.OrderingInstructions
	}
}
