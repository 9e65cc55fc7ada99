package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/abdul977/diamondbakes-sub000/internal/config"
	"github.com/abdul977/diamondbakes-sub000/internal/middleware"
	"github.com/abdul977/diamondbakes-sub000/internal/models"
	"github.com/abdul977/diamondbakes-sub000/internal/store"
	"github.com/abdul977/diamondbakes-sub000/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	admins store.AdminStore
	cfg    *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(admins store.AdminStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{admins: admins, cfg: cfg}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a new admin account. The route is restricted to
// super_admin.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fields := new(utils.FieldSet).
		Require("username", req.Username).
		Require("email", req.Email).
		Require("password", req.Password)
	if missing := fields.Missing(); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, utils.MissingFieldsMessage(missing))
	}

	if req.Role == "" {
		req.Role = models.RoleAdmin
	}
	if !models.ValidRole(req.Role) {
		return fiber.NewError(fiber.StatusBadRequest, "role must be admin or super_admin")
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	admin := models.Admin{
		Username: req.Username,
		Email:    req.Email,
		Password: passwordHash,
		Role:     req.Role,
	}

	if err := h.admins.Insert(c.Context(), &admin); err != nil {
		if err == store.ErrDuplicate {
			return fiber.NewError(fiber.StatusBadRequest, "an admin with that email already exists")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": admin})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an admin, records the login time, and delivers the
// token both as an HTTP-only cookie and in the JSON body.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fields := new(utils.FieldSet).
		Require("email", req.Email).
		Require("password", req.Password)
	if missing := fields.Missing(); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, utils.MissingFieldsMessage(missing))
	}

	admin, err := h.admins.GetByEmail(c.Context(), req.Email)
	if err != nil {
		if err == store.ErrNotFound {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}

	if !utils.CheckPassword(admin.Password, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	now := time.Now().UTC()
	admin.LastLogin = &now
	if err := h.admins.Update(c.Context(), admin); err != nil {
		return err
	}

	return h.sendTokenResponse(c, admin, fiber.StatusOK)
}

// Logout clears the token cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "none",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})

	return c.JSON(fiber.Map{"success": true, "message": "Logged out"})
}

// Me returns the authenticated admin.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Not authorized to access this route")
	}
	return c.JSON(fiber.Map{"success": true, "data": admin})
}

type updateDetailsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateDetails changes the authenticated admin's username and email.
func (h *AuthHandler) UpdateDetails(c *fiber.Ctx) error {
	current, ok := middleware.CurrentAdmin(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Not authorized to access this route")
	}

	var req updateDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	// Reload with the password hash so the full document survives the save.
	admin, err := h.admins.GetByIDWithPassword(c.Context(), current.OID.Hex())
	if err != nil {
		return storeError(err, "Admin not found")
	}

	if req.Username != "" {
		admin.Username = req.Username
	}
	if req.Email != "" {
		admin.Email = req.Email
	}

	if err := h.admins.Update(c.Context(), admin); err != nil {
		if err == store.ErrDuplicate {
			return fiber.NewError(fiber.StatusBadRequest, "an admin with that email already exists")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": admin})
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdatePassword changes the authenticated admin's password after
// re-verifying the current one, then issues a fresh token.
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	current, ok := middleware.CurrentAdmin(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Not authorized to access this route")
	}

	var req updatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fields := new(utils.FieldSet).
		Require("currentPassword", req.CurrentPassword).
		Require("newPassword", req.NewPassword)
	if missing := fields.Missing(); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, utils.MissingFieldsMessage(missing))
	}

	admin, err := h.admins.GetByIDWithPassword(c.Context(), current.OID.Hex())
	if err != nil {
		return storeError(err, "Admin not found")
	}

	if !utils.CheckPassword(admin.Password, req.CurrentPassword) {
		return fiber.NewError(fiber.StatusUnauthorized, "Password is incorrect")
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}
	admin.Password = passwordHash

	if err := h.admins.Update(c.Context(), admin); err != nil {
		return err
	}

	return h.sendTokenResponse(c, admin, fiber.StatusOK)
}

// sendTokenResponse issues a JWT and delivers it as both an HTTP-only
// cross-site cookie and a JSON field, so browser and non-browser clients
// can authenticate.
func (h *AuthHandler) sendTokenResponse(c *fiber.Ctx, admin *models.Admin, status int) error {
	token, err := utils.GenerateToken(h.cfg.JWTSecret, admin.OID.Hex(), h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.CookieExpire),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})

	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"data":    admin,
	})
}
