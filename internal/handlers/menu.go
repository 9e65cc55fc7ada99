package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abdul977/diamondbakes-sub000/internal/models"
	"github.com/abdul977/diamondbakes-sub000/internal/store"
	"github.com/abdul977/diamondbakes-sub000/internal/utils"
)

// MenuHandler manages menu categories and products.
type MenuHandler struct {
	categories store.CategoryStore
	products   store.ProductStore
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(categories store.CategoryStore, products store.ProductStore) *MenuHandler {
	return &MenuHandler{categories: categories, products: products}
}

// Categories

// ListCategories returns all menu categories.
func (h *MenuHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "count": len(categories), "data": categories})
}

// GetCategory returns a single category by display ID.
func (h *MenuHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.categories.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "Category not found")
	}
	return c.JSON(fiber.Map{"success": true, "data": category})
}

// CreateCategory persists a new category with the next sequential display
// ID.
func (h *MenuHandler) CreateCategory(c *fiber.Ctx) error {
	var payload models.Category
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fields := new(utils.FieldSet).
		Require("name", payload.Name).
		Require("description", payload.Description).
		Require("image", payload.Image).
		Require("link", payload.Link)
	if missing := fields.Missing(); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, utils.MissingFieldsMessage(missing))
	}

	existing, err := h.categories.List(c.Context())
	if err != nil {
		return err
	}
	payload.ID = utils.NextID(categoryIDs(existing), "")

	if err := h.categories.Insert(c.Context(), &payload); err != nil {
		return storeError(err, "Category not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateCategory merges provided fields into an existing category. The
// display ID itself cannot be changed.
func (h *MenuHandler) UpdateCategory(c *fiber.Ctx) error {
	category, err := h.categories.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "Category not found")
	}

	var payload models.Category
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.Name != "" {
		category.Name = payload.Name
	}
	if payload.Description != "" {
		category.Description = payload.Description
	}
	if payload.Image != "" {
		category.Image = payload.Image
	}
	if payload.Link != "" {
		category.Link = payload.Link
	}

	if err := h.categories.Update(c.Context(), category); err != nil {
		return storeError(err, "Category not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": category})
}

// DeleteCategory removes a category by display ID.
func (h *MenuHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categories.Delete(c.Context(), c.Params("id")); err != nil {
		return storeError(err, "Category not found")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Category deleted"})
}

// Products

// ListProducts returns all menu products.
func (h *MenuHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.products.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "count": len(products), "data": products})
}

// GetProduct returns a single product by display ID.
func (h *MenuHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.products.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "Product not found")
	}
	return c.JSON(fiber.Map{"success": true, "data": product})
}

// CreateProduct persists a new product. The category reference must
// resolve; its name is copied onto the product and its name also selects
// the display-ID prefix.
func (h *MenuHandler) CreateProduct(c *fiber.Ctx) error {
	var payload models.Product
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fields := new(utils.FieldSet).
		Require("name", payload.Name).
		Require("description", payload.Description).
		Require("price", payload.Price).
		Require("categoryId", payload.CategoryID).
		Require("image", payload.Image)
	if missing := fields.Missing(); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, utils.MissingFieldsMessage(missing))
	}

	category, err := h.categories.Get(c.Context(), payload.CategoryID)
	if err != nil {
		if err == store.ErrNotFound {
			return fiber.NewError(fiber.StatusBadRequest, "categoryId does not reference an existing category")
		}
		return err
	}
	payload.CategoryName = category.Name

	existing, err := h.products.List(c.Context())
	if err != nil {
		return err
	}
	payload.ID = utils.NextID(productIDs(existing), utils.ProductPrefix(category.Name))

	if err := h.products.Insert(c.Context(), &payload); err != nil {
		return storeError(err, "Product not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateProduct merges provided fields into an existing product. When the
// category reference changes it is re-resolved and the denormalized name
// refreshed; the display ID keeps its original prefix.
func (h *MenuHandler) UpdateProduct(c *fiber.Ctx) error {
	product, err := h.products.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "Product not found")
	}

	var payload models.Product
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.Name != "" {
		product.Name = payload.Name
	}
	if payload.Description != "" {
		product.Description = payload.Description
	}
	if payload.Price != "" {
		product.Price = payload.Price
	}
	if payload.Image != "" {
		product.Image = payload.Image
	}
	if payload.CategoryID != "" {
		category, err := h.categories.Get(c.Context(), payload.CategoryID)
		if err != nil {
			if err == store.ErrNotFound {
				return fiber.NewError(fiber.StatusBadRequest, "categoryId does not reference an existing category")
			}
			return err
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
	}

	if err := h.products.Update(c.Context(), product); err != nil {
		return storeError(err, "Product not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// DeleteProduct removes a product by display ID.
func (h *MenuHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.products.Delete(c.Context(), c.Params("id")); err != nil {
		return storeError(err, "Product not found")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Product deleted"})
}

func categoryIDs(categories []models.Category) []string {
	ids := make([]string, len(categories))
	for i, cat := range categories {
		ids[i] = cat.ID
	}
	return ids
}

func productIDs(products []models.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
