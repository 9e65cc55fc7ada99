package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abdul977/diamondbakes-sub000/internal/models"
	"github.com/abdul977/diamondbakes-sub000/internal/store"
	"github.com/abdul977/diamondbakes-sub000/internal/utils"
)

// FAQHandler manages FAQ categories and their embedded questions.
type FAQHandler struct {
	faqs store.FAQStore
}

// NewFAQHandler constructs FAQHandler.
func NewFAQHandler(faqs store.FAQStore) *FAQHandler {
	return &FAQHandler{faqs: faqs}
}

// ListCategories returns all FAQ categories ordered by their order field,
// with questions ordered inside each.
func (h *FAQHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.faqs.List(c.Context())
	if err != nil {
		return err
	}
	for i := range categories {
		categories[i].SortQuestions()
	}
	return c.JSON(fiber.Map{"success": true, "count": len(categories), "data": categories})
}

// GetCategory returns a single FAQ category by display ID.
func (h *FAQHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.faqs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "FAQ category not found")
	}
	category.SortQuestions()
	return c.JSON(fiber.Map{"success": true, "data": category})
}

// CreateCategory persists a new FAQ category with the next numeric
// display ID. Questions submitted with the category get sequential IDs.
func (h *FAQHandler) CreateCategory(c *fiber.Ctx) error {
	var payload models.FAQCategory
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if missing := new(utils.FieldSet).Require("name", payload.Name).Missing(); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, utils.MissingFieldsMessage(missing))
	}

	existing, err := h.faqs.List(c.Context())
	if err != nil {
		return err
	}
	payload.ID = utils.NextID(faqIDs(existing), "")

	if payload.Questions == nil {
		payload.Questions = []models.FAQQuestion{}
	}
	for i := range payload.Questions {
		payload.Questions[i].ID = utils.NextID(questionIDs(payload.Questions[:i]), "")
	}

	if err := h.faqs.Insert(c.Context(), &payload); err != nil {
		return storeError(err, "FAQ category not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateCategory merges name and order into an existing FAQ category.
func (h *FAQHandler) UpdateCategory(c *fiber.Ctx) error {
	category, err := h.faqs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "FAQ category not found")
	}

	var payload struct {
		Name  string `json:"name"`
		Order *int   `json:"order"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.Name != "" {
		category.Name = payload.Name
	}
	if payload.Order != nil {
		category.Order = *payload.Order
	}

	if err := h.faqs.Update(c.Context(), category); err != nil {
		return storeError(err, "FAQ category not found")
	}

	category.SortQuestions()
	return c.JSON(fiber.Map{"success": true, "data": category})
}

// DeleteCategory removes an FAQ category and, with it, all of its
// embedded questions.
func (h *FAQHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.faqs.Delete(c.Context(), c.Params("id")); err != nil {
		return storeError(err, "FAQ category not found")
	}
	return c.JSON(fiber.Map{"success": true, "message": "FAQ category deleted"})
}

type questionRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    *int   `json:"order"`
}

// AddQuestion appends a question to a category. A question without an
// explicit order slots in after the current maximum (0 when the category
// is empty).
func (h *FAQHandler) AddQuestion(c *fiber.Ctx) error {
	category, err := h.faqs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "FAQ category not found")
	}

	var req questionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fields := new(utils.FieldSet).
		Require("question", req.Question).
		Require("answer", req.Answer)
	if missing := fields.Missing(); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, utils.MissingFieldsMessage(missing))
	}

	question := models.FAQQuestion{
		ID:       utils.NextID(questionIDs(category.Questions), ""),
		Question: req.Question,
		Answer:   req.Answer,
		Order:    category.NextQuestionOrder(),
	}
	if req.Order != nil {
		question.Order = *req.Order
	}

	category.Questions = append(category.Questions, question)
	if err := h.faqs.Update(c.Context(), category); err != nil {
		return storeError(err, "FAQ category not found")
	}

	category.SortQuestions()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": category})
}

// UpdateQuestion merges provided fields into a question inside a
// category, then re-saves the parent document.
func (h *FAQHandler) UpdateQuestion(c *fiber.Ctx) error {
	category, err := h.faqs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "FAQ category not found")
	}

	var req questionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	questionID := c.Params("questionId")
	found := false
	for i := range category.Questions {
		if category.Questions[i].ID != questionID {
			continue
		}
		if req.Question != "" {
			category.Questions[i].Question = req.Question
		}
		if req.Answer != "" {
			category.Questions[i].Answer = req.Answer
		}
		if req.Order != nil {
			category.Questions[i].Order = *req.Order
		}
		found = true
		break
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Question not found")
	}

	if err := h.faqs.Update(c.Context(), category); err != nil {
		return storeError(err, "FAQ category not found")
	}

	category.SortQuestions()
	return c.JSON(fiber.Map{"success": true, "data": category})
}

// DeleteQuestion removes a question from a category and re-saves the
// parent document.
func (h *FAQHandler) DeleteQuestion(c *fiber.Ctx) error {
	category, err := h.faqs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(err, "FAQ category not found")
	}

	questionID := c.Params("questionId")
	kept := category.Questions[:0]
	found := false
	for _, q := range category.Questions {
		if q.ID == questionID {
			found = true
			continue
		}
		kept = append(kept, q)
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Question not found")
	}
	category.Questions = kept

	if err := h.faqs.Update(c.Context(), category); err != nil {
		return storeError(err, "FAQ category not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Question deleted"})
}

func faqIDs(categories []models.FAQCategory) []string {
	ids := make([]string, len(categories))
	for i, cat := range categories {
		ids[i] = cat.ID
	}
	return ids
}

func questionIDs(questions []models.FAQQuestion) []string {
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
