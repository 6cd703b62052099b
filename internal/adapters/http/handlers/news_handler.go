package handlers

import (
	"literaryhub/internal/adapters/http/middleware"
	"literaryhub/internal/core/services"
	"literaryhub/internal/pkg/response"
	"literaryhub/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// NewsHandler handles news endpoints
type NewsHandler struct {
	newsService *services.NewsService
	validator   *validate.Validator
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsService *services.NewsService, validator *validate.Validator) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
		validator:   validator,
	}
}

// List handles listing news
// @Summary List news
// @Description Pinned first, then newest first
// @Tags News
// @Produce json
// @Success 200 {array} models.News
// @Router /news [get]
func (h *NewsHandler) List(c *fiber.Ctx) error {
	items, err := h.newsService.List(c.Context())
	if err != nil {
		return respondError(c, err, "list news")
	}
	return response.OK(c, items)
}

// Get handles getting one news entry
// @Summary Get news
// @Tags News
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} models.News
// @Failure 404 {object} response.Message
// @Router /news/{id} [get]
func (h *NewsHandler) Get(c *fiber.Ctx) error {
	news, err := h.newsService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "get news")
	}
	return response.OK(c, news)
}

// Create handles publishing news
// @Summary Create news
// @Tags News
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.NewsInput true "News"
// @Success 201 {object} models.News
// @Failure 400 {object} response.Message
// @Router /news [post]
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var input services.NewsInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, msgInvalidBody)
	}
	if err := h.validator.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	news, err := h.newsService.Create(c.Context(), middleware.CurrentActor(c), &input)
	if err != nil {
		return respondError(c, err, "create news")
	}
	return response.Created(c, news)
}

// Update handles editing news
// @Summary Update news
// @Tags News
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "News ID"
// @Param body body services.NewsUpdateInput true "Fields to change"
// @Success 200 {object} models.News
// @Failure 404 {object} response.Message
// @Router /news/{id} [put]
func (h *NewsHandler) Update(c *fiber.Ctx) error {
	var input services.NewsUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, msgInvalidBody)
	}
	if err := h.validator.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	news, err := h.newsService.Update(c.Context(), middleware.CurrentActor(c), c.Params("id"), &input)
	if err != nil {
		return respondError(c, err, "update news")
	}
	return response.OK(c, news)
}

// Delete handles removing news
// @Summary Delete news
// @Tags News
// @Produce json
// @Security BearerAuth
// @Param id path string true "News ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /news/{id} [delete]
func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	if err := h.newsService.Delete(c.Context(), middleware.CurrentActor(c), c.Params("id")); err != nil {
		return respondError(c, err, "delete news")
	}
	return response.Success(c, services.MsgNewsDeleted)
}
