package handlers

import (
	"literaryhub/internal/adapters/http/middleware"
	"literaryhub/internal/core/services"
	"literaryhub/internal/pkg/response"
	"literaryhub/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// BookHandler handles catalog endpoints
type BookHandler struct {
	catalogService *services.CatalogService
	validator      *validate.Validator
}

// NewBookHandler creates a new book handler
func NewBookHandler(catalogService *services.CatalogService, validator *validate.Validator) *BookHandler {
	return &BookHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

// ListBooks handles the catalog listing
// @Summary List books
// @Description Every book with dailyLimit and stock = what is left of today's quota
// @Tags Books
// @Produce json
// @Success 200 {array} services.BookAvailability
// @Router /books [get]
func (h *BookHandler) ListBooks(c *fiber.Ctx) error {
	books, err := h.catalogService.ListBooks(c.Context())
	if err != nil {
		return respondError(c, err, "list books")
	}
	return response.OK(c, books)
}

// SearchBooks handles catalog search
// @Summary Search books
// @Tags Books
// @Produce json
// @Param query query string false "Title, alternative title, author or keyword"
// @Param genre query string false "Genre contains"
// @Param author query string false "Author name contains"
// @Param sortBy query string false "title-asc | title-desc | year-asc | year-desc"
// @Success 200 {array} models.Book
// @Router /books/search [get]
func (h *BookHandler) SearchBooks(c *fiber.Ctx) error {
	books, err := h.catalogService.SearchBooks(c.Context(), services.SearchInput{
		Query:  c.Query("query"),
		Genre:  c.Query("genre"),
		Author: c.Query("author"),
		SortBy: c.Query("sortBy"),
	})
	if err != nil {
		return respondError(c, err, "search books")
	}
	return response.OK(c, books)
}

// GetBook handles getting one book by id or bookId
// @Summary Get book
// @Tags Books
// @Produce json
// @Param id path string true "Book ID or bookId"
// @Success 200 {object} models.Book
// @Failure 404 {object} response.Message
// @Router /books/{id} [get]
func (h *BookHandler) GetBook(c *fiber.Ctx) error {
	book, err := h.catalogService.GetBook(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "get book")
	}
	return response.OK(c, book)
}

// ReadBook handles the reader view
// @Summary Read book
// @Tags Books
// @Produce json
// @Param id path string true "Book ID or bookId"
// @Success 200 {object} services.BookContent
// @Failure 404 {object} response.Message
// @Router /books/{id}/read [get]
func (h *BookHandler) ReadBook(c *fiber.Ctx) error {
	content, err := h.catalogService.ReadBook(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "read book")
	}
	return response.OK(c, content)
}

// Authors handles the unique author listing
// @Summary List authors
// @Tags Books
// @Produce json
// @Success 200 {array} models.BookAuthor
// @Router /authors [get]
func (h *BookHandler) Authors(c *fiber.Ctx) error {
	authors, err := h.catalogService.Authors(c.Context())
	if err != nil {
		return respondError(c, err, "list authors")
	}
	return response.OK(c, authors)
}

// CreateBook handles adding a book
// @Summary Create book
// @Tags Books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.BookInput true "Book"
// @Success 201 {object} models.Book
// @Failure 400 {object} response.Message
// @Router /books [post]
func (h *BookHandler) CreateBook(c *fiber.Ctx) error {
	var input services.BookInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, msgInvalidBody)
	}
	if err := h.validator.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	book, err := h.catalogService.CreateBook(c.Context(), middleware.CurrentActor(c), &input)
	if err != nil {
		return respondError(c, err, "create book")
	}
	return response.Created(c, book)
}

// UpdateBook handles editing a book
// @Summary Update book
// @Tags Books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID or bookId"
// @Param body body services.BookUpdateInput true "Fields to change"
// @Success 200 {object} models.Book
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /books/{id} [put]
func (h *BookHandler) UpdateBook(c *fiber.Ctx) error {
	var input services.BookUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, msgInvalidBody)
	}
	if err := h.validator.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	book, err := h.catalogService.UpdateBook(c.Context(), middleware.CurrentActor(c), c.Params("id"), &input)
	if err != nil {
		return respondError(c, err, "update book")
	}
	return response.OK(c, book)
}

// DeleteBook handles removing a book
// @Summary Delete book
// @Tags Books
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID or bookId"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteBook(c.Context(), middleware.CurrentActor(c), c.Params("id")); err != nil {
		return respondError(c, err, "delete book")
	}
	return response.Success(c, services.MsgBookDeleted)
}
