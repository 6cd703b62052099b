package handlers

import (
	"strings"

	"literaryhub/internal/adapters/http/middleware"
	"literaryhub/internal/core/domain"
	"literaryhub/internal/core/services"
	"literaryhub/internal/pkg/response"
	"literaryhub/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// BorrowHandler handles the borrow ledger endpoints
type BorrowHandler struct {
	borrowService *services.BorrowService
	userService   *services.UserService
	validator     *validate.Validator
}

// NewBorrowHandler creates a new borrow handler
func NewBorrowHandler(
	borrowService *services.BorrowService,
	userService *services.UserService,
	validator *validate.Validator,
) *BorrowHandler {
	return &BorrowHandler{
		borrowService: borrowService,
		userService:   userService,
		validator:     validator,
	}
}

// BorrowRequest represents borrow request body
type BorrowRequest struct {
	BookID string `json:"bookId" validate:"required"`
	UserID string `json:"userId"`
	Fee    *int64 `json:"fee" validate:"omitempty,min=0"`
}

// Borrow handles borrowing a book
// @Summary Borrow a book
// @Description Records a borrow event. userId defaults to the caller; staff may borrow on behalf of another user.
// @Tags Borrows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BorrowRequest true "Borrow data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /borrows [post]
func (h *BorrowHandler) Borrow(c *fiber.Ctx) error {
	var req BorrowRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, msgInvalidBody)
	}
	req.BookID = strings.TrimSpace(req.BookID)
	if err := h.validator.Struct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	actor := middleware.CurrentActor(c)
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = actor.UserID
	}

	if userID != actor.UserID {
		if !actor.Role.IsStaff() {
			return response.Forbidden(c, msgForbidden)
		}
		if _, err := h.userService.GetProfile(c.Context(), userID); err != nil {
			return respondError(c, err, "borrow: load borrower")
		}
	}

	borrow, err := h.borrowService.Borrow(c.Context(), services.BorrowInput{
		BookID: req.BookID,
		UserID: userID,
		Fee:    req.Fee,
	})
	if err != nil {
		return respondError(c, err, "borrow")
	}

	return response.Created(c, fiber.Map{
		"message": services.MsgBorrowed,
		"borrow":  borrow,
	})
}

// Return handles returning a borrowed book
// @Summary Return a book
// @Description Closes a borrow and charges the late fee (Admin/Librarian)
// @Tags Borrows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param borrowId path string true "Borrow ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /borrows/{borrowId}/return [put]
func (h *BorrowHandler) Return(c *fiber.Ctx) error {
	result, err := h.borrowService.Return(c.Context(), c.Params("borrowId"))
	if err != nil {
		return respondError(c, err, "return")
	}

	return response.OK(c, fiber.Map{
		"message": services.MsgReturned,
		"borrow":  result.Borrow,
		"lateFee": result.LateFeeMessage,
	})
}

// ListUserBorrows handles listing a user's borrows
// @Summary List a user's borrows
// @Description Newest first. Plain users may only list their own borrows.
// @Tags Borrows
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param status query string false "borrowing | returned | overdue | all"
// @Success 200 {array} models.Borrow
// @Failure 400 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /borrows/user/{userId} [get]
func (h *BorrowHandler) ListUserBorrows(c *fiber.Ctx) error {
	userID := c.Params("userId")
	actor := middleware.CurrentActor(c)
	if userID != actor.UserID && !actor.Role.IsStaff() {
		return response.Forbidden(c, msgForbidden)
	}

	status := strings.ToLower(strings.TrimSpace(c.Query("status")))
	if status != "" && status != domain.StatusFilterAll && !domain.BorrowStatus(status).Valid() {
		return response.BadRequest(c, msgInvalidState)
	}

	borrows, err := h.borrowService.ListUserBorrows(c.Context(), userID, status)
	if err != nil {
		return respondError(c, err, "list user borrows")
	}

	return response.OK(c, borrows)
}

// ListAllBorrows handles listing every borrow
// @Summary List all borrows
// @Description Every borrow with its borrower (Admin/Librarian)
// @Tags Borrows
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Borrow
// @Router /borrows [get]
func (h *BorrowHandler) ListAllBorrows(c *fiber.Ctx) error {
	borrows, err := h.borrowService.ListAllBorrows(c.Context())
	if err != nil {
		return respondError(c, err, "list borrows")
	}

	return response.OK(c, borrows)
}
