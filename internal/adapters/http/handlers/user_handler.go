package handlers

import (
	"literaryhub/internal/adapters/http/middleware"
	"literaryhub/internal/core/domain"
	"literaryhub/internal/core/services"
	"literaryhub/internal/pkg/pagination"
	"literaryhub/internal/pkg/response"
	"literaryhub/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles profile and user management endpoints
type UserHandler struct {
	userService *services.UserService
	validator   *validate.Validator
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService, validator *validate.Validator) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
	}
}

// canAccess reports whether the caller may act on the user in :userId
func canAccess(c *fiber.Ctx, userID string) bool {
	actor := middleware.CurrentActor(c)
	return actor.UserID == userID || actor.Role.IsStaff()
}

// GetProfile returns a user profile
// @Summary Get user profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /users/{userId} [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !canAccess(c, userID) {
		return response.Forbidden(c, msgForbidden)
	}

	user, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return respondError(c, err, "get profile")
	}
	return response.OK(c, user)
}

// UpdateProfile updates the editable profile fields
// @Summary Update user profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param body body services.UpdateProfileInput true "Profile"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /users/{userId} [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !canAccess(c, userID) {
		return response.Forbidden(c, msgForbidden)
	}

	var input services.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, msgInvalidBody)
	}
	if err := h.validator.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Context(), userID, &input)
	if err != nil {
		return respondError(c, err, "update profile")
	}
	return response.OK(c, fiber.Map{
		"message": services.MsgProfileSaved,
		"user":    user,
	})
}

// ChangePassword changes the password of the caller
// @Summary Change password
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param body body services.ChangePasswordInput true "Passwords"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /users/{userId}/password [put]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if middleware.CurrentActor(c).UserID != userID {
		return response.Forbidden(c, msgForbidden)
	}

	var input services.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, msgInvalidBody)
	}
	if err := h.validator.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.userService.ChangePassword(c.Context(), userID, &input); err != nil {
		return respondError(c, err, "change password")
	}
	return response.Success(c, services.MsgPasswordSaved)
}

// UpdateAvatar replaces the avatar image URL
// @Summary Update avatar
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param body body services.UpdateAvatarInput true "Avatar URL"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /users/{userId}/avatar [put]
func (h *UserHandler) UpdateAvatar(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !canAccess(c, userID) {
		return response.Forbidden(c, msgForbidden)
	}

	var input services.UpdateAvatarInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, msgInvalidBody)
	}
	if err := h.validator.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	avatar, err := h.userService.UpdateAvatar(c.Context(), userID, &input)
	if err != nil {
		return respondError(c, err, "update avatar")
	}
	return response.OK(c, fiber.Map{
		"message": services.MsgAvatarSaved,
		"avatar":  avatar,
	})
}

// Heartbeat marks the user as online
// @Summary User heartbeat
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /users/{userId}/heartbeat [post]
func (h *UserHandler) Heartbeat(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !canAccess(c, userID) {
		return response.Forbidden(c, msgForbidden)
	}

	if err := h.userService.Heartbeat(c.Context(), userID); err != nil {
		return respondError(c, err, "heartbeat")
	}
	return response.Success(c, services.MsgHeartbeat)
}

// Favorites lists favorite and currently borrowed books
// @Summary List favorites
// @Description Favorite books merged with books the user currently holds
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {array} models.Book
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /users/{userId}/favorites [get]
func (h *UserHandler) Favorites(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !canAccess(c, userID) {
		return response.Forbidden(c, msgForbidden)
	}

	books, err := h.userService.Favorites(c.Context(), userID)
	if err != nil {
		return respondError(c, err, "list favorites")
	}
	return response.OK(c, books)
}

// AddFavorite adds a book to favorites
// @Summary Add favorite
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param body body services.FavoriteInput true "Book"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /users/{userId}/favorites [post]
func (h *UserHandler) AddFavorite(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !canAccess(c, userID) {
		return response.Forbidden(c, msgForbidden)
	}

	var input services.FavoriteInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, msgInvalidBody)
	}
	if err := h.validator.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	favorites, err := h.userService.AddFavorite(c.Context(), userID, input.BookID)
	if err != nil {
		return respondError(c, err, "add favorite")
	}
	return response.OK(c, fiber.Map{
		"message":   services.MsgFavoriteAdded,
		"favorites": favorites,
	})
}

// RemoveFavorite removes a book from favorites
// @Summary Remove favorite
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param bookId path string true "Book business key"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.Message
// @Router /users/{userId}/favorites/{bookId} [delete]
func (h *UserHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !canAccess(c, userID) {
		return response.Forbidden(c, msgForbidden)
	}

	favorites, err := h.userService.RemoveFavorite(c.Context(), userID, c.Params("bookId"))
	if err != nil {
		return respondError(c, err, "remove favorite")
	}
	return response.OK(c, fiber.Map{
		"message":   services.MsgFavoriteRemoved,
		"favorites": favorites,
	})
}

// Stats returns borrow counters for a user
// @Summary User borrow stats
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} services.UserStats
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /users/{userId}/stats [get]
func (h *UserHandler) Stats(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !canAccess(c, userID) {
		return response.Forbidden(c, msgForbidden)
	}

	stats, err := h.userService.Stats(c.Context(), userID)
	if err != nil {
		return respondError(c, err, "user stats")
	}
	return response.OK(c, stats)
}

// ListUsers returns all users with pagination
// @Summary List users
// @Description Newest first (Admin/Librarian)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} map[string]interface{}
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	result, err := h.userService.ListUsers(c.Context(), pagination.GetParams(c))
	if err != nil {
		return respondError(c, err, "list users")
	}
	return response.OK(c, result)
}

// UpdateRole changes a user's role
// @Summary Update user role
// @Description Admin only; admins cannot change their own role
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param body body services.UpdateRoleInput true "Role"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /admin/users/{userId}/role [put]
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	var input services.UpdateRoleInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, msgInvalidBody)
	}
	if err := h.validator.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	user, err := h.userService.UpdateRole(c.Context(), middleware.CurrentActor(c), c.Params("userId"), domain.Role(input.Role))
	if err != nil {
		return respondError(c, err, "update role")
	}
	return response.OK(c, fiber.Map{
		"message": services.MsgRoleSaved,
		"user":    user,
	})
}

// DeleteUser removes a user account
// @Summary Delete user
// @Description Admin only; users still holding books cannot be deleted
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /admin/users/{userId} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.userService.DeleteUser(c.Context(), middleware.CurrentActor(c), c.Params("userId")); err != nil {
		return respondError(c, err, "delete user")
	}
	return response.Success(c, services.MsgUserDeleted)
}
