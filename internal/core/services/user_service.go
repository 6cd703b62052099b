package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"literaryhub/internal/adapters/persistence/models"
	"literaryhub/internal/adapters/persistence/repositories"
	"literaryhub/internal/core/domain"
	"literaryhub/internal/pkg/clock"
	"literaryhub/internal/pkg/pagination"
	"literaryhub/internal/pkg/password"

	"gorm.io/gorm"
)

// UserService handles reader profiles, favorites and staff user management
type UserService struct {
	userRepo repositories.UserRepository
	bookRepo repositories.BookRepository
	borrows  *BorrowService
	activity *ActivityService
	clock    clock.Clock
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	bookRepo repositories.BookRepository,
	borrows *BorrowService,
	activity *ActivityService,
	clk clock.Clock,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		bookRepo: bookRepo,
		borrows:  borrows,
		activity: activity,
		clock:    clk,
	}
}

// UpdateProfileInput represents update profile input (for self)
type UpdateProfileInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	Bio         *string `json:"bio" validate:"omitempty,max=1000"`
	Avatar      *string `json:"avatar" validate:"omitempty,max=500"`
	ReadingGoal *int    `json:"readingGoal" validate:"omitempty,min=0,max=1000"`
}

// UpdateAvatarInput carries an avatar image URL
type UpdateAvatarInput struct {
	Avatar string `json:"avatar" validate:"max=500"`
}

// ChangePasswordInput represents change password input
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// FavoriteInput names the book to add to favorites
type FavoriteInput struct {
	BookID string `json:"bookId" validate:"required,max=50"`
}

// UpdateRoleInput represents a role change by an admin
type UpdateRoleInput struct {
	Role string `json:"role" validate:"required,oneof=user librarian admin"`
}

// UserStats is the reader dashboard summary
type UserStats struct {
	UserBorrowStats
	ReadingGoal   int       `json:"readingGoal"`
	FavoriteCount int       `json:"favoriteCount"`
	MemberSince   time.Time `json:"memberSince"`
}

// GetProfile returns a user without the password hash
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// UpdateProfile updates the editable profile fields
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyString(&user.Name, input.Name)
	applyString(&user.Phone, input.Phone)
	applyString(&user.Address, input.Address)
	applyString(&user.Bio, input.Bio)
	applyString(&user.Avatar, input.Avatar)
	if input.ReadingGoal != nil {
		user.ReadingGoal = *input.ReadingGoal
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// UpdateAvatar replaces the avatar URL and returns the stored value
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, input *UpdateAvatarInput) (string, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return "", err
	}

	user.Avatar = input.Avatar
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}
	return user.Avatar, nil
}

// ChangePassword replaces the password after checking the current one
func (s *UserService) ChangePassword(ctx context.Context, userID string, input *ChangePasswordInput) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if !password.Verify(input.CurrentPassword, user.Password) {
		return domain.RuleViolation(domain.ErrInvalidCredentials, MsgWrongPassword)
	}

	hashedPassword, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashedPassword

	return s.userRepo.Update(ctx, user)
}

// Heartbeat records that the user is online now
func (s *UserService) Heartbeat(ctx context.Context, userID string) error {
	if err := s.userRepo.Touch(ctx, userID, s.clock.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.ErrUserNotFound, MsgUserNotFound)
		}
		return err
	}
	return nil
}

// AddFavorite adds a book to the user's favorites; adding twice is a no-op
func (s *UserService) AddFavorite(ctx context.Context, userID, bookID string) ([]string, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.HasFavorite(bookID) {
		return user.FavoriteBooks, nil
	}

	if _, err := s.bookRepo.GetByBookID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound(domain.ErrBookNotFound, MsgBookNotFound)
		}
		return nil, err
	}

	user.FavoriteBooks = append(user.FavoriteBooks, bookID)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.FavoriteBooks, nil
}

// RemoveFavorite drops a book from the user's favorites
func (s *UserService) RemoveFavorite(ctx context.Context, userID, bookID string) ([]string, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(user.FavoriteBooks))
	for _, id := range user.FavoriteBooks {
		if id != bookID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(user.FavoriteBooks) {
		return kept, nil
	}

	user.FavoriteBooks = kept
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return kept, nil
}

// Favorites returns the user's bookshelf: favorite books plus every book
// the user currently holds, each listed once
func (s *UserService) Favorites(ctx context.Context, userID string) ([]*models.Book, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	held, err := s.borrows.ActiveBookIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(user.FavoriteBooks)+len(held))
	var bookIDs []string
	for _, id := range append(append([]string{}, user.FavoriteBooks...), held...) {
		if !seen[id] {
			seen[id] = true
			bookIDs = append(bookIDs, id)
		}
	}

	return s.bookRepo.ListByBookIDs(ctx, bookIDs)
}

// Stats summarizes a reader's borrowing history
func (s *UserService) Stats(ctx context.Context, userID string) (*UserStats, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts, err := s.borrows.UserStats(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		UserBorrowStats: *counts,
		ReadingGoal:     user.ReadingGoal,
		FavoriteCount:   len(user.FavoriteBooks),
		MemberSince:     user.CreatedAt,
	}, nil
}

// ListUsers returns a page of users, newest first
func (s *UserService) ListUsers(ctx context.Context, params pagination.Params) (*pagination.Page[*models.UserResponse], error) {
	users, total, err := s.userRepo.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]*models.UserResponse, len(users))
	for i, user := range users {
		items[i] = user.ToResponse()
	}
	return pagination.NewPage(items, params, total), nil
}

// UpdateRole changes another user's role (Admin only)
func (s *UserService) UpdateRole(ctx context.Context, actor domain.Actor, userID string, role domain.Role) (*models.UserResponse, error) {
	if !role.Valid() {
		return nil, domain.RuleViolation(domain.ErrInvalidRole, MsgInvalidRole)
	}
	if actor.UserID == userID {
		return nil, domain.RuleViolation(domain.ErrSelfManagement, MsgSelfRole)
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	previous := user.Role
	user.Role = string(role)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("👤 Role changed: user=%s %s -> %s", user.ID, previous, role)
	s.activity.RecordBy(ctx, actor, "UPDATE_ROLE", domain.CategoryUser,
		fmt.Sprintf("Đổi vai trò %s: %s -> %s", user.Email, previous, role))
	return user.ToResponse(), nil
}

// DeleteUser removes an account that holds no borrowed books (Admin only)
func (s *UserService) DeleteUser(ctx context.Context, actor domain.Actor, userID string) error {
	if actor.UserID == userID {
		return domain.RuleViolation(domain.ErrSelfManagement, MsgSelfDelete)
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	held, err := s.borrows.ActiveBookIDs(ctx, user.ID)
	if err != nil {
		return err
	}
	if len(held) > 0 {
		return domain.RuleViolation(domain.ErrUserHasBorrows, MsgUserHasBorrows)
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.ErrUserNotFound, MsgUserNotFound)
		}
		return err
	}

	log.Printf("🗑️ User deleted: %s", user.ID)
	s.activity.RecordBy(ctx, actor, "DELETE_USER", domain.CategoryUser,
		fmt.Sprintf("Xóa người dùng %s", user.Email))
	return nil
}

func (s *UserService) getUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound(domain.ErrUserNotFound, MsgUserNotFound)
		}
		return nil, err
	}
	return user, nil
}
