package repositories

import (
	"context"
	"time"

	"literaryhub/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	Delete(ctx context.Context, id string) error
	Touch(ctx context.Context, id string, at time.Time) error
}

// BookSort orders search results
type BookSort string

const (
	SortTitleAsc  BookSort = "title-asc"
	SortTitleDesc BookSort = "title-desc"
	SortYearAsc   BookSort = "year-asc"
	SortYearDesc  BookSort = "year-desc"
)

// BookFilter narrows a catalog listing. Genre and Author match case-insensitively
// as substrings.
type BookFilter struct {
	Genre  string
	Author string
	Sort   BookSort
}

// BookRepository defines catalog repository interface
type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Book, error)
	GetByBookID(ctx context.Context, bookID string) (*models.Book, error)
	List(ctx context.Context) ([]*models.Book, error)
	Find(ctx context.Context, filter BookFilter) ([]*models.Book, error)
	ExistsByBookID(ctx context.Context, bookID string) (bool, error)
	ListByBookIDs(ctx context.Context, bookIDs []string) ([]*models.Book, error)
	DeleteAll(ctx context.Context) error
	CreateBatch(ctx context.Context, books []*models.Book) error
}

// BorrowRepository defines the borrow ledger interface
type BorrowRepository interface {
	// WithinTransaction runs fn against a repository bound to one transaction
	WithinTransaction(ctx context.Context, fn func(tx BorrowRepository) error) error

	// LockBook loads a book by business key, holding a row lock until the
	// surrounding transaction ends where the database supports it
	LockBook(ctx context.Context, bookID string) (*models.Book, error)

	Create(ctx context.Context, borrow *models.Borrow) error
	GetByID(ctx context.Context, id string) (*models.Borrow, error)
	FindActive(ctx context.Context, userID, bookID string) (*models.Borrow, error)
	CountByBookBetween(ctx context.Context, bookID string, start, end time.Time) (int64, error)
	CountByUserSince(ctx context.Context, userID string, since time.Time) (int64, error)
	CountByBookBetweenGrouped(ctx context.Context, start, end time.Time) (map[string]int64, error)
	CountByUserPerStatus(ctx context.Context, userID string) (map[string]int64, error)
	ListByUser(ctx context.Context, userID, status string) ([]*models.Borrow, error)
	ListAll(ctx context.Context) ([]*models.Borrow, error)

	// MarkReturned closes a borrow unless it is already returned;
	// it reports false when nothing was updated
	MarkReturned(ctx context.Context, id string, returnedAt time.Time, lateFee int64) (bool, error)
	MarkOverdue(ctx context.Context, ids []string) error
	SweepOverdue(ctx context.Context, now time.Time) (int64, error)
	SweepOverdueForUser(ctx context.Context, userID string, now time.Time) (int64, error)
	ListActiveBookIDs(ctx context.Context, userID string) ([]string, error)
}

// NewsRepository defines news repository interface
type NewsRepository interface {
	Create(ctx context.Context, news *models.News) error
	Update(ctx context.Context, news *models.News) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.News, error)
	List(ctx context.Context) ([]*models.News, error)
	DeleteAll(ctx context.Context) error
	CreateBatch(ctx context.Context, items []*models.News) error
}

// ActivityLogRepository defines activity log repository interface
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	List(ctx context.Context, offset, limit int) ([]*models.ActivityLog, int64, error)
}
