package repositories

import (
	"context"
	"strings"

	"literaryhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// bookRepository implements BookRepository interface
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// Create creates a new book
func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

// Update saves every column of book
func (r *bookRepository) Update(ctx context.Context, book *models.Book) error {
	return r.db.WithContext(ctx).Save(book).Error
}

// Delete removes a book by ID
func (r *bookRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Book{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID gets a book by ID
func (r *bookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	var book models.Book
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ListByBookIDs gets the books whose business key is in bookIDs
func (r *bookRepository) ListByBookIDs(ctx context.Context, bookIDs []string) ([]*models.Book, error) {
	books := []*models.Book{}
	if len(bookIDs) == 0 {
		return books, nil
	}
	err := r.db.WithContext(ctx).Where("book_id IN ?", bookIDs).Order("book_id ASC").Find(&books).Error
	return books, err
}

// GetByBookID gets a book by its business key
func (r *bookRepository) GetByBookID(ctx context.Context, bookID string) (*models.Book, error) {
	var book models.Book
	err := r.db.WithContext(ctx).Where("book_id = ?", bookID).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// List returns the whole catalog ordered by business key
func (r *bookRepository) List(ctx context.Context) ([]*models.Book, error) {
	var books []*models.Book
	err := r.db.WithContext(ctx).Order("book_id ASC").Find(&books).Error
	return books, err
}

// Find returns books matching filter in the requested order
func (r *bookRepository) Find(ctx context.Context, filter BookFilter) ([]*models.Book, error) {
	query := r.db.WithContext(ctx).Model(&models.Book{})

	if filter.Genre != "" {
		query = query.Where("LOWER(genre) LIKE ?", likePattern(filter.Genre))
	}
	if filter.Author != "" {
		query = query.Where("LOWER(author_name) LIKE ?", likePattern(filter.Author))
	}

	switch filter.Sort {
	case SortTitleDesc:
		query = query.Order("title DESC")
	case SortYearAsc:
		query = query.Order("year_of_creation ASC").Order("title ASC")
	case SortYearDesc:
		query = query.Order("year_of_creation DESC").Order("title ASC")
	default:
		query = query.Order("title ASC")
	}

	var books []*models.Book
	err := query.Find(&books).Error
	return books, err
}

// ExistsByBookID checks if a business key is taken
func (r *bookRepository) ExistsByBookID(ctx context.Context, bookID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Book{}).Where("book_id = ?", bookID).Count(&count).Error
	return count > 0, err
}

// DeleteAll empties the catalog
func (r *bookRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Book{}).Error
}

// CreateBatch inserts books in one statement
func (r *bookRepository) CreateBatch(ctx context.Context, books []*models.Book) error {
	if len(books) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&books).Error
}

func likePattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}
