package repositories

import (
	"context"
	"time"

	"literaryhub/internal/adapters/persistence/models"
	"literaryhub/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// borrowRepository implements BorrowRepository interface.
// Instants are stored and compared in UTC.
type borrowRepository struct {
	db *gorm.DB
}

// NewBorrowRepository creates a new borrow repository
func NewBorrowRepository(db *gorm.DB) BorrowRepository {
	return &borrowRepository{db: db}
}

// WithinTransaction runs fn inside a database transaction
func (r *borrowRepository) WithinTransaction(ctx context.Context, fn func(tx BorrowRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&borrowRepository{db: tx})
	})
}

// LockBook selects a book FOR UPDATE (ignored by SQLite)
func (r *borrowRepository) LockBook(ctx context.Context, bookID string) (*models.Book, error) {
	var book models.Book
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("book_id = ?", bookID).
		First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Create inserts a borrow record
func (r *borrowRepository) Create(ctx context.Context, borrow *models.Borrow) error {
	return r.db.WithContext(ctx).Create(borrow).Error
}

// GetByID gets a borrow by ID
func (r *borrowRepository) GetByID(ctx context.Context, id string) (*models.Borrow, error) {
	var borrow models.Borrow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&borrow).Error
	if err != nil {
		return nil, err
	}
	return &borrow, nil
}

// FindActive returns the open (status borrowing) record of userID for bookID
func (r *borrowRepository) FindActive(ctx context.Context, userID, bookID string) (*models.Borrow, error) {
	var borrow models.Borrow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ? AND status = ?", userID, bookID, string(domain.StatusBorrowing)).
		First(&borrow).Error
	if err != nil {
		return nil, err
	}
	return &borrow, nil
}

// CountByBookBetween counts borrow events of a book with borrow_date in [start, end]
func (r *borrowRepository) CountByBookBetween(ctx context.Context, bookID string, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Borrow{}).
		Where("book_id = ? AND borrow_date >= ? AND borrow_date <= ?", bookID, start.UTC(), end.UTC()).
		Count(&count).Error
	return count, err
}

// CountByUserSince counts borrow events of a user with borrow_date >= since
func (r *borrowRepository) CountByUserSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Borrow{}).
		Where("user_id = ? AND borrow_date >= ?", userID, since.UTC()).
		Count(&count).Error
	return count, err
}

// CountByBookBetweenGrouped counts borrow events per book with borrow_date in [start, end]
func (r *borrowRepository) CountByBookBetweenGrouped(ctx context.Context, start, end time.Time) (map[string]int64, error) {
	var rows []struct {
		BookID string
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Borrow{}).
		Select("book_id, COUNT(*) AS total").
		Where("borrow_date >= ? AND borrow_date <= ?", start.UTC(), end.UTC()).
		Group("book_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.BookID] = row.Total
	}
	return counts, nil
}

// CountByUserPerStatus counts a user's borrows by status
func (r *borrowRepository) CountByUserPerStatus(ctx context.Context, userID string) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Borrow{}).
		Select("status, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// ListByUser lists a user's borrows newest first; empty status or "all" disables the filter
func (r *borrowRepository) ListByUser(ctx context.Context, userID, status string) ([]*models.Borrow, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" && status != domain.StatusFilterAll {
		query = query.Where("status = ?", status)
	}

	var borrows []*models.Borrow
	err := query.Order("borrow_date DESC").Find(&borrows).Error
	return borrows, err
}

// ListAll lists every borrow newest first with the borrower preloaded
func (r *borrowRepository) ListAll(ctx context.Context) ([]*models.Borrow, error) {
	var borrows []*models.Borrow
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("borrow_date DESC").
		Find(&borrows).Error
	return borrows, err
}

// MarkReturned closes a borrow that is not yet returned
func (r *borrowRepository) MarkReturned(ctx context.Context, id string, returnedAt time.Time, lateFee int64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Borrow{}).
		Where("id = ? AND status <> ?", id, string(domain.StatusReturned)).
		Updates(map[string]interface{}{
			"status":      string(domain.StatusReturned),
			"return_date": returnedAt.UTC(),
			"late_fee":    lateFee,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// MarkOverdue moves the given borrowing records to overdue
func (r *borrowRepository) MarkOverdue(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Borrow{}).
		Where("id IN ? AND status = ?", ids, string(domain.StatusBorrowing)).
		Update("status", string(domain.StatusOverdue)).Error
}

// SweepOverdue marks every borrowing record past its due date as overdue
func (r *borrowRepository) SweepOverdue(ctx context.Context, now time.Time) (int64, error) {
	return r.sweepOverdue(r.db.WithContext(ctx).Model(&models.Borrow{}), now)
}

// SweepOverdueForUser is SweepOverdue restricted to one user's records
func (r *borrowRepository) SweepOverdueForUser(ctx context.Context, userID string, now time.Time) (int64, error) {
	return r.sweepOverdue(r.db.WithContext(ctx).Model(&models.Borrow{}).Where("user_id = ?", userID), now)
}

func (r *borrowRepository) sweepOverdue(query *gorm.DB, now time.Time) (int64, error) {
	result := query.
		Where("status = ? AND due_date < ?", string(domain.StatusBorrowing), now.UTC()).
		Update("status", string(domain.StatusOverdue))
	return result.RowsAffected, result.Error
}

// ListActiveBookIDs returns the distinct books a user has not returned yet
func (r *borrowRepository) ListActiveBookIDs(ctx context.Context, userID string) ([]string, error) {
	var bookIDs []string
	err := r.db.WithContext(ctx).Model(&models.Borrow{}).
		Where("user_id = ? AND status IN ?", userID,
			[]string{string(domain.StatusBorrowing), string(domain.StatusOverdue)}).
		Distinct().
		Pluck("book_id", &bookIDs).Error
	return bookIDs, err
}
