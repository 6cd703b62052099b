package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"literaryhub/internal/adapters/persistence/models"
	"literaryhub/internal/adapters/persistence/repositories"
	"literaryhub/internal/core/domain"
	"literaryhub/internal/pkg/clock"
	"literaryhub/internal/pkg/money"

	"gorm.io/gorm"
)

// BorrowService owns the borrow lifecycle: quota checks, returns with late
// fees, and the borrowing -> overdue transition.
type BorrowService struct {
	borrowRepo repositories.BorrowRepository
	policy     domain.BorrowPolicy
	clock      clock.Clock
}

// NewBorrowService creates a new borrow service
func NewBorrowService(borrowRepo repositories.BorrowRepository, policy domain.BorrowPolicy, clk clock.Clock) *BorrowService {
	return &BorrowService{
		borrowRepo: borrowRepo,
		policy:     policy.WithDefaults(),
		clock:      clk,
	}
}

// BorrowInput represents a borrow request
type BorrowInput struct {
	BookID string
	UserID string
	Fee    *int64
}

// ReturnResult carries a closed borrow and its late fee
type ReturnResult struct {
	Borrow         *models.Borrow
	LateFee        int64
	LateFeeMessage *string
}

// UserBorrowStats summarizes a reader's ledger. BooksRead counts returned borrows.
type UserBorrowStats struct {
	BooksRead      int64 `json:"booksRead"`
	TotalBorrows   int64 `json:"totalBorrows"`
	CurrentBorrows int64 `json:"currentBorrows"`
	OverdueBorrows int64 `json:"overdueBorrows"`
}

// Borrow records a new borrow event. Checks run in order and the first
// failure wins: book exists, daily quota, duplicate, weekly cap.
func (s *BorrowService) Borrow(ctx context.Context, input BorrowInput) (*models.Borrow, error) {
	now := s.clock.Now()

	var created *models.Borrow
	err := s.borrowRepo.WithinTransaction(ctx, func(tx repositories.BorrowRepository) error {
		book, err := tx.LockBook(ctx, input.BookID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound(domain.ErrBookNotFound, MsgBookNotFound)
			}
			return err
		}

		limit := s.policy.DailyLimit(book.Stock)
		start, end := domain.DayWindow(now)
		borrowedToday, err := tx.CountByBookBetween(ctx, book.BookID, start, end)
		if err != nil {
			return err
		}
		if borrowedToday >= int64(limit) {
			return domain.RuleViolation(domain.ErrDailyLimitReached, fmt.Sprintf(MsgDailyLimit, limit))
		}

		_, err = tx.FindActive(ctx, input.UserID, book.BookID)
		if err == nil {
			return domain.RuleViolation(domain.ErrAlreadyBorrowing, MsgAlreadyBorrowing)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		weekly, err := tx.CountByUserSince(ctx, input.UserID, s.policy.WeeklyWindowStart(now))
		if err != nil {
			return err
		}
		if weekly >= int64(s.policy.WeeklyCap) {
			return domain.RuleViolation(domain.ErrWeeklyLimitReached, fmt.Sprintf(MsgWeeklyLimit, s.policy.WeeklyCap))
		}

		var fee int64
		if input.Fee != nil {
			fee = *input.Fee
		}

		borrow := &models.Borrow{
			UserID:     input.UserID,
			BookID:     book.BookID,
			BookTitle:  book.Title,
			BorrowDate: now.UTC(),
			DueDate:    s.policy.DueDate(now).UTC(),
			Status:     string(domain.StatusBorrowing),
			Fee:        fee,
		}
		if err := tx.Create(ctx, borrow); err != nil {
			return err
		}
		created = borrow
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("📚 Borrow created: book=%s user=%s due=%s", created.BookID, created.UserID, created.DueDate.Format("2006-01-02"))
	return created, nil
}

// Return closes a borrow and charges the late fee
func (s *BorrowService) Return(ctx context.Context, borrowID string) (*ReturnResult, error) {
	borrow, err := s.borrowRepo.GetByID(ctx, borrowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound(domain.ErrBorrowNotFound, MsgBorrowNotFound)
		}
		return nil, err
	}
	if borrow.Status == string(domain.StatusReturned) {
		return nil, domain.RuleViolation(domain.ErrAlreadyReturned, MsgAlreadyReturned)
	}

	now := s.clock.Now()
	lateFee := s.policy.LateFee(borrow.DueDate, now)

	updated, err := s.borrowRepo.MarkReturned(ctx, borrow.ID, now, lateFee)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, domain.RuleViolation(domain.ErrAlreadyReturned, MsgAlreadyReturned)
	}

	returnedAt := now.UTC()
	borrow.ReturnDate = &returnedAt
	borrow.Status = string(domain.StatusReturned)
	borrow.LateFee = lateFee

	result := &ReturnResult{Borrow: borrow, LateFee: lateFee}
	if lateFee > 0 {
		msg := s.LateFeeMessage(lateFee)
		result.LateFeeMessage = &msg
	}

	log.Printf("📗 Borrow returned: id=%s book=%s lateFee=%d", borrow.ID, borrow.BookID, lateFee)
	return result, nil
}

// LateFeeMessage renders a fee the way readers see it, e.g. "Phí trễ hạn: 10.000 VND"
func (s *BorrowService) LateFeeMessage(fee int64) string {
	return fmt.Sprintf(MsgLateFee, money.Format(fee, s.policy.Currency))
}

// ListUserBorrows lists a user's borrows newest first, repairing overdue statuses
func (s *BorrowService) ListUserBorrows(ctx context.Context, userID, status string) ([]*models.Borrow, error) {
	borrows, err := s.borrowRepo.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	if err := s.repairOverdue(ctx, borrows); err != nil {
		return nil, err
	}
	return borrows, nil
}

// ListAllBorrows lists every borrow with its borrower, repairing overdue statuses
func (s *BorrowService) ListAllBorrows(ctx context.Context) ([]*models.Borrow, error) {
	borrows, err := s.borrowRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repairOverdue(ctx, borrows); err != nil {
		return nil, err
	}
	return borrows, nil
}

// SweepOverdue marks every past-due borrowing record overdue in one statement
func (s *BorrowService) SweepOverdue(ctx context.Context) (int64, error) {
	return s.borrowRepo.SweepOverdue(ctx, s.clock.Now())
}

// UserStats counts a user's borrows by lifecycle state, after moving the
// user's past-due records to overdue
func (s *BorrowService) UserStats(ctx context.Context, userID string) (*UserBorrowStats, error) {
	repaired, err := s.borrowRepo.SweepOverdueForUser(ctx, userID, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if repaired > 0 {
		log.Printf("⏰ Marked %d borrow(s) overdue for user %s", repaired, userID)
	}

	counts, err := s.borrowRepo.CountByUserPerStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &UserBorrowStats{
		BooksRead:      counts[string(domain.StatusReturned)],
		CurrentBorrows: counts[string(domain.StatusBorrowing)],
		OverdueBorrows: counts[string(domain.StatusOverdue)],
	}
	for _, n := range counts {
		stats.TotalBorrows += n
	}
	return stats, nil
}

// ActiveBookIDs returns the books a user currently holds (borrowing or overdue)
func (s *BorrowService) ActiveBookIDs(ctx context.Context, userID string) ([]string, error) {
	return s.borrowRepo.ListActiveBookIDs(ctx, userID)
}

// repairOverdue persists borrowing -> overdue for past-due records and
// updates the slice in place
func (s *BorrowService) repairOverdue(ctx context.Context, borrows []*models.Borrow) error {
	now := s.clock.Now()

	var ids []string
	for _, b := range borrows {
		if domain.IsPastDue(domain.BorrowStatus(b.Status), b.DueDate, now) {
			ids = append(ids, b.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	if err := s.borrowRepo.MarkOverdue(ctx, ids); err != nil {
		return err
	}
	for _, b := range borrows {
		if domain.IsPastDue(domain.BorrowStatus(b.Status), b.DueDate, now) {
			b.Status = string(domain.StatusOverdue)
		}
	}

	log.Printf("⏰ Marked %d borrow(s) overdue", len(ids))
	return nil
}
