package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"literaryhub/internal/core/domain"
	"literaryhub/internal/pkg/clock"

	"gorm.io/gorm"
)

// DashboardService handles dashboard operations
type DashboardService struct {
	db      *gorm.DB
	sweeper OverdueSweeper
	clock   clock.Clock
}

// NewDashboardService creates a new dashboard service. The sweeper settles
// overdue statuses before the ledger is counted.
func NewDashboardService(db *gorm.DB, sweeper OverdueSweeper, clk clock.Clock) *DashboardService {
	return &DashboardService{db: db, sweeper: sweeper, clock: clk}
}

// AdminDashboardData represents staff dashboard data
type AdminDashboardData struct {
	// User Statistics
	TotalUsers      int64 `json:"totalUsers"`
	TotalAdmins     int64 `json:"totalAdmins"`
	TotalLibrarians int64 `json:"totalLibrarians"`
	TotalReaders    int64 `json:"totalReaders"`

	// Catalog Statistics
	TotalBooks int64 `json:"totalBooks"`
	TotalNews  int64 `json:"totalNews"`

	// Ledger Statistics
	TotalBorrows    int64 `json:"totalBorrows"`
	ActiveBorrows   int64 `json:"activeBorrows"`
	OverdueBorrows  int64 `json:"overdueBorrows"`
	ReturnedBorrows int64 `json:"returnedBorrows"`
	BorrowsToday    int64 `json:"borrowsToday"`
	LateFeesTotal   int64 `json:"lateFeesTotal"`

	// Recent Activity
	RecentBorrows []BorrowSummary `json:"recentBorrows"`

	// Most borrowed
	TopBooks []BookBorrowStats `json:"topBooks"`
}

// BorrowSummary represents one recent borrow
type BorrowSummary struct {
	ID         string    `json:"_id"`
	UserName   string    `json:"userName"`
	BookID     string    `json:"bookId"`
	BookTitle  string    `json:"bookTitle"`
	Status     string    `json:"status"`
	BorrowDate time.Time `json:"borrowDate"`
}

// BookBorrowStats represents borrow volume for one book
type BookBorrowStats struct {
	BookID    string `json:"bookId"`
	BookTitle string `json:"bookTitle"`
	Borrows   int64  `gorm:"column:borrow_count" json:"borrows"`
}

// GetAdminDashboard returns staff dashboard data
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboardData, error) {
	repaired, err := s.sweeper.SweepOverdue(ctx)
	if err != nil {
		return nil, err
	}
	if repaired > 0 {
		log.Printf("⏰ Marked %d borrow(s) overdue", repaired)
	}

	data := &AdminDashboardData{}
	db := s.db.WithContext(ctx)
	start, end := domain.DayWindow(s.clock.Now())

	counters := []struct {
		name  string
		dst   *int64
		query *gorm.DB
	}{
		// User counts by role
		{"users", &data.TotalUsers, db.Table("users")},
		{"admins", &data.TotalAdmins, db.Table("users").Where("role = ?", domain.RoleAdmin)},
		{"librarians", &data.TotalLibrarians, db.Table("users").Where("role = ?", domain.RoleLibrarian)},
		{"readers", &data.TotalReaders, db.Table("users").Where("role = ?", domain.RoleUser)},

		{"books", &data.TotalBooks, db.Table("books")},
		{"news", &data.TotalNews, db.Table("news")},

		// Borrow counts by status
		{"borrows", &data.TotalBorrows, db.Table("borrows")},
		{"active borrows", &data.ActiveBorrows, db.Table("borrows").Where("status = ?", domain.StatusBorrowing)},
		{"overdue borrows", &data.OverdueBorrows, db.Table("borrows").Where("status = ?", domain.StatusOverdue)},
		{"returned borrows", &data.ReturnedBorrows, db.Table("borrows").Where("status = ?", domain.StatusReturned)},
		{"borrows today", &data.BorrowsToday, db.Table("borrows").Where("borrow_date BETWEEN ? AND ?", start.UTC(), end.UTC())},
	}
	for _, c := range counters {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
	}

	if err := db.Table("borrows").
		Select("COALESCE(SUM(late_fee), 0)").
		Scan(&data.LateFeesTotal).Error; err != nil {
		return nil, err
	}

	// Recent borrows
	data.RecentBorrows = []BorrowSummary{}
	if err := db.Table("borrows").
		Select("borrows.id, COALESCE(users.name, '') as user_name, borrows.book_id, borrows.book_title, borrows.status, borrows.borrow_date").
		Joins("LEFT JOIN users ON users.id = borrows.user_id").
		Order("borrows.borrow_date DESC").
		Limit(10).
		Scan(&data.RecentBorrows).Error; err != nil {
		return nil, err
	}

	// Top books
	data.TopBooks = []BookBorrowStats{}
	if err := db.Table("borrows").
		Select("book_id, MAX(book_title) as book_title, COUNT(*) as borrow_count").
		Group("book_id").
		Order("borrow_count DESC").
		Limit(5).
		Scan(&data.TopBooks).Error; err != nil {
		return nil, err
	}

	return data, nil
}
