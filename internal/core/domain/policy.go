package domain

import "time"

const day = 24 * time.Hour

// BorrowPolicy holds the quota and fee rules of the borrow ledger
type BorrowPolicy struct {
	DefaultDailyLimit int    `yaml:"defaultDailyLimit"`
	LoanDays          int    `yaml:"loanDays"`
	WeeklyCap         int    `yaml:"weeklyCap"`
	WeeklyWindowDays  int    `yaml:"weeklyWindowDays"`
	LateFeePerDay     int64  `yaml:"lateFeePerDay"`
	Currency          string `yaml:"currency"`
}

// DefaultPolicy returns the library's standard rules
func DefaultPolicy() BorrowPolicy {
	return BorrowPolicy{
		DefaultDailyLimit: 20,
		LoanDays:          14,
		WeeklyCap:         20,
		WeeklyWindowDays:  7,
		LateFeePerDay:     5000,
		Currency:          "VND",
	}
}

// WithDefaults fills zero fields from DefaultPolicy
func (p BorrowPolicy) WithDefaults() BorrowPolicy {
	def := DefaultPolicy()
	if p.DefaultDailyLimit <= 0 {
		p.DefaultDailyLimit = def.DefaultDailyLimit
	}
	if p.LoanDays <= 0 {
		p.LoanDays = def.LoanDays
	}
	if p.WeeklyCap <= 0 {
		p.WeeklyCap = def.WeeklyCap
	}
	if p.WeeklyWindowDays <= 0 {
		p.WeeklyWindowDays = def.WeeklyWindowDays
	}
	if p.LateFeePerDay <= 0 {
		p.LateFeePerDay = def.LateFeePerDay
	}
	if p.Currency == "" {
		p.Currency = def.Currency
	}
	return p
}

// DailyLimit resolves a book's stored limit, falling back to the default when unset
func (p BorrowPolicy) DailyLimit(stock *int) int {
	if stock == nil {
		return p.DefaultDailyLimit
	}
	return *stock
}

// DueDate is the return deadline for a borrow created at borrowedAt
func (p BorrowPolicy) DueDate(borrowedAt time.Time) time.Time {
	return borrowedAt.AddDate(0, 0, p.LoanDays)
}

// WeeklyWindowStart is the inclusive lower bound of the trailing weekly window
func (p BorrowPolicy) WeeklyWindowStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -p.WeeklyWindowDays)
}

// LateFee charges LateFeePerDay for every started day past dueDate
func (p BorrowPolicy) LateFee(dueDate, now time.Time) int64 {
	return int64(DaysLate(dueDate, now)) * p.LateFeePerDay
}

// DaysLate rounds the overdue duration up to whole days; 0 when not late
func DaysLate(dueDate, now time.Time) int {
	if !now.After(dueDate) {
		return 0
	}
	late := now.Sub(dueDate)
	days := int(late / day)
	if late%day != 0 {
		days++
	}
	return days
}

// DayWindow returns the calendar day containing now, in now's location:
// local midnight through the last nanosecond before the next midnight.
func DayWindow(now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// RemainingToday is the availability shown in the catalog
func RemainingToday(dailyLimit int, borrowedToday int64) int {
	remaining := int64(dailyLimit) - borrowedToday
	if remaining < 0 {
		return 0
	}
	return int(remaining)
}

// IsPastDue reports whether a still-borrowed record should become overdue
func IsPastDue(status BorrowStatus, dueDate, now time.Time) bool {
	return status == StatusBorrowing && now.After(dueDate)
}
