package domain

// Role represents user role in the system
type Role string

const (
	RoleUser      Role = "user"
	RoleLibrarian Role = "librarian"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleLibrarian, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role may manage the catalog and the ledger
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleLibrarian
}

// BorrowStatus is the lifecycle state of a Borrow record
type BorrowStatus string

const (
	StatusBorrowing BorrowStatus = "borrowing"
	StatusOverdue   BorrowStatus = "overdue"
	StatusReturned  BorrowStatus = "returned"
)

// Valid reports whether s is one of the known statuses
func (s BorrowStatus) Valid() bool {
	switch s {
	case StatusBorrowing, StatusOverdue, StatusReturned:
		return true
	}
	return false
}

// StatusFilterAll disables status filtering when listing borrows
const StatusFilterAll = "all"

// NewsType classifies news entries
type NewsType string

const (
	NewsTypeNews    NewsType = "news"
	NewsTypeEvent   NewsType = "event"
	NewsTypeNotice  NewsType = "notice"
	NewsTypeNewBook NewsType = "newbook"
)

// Activity log categories and outcomes
const (
	CategoryAuth   = "AUTH"
	CategoryBook   = "BOOK"
	CategoryNews   = "NEWS"
	CategoryUser   = "USER"
	CategorySystem = "SYSTEM"

	ActivitySuccess = "SUCCESS"
	ActivityFailure = "FAILURE"
)

// Activity is a single entry for the activity log sink
type Activity struct {
	User     string
	UserID   string
	Action   string
	Category string
	Detail   string
	Status   string
}

// Actor is the authenticated caller performing an operation
type Actor struct {
	UserID string
	Name   string
	Role   Role
}

// DisplayName is the name written to the activity log
func (a Actor) DisplayName() string {
	if a.Name == "" {
		return "Admin"
	}
	return a.Name
}
