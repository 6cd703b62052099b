package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ============================================================
// Users
// ============================================================

// DefaultReadingGoal is the yearly goal given to new readers
const DefaultReadingGoal = 12

// User represents users table
type User struct {
	ID            string                      `gorm:"primaryKey;size:36" json:"_id"`
	Name          string                      `gorm:"size:100;not null" json:"name"`
	Email         string                      `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password      string                      `gorm:"size:255;not null" json:"-"`
	Role          string                      `gorm:"size:20;not null;default:user" json:"role"`
	Phone         string                      `gorm:"size:30" json:"phone,omitempty"`
	Address       string                      `gorm:"size:255" json:"address,omitempty"`
	IDCard        string                      `gorm:"size:30" json:"idCard,omitempty"`
	Bio           string                      `gorm:"type:text" json:"bio,omitempty"`
	Avatar        string                      `gorm:"size:500" json:"avatar,omitempty"`
	ReadingGoal   int                         `gorm:"not null;default:12" json:"readingGoal"`
	FavoriteBooks datatypes.JSONSlice[string] `json:"favoriteBooks"`
	LastActive    time.Time                   `gorm:"autoCreateTime" json:"lastActive"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.ReadingGoal == 0 {
		u.ReadingGoal = DefaultReadingGoal
	}
	return nil
}

// BeforeSave stores an empty favorites list instead of NULL
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.FavoriteBooks == nil {
		u.FavoriteBooks = datatypes.JSONSlice[string]{}
	}
	return nil
}

// HasFavorite reports whether bookID is in the favorites list
func (u *User) HasFavorite(bookID string) bool {
	for _, id := range u.FavoriteBooks {
		if id == bookID {
			return true
		}
	}
	return false
}

// UserResponse DTO
type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	IDCard        string    `json:"idCard,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	Avatar        string    `json:"avatar,omitempty"`
	ReadingGoal   int       `json:"readingGoal"`
	FavoriteBooks []string  `json:"favoriteBooks"`
	LastActive    time.Time `json:"lastActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (u *User) ToResponse() *UserResponse {
	favorites := []string(u.FavoriteBooks)
	if favorites == nil {
		favorites = []string{}
	}
	return &UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Phone:         u.Phone,
		Address:       u.Address,
		IDCard:        u.IDCard,
		Bio:           u.Bio,
		Avatar:        u.Avatar,
		ReadingGoal:   u.ReadingGoal,
		FavoriteBooks: favorites,
		LastActive:    u.LastActive,
		CreatedAt:     u.CreatedAt,
	}
}

// UserSummary is the borrower shown next to a Borrow in staff listings
type UserSummary struct {
	ID    string `gorm:"primaryKey" json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (UserSummary) TableName() string {
	return "users"
}

// ============================================================
// Catalog
// ============================================================

// BookAuthor is embedded into the books table with an author_ prefix
type BookAuthor struct {
	Name      string `gorm:"size:150;index" json:"name" validate:"required"`
	BirthYear *int   `json:"birthYear,omitempty"`
	DeathYear *int   `json:"deathYear,omitempty"`
	Era       string `gorm:"size:100" json:"era,omitempty"`
}

// Chapter is one readable section of a book
type Chapter struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// DefaultLanguage applies to books created without a language
const DefaultLanguage = "Tiếng Việt"

// Book represents books table.
// Stock is the daily borrow limit, not a count of copies on the shelf.
type Book struct {
	ID               string                       `gorm:"primaryKey;size:36" json:"_id"`
	BookID           string                       `gorm:"uniqueIndex;size:50;not null" json:"bookId"`
	Title            string                       `gorm:"size:255;not null;index" json:"title"`
	AlternativeTitle string                       `gorm:"size:255" json:"alternativeTitle,omitempty"`
	Author           BookAuthor                   `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	YearOfCreation   string                       `gorm:"size:50" json:"yearOfCreation,omitempty"`
	Genre            string                       `gorm:"size:100;index" json:"genre,omitempty"`
	ImageURL         string                       `gorm:"size:500" json:"imageUrl,omitempty"`
	LiteraryPeriod   string                       `gorm:"size:150" json:"literaryPeriod,omitempty"`
	Language         string                       `gorm:"size:50" json:"language"`
	ContentSummary   string                       `gorm:"type:text" json:"contentSummary,omitempty"`
	ArtisticValue    string                       `gorm:"type:text" json:"artisticValue,omitempty"`
	IdeologicalValue string                       `gorm:"type:text" json:"ideologicalValue,omitempty"`
	Keywords         datatypes.JSONSlice[string]  `json:"keywords"`
	Chapters         datatypes.JSONSlice[Chapter] `json:"chapters,omitempty"`
	Stock            *int                         `gorm:"default:20" json:"stock"`
	TotalQuantity    int                          `gorm:"not null;default:1" json:"totalQuantity"`
	CreatedAt        time.Time                    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time                    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Book) TableName() string {
	return "books"
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Language == "" {
		b.Language = DefaultLanguage
	}
	return nil
}

// BeforeSave stores empty JSON lists instead of NULL
func (b *Book) BeforeSave(tx *gorm.DB) error {
	if b.Keywords == nil {
		b.Keywords = datatypes.JSONSlice[string]{}
	}
	if b.Chapters == nil {
		b.Chapters = datatypes.JSONSlice[Chapter]{}
	}
	return nil
}

// ============================================================
// Borrow ledger
// ============================================================

// Borrow represents borrows table
type Borrow struct {
	ID         string       `gorm:"primaryKey;size:36" json:"_id"`
	UserID     string       `gorm:"size:36;not null;index:idx_borrows_user_date,priority:1;index:idx_borrows_user_book,priority:1" json:"userId"`
	BookID     string       `gorm:"size:50;not null;index:idx_borrows_book_date,priority:1;index:idx_borrows_user_book,priority:2" json:"bookId"`
	BookTitle  string       `gorm:"size:255" json:"bookTitle"`
	BorrowDate time.Time    `gorm:"not null;index:idx_borrows_book_date,priority:2;index:idx_borrows_user_date,priority:2" json:"borrowDate"`
	DueDate    time.Time    `gorm:"not null" json:"dueDate"`
	ReturnDate *time.Time   `json:"returnDate"`
	Status     string       `gorm:"size:20;not null;default:borrowing;index" json:"status"`
	Fee        int64        `gorm:"not null;default:0" json:"fee"`
	LateFee    int64        `gorm:"not null;default:0" json:"lateFee"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
	User       *UserSummary `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Borrow) TableName() string {
	return "borrows"
}

func (b *Borrow) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// News & activity log
// ============================================================

// DefaultNewsAuthor signs news created without an author
const DefaultNewsAuthor = "Ban quản trị"

// News represents news table
type News struct {
	ID          string                      `gorm:"primaryKey;size:36" json:"_id"`
	Title       string                      `gorm:"size:255;not null" json:"title"`
	Summary     string                      `gorm:"size:500;not null" json:"summary"`
	Content     string                      `gorm:"type:text;not null" json:"content"`
	ImageURL    string                      `gorm:"size:500" json:"imageUrl,omitempty"`
	Author      string                      `gorm:"size:100" json:"author"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Type        string                      `gorm:"size:20;not null;default:news" json:"type"`
	IsPinned    bool                        `gorm:"not null;default:false;index" json:"isPinned"`
	IsPublished bool                        `gorm:"not null" json:"isPublished"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (News) TableName() string {
	return "news"
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Author == "" {
		n.Author = DefaultNewsAuthor
	}
	return nil
}

// BeforeSave stores an empty tag list instead of NULL
func (n *News) BeforeSave(tx *gorm.DB) error {
	if n.Tags == nil {
		n.Tags = datatypes.JSONSlice[string]{}
	}
	return nil
}

// ActivityLog represents activity_logs table (append only)
type ActivityLog struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	User      string    `gorm:"size:100;not null" json:"user"`
	UserID    string    `gorm:"size:36;index" json:"userId,omitempty"`
	Action    string    `gorm:"size:50;not null" json:"action"`
	Category  string    `gorm:"size:20;not null;default:SYSTEM;index" json:"category"`
	Detail    string    `gorm:"type:text" json:"detail"`
	Status    string    `gorm:"size:10;not null;default:SUCCESS" json:"status"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// All lists every model managed by AutoMigrate, parents first
func All() []interface{} {
	return []interface{}{
		&User{},
		&Book{},
		&Borrow{},
		&News{},
		&ActivityLog{},
	}
}

// AutoMigrate creates or updates every table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
