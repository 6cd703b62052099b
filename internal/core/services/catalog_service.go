package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"literaryhub/internal/adapters/persistence/models"
	"literaryhub/internal/adapters/persistence/repositories"
	"literaryhub/internal/core/domain"
	"literaryhub/internal/pkg/clock"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CatalogService handles books: browsing, search, reading and staff CRUD
type CatalogService struct {
	bookRepo   repositories.BookRepository
	borrowRepo repositories.BorrowRepository
	activity   *ActivityService
	policy     domain.BorrowPolicy
	clock      clock.Clock
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	bookRepo repositories.BookRepository,
	borrowRepo repositories.BorrowRepository,
	activity *ActivityService,
	policy domain.BorrowPolicy,
	clk clock.Clock,
) *CatalogService {
	return &CatalogService{
		bookRepo:   bookRepo,
		borrowRepo: borrowRepo,
		activity:   activity,
		policy:     policy.WithDefaults(),
		clock:      clk,
	}
}

// BookAvailability is a book as listed in the catalog: Stock is what is
// left of today's quota, DailyLimit the quota itself.
type BookAvailability struct {
	*models.Book
	DailyLimit int `json:"dailyLimit"`
	Stock      int `json:"stock"`
}

// SearchInput represents catalog search parameters
type SearchInput struct {
	Query  string
	Genre  string
	Author string
	SortBy string
}

// BookContent is what the reader view renders
type BookContent struct {
	Title    string           `json:"title"`
	Author   string           `json:"author"`
	Chapters []models.Chapter `json:"chapters"`
}

// BookInput represents create book input
type BookInput struct {
	BookID           string            `json:"bookId" validate:"required,max=50"`
	Title            string            `json:"title" validate:"required,max=255"`
	AlternativeTitle string            `json:"alternativeTitle" validate:"max=255"`
	Author           models.BookAuthor `json:"author"`
	YearOfCreation   string            `json:"yearOfCreation" validate:"max=50"`
	Genre            string            `json:"genre" validate:"max=100"`
	ImageURL         string            `json:"imageUrl" validate:"omitempty,max=500"`
	LiteraryPeriod   string            `json:"literaryPeriod"`
	Language         string            `json:"language"`
	ContentSummary   string            `json:"contentSummary"`
	ArtisticValue    string            `json:"artisticValue"`
	IdeologicalValue string            `json:"ideologicalValue"`
	Keywords         []string          `json:"keywords"`
	Chapters         []models.Chapter  `json:"chapters"`
	Stock            *int              `json:"stock" validate:"omitempty,min=0"`
	TotalQuantity    *int              `json:"totalQuantity" validate:"omitempty,min=0"`
}

// BookUpdateInput represents update book input; nil fields are left unchanged.
// The business key bookId cannot be changed.
type BookUpdateInput struct {
	Title            *string            `json:"title" validate:"omitempty,min=1,max=255"`
	AlternativeTitle *string            `json:"alternativeTitle"`
	Author           *models.BookAuthor `json:"author"`
	YearOfCreation   *string            `json:"yearOfCreation"`
	Genre            *string            `json:"genre"`
	ImageURL         *string            `json:"imageUrl"`
	LiteraryPeriod   *string            `json:"literaryPeriod"`
	Language         *string            `json:"language"`
	ContentSummary   *string            `json:"contentSummary"`
	ArtisticValue    *string            `json:"artisticValue"`
	IdeologicalValue *string            `json:"ideologicalValue"`
	Keywords         []string           `json:"keywords"`
	Chapters         []models.Chapter   `json:"chapters"`
	Stock            *int               `json:"stock" validate:"omitempty,min=0"`
	TotalQuantity    *int               `json:"totalQuantity" validate:"omitempty,min=0"`
}

// ListBooks returns the catalog with today's remaining quota per book
func (s *CatalogService) ListBooks(ctx context.Context) ([]BookAvailability, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	start, end := domain.DayWindow(s.clock.Now())
	borrowedToday, err := s.borrowRepo.CountByBookBetweenGrouped(ctx, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]BookAvailability, 0, len(books))
	for _, book := range books {
		limit := s.policy.DailyLimit(book.Stock)
		result = append(result, BookAvailability{
			Book:       book,
			DailyLimit: limit,
			Stock:      domain.RemainingToday(limit, borrowedToday[book.BookID]),
		})
	}
	return result, nil
}

// SearchBooks filters by free text, genre and author. Free text matches title,
// alternative title, author name or any keyword, case-insensitively.
func (s *CatalogService) SearchBooks(ctx context.Context, input SearchInput) ([]*models.Book, error) {
	books, err := s.bookRepo.Find(ctx, repositories.BookFilter{
		Genre:  input.Genre,
		Author: input.Author,
		Sort:   repositories.BookSort(input.SortBy),
	})
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))
	if query == "" {
		return books, nil
	}

	matched := make([]*models.Book, 0, len(books))
	for _, book := range books {
		if matchesQuery(book, query) {
			matched = append(matched, book)
		}
	}
	return matched, nil
}

func matchesQuery(book *models.Book, query string) bool {
	fields := []string{book.Title, book.AlternativeTitle, book.Author.Name}
	fields = append(fields, book.Keywords...)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// GetBook resolves a book by database id, falling back to its bookId
func (s *CatalogService) GetBook(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		book, err = s.bookRepo.GetByBookID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound(domain.ErrBookNotFound, MsgBookMissing)
		}
		return nil, err
	}
	return book, nil
}

// ReadBook returns the chapters of a book; books without chapters get a
// single introduction chapter built from the summary
func (s *CatalogService) ReadBook(ctx context.Context, id string) (*BookContent, error) {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	author := book.Author.Name
	if author == "" {
		author = "Unknown Author"
	}

	chapters := []models.Chapter(book.Chapters)
	if len(chapters) == 0 {
		summary := book.ContentSummary
		if summary == "" {
			summary = "Nội dung đang được cập nhật..."
		}
		chapters = []models.Chapter{{
			Title:   "Giới thiệu",
			Content: summary,
			Image:   book.ImageURL,
		}}
	}

	return &BookContent{Title: book.Title, Author: author, Chapters: chapters}, nil
}

// Authors returns one entry per author name, sorted by name
func (s *CatalogService) Authors(ctx context.Context) ([]models.BookAuthor, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(books))
	authors := make([]models.BookAuthor, 0, len(books))
	for _, book := range books {
		if seen[book.Author.Name] {
			continue
		}
		seen[book.Author.Name] = true
		authors = append(authors, book.Author)
	}

	sort.SliceStable(authors, func(i, j int) bool {
		return authors[i].Name < authors[j].Name
	})
	return authors, nil
}

// CreateBook adds a book to the catalog
func (s *CatalogService) CreateBook(ctx context.Context, actor domain.Actor, input *BookInput) (*models.Book, error) {
	exists, err := s.bookRepo.ExistsByBookID(ctx, input.BookID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.RuleViolation(domain.ErrBookAlreadyExists, MsgBookExists)
	}

	book := &models.Book{
		BookID:           input.BookID,
		Title:            input.Title,
		AlternativeTitle: input.AlternativeTitle,
		Author:           input.Author,
		YearOfCreation:   input.YearOfCreation,
		Genre:            input.Genre,
		ImageURL:         input.ImageURL,
		LiteraryPeriod:   input.LiteraryPeriod,
		Language:         input.Language,
		ContentSummary:   input.ContentSummary,
		ArtisticValue:    input.ArtisticValue,
		IdeologicalValue: input.IdeologicalValue,
		Keywords:         datatypes.JSONSlice[string](input.Keywords),
		Chapters:         datatypes.JSONSlice[models.Chapter](input.Chapters),
		Stock:            input.Stock,
		TotalQuantity:    1,
	}
	if input.TotalQuantity != nil {
		book.TotalQuantity = *input.TotalQuantity
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}
	if book.Stock == nil {
		limit := s.policy.DefaultDailyLimit
		book.Stock = &limit
	}

	s.activity.RecordBy(ctx, actor, "CREATE_BOOK", domain.CategoryBook,
		fmt.Sprintf("Thêm sách mới: %s (%s)", book.Title, book.BookID))
	return book, nil
}

// UpdateBook applies the non-nil fields of input to a book
func (s *CatalogService) UpdateBook(ctx context.Context, actor domain.Actor, id string, input *BookUpdateInput) (*models.Book, error) {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&book.Title, input.Title)
	applyString(&book.AlternativeTitle, input.AlternativeTitle)
	applyString(&book.YearOfCreation, input.YearOfCreation)
	applyString(&book.Genre, input.Genre)
	applyString(&book.ImageURL, input.ImageURL)
	applyString(&book.LiteraryPeriod, input.LiteraryPeriod)
	applyString(&book.Language, input.Language)
	applyString(&book.ContentSummary, input.ContentSummary)
	applyString(&book.ArtisticValue, input.ArtisticValue)
	applyString(&book.IdeologicalValue, input.IdeologicalValue)
	if input.Author != nil {
		book.Author = *input.Author
	}
	if input.Keywords != nil {
		book.Keywords = datatypes.JSONSlice[string](input.Keywords)
	}
	if input.Chapters != nil {
		book.Chapters = datatypes.JSONSlice[models.Chapter](input.Chapters)
	}
	if input.Stock != nil {
		book.Stock = input.Stock
	}
	if input.TotalQuantity != nil {
		book.TotalQuantity = *input.TotalQuantity
	}

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}

	s.activity.RecordBy(ctx, actor, "UPDATE_BOOK", domain.CategoryBook,
		fmt.Sprintf("Cập nhật thông tin sách: %s (%s)", book.Title, book.BookID))
	return book, nil
}

// DeleteBook removes a book. Borrow records keep their title snapshot.
func (s *CatalogService) DeleteBook(ctx context.Context, actor domain.Actor, id string) error {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return err
	}

	if err := s.bookRepo.Delete(ctx, book.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.ErrBookNotFound, MsgBookMissing)
		}
		return err
	}

	s.activity.RecordBy(ctx, actor, "DELETE_BOOK", domain.CategoryBook,
		fmt.Sprintf("Xóa sách: %s (%s)", book.Title, book.BookID))
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
