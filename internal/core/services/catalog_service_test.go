package services

import (
	"context"
	"testing"
	"time"

	"literaryhub/internal/adapters/persistence/models"
	"literaryhub/internal/adapters/persistence/repositories"
	"literaryhub/internal/core/domain"
	"literaryhub/internal/pkg/clock"
	"literaryhub/internal/pkg/pagination"
	"literaryhub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var librarian = domain.Actor{UserID: "staff-1", Name: "Thủ thư", Role: domain.RoleLibrarian}

type catalogFixture struct {
	clock    *clock.Manual
	borrows  *BorrowService
	activity *ActivityService
	svc      *CatalogService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	db := testutil.OpenDB(t)
	clk := clock.NewManual(day0)
	bookRepo := repositories.NewBookRepository(db)
	borrowRepo := repositories.NewBorrowRepository(db)
	activity := NewActivityService(repositories.NewActivityLogRepository(db), nil)
	return &catalogFixture{
		clock:    clk,
		borrows:  NewBorrowService(borrowRepo, domain.DefaultPolicy(), clk),
		activity: activity,
		svc:      NewCatalogService(bookRepo, borrowRepo, activity, domain.DefaultPolicy(), clk),
	}
}

func (f *catalogFixture) create(t *testing.T, input BookInput) *models.Book {
	t.Helper()
	book, err := f.svc.CreateBook(context.Background(), librarian, &input)
	require.NoError(t, err)
	return book
}

func TestCatalogService_ListBooksProjectsRemainingQuota(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture(t)
	f.create(t, BookInput{BookID: "B001", Title: "Truyện Kiều", Stock: testutil.IntPtr(2)})
	f.create(t, BookInput{BookID: "B002", Title: "Lục Vân Tiên"})
	f.create(t, BookInput{BookID: "B003", Title: "Số Đỏ", Stock: testutil.IntPtr(0)})

	for _, user := range []string{"u1", "u2"} {
		_, err := f.borrows.Borrow(ctx, BorrowInput{BookID: "B001", UserID: user})
		require.NoError(t, err)
	}
	_, err := f.borrows.Borrow(ctx, BorrowInput{BookID: "B002", UserID: "u1"})
	require.NoError(t, err)

	books, err := f.svc.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)

	byID := map[string]BookAvailability{}
	for _, b := range books {
		byID[b.BookID] = b
	}
	assert.Equal(t, 2, byID["B001"].DailyLimit)
	assert.Equal(t, 0, byID["B001"].Stock)
	assert.Equal(t, 20, byID["B002"].DailyLimit)
	assert.Equal(t, 19, byID["B002"].Stock)
	assert.Equal(t, 0, byID["B003"].DailyLimit)
	assert.Equal(t, 0, byID["B003"].Stock)

	// quota is back the next day
	f.clock.Advance(24 * time.Hour)
	books, err = f.svc.ListBooks(ctx)
	require.NoError(t, err)
	for _, b := range books {
		if b.BookID == "B001" {
			assert.Equal(t, 2, b.Stock)
		}
	}
}

func TestCatalogService_SearchBooks(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture(t)
	f.create(t, BookInput{
		BookID: "B001", Title: "Truyện Kiều", YearOfCreation: "1820", Genre: "Truyện thơ Nôm",
		Author: models.BookAuthor{Name: "Nguyễn Du"}, Keywords: []string{"Thúy Kiều"},
	})
	f.create(t, BookInput{
		BookID: "B003", Title: "Số Đỏ", YearOfCreation: "1936", Genre: "Tiểu thuyết trào phúng",
		Author: models.BookAuthor{Name: "Vũ Trọng Phụng"},
	})
	f.create(t, BookInput{
		BookID: "B004", Title: "Tắt Đèn", YearOfCreation: "1937", Genre: "Tiểu thuyết hiện thực",
		Author: models.BookAuthor{Name: "Ngô Tất Tố"},
	})

	books, err := f.svc.SearchBooks(ctx, SearchInput{Query: "thúy"})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "B001", books[0].BookID)

	books, err = f.svc.SearchBooks(ctx, SearchInput{Genre: "tiểu thuyết", SortBy: "year-desc"})
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "B004", books[0].BookID)
	assert.Equal(t, "B003", books[1].BookID)

	books, err = f.svc.SearchBooks(ctx, SearchInput{Author: "phụng"})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Số Đỏ", books[0].Title)
}

func TestCatalogService_GetAndReadBook(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture(t)
	created := f.create(t, BookInput{BookID: "B001", Title: "Truyện Kiều", ContentSummary: "Cuộc đời Thúy Kiều"})

	byKey, err := f.svc.GetBook(ctx, "B001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byKey.ID)

	byID, err := f.svc.GetBook(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "B001", byID.BookID)
	assert.Equal(t, models.DefaultLanguage, byID.Language)

	content, err := f.svc.ReadBook(ctx, "B001")
	require.NoError(t, err)
	assert.Equal(t, "Unknown Author", content.Author)
	require.Len(t, content.Chapters, 1)
	assert.Equal(t, "Giới thiệu", content.Chapters[0].Title)
	assert.Equal(t, "Cuộc đời Thúy Kiều", content.Chapters[0].Content)

	_, err = f.svc.GetBook(ctx, "missing")
	requireRejected(t, err, domain.KindNotFound, domain.ErrBookNotFound)
}

func TestCatalogService_CreateUpdateDelete(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture(t)
	book := f.create(t, BookInput{BookID: "B001", Title: "Truyện Kiều"})
	require.NotNil(t, book.Stock)
	assert.Equal(t, 20, *book.Stock)

	_, err := f.svc.CreateBook(ctx, librarian, &BookInput{BookID: "B001", Title: "Khác"})
	rej := requireRejected(t, err, domain.KindRuleViolation, domain.ErrBookAlreadyExists)
	assert.Equal(t, MsgBookExists, rej.Message)

	title := "Đoạn Trường Tân Thanh"
	updated, err := f.svc.UpdateBook(ctx, librarian, "B001", &BookUpdateInput{
		Title: &title,
		Stock: testutil.IntPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, 5, *updated.Stock)
	assert.Equal(t, "B001", updated.BookID)

	require.NoError(t, f.svc.DeleteBook(ctx, librarian, book.ID))
	_, err = f.svc.GetBook(ctx, book.ID)
	requireRejected(t, err, domain.KindNotFound, domain.ErrBookNotFound)

	err = f.svc.DeleteBook(ctx, librarian, book.ID)
	requireRejected(t, err, domain.KindNotFound, domain.ErrBookNotFound)

	logs, err := f.activity.List(ctx, pagination.NewParams(1, 10))
	require.NoError(t, err)
	entries := logs.Data
	require.Len(t, entries, 3)
	actions := []string{entries[0].Action, entries[1].Action, entries[2].Action}
	assert.ElementsMatch(t, []string{"CREATE_BOOK", "UPDATE_BOOK", "DELETE_BOOK"}, actions)
	for _, e := range entries {
		assert.Equal(t, "Thủ thư", e.User)
		assert.Equal(t, domain.CategoryBook, e.Category)
	}
}

func TestCatalogService_Authors(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture(t)
	f.create(t, BookInput{BookID: "B003", Title: "Số Đỏ", Author: models.BookAuthor{Name: "Vũ Trọng Phụng"}})
	f.create(t, BookInput{BookID: "B001", Title: "Truyện Kiều", Author: models.BookAuthor{Name: "Nguyễn Du"}})
	f.create(t, BookInput{BookID: "B006", Title: "Văn chiêu hồn", Author: models.BookAuthor{Name: "Nguyễn Du"}})

	authors, err := f.svc.Authors(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "Nguyễn Du", authors[0].Name)
	assert.Equal(t, "Vũ Trọng Phụng", authors[1].Name)
}
