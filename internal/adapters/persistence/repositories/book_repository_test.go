package repositories_test

import (
	"context"
	"testing"

	"literaryhub/internal/adapters/persistence/models"
	"literaryhub/internal/adapters/persistence/repositories"
	"literaryhub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedBooks(t *testing.T, repo repositories.BookRepository) {
	t.Helper()
	books := []*models.Book{
		{BookID: "B002", Title: "Chí Phèo", Genre: "Truyện ngắn", Author: models.BookAuthor{Name: "Nam Cao"}, YearOfCreation: "1941"},
		{BookID: "B001", Title: "Truyện Kiều", Genre: "Truyện thơ", Author: models.BookAuthor{Name: "Nguyễn Du"}, YearOfCreation: "1820"},
		{BookID: "B003", Title: "Lão Hạc", Genre: "Truyện ngắn", Author: models.BookAuthor{Name: "Nam Cao"}, YearOfCreation: "1943", Stock: testutil.IntPtr(0)},
	}
	require.NoError(t, repo.CreateBatch(context.Background(), books))
}

func TestBookRepository_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewBookRepository(testutil.OpenDB(t))
	seedBooks(t, repo)

	book, err := repo.GetByBookID(ctx, "B001")
	require.NoError(t, err)
	assert.NotEmpty(t, book.ID)
	assert.Equal(t, models.DefaultLanguage, book.Language)
	require.NotNil(t, book.Stock)
	assert.Equal(t, 20, *book.Stock)

	zero, err := repo.GetByBookID(ctx, "B003")
	require.NoError(t, err)
	require.NotNil(t, zero.Stock)
	assert.Equal(t, 0, *zero.Stock)

	byID, err := repo.GetByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "B001", byID.BookID)
}

func TestBookRepository_ListOrdersByBookID(t *testing.T) {
	repo := repositories.NewBookRepository(testutil.OpenDB(t))
	seedBooks(t, repo)

	books, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, "B001", books[0].BookID)
	assert.Equal(t, "B003", books[2].BookID)
}

func TestBookRepository_Find(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewBookRepository(testutil.OpenDB(t))
	seedBooks(t, repo)

	books, err := repo.Find(ctx, repositories.BookFilter{Author: "nam cao", Sort: repositories.SortYearDesc})
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "B003", books[0].BookID)

	books, err = repo.Find(ctx, repositories.BookFilter{Sort: repositories.SortYearAsc})
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, "B001", books[0].BookID)
}

func TestBookRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewBookRepository(testutil.OpenDB(t))
	seedBooks(t, repo)

	book, err := repo.GetByBookID(ctx, "B002")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, book.ID))
	assert.ErrorIs(t, repo.Delete(ctx, book.ID), gorm.ErrRecordNotFound)

	exists, err := repo.ExistsByBookID(ctx, "B002")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.DeleteAll(ctx))
	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}
