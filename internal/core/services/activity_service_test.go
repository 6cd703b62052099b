package services

import (
	"context"
	"errors"
	"sync"
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

type recordingPublisher struct {
	mu   sync.Mutex
	got  []domain.Activity
	fail bool
}

func (p *recordingPublisher) Publish(_ context.Context, activity domain.Activity) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("broker down")
	}
	p.got = append(p.got, activity)
	return nil
}

func TestActivityService_RecordPersistsAndPublishes(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenDB(t)
	pub := &recordingPublisher{}
	svc := NewActivityService(repositories.NewActivityLogRepository(db), pub)

	svc.Record(ctx, domain.Activity{User: "Admin", Action: "RESET_DATA"})
	svc.RecordBy(ctx, domain.Actor{UserID: "u1"}, "CREATE_NEWS", domain.CategoryNews, "Đăng tin tức mới: A")

	page, err := svc.List(ctx, pagination.NewParams(1, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Meta.Total)
	assert.True(t, page.Meta.HasNext)
	require.Len(t, page.Data, 1)

	require.Len(t, pub.got, 2)
	assert.Equal(t, domain.CategorySystem, pub.got[0].Category)
	assert.Equal(t, domain.ActivitySuccess, pub.got[0].Status)
	assert.Equal(t, "Admin", pub.got[1].User)
}

func TestActivityService_FailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenDB(t)
	svc := NewActivityService(repositories.NewActivityLogRepository(db), &recordingPublisher{fail: true})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.NotPanics(t, func() {
		svc.Record(ctx, domain.Activity{Action: "LOGIN"})
	})
}

func TestSystemService_Reset(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenDB(t)
	bookRepo := repositories.NewBookRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	borrowRepo := repositories.NewBorrowRepository(db)
	activity := NewActivityService(repositories.NewActivityLogRepository(db), nil)
	borrows := NewBorrowService(borrowRepo, domain.DefaultPolicy(), clock.NewManual(day0))
	svc := NewSystemService(bookRepo, newsRepo, activity)

	require.NoError(t, bookRepo.Create(ctx, &models.Book{BookID: "X01", Title: "Sách tạm"}))
	_, err := borrows.Borrow(ctx, BorrowInput{BookID: "X01", UserID: "u1"})
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx, domain.Actor{Name: "Quản trị", Role: domain.RoleAdmin}))

	books, err := bookRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 5)
	assert.Equal(t, "B001", books[0].BookID)

	news, err := newsRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, news, 4)
	assert.True(t, news[0].IsPinned)

	// borrow history survives a reset
	ledger, err := borrows.ListUserBorrows(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, "Sách tạm", ledger[0].BookTitle)

	logs, err := activity.List(ctx, pagination.NewParams(1, 10))
	require.NoError(t, err)
	entries := logs.Data
	require.Len(t, entries, 1)
	assert.Equal(t, "RESET_DATA", entries[0].Action)
	assert.Equal(t, "Quản trị", entries[0].User)
}

type countingSweeper struct {
	calls int
}

func (s *countingSweeper) SweepOverdue(context.Context) (int64, error) {
	s.calls++
	return 3, nil
}

type idleSweeper struct{}

func (idleSweeper) SweepOverdue(context.Context) (int64, error) { return 0, nil }

func TestCronService_RunOverdueSweep(t *testing.T) {
	sweeper := &countingSweeper{}
	svc := NewCronService(sweeper, "5 0 * * *", nil)

	svc.RunOverdueSweep()
	assert.Equal(t, 1, sweeper.calls)

	require.NoError(t, svc.Start())
	svc.Stop()

	bad := NewCronService(sweeper, "not a schedule", nil)
	assert.Error(t, bad.Start())
}

func TestDashboardService_GetAdminDashboard(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenDB(t)
	clk := clock.NewManual(day0)
	bookRepo := repositories.NewBookRepository(db)
	borrows := NewBorrowService(repositories.NewBorrowRepository(db), domain.DefaultPolicy(), clk)

	require.NoError(t, repositories.NewUserRepository(db).Create(ctx, &models.User{
		Name: "Lan", Email: "lan@example.com", Password: "x", Role: string(domain.RoleUser),
	}))
	for _, id := range []string{"B001", "B002"} {
		require.NoError(t, bookRepo.Create(ctx, &models.Book{BookID: id, Title: "Sách " + id}))
	}
	for _, user := range []string{"u1", "u2"} {
		_, err := borrows.Borrow(ctx, BorrowInput{BookID: "B001", UserID: user})
		require.NoError(t, err)
	}
	b, err := borrows.Borrow(ctx, BorrowInput{BookID: "B002", UserID: "u1"})
	require.NoError(t, err)

	clk.Advance(15 * 24 * time.Hour)
	_, err = borrows.Return(ctx, b.ID)
	require.NoError(t, err)
	clk.Set(day0)

	dashboard := NewDashboardService(db, borrows, clk)
	data, err := dashboard.GetAdminDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.TotalUsers)
	assert.Equal(t, int64(1), data.TotalReaders)
	assert.Equal(t, int64(2), data.TotalBooks)
	assert.Equal(t, int64(3), data.TotalBorrows)
	assert.Equal(t, int64(2), data.ActiveBorrows)
	assert.Equal(t, int64(1), data.ReturnedBorrows)
	assert.Equal(t, int64(3), data.BorrowsToday)
	assert.Equal(t, int64(5000), data.LateFeesTotal)
	assert.Len(t, data.RecentBorrows, 3)
	require.NotEmpty(t, data.TopBooks)
	assert.Equal(t, "B001", data.TopBooks[0].BookID)
	assert.Equal(t, int64(2), data.TopBooks[0].Borrows)

	// past the due date with no cron run: the dashboard settles the ledger itself
	clk.Set(day0.AddDate(0, 0, 15))
	data, err = dashboard.GetAdminDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), data.ActiveBorrows)
	assert.Equal(t, int64(2), data.OverdueBorrows)

	stored, err := repositories.NewBorrowRepository(db).ListByUser(ctx, "u2", "")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, string(domain.StatusOverdue), stored[0].Status)
}

func TestDashboardService_StorageFailure(t *testing.T) {
	db := testutil.OpenDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = NewDashboardService(db, idleSweeper{}, clock.NewManual(day0)).GetAdminDashboard(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count users")
}
