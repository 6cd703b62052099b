package services

import (
	"context"
	"testing"
	"time"

	"literaryhub/internal/adapters/persistence/models"
	"literaryhub/internal/adapters/persistence/repositories"
	"literaryhub/internal/config"
	"literaryhub/internal/core/domain"
	"literaryhub/internal/pkg/clock"
	"literaryhub/internal/pkg/pagination"
	"literaryhub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	clock    *clock.Manual
	userRepo repositories.UserRepository
	auth     *AuthService
	users    *UserService
	borrows  *BorrowService
	books    repositories.BookRepository
	activity *ActivityService
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()
	db := testutil.OpenDB(t)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", TokenTTL: time.Hour}}

	clk := clock.NewManual(day0)
	userRepo := repositories.NewUserRepository(db)
	bookRepo := repositories.NewBookRepository(db)
	activity := NewActivityService(repositories.NewActivityLogRepository(db), nil)
	borrows := NewBorrowService(repositories.NewBorrowRepository(db), domain.DefaultPolicy(), clk)

	return &accountFixture{
		clock:    clk,
		userRepo: userRepo,
		auth:     NewAuthService(userRepo, activity, cfg),
		users:    NewUserService(userRepo, bookRepo, borrows, activity, clk),
		borrows:  borrows,
		books:    bookRepo,
		activity: activity,
	}
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture(t)

	registered, err := f.auth.Register(ctx, &RegisterInput{Name: "Lan", Email: "Lan@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "lan@example.com", registered.User.Email)
	assert.Equal(t, string(domain.RoleUser), registered.User.Role)

	claims, err := f.auth.ValidateAccessToken(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "Lan", claims.Name)

	_, err = f.auth.Register(ctx, &RegisterInput{Name: "Lan 2", Email: "lan@example.com", Password: "secret2"})
	rej := requireRejected(t, err, domain.KindRuleViolation, domain.ErrUserAlreadyExists)
	assert.Equal(t, MsgUserExists, rej.Message)

	loggedIn, err := f.auth.Login(ctx, &LoginInput{Email: "lan@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	_, err = f.auth.Login(ctx, &LoginInput{Email: "lan@example.com", Password: "wrong"})
	rej = requireRejected(t, err, domain.KindRuleViolation, domain.ErrInvalidCredentials)
	assert.Equal(t, MsgBadLogin, rej.Message)

	_, err = f.auth.Login(ctx, &LoginInput{Email: "nobody@example.com", Password: "secret1"})
	requireRejected(t, err, domain.KindRuleViolation, domain.ErrInvalidCredentials)

	me, err := f.auth.Me(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lan", me.Name)

	logs, err := f.activity.List(ctx, pagination.NewParams(1, 10))
	require.NoError(t, err)
	entries := logs.Data
	failures := 0
	for _, e := range entries {
		assert.Equal(t, domain.CategoryAuth, e.Category)
		if e.Status == domain.ActivityFailure {
			failures++
		}
	}
	assert.Equal(t, 1, failures)
}

func TestUserService_ProfileAndPassword(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture(t)

	registered, err := f.auth.Register(ctx, &RegisterInput{Name: "Minh", Email: "minh@example.com", Password: "secret1", Phone: "0901234567"})
	require.NoError(t, err)
	id := registered.User.ID

	assert.Equal(t, models.DefaultReadingGoal, registered.User.ReadingGoal)
	assert.Equal(t, "0901234567", registered.User.Phone)

	name, bio, goal := "Minh Nguyễn", "Mê thơ Xuân Diệu", 30
	profile, err := f.users.UpdateProfile(ctx, id, &UpdateProfileInput{Name: &name, Bio: &bio, ReadingGoal: &goal})
	require.NoError(t, err)
	assert.Equal(t, name, profile.Name)
	assert.Equal(t, bio, profile.Bio)
	assert.Equal(t, 30, profile.ReadingGoal)
	assert.Equal(t, "0901234567", profile.Phone)

	avatar, err := f.users.UpdateAvatar(ctx, id, &UpdateAvatarInput{Avatar: "https://cdn.example.com/minh.png"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/minh.png", avatar)
	stored, err := f.users.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, avatar, stored.Avatar)
	assert.Equal(t, bio, stored.Bio)

	err = f.users.ChangePassword(ctx, id, &ChangePasswordInput{CurrentPassword: "nope", NewPassword: "secret2"})
	rej := requireRejected(t, err, domain.KindRuleViolation, domain.ErrInvalidCredentials)
	assert.Equal(t, MsgWrongPassword, rej.Message)

	require.NoError(t, f.users.ChangePassword(ctx, id, &ChangePasswordInput{CurrentPassword: "secret1", NewPassword: "secret2"}))
	_, err = f.auth.Login(ctx, &LoginInput{Email: "minh@example.com", Password: "secret2"})
	require.NoError(t, err)

	_, err = f.users.GetProfile(ctx, "missing")
	requireRejected(t, err, domain.KindNotFound, domain.ErrUserNotFound)
}

func TestUserService_Stats(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture(t)

	registered, err := f.auth.Register(ctx, &RegisterInput{Name: "Hoa", Email: "hoa@example.com", Password: "secret1"})
	require.NoError(t, err)
	id := registered.User.ID

	for _, bookID := range []string{"B001", "B002"} {
		require.NoError(t, f.books.Create(ctx, &models.Book{BookID: bookID, Title: bookID}))
		_, err := f.borrows.Borrow(ctx, BorrowInput{BookID: bookID, UserID: id})
		require.NoError(t, err)
	}

	_, err = f.users.AddFavorite(ctx, id, "B001")
	require.NoError(t, err)

	stats, err := f.users.Stats(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalBorrows)
	assert.Equal(t, int64(2), stats.CurrentBorrows)
	assert.Equal(t, int64(0), stats.OverdueBorrows)
	assert.Equal(t, int64(0), stats.BooksRead)
	assert.Equal(t, models.DefaultReadingGoal, stats.ReadingGoal)
	assert.Equal(t, 1, stats.FavoriteCount)
	assert.False(t, stats.MemberSince.IsZero())

	// a loan past its due date shows as overdue before any sweep runs
	f.clock.Set(day0.AddDate(0, 0, 15))
	stats, err = f.users.Stats(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.CurrentBorrows)
	assert.Equal(t, int64(2), stats.OverdueBorrows)

	page, err := f.users.ListUsers(ctx, pagination.NewParams(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Meta.Total)
}

func TestUserService_Favorites(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture(t)

	registered, err := f.auth.Register(ctx, &RegisterInput{Name: "Thu", Email: "thu@example.com", Password: "secret1"})
	require.NoError(t, err)
	id := registered.User.ID

	for _, bookID := range []string{"B001", "B002", "B003"} {
		require.NoError(t, f.books.Create(ctx, &models.Book{BookID: bookID, Title: "Sách " + bookID}))
	}

	favorites, err := f.users.AddFavorite(ctx, id, "B001")
	require.NoError(t, err)
	assert.Equal(t, []string{"B001"}, favorites)

	favorites, err = f.users.AddFavorite(ctx, id, "B001")
	require.NoError(t, err)
	assert.Equal(t, []string{"B001"}, favorites)

	_, err = f.users.AddFavorite(ctx, id, "B404")
	requireRejected(t, err, domain.KindNotFound, domain.ErrBookNotFound)

	// held books join the shelf; B001 is both favorite and borrowed
	for _, bookID := range []string{"B001", "B002"} {
		_, err := f.borrows.Borrow(ctx, BorrowInput{BookID: bookID, UserID: id})
		require.NoError(t, err)
	}
	shelf, err := f.users.Favorites(ctx, id)
	require.NoError(t, err)
	require.Len(t, shelf, 2)
	assert.Equal(t, "B001", shelf[0].BookID)
	assert.Equal(t, "B002", shelf[1].BookID)

	favorites, err = f.users.RemoveFavorite(ctx, id, "B001")
	require.NoError(t, err)
	assert.Empty(t, favorites)

	profile, err := f.users.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, profile.FavoriteBooks)

	_, err = f.users.Favorites(ctx, "missing")
	requireRejected(t, err, domain.KindNotFound, domain.ErrUserNotFound)
}

func TestUserService_Heartbeat(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture(t)

	registered, err := f.auth.Register(ctx, &RegisterInput{Name: "An", Email: "an@example.com", Password: "secret1"})
	require.NoError(t, err)

	seen := day0.Add(3 * time.Hour)
	f.clock.Set(seen)
	require.NoError(t, f.users.Heartbeat(ctx, registered.User.ID))

	stored, err := f.userRepo.GetByID(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.True(t, stored.LastActive.Equal(seen))

	err = f.users.Heartbeat(ctx, "missing")
	requireRejected(t, err, domain.KindNotFound, domain.ErrUserNotFound)
}

func TestUserService_UpdateRoleAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture(t)
	admin := domain.Actor{UserID: "admin-1", Name: "Quản trị", Role: domain.RoleAdmin}

	registered, err := f.auth.Register(ctx, &RegisterInput{Name: "Bình", Email: "binh@example.com", Password: "secret1"})
	require.NoError(t, err)
	id := registered.User.ID

	user, err := f.users.UpdateRole(ctx, admin, id, domain.RoleLibrarian)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoleLibrarian), user.Role)

	_, err = f.users.UpdateRole(ctx, admin, id, domain.Role("owner"))
	rej := requireRejected(t, err, domain.KindRuleViolation, domain.ErrInvalidRole)
	assert.Equal(t, MsgInvalidRole, rej.Message)

	_, err = f.users.UpdateRole(ctx, admin, admin.UserID, domain.RoleUser)
	requireRejected(t, err, domain.KindRuleViolation, domain.ErrSelfManagement)

	_, err = f.users.UpdateRole(ctx, admin, "missing", domain.RoleUser)
	requireRejected(t, err, domain.KindNotFound, domain.ErrUserNotFound)

	err = f.users.DeleteUser(ctx, admin, admin.UserID)
	requireRejected(t, err, domain.KindRuleViolation, domain.ErrSelfManagement)

	require.NoError(t, f.books.Create(ctx, &models.Book{BookID: "B001", Title: "Sách B001"}))
	b, err := f.borrows.Borrow(ctx, BorrowInput{BookID: "B001", UserID: id})
	require.NoError(t, err)

	err = f.users.DeleteUser(ctx, admin, id)
	rej = requireRejected(t, err, domain.KindRuleViolation, domain.ErrUserHasBorrows)
	assert.Equal(t, MsgUserHasBorrows, rej.Message)

	_, err = f.borrows.Return(ctx, b.ID)
	require.NoError(t, err)
	require.NoError(t, f.users.DeleteUser(ctx, admin, id))

	_, err = f.users.GetProfile(ctx, id)
	requireRejected(t, err, domain.KindNotFound, domain.ErrUserNotFound)
	history, err := f.borrows.ListUserBorrows(ctx, id, "")
	require.NoError(t, err)
	assert.Empty(t, history)

	err = f.users.DeleteUser(ctx, admin, id)
	requireRejected(t, err, domain.KindNotFound, domain.ErrUserNotFound)

	logs, err := f.activity.List(ctx, pagination.NewParams(1, 10))
	require.NoError(t, err)
	actions := map[string]bool{}
	for _, e := range logs.Data {
		if e.Category == domain.CategoryUser {
			actions[e.Action] = true
		}
	}
	assert.True(t, actions["UPDATE_ROLE"])
	assert.True(t, actions["DELETE_USER"])
}
