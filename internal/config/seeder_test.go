package config

import (
	"testing"

	"literaryhub/internal/adapters/persistence/models"
	"literaryhub/internal/pkg/password"
	"literaryhub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_Run(t *testing.T) {
	db := testutil.OpenDB(t)
	seeder := NewSeeder(db, AdminConfig{Name: "Thủ thư trưởng", Email: "Admin@Library.vn", Password: "secret123"})

	require.NoError(t, seeder.Run())
	// second run must not duplicate anything
	require.NoError(t, seeder.Run())

	var books, news, users int64
	db.Model(&models.Book{}).Count(&books)
	db.Model(&models.News{}).Count(&news)
	db.Model(&models.User{}).Count(&users)
	assert.Equal(t, int64(5), books)
	assert.Equal(t, int64(4), news)
	assert.Equal(t, int64(1), users)

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@library.vn").First(&admin).Error)
	assert.Equal(t, "admin", admin.Role)
	assert.True(t, password.Verify("secret123", admin.Password))

	var kieu models.Book
	require.NoError(t, db.Where("book_id = ?", "B001").First(&kieu).Error)
	require.NotNil(t, kieu.Stock)
	assert.Equal(t, 20, *kieu.Stock)
	assert.Equal(t, "Nguyễn Du", kieu.Author.Name)
	assert.Contains(t, []string(kieu.Keywords), "Thúy Kiều")
	assert.Equal(t, models.DefaultLanguage, kieu.Language)
}

func TestSeeder_SkipsAdminWithoutCredentials(t *testing.T) {
	db := testutil.OpenDB(t)

	require.NoError(t, NewSeeder(db, AdminConfig{}).Run())

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Zero(t, users)
}
