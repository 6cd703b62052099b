package repositories

import (
	"context"

	"literaryhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// newsRepository implements NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create creates a news entry
func (r *newsRepository) Create(ctx context.Context, news *models.News) error {
	return r.db.WithContext(ctx).Create(news).Error
}

// Update saves every column of a news entry
func (r *newsRepository) Update(ctx context.Context, news *models.News) error {
	return r.db.WithContext(ctx).Save(news).Error
}

// Delete removes a news entry
func (r *newsRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.News{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID gets a news entry by ID
func (r *newsRepository) GetByID(ctx context.Context, id string) (*models.News, error) {
	var news models.News
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&news).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// List returns pinned entries first, then newest first
func (r *newsRepository) List(ctx context.Context) ([]*models.News, error) {
	var items []*models.News
	err := r.db.WithContext(ctx).
		Order("is_pinned DESC").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// DeleteAll removes every news entry
func (r *newsRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.News{}).Error
}

// CreateBatch inserts news entries in one statement
func (r *newsRepository) CreateBatch(ctx context.Context, items []*models.News) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}
