package repositories

import (
	"context"

	"literaryhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// activityLogRepository implements ActivityLogRepository interface
type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

// Create appends an entry
func (r *activityLogRepository) Create(ctx context.Context, entry *models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns entries newest first with pagination
func (r *activityLogRepository) List(ctx context.Context, offset, limit int) ([]*models.ActivityLog, int64, error) {
	var entries []*models.ActivityLog
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.ActivityLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Order("timestamp DESC").Offset(offset).Limit(limit).Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
