package services

import (
	"context"
	"log"

	"literaryhub/internal/adapters/persistence/models"
	"literaryhub/internal/adapters/persistence/repositories"
	"literaryhub/internal/core/domain"
	"literaryhub/internal/pkg/pagination"
)

// ActivityService is the fire-and-forget activity log sink
type ActivityService struct {
	logRepo   repositories.ActivityLogRepository
	publisher ActivityPublisher
}

// NewActivityService creates a new activity service; publisher may be nil
func NewActivityService(logRepo repositories.ActivityLogRepository, publisher ActivityPublisher) *ActivityService {
	return &ActivityService{
		logRepo:   logRepo,
		publisher: publisher,
	}
}

// Record appends an entry. Failures are logged and never returned.
func (s *ActivityService) Record(ctx context.Context, activity domain.Activity) {
	if activity.Status == "" {
		activity.Status = domain.ActivitySuccess
	}
	if activity.Category == "" {
		activity.Category = domain.CategorySystem
	}

	entry := &models.ActivityLog{
		User:     activity.User,
		UserID:   activity.UserID,
		Action:   activity.Action,
		Category: activity.Category,
		Detail:   activity.Detail,
		Status:   activity.Status,
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		log.Printf("⚠️ Failed to save activity log %s: %v", activity.Action, err)
	}

	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, activity); err != nil {
		log.Printf("⚠️ Failed to publish activity %s: %v", activity.Action, err)
	}
}

// RecordBy appends an entry attributed to actor
func (s *ActivityService) RecordBy(ctx context.Context, actor domain.Actor, action, category, detail string) {
	s.Record(ctx, domain.Activity{
		User:     actor.DisplayName(),
		UserID:   actor.UserID,
		Action:   action,
		Category: category,
		Detail:   detail,
		Status:   domain.ActivitySuccess,
	})
}

// List returns a page of entries, newest first
func (s *ActivityService) List(ctx context.Context, params pagination.Params) (*pagination.Page[*models.ActivityLog], error) {
	entries, total, err := s.logRepo.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(entries, params, total), nil
}
