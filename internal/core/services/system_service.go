package services

import (
	"context"
	"log"

	"literaryhub/internal/adapters/persistence/repositories"
	"literaryhub/internal/config"
	"literaryhub/internal/core/domain"
)

// SystemService handles maintenance operations
type SystemService struct {
	bookRepo repositories.BookRepository
	newsRepo repositories.NewsRepository
	activity *ActivityService
}

// NewSystemService creates a new system service
func NewSystemService(
	bookRepo repositories.BookRepository,
	newsRepo repositories.NewsRepository,
	activity *ActivityService,
) *SystemService {
	return &SystemService{
		bookRepo: bookRepo,
		newsRepo: newsRepo,
		activity: activity,
	}
}

// Reset clears books and news and loads the sample data.
// Users and borrow records are left untouched.
func (s *SystemService) Reset(ctx context.Context, actor domain.Actor) error {
	log.Printf("🧹 System reset requested by: %s", actor.DisplayName())

	if err := s.bookRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.newsRepo.DeleteAll(ctx); err != nil {
		return err
	}

	if err := s.newsRepo.CreateBatch(ctx, config.SampleNews()); err != nil {
		return err
	}
	if err := s.bookRepo.CreateBatch(ctx, config.SampleBooks()); err != nil {
		return err
	}

	s.activity.RecordBy(ctx, actor, "RESET_DATA", domain.CategorySystem,
		"Reset dữ liệu sách và tin tức về mẫu mặc định")
	return nil
}
