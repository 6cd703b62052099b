package services

import (
	"context"
	"errors"
	"fmt"

	"literaryhub/internal/adapters/persistence/models"
	"literaryhub/internal/adapters/persistence/repositories"
	"literaryhub/internal/core/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewsService handles news and announcements
type NewsService struct {
	newsRepo repositories.NewsRepository
	activity *ActivityService
}

// NewNewsService creates a new news service
func NewNewsService(newsRepo repositories.NewsRepository, activity *ActivityService) *NewsService {
	return &NewsService{
		newsRepo: newsRepo,
		activity: activity,
	}
}

// NewsInput represents create news input
type NewsInput struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Summary     string   `json:"summary" validate:"required,max=500"`
	Content     string   `json:"content" validate:"required"`
	ImageURL    string   `json:"imageUrl" validate:"omitempty,max=500"`
	Author      string   `json:"author" validate:"max=100"`
	Tags        []string `json:"tags"`
	Type        string   `json:"type" validate:"omitempty,oneof=news event notice newbook"`
	IsPinned    bool     `json:"isPinned"`
	IsPublished *bool    `json:"isPublished"`
}

// NewsUpdateInput represents update news input; nil fields are left unchanged
type NewsUpdateInput struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Summary     *string  `json:"summary" validate:"omitempty,max=500"`
	Content     *string  `json:"content"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,max=500"`
	Author      *string  `json:"author" validate:"omitempty,max=100"`
	Tags        []string `json:"tags"`
	Type        *string  `json:"type" validate:"omitempty,oneof=news event notice newbook"`
	IsPinned    *bool    `json:"isPinned"`
	IsPublished *bool    `json:"isPublished"`
}

// List returns all news, pinned first then newest first
func (s *NewsService) List(ctx context.Context) ([]*models.News, error) {
	return s.newsRepo.List(ctx)
}

// Get returns one news entry
func (s *NewsService) Get(ctx context.Context, id string) (*models.News, error) {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound(domain.ErrNewsNotFound, MsgNewsNotFound)
		}
		return nil, err
	}
	return news, nil
}

// Create publishes a news entry
func (s *NewsService) Create(ctx context.Context, actor domain.Actor, input *NewsInput) (*models.News, error) {
	news := &models.News{
		Title:       input.Title,
		Summary:     input.Summary,
		Content:     input.Content,
		ImageURL:    input.ImageURL,
		Author:      input.Author,
		Tags:        datatypes.JSONSlice[string](input.Tags),
		Type:        input.Type,
		IsPinned:    input.IsPinned,
		IsPublished: true,
	}
	if news.Type == "" {
		news.Type = string(domain.NewsTypeNews)
	}
	if input.IsPublished != nil {
		news.IsPublished = *input.IsPublished
	}

	if err := s.newsRepo.Create(ctx, news); err != nil {
		return nil, err
	}

	s.activity.RecordBy(ctx, actor, "CREATE_NEWS", domain.CategoryNews,
		fmt.Sprintf("Đăng tin tức mới: %s", news.Title))
	return news, nil
}

// Update applies the non-nil fields of input to a news entry
func (s *NewsService) Update(ctx context.Context, actor domain.Actor, id string, input *NewsUpdateInput) (*models.News, error) {
	news, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&news.Title, input.Title)
	applyString(&news.Summary, input.Summary)
	applyString(&news.Content, input.Content)
	applyString(&news.ImageURL, input.ImageURL)
	applyString(&news.Author, input.Author)
	applyString(&news.Type, input.Type)
	if input.Tags != nil {
		news.Tags = datatypes.JSONSlice[string](input.Tags)
	}
	if input.IsPinned != nil {
		news.IsPinned = *input.IsPinned
	}
	if input.IsPublished != nil {
		news.IsPublished = *input.IsPublished
	}

	if err := s.newsRepo.Update(ctx, news); err != nil {
		return nil, err
	}

	s.activity.RecordBy(ctx, actor, "UPDATE_NEWS", domain.CategoryNews,
		fmt.Sprintf("Cập nhật tin tức: %s", news.Title))
	return news, nil
}

// Delete removes a news entry
func (s *NewsService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	news, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.newsRepo.Delete(ctx, news.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.ErrNewsNotFound, MsgNewsNotFound)
		}
		return err
	}

	s.activity.RecordBy(ctx, actor, "DELETE_NEWS", domain.CategoryNews,
		fmt.Sprintf("Xóa tin tức: %s", news.Title))
	return nil
}
