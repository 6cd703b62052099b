package services

import (
	"context"

	"literaryhub/internal/core/domain"
)

// Note: borrowing rules live in borrow_service.go
// Note: catalog browsing and staff CRUD live in catalog_service.go

// ActivityPublisher forwards activity entries to an external broker
type ActivityPublisher interface {
	Publish(ctx context.Context, activity domain.Activity) error
}

// OverdueSweeper is the job run by CronService
type OverdueSweeper interface {
	SweepOverdue(ctx context.Context) (int64, error)
}
