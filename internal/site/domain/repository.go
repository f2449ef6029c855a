package domain

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=domainmock/mock_domain.go -package=domainmock . Repository,Service

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Site, error)
	List(ctx context.Context, db *gorm.DB) ([]Site, error)
	ListByState(ctx context.Context, db *gorm.DB, state string) ([]Site, error)
}
