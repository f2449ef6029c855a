package repository

import (
	"context"

	"github.com/smallbiznis/sitesapi/internal/site/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// withUses loads every site's uses in id order together with their use types.
func withUses(db *gorm.DB) *gorm.DB {
	return db.
		Preload("SiteUses", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("site_uses.id ASC")
		}).
		Preload("SiteUses.UseType")
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Site, error) {
	var sites []domain.Site
	err := withUses(db.WithContext(ctx)).
		Where("id = ?", id).
		Limit(1).
		Find(&sites).Error
	if err != nil {
		return nil, err
	}
	if len(sites) == 0 {
		return nil, nil
	}
	return &sites[0], nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Site, error) {
	var sites []domain.Site
	err := withUses(db.WithContext(ctx)).
		Order("id ASC").
		Find(&sites).Error
	if err != nil {
		return nil, err
	}
	return sites, nil
}

func (r *repo) ListByState(ctx context.Context, db *gorm.DB, state string) ([]domain.Site, error) {
	var sites []domain.Site
	err := withUses(db.WithContext(ctx)).
		Where("state = ?", state).
		Order("id ASC").
		Find(&sites).Error
	if err != nil {
		return nil, err
	}
	return sites, nil
}
