package sitecontent

import (
	"Recipe-Platform-Backend/domain"
	"Recipe-Platform-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	SiteContentRepository interface {
		GetActiveHeader(ctx context.Context) (*entities.SiteHeader, error)
		GetActiveFooter(ctx context.Context) (*entities.Footer, error)
		ListActiveHeroes(ctx context.Context) ([]*entities.HeroBlock, error)
	}

	siteContentRepository struct {
		db *gorm.DB
	}
)

func NewSiteContentRepository(db *gorm.DB) SiteContentRepository {
	return &siteContentRepository{db: db}
}

// GetActiveHeader returns the most recently updated active header with its
// menu tree in display order.
func (r *siteContentRepository) GetActiveHeader(ctx context.Context) (*entities.SiteHeader, error) {
	var header entities.SiteHeader
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("header_menus.menu_order")
		}).
		Preload("MenuItems.DropdownItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("header_dropdown_items.item_order")
		}).
		First(&header).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoActiveHeader
		}
		return nil, err
	}
	return &header, nil
}

func (r *siteContentRepository) GetActiveFooter(ctx context.Context) (*entities.Footer, error) {
	var footer entities.Footer
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("footer_columns.column_order")
		}).
		First(&footer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoActiveFooter
		}
		return nil, err
	}
	return &footer, nil
}

func (r *siteContentRepository) ListActiveHeroes(ctx context.Context) ([]*entities.HeroBlock, error) {
	var heroes []*entities.HeroBlock
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("title").
		Find(&heroes).Error
	if err != nil {
		return nil, err
	}
	return heroes, nil
}
