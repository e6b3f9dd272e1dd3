package notification

import (
	"Recipe-Platform-Backend/domain"
	"Recipe-Platform-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		GetActiveTemplate(ctx context.Context, key string) (*entities.EmailTemplate, error)
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) GetActiveTemplate(ctx context.Context, key string) (*entities.EmailTemplate, error) {
	var template entities.EmailTemplate
	err := r.db.WithContext(ctx).
		Where("key = ? AND is_active = ?", key, true).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmailTemplateNotFound
		}
		return nil, err
	}
	return &template, nil
}
