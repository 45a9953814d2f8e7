package repository

import (
	"context"

	"gorm.io/gorm"

	"gymhub/internal/model"
)

// OfferingRepository defines services catalog persistence operations.
type OfferingRepository interface {
	Create(ctx context.Context, offering *model.ServiceOffering) error
	Update(ctx context.Context, offering *model.ServiceOffering) error
	FindByName(ctx context.Context, name string) (*model.ServiceOffering, error)
	ListActive(ctx context.Context) ([]model.ServiceOffering, error)
}

type offeringRepository struct {
	db *gorm.DB
}

// NewOfferingRepository builds a GORM-backed offering repository.
func NewOfferingRepository(db *gorm.DB) OfferingRepository {
	return &offeringRepository{db: db}
}

func (r *offeringRepository) Create(ctx context.Context, offering *model.ServiceOffering) error {
	return r.db.WithContext(ctx).Create(offering).Error
}

func (r *offeringRepository) Update(ctx context.Context, offering *model.ServiceOffering) error {
	return r.db.WithContext(ctx).Save(offering).Error
}

func (r *offeringRepository) FindByName(ctx context.Context, name string) (*model.ServiceOffering, error) {
	var offering model.ServiceOffering
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&offering).Error; err != nil {
		return nil, err
	}
	return &offering, nil
}

func (r *offeringRepository) ListActive(ctx context.Context) ([]model.ServiceOffering, error) {
	var offerings []model.ServiceOffering
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("name").Find(&offerings).Error; err != nil {
		return nil, err
	}
	return offerings, nil
}
