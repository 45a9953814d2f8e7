package repository

import (
	"context"

	"gorm.io/gorm"

	"gymhub/internal/model"
)

// ClassRepository defines gym class persistence operations.
type ClassRepository interface {
	Create(ctx context.Context, class *model.GymClass) error
	FindByID(ctx context.Context, id uint) (*model.GymClass, error)
	List(ctx context.Context) ([]model.GymClass, error)
	ListByTrainer(ctx context.Context, trainerID uint) ([]model.GymClass, error)
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository builds a GORM-backed class repository.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, class *model.GymClass) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) FindByID(ctx context.Context, id uint) (*model.GymClass, error) {
	var class model.GymClass
	if err := r.db.WithContext(ctx).First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) List(ctx context.Context) ([]model.GymClass, error) {
	var classes []model.GymClass
	if err := r.db.WithContext(ctx).Order("starts_at").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) ListByTrainer(ctx context.Context, trainerID uint) ([]model.GymClass, error) {
	var classes []model.GymClass
	if err := r.db.WithContext(ctx).Where("trainer_id = ?", trainerID).Order("starts_at").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}
