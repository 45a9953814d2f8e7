package repository

import (
	"context"

	"gorm.io/gorm"

	"gymhub/internal/model"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	CountByClass(ctx context.Context, classID uint) (int64, error)
	ListByMember(ctx context.Context, memberID uint) ([]model.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository builds a GORM-backed booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) CountByClass(ctx context.Context, classID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("class_id = ?", classID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bookingRepository) ListByMember(ctx context.Context, memberID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).Where("member_id = ?", memberID).
		Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
