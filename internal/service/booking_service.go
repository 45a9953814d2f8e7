package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

// BookingService handles class bookings.
type BookingService interface {
	Book(ctx context.Context, classID, memberID uint) (*model.Booking, error)
	ListForMember(ctx context.Context, memberID uint) ([]model.Booking, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	classes  repository.ClassRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(bookings repository.BookingRepository, classes repository.ClassRepository) BookingService {
	return &bookingService{bookings: bookings, classes: classes}
}

// Book reserves a spot in a class for a member, enforcing the class
// capacity limit.
func (s *bookingService) Book(ctx context.Context, classID, memberID uint) (*model.Booking, error) {
	class, err := s.classes.FindByID(ctx, classID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, err
	}

	count, err := s.bookings.CountByClass(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	if count >= int64(class.MaxCapacity) {
		return nil, apperrors.ErrClassFull
	}

	booking := &model.Booking{
		ClassID:  classID,
		MemberID: memberID,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		// one booking per member per class
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	return booking, nil
}

// ListForMember returns all bookings made by the given member.
func (s *bookingService) ListForMember(ctx context.Context, memberID uint) ([]model.Booking, error) {
	return s.bookings.ListByMember(ctx, memberID)
}
