package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking records a member's reserved spot in a class.
// A member can hold at most one booking per class.
type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Reference uuid.UUID `json:"reference" gorm:"type:char(36);uniqueIndex"`
	ClassID   uint      `json:"class_id" gorm:"not null;uniqueIndex:idx_class_member"`
	MemberID  uint      `json:"member_id" gorm:"not null;uniqueIndex:idx_class_member"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets the booking reference before creating the record.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Reference == uuid.Nil {
		b.Reference = uuid.New()
	}
	return nil
}
