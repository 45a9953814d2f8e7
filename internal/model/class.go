package model

import "time"

// GymClass is a scheduled class led by a trainer, with a fixed capacity.
type GymClass struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"size:1024"`
	TrainerID   uint      `json:"trainer_id" gorm:"not null;index"`
	MaxCapacity int       `json:"max_capacity" gorm:"not null"`
	StartsAt    time.Time `json:"starts_at" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
