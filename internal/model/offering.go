package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOffering is an entry in the gym's services catalog.
type ServiceOffering struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Name         string          `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Description  string          `json:"description" gorm:"size:1024"`
	MonthlyPrice decimal.Decimal `json:"monthly_price" gorm:"type:decimal(10,2)"`
	Active       bool            `json:"active" gorm:"default:true;index"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
