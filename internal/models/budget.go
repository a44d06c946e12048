package models

import (
	"github.com/pennybook/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Budget is a spending ceiling for one category in one calendar month.
//
// There is at most one budget per category and month, writes for an existing
// pair overwrite the stored amount.
type Budget struct {
	DefaultModel
	Category string          `json:"category" gorm:"uniqueIndex:budget_category_month" example:"Food"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"500" minimum:"0"`
	Month    types.Month     `json:"month" gorm:"uniqueIndex:budget_category_month" example:"2024-11"`
}
