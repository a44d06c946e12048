package v1

import (
	"github.com/pennybook/backend/internal/models"
	"github.com/pennybook/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetEditable contains all values of a budget that clients set.
type BudgetEditable struct {
	Category string          `json:"category" example:"Food"`                  // Category the ceiling applies to
	Amount   decimal.Decimal `json:"amount" example:"500" minimum:"0"`         // Spending ceiling, must not be negative
	Month    types.Month     `json:"month" example:"2024-11" format:"YYYY-MM"` // Month the ceiling applies to
}

// model returns the database resource for the editable fields.
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Category: editable.Category,
		Amount:   editable.Amount,
		Month:    editable.Month,
	}
}

// validate returns a map of field names to messages for all invalid fields.
// An empty map means the input is valid.
func (editable BudgetEditable) validate() map[string]string {
	details := make(map[string]string)

	if editable.Category == "" {
		details["category"] = "Category is required"
	}

	if editable.Amount.IsNegative() {
		details["amount"] = "Budget amount must be non-negative"
	}

	if editable.Month.IsZero() {
		details["month"] = "Month is required in YYYY-MM format"
	}

	return details
}

// BudgetQueryFilter contains the supported query parameters for the budget
// list.
type BudgetQueryFilter struct {
	Month string `form:"month"` // Only budgets for this YYYY-MM month
}
