package v1

import (
	"time"

	"github.com/pennybook/backend/internal/models"
	"github.com/shopspring/decimal"
)

// minimumAmount is the smallest valid transaction amount.
var minimumAmount = decimal.NewFromFloat(0.01)

// TransactionEditable contains all values of a transaction that clients set.
type TransactionEditable struct {
	Date        time.Time              `json:"date" example:"2024-11-10T00:00:00Z"`           // Date of the transaction
	Amount      decimal.Decimal        `json:"amount" example:"14.03" minimum:"0.01"`         // Amount, must be at least 0.01
	Description string                 `json:"description" example:"Lunch at the bakery"`     // Free-form description
	Category    string                 `json:"category" example:"Food"`                       // Category name
	Type        models.TransactionType `json:"type" example:"expense" enums:"income,expense"` // Whether the amount is earned or spent
}

// model returns the database resource for the editable fields.
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:        editable.Date,
		Amount:      editable.Amount,
		Description: editable.Description,
		Category:    editable.Category,
		Type:        editable.Type,
	}
}

// validate returns a map of field names to messages for all invalid fields.
// An empty map means the input is valid.
func (editable TransactionEditable) validate() map[string]string {
	details := make(map[string]string)

	if editable.Amount.LessThan(minimumAmount) {
		details["amount"] = "Amount must be greater than 0"
	}

	if editable.Date.IsZero() {
		details["date"] = "Date is required"
	}

	if editable.Description == "" {
		details["description"] = "Description is required"
	}

	if editable.Category == "" {
		details["category"] = "Category is required"
	}

	if !editable.Type.Valid() {
		details["type"] = "Type must be \"income\" or \"expense\""
	}

	return details
}

// TransactionQueryFilter contains the supported query parameters for the
// transaction list.
type TransactionQueryFilter struct {
	Month       string `form:"month"`       // Only transactions in this YYYY-MM month
	Category    string `form:"category"`    // Filter by category name
	Type        string `form:"type"`        // Filter by transaction type
	Description string `form:"description"` // Description contains this string
}
