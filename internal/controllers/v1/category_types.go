package v1

import (
	"github.com/pennybook/backend/internal/models"
)

// CategoryEditable contains all values of a custom category that clients set.
type CategoryEditable struct {
	Name string                 `json:"name" example:"Hobby"`                          // Name of the category
	Type models.TransactionType `json:"type" example:"expense" enums:"income,expense"` // Transaction type the category applies to
}

// model returns the database resource for the editable fields.
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name: editable.Name,
		Type: editable.Type,
	}
}

// validate returns a map of field names to messages for all invalid fields.
// An empty map means the input is valid.
func (editable CategoryEditable) validate() map[string]string {
	details := make(map[string]string)

	if editable.Name == "" {
		details["name"] = "Category name is required"
	}

	if !editable.Type.Valid() {
		details["type"] = "Type must be \"income\" or \"expense\""
	}

	return details
}

// CategoryLists groups all category names by transaction type.
type CategoryLists struct {
	Expense []string `json:"expense"` // Category names for expenses
	Income  []string `json:"income"`  // Category names for income
}
