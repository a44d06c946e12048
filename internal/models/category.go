package models

// Category is a user defined category name for one transaction type.
//
// The built-in category names below are always available and are not stored.
type Category struct {
	DefaultModel
	Name string          `json:"name" gorm:"uniqueIndex:category_name_type" example:"Hobby"`
	Type TransactionType `json:"type" gorm:"uniqueIndex:category_name_type;check:transaction_type_valid,type IN ('income','expense')" example:"expense"`
}

// DefaultCategories returns the built-in category names for a transaction
// type. The returned slice is a copy, callers may append to it.
func DefaultCategories(t TransactionType) []string {
	if t == TypeIncome {
		return append([]string(nil), defaultIncomeCategories...)
	}

	return append([]string(nil), defaultExpenseCategories...)
}

var defaultExpenseCategories = []string{
	"Food",
	"Transportation",
	"Housing",
	"Utilities",
	"Entertainment",
	"Healthcare",
	"Shopping",
	"Education",
	"Personal",
	"Other",
}

var defaultIncomeCategories = []string{
	"Salary",
	"Freelance",
	"Investments",
	"Gifts",
	"Other",
}
