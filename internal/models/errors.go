package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrBudgetMonthNotUnique  = errors.New("there is already a budget for this category and month")
	ErrCategoryNameNotUnique = errors.New("there is already a category with this name and type")

	ErrTransactionTypeInvalid = errors.New("the transaction type must be \"income\" or \"expense\"")
)
