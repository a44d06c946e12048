// Package report implements the aggregations the dashboards are built from.
//
// All functions are pure: they operate on the transaction and budget slices
// passed in, perform no I/O and return empty or zeroed structures for empty
// input.
package report

import (
	"github.com/google/uuid"
	"github.com/pennybook/backend/internal/models"
	"github.com/pennybook/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// MonthTotal is the income and expense sum for one calendar month.
type MonthTotal struct {
	Month    types.Month     `json:"month" example:"2024-11"`
	Income   decimal.Decimal `json:"income" example:"2317.34"`
	Expenses decimal.Decimal `json:"expenses" example:"1809.22"`
}

// MonthlyTotals partitions transactions by their calendar month and sums
// income and expense amounts per month. The result contains one row per
// distinct month present in the input, sorted chronologically.
func MonthlyTotals(transactions []models.Transaction) []MonthTotal {
	totals := make(map[types.Month]*MonthTotal)

	for _, transaction := range transactions {
		month := types.MonthOf(transaction.Date)

		total, ok := totals[month]
		if !ok {
			total = &MonthTotal{Month: month}
			totals[month] = total
		}

		switch transaction.Type {
		case models.TypeIncome:
			total.Income = total.Income.Add(transaction.Amount)
		case models.TypeExpense:
			total.Expenses = total.Expenses.Add(transaction.Amount)
		}
	}

	result := make([]MonthTotal, 0, len(totals))
	for _, total := range totals {
		result = append(result, *total)
	}

	slices.SortFunc(result, func(a, b MonthTotal) int {
		if a.Month.Before(b.Month) {
			return -1
		} else if a.Month.After(b.Month) {
			return 1
		}
		return 0
	})

	return result
}

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Category string          `json:"category" example:"Food"`
	Amount   decimal.Decimal `json:"amount" example:"133.70"`
}

// CategoryTotals partitions the transactions of the given type by category
// and sums the amounts per category. Categories appear in the order they are
// first encountered in the input.
func CategoryTotals(transactions []models.Transaction, transactionType models.TransactionType) []CategoryTotal {
	totals := make([]CategoryTotal, 0)
	index := make(map[string]int)

	for _, transaction := range transactions {
		if transaction.Type != transactionType {
			continue
		}

		i, ok := index[transaction.Category]
		if !ok {
			i = len(totals)
			index[transaction.Category] = i
			totals = append(totals, CategoryTotal{Category: transaction.Category})
		}

		totals[i].Amount = totals[i].Amount.Add(transaction.Amount)
	}

	return totals
}

// TransactionsInMonth returns the transactions dated in the given month.
func TransactionsInMonth(transactions []models.Transaction, month types.Month) []models.Transaction {
	matching := make([]models.Transaction, 0)

	for _, transaction := range transactions {
		if month.Contains(transaction.Date) {
			matching = append(matching, transaction)
		}
	}

	return matching
}

// BudgetStatus classifies spending against a budget ceiling.
type BudgetStatus string

const (
	StatusOver  BudgetStatus = "over"
	StatusUnder BudgetStatus = "under"
)

// BudgetComparison is the result of comparing one budget to the actual
// spending in its category and month.
type BudgetComparison struct {
	BudgetID     uuid.UUID       `json:"budgetId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Category     string          `json:"category" example:"Food"`
	Month        types.Month     `json:"month" example:"2024-11"`
	Budgeted     decimal.Decimal `json:"budgeted" example:"500"`
	Actual       decimal.Decimal `json:"actual" example:"421.87"`
	Remaining    decimal.Decimal `json:"remaining" example:"78.13"`
	Overspent    decimal.Decimal `json:"overspent" example:"0"`
	PercentSpent decimal.Decimal `json:"percentSpent" example:"84.374"`
	Status       BudgetStatus    `json:"status" example:"under"`
}

// Compare computes the actual spending for every budget from the expense
// transactions in the budget's category and month.
//
// Remaining and overspent are clamped at zero. A budget with a zero amount
// and no spending is "under". Percent spent for a zero amount budget is 0
// without spending and 100 with any spending, avoiding a division by zero.
func Compare(budgets []models.Budget, transactions []models.Transaction) []BudgetComparison {
	comparisons := make([]BudgetComparison, 0, len(budgets))

	for _, budget := range budgets {
		actual := decimal.Zero
		for _, transaction := range transactions {
			if transaction.Type == models.TypeExpense &&
				transaction.Category == budget.Category &&
				budget.Month.Contains(transaction.Date) {
				actual = actual.Add(transaction.Amount)
			}
		}

		comparison := BudgetComparison{
			BudgetID:  budget.ID,
			Category:  budget.Category,
			Month:     budget.Month,
			Budgeted:  budget.Amount,
			Actual:    actual,
			Remaining: decimal.Max(budget.Amount.Sub(actual), decimal.Zero),
			Overspent: decimal.Max(actual.Sub(budget.Amount), decimal.Zero),
			Status:    StatusUnder,
		}

		if actual.GreaterThan(budget.Amount) {
			comparison.Status = StatusOver
		}

		switch {
		case budget.Amount.IsZero() && actual.IsZero():
			comparison.PercentSpent = decimal.Zero
		case budget.Amount.IsZero():
			comparison.PercentSpent = decimal.NewFromInt(100)
		default:
			comparison.PercentSpent = actual.Div(budget.Amount).Mul(decimal.NewFromInt(100))
		}

		comparisons = append(comparisons, comparison)
	}

	return comparisons
}

// Summary contains the dashboard numbers for one month.
type Summary struct {
	Month          types.Month     `json:"month" example:"2024-11"`
	Income         decimal.Decimal `json:"income" example:"2317.34"`
	Expenses       decimal.Decimal `json:"expenses" example:"1809.22"`
	Balance        decimal.Decimal `json:"balance" example:"508.12"`
	IncomeChange   decimal.Decimal `json:"incomeChange" example:"4.2"`
	ExpensesChange decimal.Decimal `json:"expensesChange" example:"-1.3"`
	TopCategory    CategoryTotal   `json:"topCategory"`
}

// Summarize computes the income, expenses and balance for the given month
// and the percentage change against the previous month.
//
// When the previous month has no income, the income change is 100: all
// income is new. When the previous month has no expenses, the expense
// change is 0.
//
// The top category is the expense category with the largest sum in the
// month, ties broken by first occurrence in the input. Without any expense
// it is "None" with amount 0.
func Summarize(transactions []models.Transaction, month types.Month) Summary {
	current := sumByType(TransactionsInMonth(transactions, month))
	previous := sumByType(TransactionsInMonth(transactions, month.AddDate(0, -1)))

	summary := Summary{
		Month:    month,
		Income:   current.income,
		Expenses: current.expenses,
		Balance:  current.income.Sub(current.expenses),
	}

	hundred := decimal.NewFromInt(100)

	if previous.income.IsZero() {
		summary.IncomeChange = hundred
	} else {
		summary.IncomeChange = current.income.Sub(previous.income).Div(previous.income).Mul(hundred)
	}

	if previous.expenses.IsZero() {
		summary.ExpensesChange = decimal.Zero
	} else {
		summary.ExpensesChange = current.expenses.Sub(previous.expenses).Div(previous.expenses).Mul(hundred)
	}

	summary.TopCategory = CategoryTotal{Category: "None", Amount: decimal.Zero}
	for _, total := range CategoryTotals(TransactionsInMonth(transactions, month), models.TypeExpense) {
		if total.Amount.GreaterThan(summary.TopCategory.Amount) {
			summary.TopCategory = total
		}
	}

	return summary
}

type typeSums struct {
	income   decimal.Decimal
	expenses decimal.Decimal
}

func sumByType(transactions []models.Transaction) typeSums {
	var sums typeSums

	for _, transaction := range transactions {
		switch transaction.Type {
		case models.TypeIncome:
			sums.income = sums.income.Add(transaction.Amount)
		case models.TypeExpense:
			sums.expenses = sums.expenses.Add(transaction.Amount)
		}
	}

	return sums
}
