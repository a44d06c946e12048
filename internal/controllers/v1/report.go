package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pennybook/backend/internal/httputil"
	"github.com/pennybook/backend/internal/models"
	"github.com/pennybook/backend/internal/report"
	"github.com/pennybook/backend/internal/types"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
//
// Reports are computed on request from the full transaction and budget
// collections, nothing is cached.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly", OptionsReport)
	r.GET("/monthly", GetMonthlyReport)

	r.OPTIONS("/categories", OptionsReport)
	r.GET("/categories", GetCategoryReport)

	r.OPTIONS("/budgets", OptionsReport)
	r.GET("/budgets", GetBudgetReport)

	r.OPTIONS("/summary", OptionsReport)
	r.GET("/summary", GetSummaryReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/monthly [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly totals
// @Description	Returns income and expense sums per calendar month, sorted chronologically
// @Tags			Reports
// @Produce		json
// @Success		200	{array}		report.MonthTotal
// @Failure		500	{object}	httpError
// @Router			/v1/reports/monthly [get]
func GetMonthlyReport(c *gin.Context) {
	transactions, err := allTransactions()
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, report.MonthlyTotals(transactions))
}

// @Summary		Category totals
// @Description	Returns summed amounts per category for one transaction type, optionally windowed to one month
// @Tags			Reports
// @Produce		json
// @Success		200	{array}		report.CategoryTotal
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			month	query	string	false	"Only transactions in this YYYY-MM month"
// @Param			type	query	string	false	"Transaction type, defaults to expense"	Enums(expense, income)
// @Router			/v1/reports/categories [get]
func GetCategoryReport(c *gin.Context) {
	transactionType := models.TransactionType(c.DefaultQuery("type", string(models.TypeExpense)))
	if !transactionType.Valid() {
		abortError(c, errTransactionTypeFilter)
		return
	}

	transactions, err := allTransactions()
	if err != nil {
		abortError(c, err)
		return
	}

	if monthString, ok := c.GetQuery("month"); ok {
		month, err := types.ParseMonth(monthString)
		if err != nil {
			abortError(c, httputil.ErrInvalidMonth)
			return
		}

		transactions = report.TransactionsInMonth(transactions, month)
	}

	c.JSON(http.StatusOK, report.CategoryTotals(transactions, transactionType))
}

// @Summary		Budget vs. actual
// @Description	Compares every budget of the month to the actual spending in its category
// @Tags			Reports
// @Produce		json
// @Success		200	{array}		report.BudgetComparison
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			month	query	string	false	"YYYY-MM month to compare, defaults to the current month"
// @Router			/v1/reports/budgets [get]
func GetBudgetReport(c *gin.Context) {
	month, err := queryMonth(c)
	if err != nil {
		abortError(c, httputil.ErrInvalidMonth)
		return
	}

	var budgets []models.Budget
	if err := models.DB.Where("month = ?", month).Order("category ASC").Find(&budgets).Error; err != nil {
		abortError(c, err)
		return
	}

	transactions, err := allTransactions()
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, report.Compare(budgets, transactions))
}

// @Summary		Month summary
// @Description	Returns the dashboard numbers for one month: income, expenses, balance, month-over-month changes and the top expense category
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	report.Summary
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			month	query	string	false	"YYYY-MM month to summarize, defaults to the current month"
// @Router			/v1/reports/summary [get]
func GetSummaryReport(c *gin.Context) {
	month, err := queryMonth(c)
	if err != nil {
		abortError(c, httputil.ErrInvalidMonth)
		return
	}

	transactions, err := allTransactions()
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, report.Summarize(transactions, month))
}

// allTransactions returns the full transaction collection in insertion
// order, which makes first-seen tie-breaks in the reports deterministic.
func allTransactions() ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := models.DB.Order("date ASC, created_at ASC").Find(&transactions).Error
	return transactions, err
}

// queryMonth returns the month query parameter, defaulting to the current
// month when it is not set.
func queryMonth(c *gin.Context) (types.Month, error) {
	monthString, ok := c.GetQuery("month")
	if !ok {
		return types.MonthOf(time.Now().In(time.UTC)), nil
	}

	return types.ParseMonth(monthString)
}
