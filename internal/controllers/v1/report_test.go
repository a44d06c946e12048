package v1_test

import (
	"net/http"

	v1 "github.com/pennybook/backend/internal/controllers/v1"
	"github.com/pennybook/backend/internal/models"
	"github.com/pennybook/backend/internal/report"
	"github.com/pennybook/backend/internal/types"
	"github.com/pennybook/backend/test"
)

// seedReportData creates the transactions the report tests operate on:
// two months of income and expenses with a clear top category.
func (suite *TestSuiteStandard) seedReportData() {
	for _, editable := range []v1.TransactionEditable{
		{Date: date("2024-10-01T00:00:00Z"), Amount: amount(2000), Description: "September salary", Category: "Salary", Type: models.TypeIncome},
		{Date: date("2024-10-05T00:00:00Z"), Amount: amount(400), Description: "Groceries", Category: "Food", Type: models.TypeExpense},
		{Date: date("2024-10-12T00:00:00Z"), Amount: amount(800), Description: "Rent", Category: "Housing", Type: models.TypeExpense},
		{Date: date("2024-11-01T00:00:00Z"), Amount: amount(3000), Description: "October salary", Category: "Salary", Type: models.TypeIncome},
		{Date: date("2024-11-04T00:00:00Z"), Amount: amount(600), Description: "Groceries", Category: "Food", Type: models.TypeExpense},
		{Date: date("2024-11-12T00:00:00Z"), Amount: amount(300), Description: "Rent share", Category: "Housing", Type: models.TypeExpense},
	} {
		suite.createTestTransaction(editable)
	}
}

func (suite *TestSuiteStandard) TestOptionsReports() {
	for _, path := range []string{"monthly", "categories", "budgets", "summary"} {
		r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/reports/"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
	}
}

func (suite *TestSuiteStandard) TestGetMonthlyReport() {
	suite.seedReportData()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/monthly", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var totals []report.MonthTotal
	test.DecodeResponse(suite.T(), &r, &totals)

	suite.Require().Len(totals, 2)
	suite.Assert().Equal(types.NewMonth(2024, 10), totals[0].Month)
	suite.Assert().True(totals[0].Income.Equal(amount(2000)))
	suite.Assert().True(totals[0].Expenses.Equal(amount(1200)))
	suite.Assert().Equal(types.NewMonth(2024, 11), totals[1].Month)
	suite.Assert().True(totals[1].Income.Equal(amount(3000)))
	suite.Assert().True(totals[1].Expenses.Equal(amount(900)))
}

func (suite *TestSuiteStandard) TestGetMonthlyReportEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/monthly", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var totals []report.MonthTotal
	test.DecodeResponse(suite.T(), &r, &totals)
	suite.Assert().Len(totals, 0)
}

func (suite *TestSuiteStandard) TestGetCategoryReport() {
	suite.seedReportData()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var totals []report.CategoryTotal
	test.DecodeResponse(suite.T(), &r, &totals)

	suite.Require().Len(totals, 2)
	suite.Assert().Equal("Food", totals[0].Category)
	suite.Assert().True(totals[0].Amount.Equal(amount(1000)))
	suite.Assert().Equal("Housing", totals[1].Category)
	suite.Assert().True(totals[1].Amount.Equal(amount(1100)))
}

func (suite *TestSuiteStandard) TestGetCategoryReportMonthWindow() {
	suite.seedReportData()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/categories?month=2024-11&type=income", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var totals []report.CategoryTotal
	test.DecodeResponse(suite.T(), &r, &totals)

	suite.Require().Len(totals, 1)
	suite.Assert().Equal("Salary", totals[0].Category)
	suite.Assert().True(totals[0].Amount.Equal(amount(3000)))
}

func (suite *TestSuiteStandard) TestGetCategoryReportInvalidQuery() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/categories?type=transfer", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/categories?month=November", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetBudgetReport() {
	suite.seedReportData()

	_ = suite.createTestBudget(v1.BudgetEditable{Category: "Food", Amount: amount(500), Month: types.NewMonth(2024, 11)})
	_ = suite.createTestBudget(v1.BudgetEditable{Category: "Housing", Amount: amount(1000), Month: types.NewMonth(2024, 11)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/budgets?month=2024-11", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var comparisons []report.BudgetComparison
	test.DecodeResponse(suite.T(), &r, &comparisons)

	suite.Require().Len(comparisons, 2)

	food := comparisons[0]
	suite.Assert().Equal("Food", food.Category)
	suite.Assert().True(food.Actual.Equal(amount(600)))
	suite.Assert().True(food.Overspent.Equal(amount(100)))
	suite.Assert().True(food.Remaining.IsZero())
	suite.Assert().Equal(report.StatusOver, food.Status)
	suite.Assert().True(food.PercentSpent.Equal(amount(120)))

	housing := comparisons[1]
	suite.Assert().Equal("Housing", housing.Category)
	suite.Assert().True(housing.Actual.Equal(amount(300)))
	suite.Assert().True(housing.Remaining.Equal(amount(700)))
	suite.Assert().True(housing.Overspent.IsZero())
	suite.Assert().Equal(report.StatusUnder, housing.Status)
}

func (suite *TestSuiteStandard) TestGetBudgetReportEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/budgets?month=2024-11", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var comparisons []report.BudgetComparison
	test.DecodeResponse(suite.T(), &r, &comparisons)
	suite.Assert().Len(comparisons, 0)
}

func (suite *TestSuiteStandard) TestGetSummaryReport() {
	suite.seedReportData()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/summary?month=2024-11", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary report.Summary
	test.DecodeResponse(suite.T(), &r, &summary)

	suite.Assert().Equal(types.NewMonth(2024, 11), summary.Month)
	suite.Assert().True(summary.Income.Equal(amount(3000)))
	suite.Assert().True(summary.Expenses.Equal(amount(900)))
	suite.Assert().True(summary.Balance.Equal(amount(2100)))
	suite.Assert().True(summary.IncomeChange.Equal(amount(50)))
	suite.Assert().True(summary.ExpensesChange.Equal(amount(-25)))
	suite.Assert().Equal("Food", summary.TopCategory.Category)
	suite.Assert().True(summary.TopCategory.Amount.Equal(amount(600)))
}

func (suite *TestSuiteStandard) TestGetSummaryReportEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/summary?month=2024-11", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary report.Summary
	test.DecodeResponse(suite.T(), &r, &summary)

	suite.Assert().True(summary.Income.IsZero())
	suite.Assert().True(summary.Expenses.IsZero())
	suite.Assert().True(summary.Balance.IsZero())
	suite.Assert().True(summary.IncomeChange.Equal(amount(100)))
	suite.Assert().True(summary.ExpensesChange.IsZero())
	suite.Assert().Equal("None", summary.TopCategory.Category)
	suite.Assert().True(summary.TopCategory.Amount.IsZero())
}

func (suite *TestSuiteStandard) TestGetSummaryReportInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/summary?month=November", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
