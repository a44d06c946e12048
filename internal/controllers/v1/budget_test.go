package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/pennybook/backend/internal/controllers/v1"
	"github.com/pennybook/backend/internal/models"
	"github.com/pennybook/backend/internal/types"
	"github.com/pennybook/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsBudgets() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsBudgetDetail() {
	budget := suite.createTestBudget(v1.BudgetEditable{
		Category: "Food",
		Amount:   amount(500),
		Month:    types.NewMonth(2024, 11),
	})

	r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/budgets/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateBudget() {
	budget := suite.createTestBudget(v1.BudgetEditable{
		Category: "Food",
		Amount:   amount(500),
		Month:    types.NewMonth(2024, 11),
	})

	suite.Assert().NotEqual(uuid.Nil, budget.ID)
	suite.Assert().Equal("Food", budget.Category)
	suite.Assert().True(budget.Amount.Equal(amount(500)))
	suite.Assert().Equal(types.NewMonth(2024, 11), budget.Month)
}

func (suite *TestSuiteStandard) TestUpsertBudgetOverwrites() {
	first := suite.createTestBudget(v1.BudgetEditable{
		Category: "Food",
		Amount:   amount(500),
		Month:    types.NewMonth(2024, 11),
	})

	second := suite.createTestBudget(v1.BudgetEditable{
		Category: "Food",
		Amount:   amount(300),
		Month:    types.NewMonth(2024, 11),
	})

	// Same record, new amount
	suite.Assert().Equal(first.ID, second.ID)
	suite.Assert().True(second.Amount.Equal(amount(300)))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budgets []models.Budget
	test.DecodeResponse(suite.T(), &r, &budgets)

	suite.Require().Len(budgets, 1)
	suite.Assert().True(budgets[0].Amount.Equal(amount(300)))
}

func (suite *TestSuiteStandard) TestUpsertBudgetSeparateMonths() {
	_ = suite.createTestBudget(v1.BudgetEditable{
		Category: "Food",
		Amount:   amount(500),
		Month:    types.NewMonth(2024, 11),
	})
	_ = suite.createTestBudget(v1.BudgetEditable{
		Category: "Food",
		Amount:   amount(450),
		Month:    types.NewMonth(2024, 12),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	var budgets []models.Budget
	test.DecodeResponse(suite.T(), &r, &budgets)
	suite.Assert().Len(budgets, 2)
}

func (suite *TestSuiteStandard) TestCreateBudgetValidation() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", `{ "category": "", "amount": -10 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("validation failed", response.Error)
	suite.Assert().Equal("Category is required", response.Details["category"])
	suite.Assert().Equal("Budget amount must be non-negative", response.Details["amount"])
	suite.Assert().Equal("Month is required in YYYY-MM format", response.Details["month"])
}

func (suite *TestSuiteStandard) TestCreateBudgetZeroAmount() {
	budget := suite.createTestBudget(v1.BudgetEditable{
		Category: "Shopping",
		Amount:   amount(0),
		Month:    types.NewMonth(2024, 11),
	})

	suite.Assert().True(budget.Amount.IsZero())
}

func (suite *TestSuiteStandard) TestGetBudgetsMonthFilter() {
	_ = suite.createTestBudget(v1.BudgetEditable{
		Category: "Food",
		Amount:   amount(500),
		Month:    types.NewMonth(2024, 11),
	})
	_ = suite.createTestBudget(v1.BudgetEditable{
		Category: "Housing",
		Amount:   amount(1200),
		Month:    types.NewMonth(2024, 12),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?month=2024-11", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budgets []models.Budget
	test.DecodeResponse(suite.T(), &r, &budgets)

	suite.Require().Len(budgets, 1)
	suite.Assert().Equal("Food", budgets[0].Category)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?month=eleven", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	budget := suite.createTestBudget(v1.BudgetEditable{
		Category: "Food",
		Amount:   amount(500),
		Month:    types.NewMonth(2024, 11),
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Message string `json:"message"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Budget deleted successfully", response.Message)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteBudgetFreesCategoryAndMonth() {
	budget := suite.createTestBudget(v1.BudgetEditable{
		Category: "Food",
		Amount:   amount(500),
		Month:    types.NewMonth(2024, 11),
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// The pair can be budgeted again after the deletion
	recreated := suite.createTestBudget(v1.BudgetEditable{
		Category: "Food",
		Amount:   amount(400),
		Month:    types.NewMonth(2024, 11),
	})
	suite.Assert().NotEqual(budget.ID, recreated.ID)
}

func (suite *TestSuiteStandard) TestDeleteBudgetInvalidUUID() {
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/budgets/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
