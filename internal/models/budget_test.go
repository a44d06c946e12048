package models_test

import (
	"github.com/pennybook/backend/internal/models"
	"github.com/pennybook/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetUniquePerCategoryAndMonth() {
	budget := models.Budget{
		Category: "Food",
		Amount:   decimal.NewFromInt(500),
		Month:    types.NewMonth(2024, 11),
	}

	err := models.DB.Create(&budget).Error
	suite.Assert().Nil(err)

	duplicate := models.Budget{
		Category: "Food",
		Amount:   decimal.NewFromInt(300),
		Month:    types.NewMonth(2024, 11),
	}

	err = models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetMonthNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetSameCategoryDifferentMonth() {
	first := models.Budget{
		Category: "Food",
		Amount:   decimal.NewFromInt(500),
		Month:    types.NewMonth(2024, 11),
	}
	suite.Require().Nil(models.DB.Create(&first).Error)

	second := models.Budget{
		Category: "Food",
		Amount:   decimal.NewFromInt(500),
		Month:    types.NewMonth(2024, 12),
	}
	suite.Assert().Nil(models.DB.Create(&second).Error)
}

func (suite *TestSuiteStandard) TestCategoryUniquePerNameAndType() {
	category := models.Category{Name: "Hobby", Type: models.TypeExpense}
	suite.Require().Nil(models.DB.Create(&category).Error)

	duplicate := models.Category{Name: "Hobby", Type: models.TypeExpense}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	// The same name for the other transaction type is fine
	income := models.Category{Name: "Hobby", Type: models.TypeIncome}
	suite.Assert().Nil(models.DB.Create(&income).Error)
}

func (suite *TestSuiteStandard) TestDefaultCategoriesAreCopies() {
	first := models.DefaultCategories(models.TypeExpense)
	first[0] = "changed"

	second := models.DefaultCategories(models.TypeExpense)
	suite.Assert().NotEqual("changed", second[0])
	suite.Assert().Contains(second, "Food")

	income := models.DefaultCategories(models.TypeIncome)
	suite.Assert().Contains(income, "Salary")
}

func (suite *TestSuiteStandard) TestResourceNotFoundError() {
	err := models.DB.First(&models.Budget{}, "id = ?", "65392deb-5e92-4268-b114-297faad6cdce").Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
