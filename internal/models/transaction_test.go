package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/pennybook/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionCreate() {
	transaction := models.Transaction{
		Date:        time.Date(2024, 11, 10, 12, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromFloat(17.23),
		Description: "Lunch",
		Category:    "Food",
		Type:        models.TypeExpense,
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().Nil(err)
	suite.Assert().NotEqual(uuid.Nil, transaction.ID, "ID is not set")
	suite.Assert().False(transaction.CreatedAt.IsZero(), "CreatedAt is not set")
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToNow() {
	transaction := models.Transaction{
		Amount:      decimal.NewFromFloat(10),
		Description: "No date set",
		Category:    "Food",
		Type:        models.TypeExpense,
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().Nil(err)
	suite.Assert().False(transaction.Date.IsZero())
	suite.Assert().WithinDuration(time.Now().In(time.UTC), transaction.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	berlin, err := time.LoadLocation("Europe/Berlin")
	suite.Require().Nil(err)

	transaction := models.Transaction{
		Date:        time.Date(2024, 6, 1, 10, 0, 0, 0, berlin),
		Amount:      decimal.NewFromFloat(10),
		Description: "Timezone test",
		Category:    "Food",
		Type:        models.TypeExpense,
	}

	err = models.DB.Create(&transaction).Error
	suite.Assert().Nil(err)
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionAfterFindUTC() {
	transaction := models.Transaction{
		Date:        time.Date(2024, 11, 10, 12, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromFloat(10),
		Description: "Reload test",
		Category:    "Food",
		Type:        models.TypeExpense,
	}
	suite.Require().Nil(models.DB.Create(&transaction).Error)

	// Date and the timestamps from DefaultModel are normalized on read
	var reloaded models.Transaction
	suite.Require().Nil(models.DB.First(&reloaded, transaction.ID).Error)
	suite.Assert().Equal(time.UTC, reloaded.Date.Location())
	suite.Assert().Equal(time.UTC, reloaded.CreatedAt.Location())
	suite.Assert().Equal(time.UTC, reloaded.UpdatedAt.Location())
}

func (suite *TestSuiteStandard) TestTransactionTypeValid() {
	suite.Assert().True(models.TypeIncome.Valid())
	suite.Assert().True(models.TypeExpense.Valid())
	suite.Assert().False(models.TransactionType("transfer").Valid())
	suite.Assert().False(models.TransactionType("").Valid())
}
