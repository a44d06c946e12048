package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pennybook/backend/internal/httputil"
	"github.com/pennybook/backend/internal/models"
	"github.com/pennybook/backend/internal/types"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.PUT("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abortError(c, httputil.ErrInvalidUUID)
		return
	}

	if err := models.DB.First(&models.Transaction{}, uri.ID.UUID).Error; err != nil {
		abortError(c, err)
		return
	}

	httputil.OptionsPutDelete(c)
}

// @Summary		List transactions
// @Description	Returns all transactions, sorted by date descending
// @Tags			Transactions
// @Produce		json
// @Success		200	{array}		models.Transaction
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			month		query	string	false	"Only transactions in this YYYY-MM month"
// @Param			category	query	string	false	"Filter by category name"
// @Param			type		query	string	false	"Filter by transaction type"
// @Param			description	query	string	false	"Description contains this string"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		abortError(c, httputil.ErrInvalidQuery)
		return
	}

	q := models.DB.Order("date DESC, created_at DESC")

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			abortError(c, httputil.ErrInvalidMonth)
			return
		}

		start := time.Time(month)
		q = q.Where("date >= ? AND date < ?", start, start.AddDate(0, 1, 0))
	}

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if filter.Type != "" {
		transactionType := models.TransactionType(filter.Type)
		if !transactionType.Valid() {
			abortError(c, errTransactionTypeFilter)
			return
		}

		q = q.Where("type = ?", transactionType)
	}

	if filter.Description != "" {
		q = q.Where("description LIKE ?", fmt.Sprintf("%%%s%%", filter.Description))
	}

	var transactions []models.Transaction
	if err := q.Find(&transactions).Error; err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	models.Transaction
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abortError(c, err)
		return
	}

	if details := editable.validate(); len(details) > 0 {
		abortValidation(c, details)
		return
	}

	transaction := editable.model()
	if err := models.DB.Create(&transaction).Error; err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// @Summary		Update transaction
// @Description	Replaces all values of an existing transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Transaction
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string				true	"ID of the transaction"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [put]
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abortError(c, httputil.ErrInvalidUUID)
		return
	}

	var transaction models.Transaction
	if err := models.DB.First(&transaction, uri.ID.UUID).Error; err != nil {
		abortError(c, err)
		return
	}

	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abortError(c, err)
		return
	}

	if details := editable.validate(); len(details) > 0 {
		abortValidation(c, details)
		return
	}

	// Full replace, only the ID and timestamps survive
	update := editable.model()
	update.DefaultModel = transaction.DefaultModel

	if err := models.DB.Save(&update).Error; err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, update)
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	deletionResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abortError(c, httputil.ErrInvalidUUID)
		return
	}

	var transaction models.Transaction
	if err := models.DB.First(&transaction, uri.ID.UUID).Error; err != nil {
		abortError(c, err)
		return
	}

	if err := models.DB.Delete(&transaction).Error; err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, deletionResponse{Message: "Transaction deleted successfully"})
}
