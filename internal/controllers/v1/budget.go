package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennybook/backend/internal/httputil"
	"github.com/pennybook/backend/internal/models"
	"github.com/pennybook/backend/internal/types"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgets)
		r.GET("", GetBudgets)
		r.POST("", UpsertBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.DELETE("/:id", DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the budget"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abortError(c, httputil.ErrInvalidUUID)
		return
	}

	if err := models.DB.First(&models.Budget{}, uri.ID.UUID).Error; err != nil {
		abortError(c, err)
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		List budgets
// @Description	Returns all budgets, optionally restricted to one month
// @Tags			Budgets
// @Produce		json
// @Success		200	{array}		models.Budget
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			month	query	string	false	"Only budgets for this YYYY-MM month"
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.Bind(&filter); err != nil {
		abortError(c, httputil.ErrInvalidQuery)
		return
	}

	q := models.DB.Order("category ASC")

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			abortError(c, httputil.ErrInvalidMonth)
			return
		}

		q = q.Where("month = ?", month)
	}

	var budgets []models.Budget
	if err := q.Find(&budgets).Error; err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// @Summary		Create or update budget
// @Description	Creates the budget for the category and month, overwriting the stored amount if one exists. Repeated submissions for the same category and month converge to the latest values.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.Budget
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func UpsertBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abortError(c, err)
		return
	}

	if details := editable.validate(); len(details) > 0 {
		abortValidation(c, details)
		return
	}

	// Writes are keyed on (category, month): overwrite the record in place
	// when one exists. Concurrent writes for the same pair race on
	// last-write-wins, there is no conflict detection.
	var budget models.Budget
	err := models.DB.Where("category = ? AND month = ?", editable.Category, editable.Month).First(&budget).Error

	switch {
	case err == nil:
		budget.Amount = editable.Amount
		if err := models.DB.Model(&budget).Select("Amount").Updates(editable.model()).Error; err != nil {
			abortError(c, err)
			return
		}
	case errors.Is(err, models.ErrResourceNotFound):
		budget = editable.model()
		if err := models.DB.Create(&budget).Error; err != nil {
			abortError(c, err)
			return
		}
	default:
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	deletionResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the budget"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abortError(c, httputil.ErrInvalidUUID)
		return
	}

	var budget models.Budget
	if err := models.DB.First(&budget, uri.ID.UUID).Error; err != nil {
		abortError(c, err)
		return
	}

	// Budgets are deleted permanently. A soft deleted row would still
	// occupy the unique (category, month) pair and block re-creation.
	if err := models.DB.Unscoped().Delete(&budget).Error; err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, deletionResponse{Message: "Budget deleted successfully"})
}
