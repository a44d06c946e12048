package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennybook/backend/internal/httputil"
	"github.com/pennybook/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", GetCategories)
	r.POST("", CreateCategory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List categories
// @Description	Returns the built-in and custom category names for selection menus
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryLists
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			type	query	string	false	"Restrict to one transaction type"	Enums(expense, income, all)
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	requested := c.DefaultQuery("type", "all")

	switch requested {
	case "expense", "income":
		names, err := categoryNames(models.TransactionType(requested))
		if err != nil {
			abortError(c, err)
			return
		}

		c.JSON(http.StatusOK, names)
	case "all":
		expense, err := categoryNames(models.TypeExpense)
		if err != nil {
			abortError(c, err)
			return
		}

		income, err := categoryNames(models.TypeIncome)
		if err != nil {
			abortError(c, err)
			return
		}

		c.JSON(http.StatusOK, CategoryLists{Expense: expense, Income: income})
	default:
		abortError(c, errCategoryTypeInvalid)
	}
}

// categoryNames returns the built-in category names for the transaction type
// followed by the stored custom ones, sorted by name.
func categoryNames(transactionType models.TransactionType) ([]string, error) {
	names := models.DefaultCategories(transactionType)

	var custom []models.Category
	err := models.DB.Where(&models.Category{Type: transactionType}).Order("name ASC").Find(&custom).Error
	if err != nil {
		return nil, err
	}

	for _, category := range custom {
		names = append(names, category.Name)
	}

	return names, nil
}

// @Summary		Create category
// @Description	Persists a custom category name for one transaction type
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	models.Category
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abortError(c, err)
		return
	}

	if details := editable.validate(); len(details) > 0 {
		abortValidation(c, details)
		return
	}

	// Built-in names are always served, storing them again would lead to
	// duplicates in the lists
	if slices.Contains(models.DefaultCategories(editable.Type), editable.Name) {
		abortError(c, errCategoryNameReserved)
		return
	}

	category := editable.model()
	if err := models.DB.Create(&category).Error; err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}
