package v1

import (
	"errors"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/kakeibo-cloud/backend/internal/httputil"
	"github.com/kakeibo-cloud/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/regist", httputil.OptionsPost)
	r.POST("/regist", co.CreateCategory)

	r.OPTIONS("/list", httputil.OptionsGet)
	r.GET("/list", co.GetCategories)

	r.OPTIONS("/update", httputil.OptionsPut)
	r.PUT("/update", co.UpdateCategory)

	r.OPTIONS("/delete", httputil.OptionsDelete)
	r.DELETE("/delete", co.DeleteCategory)
}

// categoryName normalizes a category name and rejects names
// that are empty after normalization.
func categoryName(name string) (string, error) {
	name = models.NormalizeName(name)
	if name == "" {
		return "", httputil.InvalidField("name")
	}

	return name, nil
}

// CreateCategory registers a new category
//
//	@Summary		Register category
//	@Description	Registers a new category for the customer. The category ID is generated by the server
//	@Tags			Categories
//	@Produce		json
//	@Success		200			{object}	CategoryCreateResponse
//	@Failure		400			{object}	httputil.HTTPError
//	@Failure		500			{object}	httputil.HTTPError
//	@Failure		502			{object}	httputil.HTTPError
//	@Param			category	body		CategoryCreate	true	"Category"
//	@Router			/api/v1/category/regist [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var data CategoryCreate
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	name, err := categoryName(data.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	category := models.Category{
		CustomerID: data.CustomerID,
		CategoryID: co.newID(),
		Name:       name,
	}

	if err := co.Store.CreateCategory(c.Request.Context(), category); err != nil {
		writeError(c, err)
		return
	}

	log.Info().Str("request-id", requestid.Get(c)).Str("category_id", category.CategoryID).Msg("category registered")
	httputil.Result(c, CategoryCreated{CategoryID: category.CategoryID})
}

// GetCategories returns all categories of a customer
//
//	@Summary		List categories
//	@Description	Returns all categories of the customer
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	CategoryListResponse
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			customer_id	query	string	true	"ID of the customer"
//	@Router			/api/v1/category/list [get]
func (co Controller) GetCategories(c *gin.Context) {
	var query QueryCustomer
	if err := httputil.BindQuery(c, &query); err != nil {
		writeError(c, err)
		return
	}

	categories, err := co.Store.ListCategories(c.Request.Context(), query.CustomerID)
	if err != nil {
		writeError(c, err)
		return
	}

	httputil.Result(c, categories)
}

// UpdateCategory renames a category
//
//	@Summary		Update category
//	@Description	Changes the name of a category
//	@Tags			Categories
//	@Produce		json
//	@Success		200			{object}	UpdateResponse
//	@Failure		400			{object}	httputil.HTTPError
//	@Failure		404			{object}	httputil.HTTPError
//	@Failure		500			{object}	httputil.HTTPError
//	@Failure		502			{object}	httputil.HTTPError
//	@Param			category	body		CategoryUpdate	true	"Category"
//	@Router			/api/v1/category/update [put]
func (co Controller) UpdateCategory(c *gin.Context) {
	var data CategoryUpdate
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	name, err := categoryName(data.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	err = co.Store.UpdateCategoryName(c.Request.Context(), data.CustomerID, data.CategoryID, name)
	if errors.Is(err, models.ErrResourceNotFound) {
		err = errCategoryNotFound
	}

	if err != nil {
		writeError(c, err)
		return
	}

	httputil.Result(c, Updated{Updated: true})
}

// DeleteCategory deletes a category
//
//	@Summary		Delete category
//	@Description	Deletes a category. Items referencing the category are not modified
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	DeleteResponse
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			customer_id	query	string	true	"ID of the customer"
//	@Param			category_id	query	string	true	"ID of the category"
//	@Router			/api/v1/category/delete [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	var query QueryCategory
	if err := httputil.BindQuery(c, &query); err != nil {
		writeError(c, err)
		return
	}

	if err := co.Store.DeleteCategory(c.Request.Context(), query.CustomerID, query.CategoryID); err != nil {
		writeError(c, err)
		return
	}

	httputil.Result(c, Deleted{Deleted: true})
}
