package v1

import (
	"errors"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/kakeibo-cloud/backend/internal/httputil"
	"github.com/kakeibo-cloud/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// RegisterItemRoutes registers the routes for items with
// the RouterGroup that is passed.
func (co Controller) RegisterItemRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/regist", httputil.OptionsPost)
	r.POST("/regist", co.CreateItem)

	r.OPTIONS("/list", httputil.OptionsGet)
	r.GET("/list", co.GetItems)

	r.OPTIONS("/update", httputil.OptionsPut)
	r.PUT("/update", co.UpdateItem)

	r.OPTIONS("/delete", httputil.OptionsDelete)
	r.DELETE("/delete", co.DeleteItem)
}

// CreateItem registers a new item
//
//	@Summary		Register item
//	@Description	Registers a new item for the customer. The item ID is generated by the server
//	@Tags			Items
//	@Produce		json
//	@Success		200		{object}	ItemCreateResponse
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		500		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			item	body		ItemCreate	true	"Item"
//	@Router			/api/v1/item/regist [post]
func (co Controller) CreateItem(c *gin.Context) {
	var data ItemCreate
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	item := models.Item{
		CustomerID: data.CustomerID,
		ItemID:     co.newID(),
		CategoryID: data.CategoryID,
		Price:      *data.Price,
		Timestamps: models.NewTimestamps(co.now()),
	}

	if err := co.Store.CreateItem(c.Request.Context(), item); err != nil {
		writeError(c, err)
		return
	}

	log.Info().Str("request-id", requestid.Get(c)).Str("item_id", item.ItemID).Msg("item registered")
	httputil.Result(c, ItemCreated{ItemID: item.ItemID})
}

// GetItems returns all items of a customer
//
//	@Summary		List items
//	@Description	Returns all items of the customer
//	@Tags			Items
//	@Produce		json
//	@Success		200	{object}	ItemListResponse
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			customer_id	query	string	true	"ID of the customer"
//	@Router			/api/v1/item/list [get]
func (co Controller) GetItems(c *gin.Context) {
	var query QueryCustomer
	if err := httputil.BindQuery(c, &query); err != nil {
		writeError(c, err)
		return
	}

	items, err := co.Store.ListItems(c.Request.Context(), query.CustomerID)
	if err != nil {
		writeError(c, err)
		return
	}

	log.Debug().Str("request-id", requestid.Get(c)).Int("count", len(items)).Msg("items retrieved")
	httputil.Result(c, items)
}

// UpdateItem updates the price and optionally the category of an item
//
//	@Summary		Update item
//	@Description	Updates the price of an item. If a category ID is sent, the category is updated, too
//	@Tags			Items
//	@Produce		json
//	@Success		200		{object}	UpdateResponse
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		404		{object}	httputil.HTTPError
//	@Failure		500		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			item	body		ItemUpdate	true	"Item"
//	@Router			/api/v1/item/update [put]
func (co Controller) UpdateItem(c *gin.Context) {
	var data ItemUpdate
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	err := co.Store.UpdateItem(c.Request.Context(), data.CustomerID, data.ItemID, models.ItemUpdate{
		Price:      *data.Price,
		CategoryID: data.CategoryID,
		Updated:    co.now().UTC().Unix(),
	})
	if errors.Is(err, models.ErrResourceNotFound) {
		err = errItemNotFound
	}

	if err != nil {
		writeError(c, err)
		return
	}

	httputil.Result(c, Updated{Updated: true})
}

// DeleteItem deletes an item
//
//	@Summary		Delete item
//	@Description	Deletes an item. Deleting an item that does not exist succeeds
//	@Tags			Items
//	@Produce		json
//	@Success		200	{object}	DeleteResponse
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			customer_id	query	string	true	"ID of the customer"
//	@Param			item_id		query	string	true	"ID of the item"
//	@Router			/api/v1/item/delete [delete]
func (co Controller) DeleteItem(c *gin.Context) {
	var query QueryItem
	if err := httputil.BindQuery(c, &query); err != nil {
		writeError(c, err)
		return
	}

	if err := co.Store.DeleteItem(c.Request.Context(), query.CustomerID, query.ItemID); err != nil {
		writeError(c, err)
		return
	}

	httputil.Result(c, Deleted{Deleted: true})
}
