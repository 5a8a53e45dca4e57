package v1

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo-cloud/backend/internal/httputil"
	"github.com/kakeibo-cloud/backend/internal/models"
)

// RegisterCustomerRoutes registers the routes for customer data with
// the RouterGroup that is passed.
func (co Controller) RegisterCustomerRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/budget", httputil.OptionsGet)
	r.GET("/budget", co.GetBudget)

	r.OPTIONS("/budget/regist", httputil.OptionsPost)
	r.POST("/budget/regist", co.PutBudget)
}

// PutBudget sets the budget of a customer
//
//	@Summary		Register budget
//	@Description	Sets the monthly budget of the customer. An existing budget is replaced
//	@Tags			Customers
//	@Produce		json
//	@Success		200		{object}	BudgetRegisterResponse
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		500		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			budget	body		BudgetPut	true	"Budget"
//	@Router			/api/v1/customer/budget/regist [post]
func (co Controller) PutBudget(c *gin.Context) {
	var data BudgetPut
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	err := co.Store.PutBudget(c.Request.Context(), models.CustomerBudget{
		CustomerID: data.CustomerID,
		Budget:     *data.Budget,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httputil.Result(c, Registered{Registered: true})
}

// GetBudget returns the budget of a customer
//
//	@Summary		Get budget
//	@Description	Returns the monthly budget of the customer
//	@Tags			Customers
//	@Produce		json
//	@Success		200	{object}	BudgetResponse
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		404	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			customer_id	query	string	true	"ID of the customer"
//	@Router			/api/v1/customer/budget [get]
func (co Controller) GetBudget(c *gin.Context) {
	var query QueryCustomer
	if err := httputil.BindQuery(c, &query); err != nil {
		writeError(c, err)
		return
	}

	budget, err := co.Store.GetBudget(c.Request.Context(), query.CustomerID)
	if errors.Is(err, models.ErrResourceNotFound) {
		err = errBudgetNotFound(query.CustomerID)
	}

	if err != nil {
		writeError(c, err)
		return
	}

	httputil.Result(c, Budget{Budget: budget.Budget})
}
