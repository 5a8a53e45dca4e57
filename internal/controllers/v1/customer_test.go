package v1_test

import (
	"net/http"

	v1 "github.com/kakeibo-cloud/backend/internal/controllers/v1"
	"github.com/kakeibo-cloud/backend/test"
)

const budgetURL = "http://example.com/api/v1/customer/budget"

func (suite *TestSuiteStandard) TestBudgetNotRegistered() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodGet, budgetURL+"?customer_id=cust-1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	suite.Assert().Equal("No budget registered for customer: cust-1", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestBudgetUpsert() {
	for _, budget := range []any{50000, "62000.5"} {
		recorder := test.Request(suite.T(), suite.controller, http.MethodPost, budgetURL+"/regist", map[string]any{
			"customer_id": "cust-1",
			"budget":      budget,
		})
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
		suite.Assert().JSONEq(`{"result":{"registered":true}}`, recorder.Body.String())
	}

	recorder := test.Request(suite.T(), suite.controller, http.MethodGet, budgetURL+"?customer_id=cust-1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"result":{"budget":62000.5}}`, recorder.Body.String())

	var budget v1.Budget
	recorder = test.Request(suite.T(), suite.controller, http.MethodGet, budgetURL+"?customer_id=cust-1", nil)
	test.DecodeResult(suite.T(), &recorder, &budget)
	suite.Assert().Equal("62000.5", budget.Budget.String())
}

func (suite *TestSuiteStandard) TestBudgetValidation() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodPost, budgetURL+"/regist", map[string]any{"customer_id": "cust-1"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("Missing required field: budget", test.DecodeError(suite.T(), recorder.Body.Bytes()))

	recorder = test.Request(suite.T(), suite.controller, http.MethodGet, budgetURL, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("Missing required parameter: customer_id", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}
