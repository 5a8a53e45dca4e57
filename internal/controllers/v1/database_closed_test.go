package v1_test

import (
	"net/http"

	"github.com/kakeibo-cloud/backend/test"
)

func (suite *TestSuiteClosedDB) TestEndpoints() {
	tests := []struct {
		method string
		url    string
		body   any
	}{
		{http.MethodPost, "/api/v1/item/regist", map[string]any{"customer_id": "c", "id": "cat", "price": 1}},
		{http.MethodGet, "/api/v1/item/list?customer_id=c", nil},
		{http.MethodPut, "/api/v1/item/update", map[string]any{"customer_id": "c", "item_id": "i", "price": 1}},
		{http.MethodDelete, "/api/v1/item/delete?customer_id=c&item_id=i", nil},
		{http.MethodPost, "/api/v1/category/regist", map[string]any{"customer_id": "c", "name": "n"}},
		{http.MethodGet, "/api/v1/category/list?customer_id=c", nil},
		{http.MethodPut, "/api/v1/category/update", map[string]any{"customer_id": "c", "category_id": "i", "name": "n"}},
		{http.MethodDelete, "/api/v1/category/delete?customer_id=c&category_id=i", nil},
		{http.MethodPost, "/api/v1/customer/budget/regist", map[string]any{"customer_id": "c", "budget": 1}},
		{http.MethodGet, "/api/v1/customer/budget?customer_id=c", nil},
	}

	for _, tt := range tests {
		suite.Run(tt.method+" "+tt.url, func() {
			recorder := test.Request(suite.T(), suite.controller, tt.method, "http://example.com"+tt.url, tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadGateway)
			suite.Assert().Equal("Database error", test.DecodeError(suite.T(), recorder.Body.Bytes()))
		})
	}
}

// Validation happens before the store is called.
func (suite *TestSuiteClosedDB) TestValidationBeforeStore() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/v1/item/list", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
