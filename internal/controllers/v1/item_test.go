package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/kakeibo-cloud/backend/internal/controllers/v1"
	"github.com/kakeibo-cloud/backend/internal/models"
	"github.com/kakeibo-cloud/backend/test"
	"github.com/stretchr/testify/assert"
)

const itemURL = "http://example.com/api/v1/item"

// createItem registers an item and returns its ID.
func (suite *TestSuiteStandard) createItem(customerID, categoryID string, price any) string {
	recorder := test.Request(suite.T(), suite.controller, http.MethodPost, itemURL+"/regist", map[string]any{
		"customer_id": customerID,
		"id":          categoryID,
		"price":       price,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var created v1.ItemCreated
	test.DecodeResult(suite.T(), &recorder, &created)
	return created.ItemID
}

func (suite *TestSuiteStandard) listItems(customerID string) []models.Item {
	recorder := test.Request(suite.T(), suite.controller, http.MethodGet, itemURL+"/list?customer_id="+customerID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var items []models.Item
	test.DecodeResult(suite.T(), &recorder, &items)
	return items
}

func (suite *TestSuiteStandard) TestItemCreate() {
	id := suite.createItem("cust-1", "cat-1", 1000)
	suite.Assert().Equal("id-1", id)

	items := suite.listItems("cust-1")
	suite.Require().Len(items, 1)
	suite.Assert().Equal("id-1", items[0].ItemID)
	suite.Assert().Equal("cat-1", items[0].CategoryID)
	suite.Assert().Equal("1000", items[0].Price.String())
	suite.Assert().Equal(now.Unix(), items[0].Created)
	suite.Assert().Equal(now.Unix(), items[0].Updated)
}

func (suite *TestSuiteStandard) TestItemCreateDecimalPrice() {
	suite.createItem("cust-1", "cat-1", "1980.25")

	recorder := test.Request(suite.T(), suite.controller, http.MethodGet, itemURL+"/list?customer_id=cust-1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Contains(recorder.Body.String(), `"price":1980.25`, "prices must be JSON numbers")
}

func (suite *TestSuiteStandard) TestItemCreateValidation() {
	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"Empty body", nil, "Request body must not be empty"},
		{"Not JSON", `{"customer_id":`, "Invalid JSON"},
		{"Missing customer_id", map[string]any{"id": "cat-1", "price": 1}, "Missing required field: customer_id"},
		{"Missing id", map[string]any{"customer_id": "cust-1", "price": 1}, "Missing required field: id"},
		{"Missing price", map[string]any{"customer_id": "cust-1", "id": "cat-1"}, "Missing required field: price"},
		{"Missing all", map[string]any{}, "Missing required field: customer_id"},
		{"Empty customer_id", map[string]any{"customer_id": "", "id": "cat-1", "price": 1}, "Missing required field: customer_id"},
		{"Null price", map[string]any{"customer_id": "cust-1", "id": "cat-1", "price": nil}, "Missing required field: price"},
		{"Invalid price", map[string]any{"customer_id": "cust-1", "id": "cat-1", "price": "abc"}, "Invalid value for field: price"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.controller, http.MethodPost, itemURL+"/regist", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Equal(t, tt.message, test.DecodeError(t, recorder.Body.Bytes()))
		})
	}

	suite.Assert().Len(suite.listItems("cust-1"), 0, "no item must be stored for invalid requests")
}

func (suite *TestSuiteStandard) TestItemListEmpty() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodGet, itemURL+"/list?customer_id=nobody", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"result":[]}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestItemListMissingCustomer() {
	for _, query := range []string{"", "?customer_id="} {
		recorder := test.Request(suite.T(), suite.controller, http.MethodGet, itemURL+"/list"+query, nil)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		suite.Assert().Equal("Missing required parameter: customer_id", test.DecodeError(suite.T(), recorder.Body.Bytes()))
	}
}

func (suite *TestSuiteStandard) TestItemListOnlyOwnItems() {
	suite.createItem("cust-1", "cat-1", 100)
	suite.createItem("cust-2", "cat-1", 200)
	suite.createItem("cust-1", "cat-2", 300)

	items := suite.listItems("cust-1")
	suite.Require().Len(items, 2)
	for _, item := range items {
		suite.Assert().Equal("cust-1", item.CustomerID)
	}
}

func (suite *TestSuiteStandard) TestItemUpdate() {
	id := suite.createItem("cust-1", "cat-1", 1000)

	// One day later
	suite.controller.Now = func() time.Time { return now.Add(24 * time.Hour) }

	recorder := test.Request(suite.T(), suite.controller, http.MethodPut, itemURL+"/update", map[string]any{
		"customer_id": "cust-1",
		"item_id":     id,
		"price":       2000,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"result":{"updated":true}}`, recorder.Body.String())

	items := suite.listItems("cust-1")
	suite.Require().Len(items, 1)
	suite.Assert().Equal("2000", items[0].Price.String())
	suite.Assert().Equal("cat-1", items[0].CategoryID)
	suite.Assert().Equal(now.Unix(), items[0].Created)
	suite.Assert().Equal(now.Add(24*time.Hour).Unix(), items[0].Updated)
}

func (suite *TestSuiteStandard) TestItemUpdateCategory() {
	id := suite.createItem("cust-1", "cat-1", 1000)

	recorder := test.Request(suite.T(), suite.controller, http.MethodPut, itemURL+"/update", map[string]any{
		"customer_id": "cust-1",
		"item_id":     id,
		"id":          "cat-2",
		"price":       1000,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	items := suite.listItems("cust-1")
	suite.Require().Len(items, 1)
	suite.Assert().Equal("cat-2", items[0].CategoryID)
}

func (suite *TestSuiteStandard) TestItemUpdateNonExistent() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodPut, itemURL+"/update", map[string]any{
		"customer_id": "cust-1",
		"item_id":     "does-not-exist",
		"price":       1000,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	suite.Assert().Equal("No item matching your query", test.DecodeError(suite.T(), recorder.Body.Bytes()))

	suite.Assert().Len(suite.listItems("cust-1"), 0, "updates must not create items")
}

func (suite *TestSuiteStandard) TestItemUpdateValidation() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodPut, itemURL+"/update", map[string]any{
		"customer_id": "cust-1",
		"price":       1000,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("Missing required field: item_id", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestItemDelete() {
	id := suite.createItem("cust-1", "cat-1", 1000)

	recorder := test.Request(suite.T(), suite.controller, http.MethodDelete, itemURL+"/delete?customer_id=cust-1&item_id="+id, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"result":{"deleted":true}}`, recorder.Body.String())
	suite.Assert().Len(suite.listItems("cust-1"), 0)

	// Deleting again succeeds
	recorder = test.Request(suite.T(), suite.controller, http.MethodDelete, itemURL+"/delete?customer_id=cust-1&item_id="+id, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestItemDeleteMissingParameter() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodDelete, itemURL+"/delete?customer_id=cust-1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("Missing required parameter: item_id", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}
