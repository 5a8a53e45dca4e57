package v1_test

import (
	"net/http"

	v1 "github.com/kakeibo-cloud/backend/internal/controllers/v1"
	"github.com/kakeibo-cloud/backend/internal/models"
	"github.com/kakeibo-cloud/backend/test"
)

const categoryURL = "http://example.com/api/v1/category"

func (suite *TestSuiteStandard) createCategory(customerID, name string) string {
	recorder := test.Request(suite.T(), suite.controller, http.MethodPost, categoryURL+"/regist", v1.CategoryCreate{
		CustomerID: customerID,
		Name:       name,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var created v1.CategoryCreated
	test.DecodeResult(suite.T(), &recorder, &created)
	return created.CategoryID
}

func (suite *TestSuiteStandard) listCategories(customerID string) []models.Category {
	recorder := test.Request(suite.T(), suite.controller, http.MethodGet, categoryURL+"/list?customer_id="+customerID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var categories []models.Category
	test.DecodeResult(suite.T(), &recorder, &categories)
	return categories
}

func (suite *TestSuiteStandard) TestCategoryCreate() {
	id := suite.createCategory("cust-1", "食費")
	suite.Assert().Equal("id-1", id)

	categories := suite.listCategories("cust-1")
	suite.Require().Len(categories, 1)
	suite.Assert().Equal(models.Category{CustomerID: "cust-1", CategoryID: "id-1", Name: "食費"}, categories[0])
}

func (suite *TestSuiteStandard) TestCategoryCreateNormalizesName() {
	suite.createCategory("cust-1", "  ｶﾌｪ  ")

	categories := suite.listCategories("cust-1")
	suite.Require().Len(categories, 1)
	suite.Assert().Equal("カフェ", categories[0].Name)
}

func (suite *TestSuiteStandard) TestCategoryCreateValidation() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodPost, categoryURL+"/regist", map[string]any{"customer_id": "cust-1"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("Missing required field: name", test.DecodeError(suite.T(), recorder.Body.Bytes()))

	recorder = test.Request(suite.T(), suite.controller, http.MethodPost, categoryURL+"/regist", map[string]any{"customer_id": "cust-1", "name": "　 "})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("Invalid value for field: name", test.DecodeError(suite.T(), recorder.Body.Bytes()))

	suite.Assert().Len(suite.listCategories("cust-1"), 0)
}

func (suite *TestSuiteStandard) TestCategoryUpdate() {
	id := suite.createCategory("cust-1", "食費")

	recorder := test.Request(suite.T(), suite.controller, http.MethodPut, categoryURL+"/update", v1.CategoryUpdate{
		CustomerID: "cust-1",
		CategoryID: id,
		Name:       "外食",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"result":{"updated":true}}`, recorder.Body.String())

	categories := suite.listCategories("cust-1")
	suite.Require().Len(categories, 1)
	suite.Assert().Equal("外食", categories[0].Name)
}

func (suite *TestSuiteStandard) TestCategoryUpdateNonExistent() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodPut, categoryURL+"/update", v1.CategoryUpdate{
		CustomerID: "cust-1",
		CategoryID: "does-not-exist",
		Name:       "外食",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	suite.Assert().Equal("No category matching your query", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestCategoryUpdateValidation() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodPut, categoryURL+"/update", map[string]any{
		"customer_id": "cust-1",
		"name":        "外食",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("Missing required field: category_id", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	id := suite.createCategory("cust-1", "食費")
	suite.createCategory("cust-1", "交通費")

	recorder := test.Request(suite.T(), suite.controller, http.MethodDelete, categoryURL+"/delete?customer_id=cust-1&category_id="+id, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"result":{"deleted":true}}`, recorder.Body.String())

	categories := suite.listCategories("cust-1")
	suite.Require().Len(categories, 1)
	suite.Assert().Equal("交通費", categories[0].Name)

	recorder = test.Request(suite.T(), suite.controller, http.MethodDelete, categoryURL+"/delete?customer_id=cust-1&category_id=does-not-exist", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCategoryDeleteMissingParameter() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodDelete, categoryURL+"/delete?category_id=x", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("Missing required parameter: customer_id", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}
