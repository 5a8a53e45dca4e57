package v1_test

import (
	"net/http"

	"github.com/kakeibo-cloud/backend/test"
)

func (suite *TestSuiteStandard) TestUnknownPath() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/v1/unknown", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	suite.Assert().Equal("Not found", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestWrongMethod() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/v1/item/regist", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
	suite.Assert().Equal("Method not allowed", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/api/v1/item/regist", "OPTIONS, POST"},
		{"/api/v1/item/list", "OPTIONS, GET"},
		{"/api/v1/item/update", "OPTIONS, PUT"},
		{"/api/v1/item/delete", "OPTIONS, DELETE"},
		{"/api/v1/category/regist", "OPTIONS, POST"},
		{"/api/v1/category/list", "OPTIONS, GET"},
		{"/api/v1/category/update", "OPTIONS, PUT"},
		{"/api/v1/category/delete", "OPTIONS, DELETE"},
		{"/api/v1/customer/budget", "OPTIONS, GET"},
		{"/api/v1/customer/budget/regist", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.Run(tt.path, func() {
			recorder := test.Request(suite.T(), suite.controller, http.MethodOptions, "http://example.com"+tt.path, nil)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
			suite.Assert().Equal(tt.allow, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestCORS() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodOptions, "http://example.com/api/v1/item/regist", nil, map[string]string{
		"Origin":                        "https://kakeibo.example.com",
		"Access-Control-Request-Method": http.MethodPost,
	})

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("*", recorder.Header().Get("Access-Control-Allow-Origin"))
	suite.Assert().Equal("300", recorder.Header().Get("Access-Control-Max-Age"))
	suite.Assert().Contains(recorder.Header().Get("Access-Control-Allow-Methods"), "PUT")

	recorder = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/v1/item/list?customer_id=c", nil, map[string]string{
		"Origin": "https://kakeibo.example.com",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Equal("*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
