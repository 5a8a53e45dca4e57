package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	v1 "github.com/kakeibo-cloud/backend/internal/controllers/v1"
	"github.com/kakeibo-cloud/backend/internal/httputil"
	"github.com/kakeibo-cloud/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Router returns a fully configured router serving the routes of co.
//
// teardown must be called before the next router is created.
func Router(t *testing.T, co v1.Controller) (r http.Handler, teardown func()) {
	baseURL, _ := url.Parse("http://example.com")

	engine, teardown, err := router.Config(router.Options{URL: baseURL})
	require.Nil(t, err, "Router could not be initialized")

	router.AttachRoutes(co, engine.Group("/"))
	return engine, teardown
}

// Request is a helper method to simplify making a HTTP request for tests.
//
// A string body is sent verbatim, everything else is marshalled to JSON.
func Request(t *testing.T, co v1.Controller, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	if body == nil {
		byteBuffer = bytes.NewBuffer(nil)
	} else if reflect.TypeOf(body).Kind() == reflect.String {
		byteBuffer = bytes.NewBufferString(body.(string))
	} else {
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled from struct input", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	}

	r, teardown := Router(t, co)
	defer teardown()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, reqURL, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// AssertHTTPStatus asserts that the response has one of the expected status codes.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	assert.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Response body: %s", r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v'", r.Body, reflect.TypeOf(target), err)
	}
}

// DecodeResult decodes the result of a successful response into target.
func DecodeResult(t *testing.T, r *httptest.ResponseRecorder, target any) {
	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	DecodeResponse(t, r, &envelope)

	err := json.Unmarshal(envelope.Result, target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse result %q into %v, '%v'", envelope.Result, reflect.TypeOf(target), err)
	}
}

// DecodeError returns the message of an error response.
func DecodeError(t *testing.T, s []byte) string {
	var r httputil.HTTPError
	if err := json.Unmarshal(s, &r); err != nil {
		assert.Fail(t, "Not valid JSON!", "%s", s)
	}

	return r.Message
}
