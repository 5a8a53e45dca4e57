package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kakeibo-cloud/backend/internal/types"
	"github.com/rs/zerolog/log"
)

var amountType = reflect.TypeOf(types.Amount{})

// RegisterFieldNames makes validation errors report the JSON name of a field,
// falling back to the form name for query parameters.
func RegisterFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(fieldName)
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name != "" {
			return name
		}
	}

	return field.Name
}

// BindData binds the JSON body of the request to data.
//
// All errors are returned as ValidationError.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ValidationError{ErrRequestBodyEmpty.Error()}
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		e := validationErrors[0]
		if e.Tag() == "required" {
			return MissingField(e.Field())
		}
		return InvalidField(e.Field())
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) && unmarshalTypeError.Field != "" {
		return InvalidField(unmarshalTypeError.Field)
	}

	if errors.Is(err, types.ErrInvalidAmount) {
		if name := amountField(data); name != "" {
			return InvalidField(name)
		}
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ValidationError{ErrInvalidBody.Error()}
}

// BindQuery binds the query string of the request to data.
func BindQuery(c *gin.Context, data any) error {
	err := c.ShouldBindQuery(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		e := validationErrors[0]
		if e.Tag() == "required" {
			return MissingParameter(e.Field())
		}
		return InvalidField(e.Field())
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ValidationError{err.Error()}
}

// amountField returns the JSON name of the amount field in data.
//
// The decoder does not report which field failed for custom types,
// the name is only returned if there is exactly one amount field.
func amountField(data any) string {
	t := reflect.TypeOf(data)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return ""
	}

	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}

		if ft == amountType {
			names = append(names, fieldName(f))
		}
	}

	if len(names) != 1 {
		return ""
	}
	return names[0]
}
