// Package handler contains one HTTP handler per endpoint. Handlers decode
// and validate the request body, delegate to an injected service interface,
// and map errors onto the two client-visible classes: validation errors
// (with field-level details) and generic internal errors.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lotayaai/lotaya-io/internal/api/response"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field names as they appear on the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode parses the body into R and enforces its schema. On failure it
// writes the error response and returns false; nothing else may have
// happened yet (no delay, no side effect).
func decode[R any](w http.ResponseWriter, r *http.Request) (R, bool) {
	var req R
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			response.Error(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
				"Request body failed validation",
				map[string]string{typeErr.Field: "must be of type " + typeErr.Type.String()})
			return req, false
		}
		response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
		return req, false
	}

	if err := validate.Struct(req); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"Request body failed validation", validationDetails(err))
		return req, false
	}
	return req, true
}

func validationDetails(err error) map[string]string {
	details := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				details[fe.Field()] = "is required"
			case "min":
				details[fe.Field()] = "must not be empty"
			default:
				details[fe.Field()] = "is invalid"
			}
		}
	}
	return details
}
