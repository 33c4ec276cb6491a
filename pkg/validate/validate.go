// Package validate wraps go-playground/validator with the configuration
// the API handlers share: field names in failure messages come from json
// tags, and a full set of field failures flattens to a single readable
// error.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports fields by their json tag names
// instead of Go struct field names.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Flatten converts a validator error into one readable error. A nil error
// stays nil and non-validation errors pass through unchanged.
func Flatten(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs[i] = fmt.Sprintf("%s is required", fe.Field())
		case "oneof":
			msgs[i] = fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		case "gte":
			msgs[i] = fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
		case "lte":
			msgs[i] = fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
		default:
			msgs[i] = fmt.Sprintf("%s is invalid", fe.Field())
		}
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}
