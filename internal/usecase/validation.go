package usecase

import (
	"fmt"
	"reflect"

	domainerrors "souk/internal/domain/errors"
	"souk/internal/errors"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Let numeric rules (gte, lte) see FlexFloat as a plain float64.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if f, ok := field.Interface().(FlexFloat); ok {
			return float64(f)
		}

		return nil
	}, FlexFloat(0))

	return v
}

// validateStruct runs the shared validator over the input and surfaces the
// FIRST violated rule as a client-facing message, looked up by field name.
func validateStruct(input any, messages map[string]string) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) || len(violations) == 0 {
		return domainerrors.NewValidationError("invalid input")
	}

	first := violations[0]
	if msg, ok := messages[first.Field()]; ok {
		return domainerrors.NewValidationError(msg)
	}

	return domainerrors.NewValidationError(fmt.Sprintf("%s is invalid", first.Field()))
}
