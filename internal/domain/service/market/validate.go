package service

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// newValidator учит validator считать нулевой decimal отсутствующим значением,
// так же как 0 для int и "" для string.
func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(decimal.Decimal)
		if !ok || d.IsZero() {
			return nil
		}

		return d.String()
	}, decimal.Decimal{})

	return validate
}
