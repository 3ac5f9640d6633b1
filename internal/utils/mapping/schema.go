package mapping

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	rowValidator     *validator.Validate
	rowValidatorOnce sync.Once
)

func validate() *validator.Validate {
	rowValidatorOnce.Do(func() {
		rowValidator = validator.New(validator.WithRequiredStructEnabled())
		rowValidator.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	})
	return rowValidator
}

// decimalValue lets numeric tags such as gte=0 apply to decimal columns.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// checkRow validates a database row against its schema tags. A failure wraps
// apperrors.ErrSchemaMismatch and names the table and row.
func checkRow(table, id string, row any) error {
	if err := validate().Struct(row); err != nil {
		return fmt.Errorf("%w: %s row %q: %w", apperrors.ErrSchemaMismatch, table, id, err)
	}
	return nil
}
