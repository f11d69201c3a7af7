package console

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/vending/pkg/types"
)

// Message renders an error for the user. Core errors carry only a kind and
// the offending values; the wording lives here.
func Message(err error) string {
	var (
		rangeErr *types.OutOfRangeError
		shortErr *types.NameTooShortError
		dupErr   *types.DuplicateBarcodeError
		nfErr    *types.NotFoundError
		seedErr  *types.SeedConflictError
		typeErr  *types.InputTypeMismatchError
	)
	switch {
	case errors.As(err, &rangeErr):
		return rangeMessage(rangeErr)
	case errors.As(err, &shortErr):
		return fmt.Sprintf("Error. Name must be %d or more characters.", types.MinNameLength)
	case errors.As(err, &dupErr):
		return "Error. Barcode already exists."
	case errors.As(err, &nfErr):
		return fmt.Sprintf("Error. No snack with barcode %d.", nfErr.Barcode)
	case errors.As(err, &seedErr):
		return "Error. One or more seeded barcodes exist."
	case errors.As(err, &typeErr):
		return typeMessage(typeErr)
	default:
		return fmt.Sprintf("Error. %v", err)
	}
}

func rangeMessage(e *types.OutOfRangeError) string {
	bound := func(d decimal.Decimal) string {
		if e.Field.Decimal() {
			return d.StringFixed(2)
		}
		return d.String()
	}
	switch e.Field {
	case types.FieldBarcode:
		return fmt.Sprintf("Error. Valid barcode range is [%s - %s]", bound(e.Min), bound(e.Max))
	case types.FieldCalories:
		return fmt.Sprintf("Error. Valid calorie range is [%s, %s]", bound(e.Min), bound(e.Max))
	case types.FieldPrice:
		return fmt.Sprintf("Error. Valid price range is [%s, %s]", bound(e.Min), bound(e.Max))
	case types.FieldThreshold:
		return fmt.Sprintf("Error: Out of range. Comparison price must be between %s and %s.", bound(e.Min), bound(e.Max))
	default:
		return fmt.Sprintf("Error. %s must be in [%s, %s]", e.Field, bound(e.Min), bound(e.Max))
	}
}

func typeMessage(e *types.InputTypeMismatchError) string {
	switch e.Kind {
	case types.KindInteger:
		return fmt.Sprintf("Program is expecting an integer, got %q.", e.Input)
	case types.KindDecimal:
		return fmt.Sprintf("Program is expecting a decimal number (Ex: 4.45), got %q.", e.Input)
	default:
		return fmt.Sprintf("Program is expecting %s, got %q.", e.Kind, e.Input)
	}
}
