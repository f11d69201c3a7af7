package types

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Field domains for a Snack. Bounds are inclusive.
const (
	MinBarcode    = 10001
	MaxBarcode    = 99999
	MinCalories   = 0
	MaxCalories   = 2000
	MinNameLength = 2
)

// Price domains. MinThreshold is lower than MinPrice on purpose so a filter
// threshold of zero lists every snack.
var (
	MinPrice     = decimal.RequireFromString("1.00")
	MaxPrice     = decimal.RequireFromString("5.00")
	MinThreshold = decimal.Zero
	MaxThreshold = MaxPrice
)

// Snack is one catalog entry. Fields are unexported so a Snack can only be
// built or changed through validating calls; a Snack is never observable
// with an out-of-domain field.
type Snack struct {
	barcode  int
	calories int
	price    decimal.Decimal
	name     string
}

// NewSnack validates all four fields and returns a Snack. Fields are checked
// in the order barcode, calories, price, name and the first violation is
// returned. The name is trimmed before it is checked and stored.
func NewSnack(barcode, calories int, price decimal.Decimal, name string) (*Snack, error) {
	s := &Snack{}
	if err := s.SetBarcode(barcode); err != nil {
		return nil, err
	}
	if err := s.SetCalories(calories); err != nil {
		return nil, err
	}
	if err := s.SetPrice(price); err != nil {
		return nil, err
	}
	if err := s.SetName(name); err != nil {
		return nil, err
	}
	return s, nil
}

// SetBarcode replaces the barcode. Returns an *OutOfRangeError and leaves the
// snack unchanged if barcode is outside [MinBarcode, MaxBarcode].
func (s *Snack) SetBarcode(barcode int) error {
	if err := CheckBarcode(barcode); err != nil {
		return err
	}
	s.barcode = barcode
	return nil
}

// SetCalories replaces the calorie count.
func (s *Snack) SetCalories(calories int) error {
	if err := CheckCalories(calories); err != nil {
		return err
	}
	s.calories = calories
	return nil
}

// SetPrice replaces the price. The exact value is range-checked and stored;
// truncation only applies when the price is displayed.
func (s *Snack) SetPrice(price decimal.Decimal) error {
	if err := CheckPrice(price); err != nil {
		return err
	}
	s.price = price
	return nil
}

// SetName trims and replaces the name. Returns a *NameTooShortError if fewer
// than MinNameLength characters remain.
func (s *Snack) SetName(name string) error {
	if err := CheckName(name); err != nil {
		return err
	}
	s.name = strings.TrimSpace(name)
	return nil
}

// Barcode returns the snack's unique barcode.
func (s Snack) Barcode() int { return s.barcode }

// Calories returns the calorie count.
func (s Snack) Calories() int { return s.calories }

// Price returns the exact stored price.
func (s Snack) Price() decimal.Decimal { return s.price }

// Name returns the trimmed name.
func (s Snack) Name() string { return s.name }

// String renders the snack as four lines: barcode, calories, truncated
// price, and name.
func (s Snack) String() string {
	return fmt.Sprintf("Barcode: %d\nCalories: %d\nPrice: %s\nName: %s",
		s.barcode, s.calories, FormatPrice(s.price), s.name)
}

// CheckBarcode reports whether barcode lies in the barcode domain.
func CheckBarcode(barcode int) error {
	if barcode < MinBarcode || barcode > MaxBarcode {
		return newIntRangeError(FieldBarcode, barcode, MinBarcode, MaxBarcode)
	}
	return nil
}

// CheckCalories reports whether calories lies in [MinCalories, MaxCalories].
func CheckCalories(calories int) error {
	if calories < MinCalories || calories > MaxCalories {
		return newIntRangeError(FieldCalories, calories, MinCalories, MaxCalories)
	}
	return nil
}

// CheckPrice reports whether the exact price lies in [MinPrice, MaxPrice].
func CheckPrice(price decimal.Decimal) error {
	if CompareDecimal(price, MinPrice) < 0 || CompareDecimal(price, MaxPrice) > 0 {
		return &OutOfRangeError{Field: FieldPrice, Value: price, Min: MinPrice, Max: MaxPrice}
	}
	return nil
}

// CheckName reports whether name keeps at least MinNameLength characters
// once trimmed.
func CheckName(name string) error {
	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) < MinNameLength {
		return &NameTooShortError{Value: trimmed}
	}
	return nil
}

// CheckThreshold reports whether threshold lies in the filter threshold
// domain [MinThreshold, MaxThreshold].
func CheckThreshold(threshold decimal.Decimal) error {
	if CompareDecimal(threshold, MinThreshold) < 0 || CompareDecimal(threshold, MaxThreshold) > 0 {
		return &OutOfRangeError{Field: FieldThreshold, Value: threshold, Min: MinThreshold, Max: MaxThreshold}
	}
	return nil
}

// FormatPrice renders a price as currency with exactly two decimals,
// truncating toward zero: 4.999 renders as "$4.99".
func FormatPrice(price decimal.Decimal) string {
	return "$" + TruncatePrice(price).StringFixed(2)
}

// TruncatePrice drops every digit past the second decimal place.
func TruncatePrice(price decimal.Decimal) decimal.Decimal {
	// Below one cent truncates to zero without rescaling the exponent.
	if price.Sign() == 0 || magnitude(price) < -1 {
		return decimal.Zero
	}
	return price.Truncate(2)
}
