package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Error kinds. Every typed error below unwraps to exactly one of these, so
// callers can branch with errors.Is and pull details with errors.As.
var (
	ErrOutOfRange          = errors.New("value out of range")
	ErrNameTooShort        = errors.New("name too short")
	ErrDuplicateBarcode    = errors.New("barcode already exists")
	ErrNotFound            = errors.New("snack not found")
	ErrSeedConflict        = errors.New("seed barcodes already present")
	ErrUnrecognizedCommand = errors.New("unrecognized command")
	ErrInputTypeMismatch   = errors.New("input type mismatch")
	ErrNoPendingCommand    = errors.New("no command pending")
)

// Field names a range-checked value.
type Field string

// Range-checked fields.
const (
	FieldBarcode   Field = "barcode"
	FieldCalories  Field = "calories"
	FieldPrice     Field = "price"
	FieldThreshold Field = "threshold"
)

// Decimal reports whether the field holds a decimal rather than an integer.
func (f Field) Decimal() bool {
	return f == FieldPrice || f == FieldThreshold
}

// OutOfRangeError reports a numeric field outside its inclusive domain.
type OutOfRangeError struct {
	Field Field
	Value decimal.Decimal
	Min   decimal.Decimal
	Max   decimal.Decimal
}

func newIntRangeError(field Field, value, lo, hi int) *OutOfRangeError {
	return &OutOfRangeError{
		Field: field,
		Value: decimal.NewFromInt(int64(value)),
		Min:   decimal.NewFromInt(int64(lo)),
		Max:   decimal.NewFromInt(int64(hi)),
	}
}

func (e *OutOfRangeError) Error() string {
	format := func(d decimal.Decimal) string {
		if e.Field.Decimal() {
			return d.StringFixed(2)
		}
		return d.String()
	}
	return fmt.Sprintf("%s %s out of range [%s, %s]", e.Field, FormatValue(e.Value), format(e.Min), format(e.Max))
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// NameTooShortError reports a name shorter than MinNameLength after trimming.
type NameTooShortError struct {
	Value string
}

func (e *NameTooShortError) Error() string {
	return fmt.Sprintf("name %q shorter than %d characters", e.Value, MinNameLength)
}

func (e *NameTooShortError) Unwrap() error { return ErrNameTooShort }

// DuplicateBarcodeError reports an add with a barcode already in the catalog.
type DuplicateBarcodeError struct {
	Barcode int
}

func (e *DuplicateBarcodeError) Error() string {
	return fmt.Sprintf("barcode %d already exists", e.Barcode)
}

func (e *DuplicateBarcodeError) Unwrap() error { return ErrDuplicateBarcode }

// NotFoundError reports a lookup with no matching barcode.
type NotFoundError struct {
	Barcode int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no snack with barcode %d", e.Barcode)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// SeedConflictError lists the reserved seed barcodes already present.
type SeedConflictError struct {
	Barcodes []int
}

func (e *SeedConflictError) Error() string {
	codes := make([]string, len(e.Barcodes))
	for i, b := range e.Barcodes {
		codes[i] = strconv.Itoa(b)
	}
	return fmt.Sprintf("seed barcodes already present: %s", strings.Join(codes, ", "))
}

func (e *SeedConflictError) Unwrap() error { return ErrSeedConflict }

// UnrecognizedCommandError reports a token outside the command set. Numeric
// is true when the token parses as an integer, which separates "menu number
// out of range" from "not a number at all".
type UnrecognizedCommandError struct {
	Token   string
	Numeric bool
}

func (e *UnrecognizedCommandError) Error() string {
	if e.Numeric {
		return fmt.Sprintf("unrecognized command %q: number out of range", e.Token)
	}
	return fmt.Sprintf("unrecognized command %q: expected an integer", e.Token)
}

func (e *UnrecognizedCommandError) Unwrap() error { return ErrUnrecognizedCommand }

// InputKind is the primitive a caller expected to parse.
type InputKind string

// Input kinds.
const (
	KindInteger InputKind = "integer"
	KindDecimal InputKind = "decimal"
	KindText    InputKind = "text"
)

// InputTypeMismatchError reports raw input that could not be read as the
// expected primitive before reaching the core.
type InputTypeMismatchError struct {
	Kind  InputKind
	Input string
}

func (e *InputTypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s, got %q", e.Kind, e.Input)
}

func (e *InputTypeMismatchError) Unwrap() error { return ErrInputTypeMismatch }
