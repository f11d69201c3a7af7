package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewSnack(t *testing.T) {
	tests := []struct {
		name      string
		barcode   int
		calories  int
		price     string
		snackName string
		wantErr   error
		wantField Field
		wantName  string
	}{
		{name: "valid snack", barcode: 20000, calories: 100, price: "2.50", snackName: "Chips", wantName: "Chips"},
		{name: "lowest barcode", barcode: 10001, calories: 0, price: "1.00", snackName: "ab", wantName: "ab"},
		{name: "highest barcode", barcode: 99999, calories: 2000, price: "5.00", snackName: "ab", wantName: "ab"},
		{name: "barcode below range", barcode: 10000, calories: 100, price: "2.00", snackName: "Chips", wantErr: ErrOutOfRange, wantField: FieldBarcode},
		{name: "barcode above range", barcode: 100000, calories: 100, price: "2.00", snackName: "Chips", wantErr: ErrOutOfRange, wantField: FieldBarcode},
		{name: "negative calories", barcode: 20000, calories: -1, price: "2.00", snackName: "Chips", wantErr: ErrOutOfRange, wantField: FieldCalories},
		{name: "calories above range", barcode: 20000, calories: 2001, price: "2.00", snackName: "Chips", wantErr: ErrOutOfRange, wantField: FieldCalories},
		{name: "price below range", barcode: 20000, calories: 100, price: "0.99", snackName: "Chips", wantErr: ErrOutOfRange, wantField: FieldPrice},
		{name: "price above range", barcode: 20000, calories: 100, price: "5.001", snackName: "Chips", wantErr: ErrOutOfRange, wantField: FieldPrice},
		{name: "name trimmed", barcode: 20000, calories: 100, price: "2.00", snackName: "  Chips \t", wantName: "Chips"},
		{name: "single char after trim", barcode: 20000, calories: 100, price: "2.00", snackName: "  a ", wantErr: ErrNameTooShort},
		{name: "blank name", barcode: 20000, calories: 100, price: "2.00", snackName: "   ", wantErr: ErrNameTooShort},
		{name: "barcode reported before name", barcode: 1, calories: 100, price: "2.00", snackName: "", wantErr: ErrOutOfRange, wantField: FieldBarcode},
		{name: "price with huge exponent", barcode: 20000, calories: 100, price: "1e2000000000", snackName: "Chips", wantErr: ErrOutOfRange, wantField: FieldPrice},
		{name: "price with tiny exponent", barcode: 20000, calories: 100, price: "1e-2000000000", snackName: "Chips", wantErr: ErrOutOfRange, wantField: FieldPrice},
		{name: "negative price with huge exponent", barcode: 20000, calories: 100, price: "-1e2000000000", snackName: "Chips", wantErr: ErrOutOfRange, wantField: FieldPrice},
		{name: "calories reported before price", barcode: 20000, calories: 5000, price: "9.00", snackName: "Chips", wantErr: ErrOutOfRange, wantField: FieldCalories},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSnack(tt.barcode, tt.calories, price(tt.price), tt.snackName)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				if tt.wantField != "" {
					var rangeErr *OutOfRangeError
					require.ErrorAs(t, err, &rangeErr)
					assert.Equal(t, tt.wantField, rangeErr.Field)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.barcode, s.Barcode())
			assert.Equal(t, tt.calories, s.Calories())
			assert.True(t, price(tt.price).Equal(s.Price()))
			assert.Equal(t, tt.wantName, s.Name())
		})
	}
}

func TestNewSnackBarcodeBoundaries(t *testing.T) {
	for _, b := range []int{MinBarcode - 1, MinBarcode, MinBarcode + 1, 55555, MaxBarcode - 1, MaxBarcode, MaxBarcode + 1} {
		_, err := NewSnack(b, 10, price("1.50"), "Gum")
		if b >= MinBarcode && b <= MaxBarcode {
			assert.NoError(t, err, "barcode %d", b)
		} else {
			assert.ErrorIs(t, err, ErrOutOfRange, "barcode %d", b)
		}
	}
}

func TestSnackSettersLeaveSnackUnchangedOnError(t *testing.T) {
	s, err := NewSnack(20000, 100, price("2.50"), "Chips")
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetBarcode(9), ErrOutOfRange)
	assert.ErrorIs(t, s.SetCalories(2001), ErrOutOfRange)
	assert.ErrorIs(t, s.SetPrice(price("0.50")), ErrOutOfRange)
	assert.ErrorIs(t, s.SetName(" x "), ErrNameTooShort)

	assert.Equal(t, 20000, s.Barcode())
	assert.Equal(t, 100, s.Calories())
	assert.True(t, price("2.50").Equal(s.Price()))
	assert.Equal(t, "Chips", s.Name())
}

func TestSnackSettersCommit(t *testing.T) {
	s, err := NewSnack(20000, 100, price("2.50"), "Chips")
	require.NoError(t, err)

	require.NoError(t, s.SetBarcode(30000))
	require.NoError(t, s.SetCalories(0))
	require.NoError(t, s.SetPrice(price("4.75")))
	require.NoError(t, s.SetName("  Pretzels  "))

	assert.Equal(t, 30000, s.Barcode())
	assert.Equal(t, 0, s.Calories())
	assert.Equal(t, "$4.75", FormatPrice(s.Price()))
	assert.Equal(t, "Pretzels", s.Name())
}

func TestSnackString(t *testing.T) {
	s, err := NewSnack(10003, 100, price("3.55"), "Chocolate Bar")
	require.NoError(t, err)
	assert.Equal(t, "Barcode: 10003\nCalories: 100\nPrice: $3.55\nName: Chocolate Bar", s.String())

	s, err = NewSnack(10004, 250, price("4.999"), "Gummies")
	require.NoError(t, err)
	assert.Equal(t, "Barcode: 10004\nCalories: 250\nPrice: $4.99\nName: Gummies", s.String())
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4.999", "$4.99"},
		{"1.10", "$1.10"},
		{"2", "$2.00"},
		{"3.555", "$3.55"},
		{"1.0099", "$1.00"},
		{"0", "$0.00"},
		{"0.5", "$0.50"},
		{"0.009", "$0.00"},
		{"1e-2000000000", "$0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(price(tt.in)))
		})
	}
}

func TestCheckThreshold(t *testing.T) {
	assert.NoError(t, CheckThreshold(price("0")))
	assert.NoError(t, CheckThreshold(price("5.00")))
	assert.NoError(t, CheckThreshold(price("0.50")))
	assert.NoError(t, CheckThreshold(price("1e-2000000000")), "tiny positive threshold is inside [0, 5]")

	for _, in := range []string{"1e2000000000", "-1e-2000000000", "-1e2000000000"} {
		assert.ErrorIs(t, CheckThreshold(price(in)), ErrOutOfRange, in)
	}

	err := CheckThreshold(price("-0.01"))
	var rangeErr *OutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, FieldThreshold, rangeErr.Field)
	assert.ErrorIs(t, CheckThreshold(price("5.01")), ErrOutOfRange)
}

func TestFieldChecks(t *testing.T) {
	assert.NoError(t, CheckCalories(0))
	assert.NoError(t, CheckCalories(2000))
	assert.ErrorIs(t, CheckCalories(-1), ErrOutOfRange)
	assert.ErrorIs(t, CheckCalories(2001), ErrOutOfRange)

	assert.NoError(t, CheckPrice(price("1.00")))
	assert.NoError(t, CheckPrice(price("5")))
	assert.ErrorIs(t, CheckPrice(price("0.999")), ErrOutOfRange)
	assert.ErrorIs(t, CheckPrice(price("1e2000000000")), ErrOutOfRange)

	assert.NoError(t, CheckName(" ab "))
	assert.ErrorIs(t, CheckName(" a "), ErrNameTooShort)
}
