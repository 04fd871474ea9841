package budgeters

import (
	"log"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value with 2-decimal-cent precision once
// stored. Arithmetic is exact: rounding happens only when a total is stored
// back on an account or category, never inside an accumulation.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from a constant; mostly a convenience for tests and seeds.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	default:
		panic("unreachable")
	}
}

// ParseAmount parses a decimal amount. It is strict: use it for data files,
// where the caller substitutes the zero default itself.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: d}, nil
}

// ParseAmountLenient parses an amount typed interactively. On failure it
// retries once with ".0" appended (so "12" and "12." both work), and finally
// substitutes zero with a warning rather than failing the operation.
func ParseAmountLenient(s string) Amount {
	if a, err := ParseAmount(s); err == nil {
		return a
	}
	if a, err := ParseAmount(s + ".0"); err == nil {
		return a
	}
	log.Printf("cannot read amount %q, substituting 0.0, edit if not satisfactory", s)
	return Amount{}
}

// MustAmount is like ParseAmount but panics on error.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err.Error())
	}
	return a
}

// String returns the plain decimal representation, which is also the
// persisted form.
func (a Amount) String() string { return a.value.String() }

// StringFixed returns the value with exactly two decimal places.
func (a Amount) StringFixed() string { return a.value.StringFixed(2) }

// Round2 rounds to 2 decimal places, half away from zero (74.995 becomes
// 75.00 and -74.995 becomes -75.00).
func (a Amount) Round2() Amount { return Amount{value: a.value.Round(2)} }

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) IsNegative() bool    { return a.value.IsNegative() }

// Display formats the amount for terminal output using the conventions of
// the given ISO currency code. Display is presentation only: the persisted
// form is always String.
func (a Amount) Display(currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	cents := a.value.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(cents, cur.Code).Display()
}
