package model

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const PriceDecimalPlaces = 2

// malformedPrice never parses as a decimal, so the decimal tag reports it.
const malformedPrice = "malformed"

// Price is a nullable fixed point amount. A missing JSON field leaves it
// invalid so that validation can tell it apart from an explicit zero.
// Input that is not a number is kept as malformed instead of failing the
// decode, and is reported by validation on the price field.
type Price struct {
	decimal.NullDecimal
	malformed bool
}

func NewPrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{NullDecimal: decimal.NewNullDecimal(d)}, nil
}

func MustPrice(s string) Price {
	p, err := NewPrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = Price{}
		return nil
	}
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			*p = Price{malformed: true}
			return nil
		}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		*p = Price{malformed: true}
		return nil
	}
	*p = Price{NullDecimal: decimal.NewNullDecimal(d)}
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(p.String())), nil
}

func (p Price) String() string {
	if !p.Valid {
		return ""
	}
	return p.Decimal.StringFixed(PriceDecimalPlaces)
}

// PriceTypeFunc exposes a Price to the validator as its exact textual form,
// trailing zeros included, so digit limits are checked on what was sent.
func PriceTypeFunc(field reflect.Value) interface{} {
	p, ok := field.Interface().(Price)
	if !ok {
		return ""
	}
	if p.malformed {
		return malformedPrice
	}
	if !p.Valid {
		return ""
	}
	return p.Decimal.Coefficient().String() + "e" + strconv.Itoa(int(p.Decimal.Exponent()))
}
