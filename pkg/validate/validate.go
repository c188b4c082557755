package validate

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type CustomValidator struct {
	validator *validator.Validate
}

type Option func(v *validator.Validate)

// WithCustomTypeFunc lets non-primitive field types (money, nullable
// wrappers) be validated through the value fn extracts from them.
func WithCustomTypeFunc(fn validator.CustomTypeFunc, types ...any) Option {
	return func(v *validator.Validate) {
		v.RegisterCustomTypeFunc(fn, types...)
	}
}

func NewCustomValidator(opts ...Option) *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)
	if err := v.RegisterValidation("decimal", validateDecimal); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("non_negative", validateNonNegative); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("http_url", validateHTTPURL); err != nil {
		panic(err)
	}
	for _, op := range opts {
		op(v)
	}
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// FieldErrors flattens validator errors into field -> messages.
func FieldErrors(err error) (map[string][]string, bool) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil, false
	}
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], message(fe))
	}
	return out, true
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url", "http_url":
		return "Enter a valid URL."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "non_negative":
		return "Ensure this value is greater than or equal to 0."
	case "decimal":
		s, _ := fe.Value().(string)
		maxDigits, places, _ := parseDecimalParam(fe.Param())
		if reason := CheckDecimal(s, maxDigits, places); reason != "" {
			return reason
		}
		return "A valid number is required."
	}
	return fmt.Sprintf("Failed on the '%s' tag.", fe.Tag())
}

// decimal=6_2 means at most 6 digits in total, 2 of them after the point.
func validateDecimal(fl validator.FieldLevel) bool {
	s, ok := stringValue(fl)
	if !ok {
		return false
	}
	if s == "" {
		return true
	}
	maxDigits, places, err := parseDecimalParam(fl.Param())
	if err != nil {
		panic(err)
	}
	return CheckDecimal(s, maxDigits, places) == ""
}

func validateNonNegative(fl validator.FieldLevel) bool {
	s, ok := stringValue(fl)
	if !ok {
		return false
	}
	if s == "" {
		return true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return !d.IsNegative()
}

var urlSchemes = map[string]bool{"http": true, "https": true, "ftp": true, "ftps": true}

// http_url accepts absolute http(s)/ftp(s) URLs with a host.
func validateHTTPURL(fl validator.FieldLevel) bool {
	s, ok := stringValue(fl)
	if !ok {
		return false
	}
	if s == "" {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return urlSchemes[strings.ToLower(u.Scheme)] && u.Hostname() != ""
}

func stringValue(fl validator.FieldLevel) (string, bool) {
	if fl.Field().Kind() != reflect.String {
		return "", false
	}
	return fl.Field().String(), true
}

func parseDecimalParam(param string) (maxDigits, places int, err error) {
	d, p, ok := strings.Cut(param, "_")
	if !ok {
		return 0, 0, errors.Errorf("decimal: bad param %q", param)
	}
	if maxDigits, err = strconv.Atoi(d); err != nil {
		return 0, 0, errors.Wrap(err, "decimal: max digits")
	}
	if places, err = strconv.Atoi(p); err != nil {
		return 0, 0, errors.Wrap(err, "decimal: decimal places")
	}
	return maxDigits, places, nil
}

// CheckDecimal returns an empty string when s fits into maxDigits digits
// with at most places fractional digits, or the reason it does not.
func CheckDecimal(s string, maxDigits, places int) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "A valid number is required."
	}
	coefDigits := len(strings.TrimPrefix(d.Coefficient().String(), "-"))
	exp := int(d.Exponent())

	var digits, decimals int
	switch {
	case exp >= 0:
		digits, decimals = coefDigits+exp, 0
	case -exp > coefDigits:
		digits, decimals = -exp, -exp
	default:
		digits, decimals = coefDigits, -exp
	}
	whole := digits - decimals

	switch {
	case digits > maxDigits:
		return fmt.Sprintf("Ensure that there are no more than %d digits in total.", maxDigits)
	case decimals > places:
		return fmt.Sprintf("Ensure that there are no more than %d decimal places.", places)
	case whole > maxDigits-places:
		return fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", maxDigits-places)
	}
	return ""
}
