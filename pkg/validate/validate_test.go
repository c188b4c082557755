package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookstore-service/pkg/validate"
)

func TestCheckDecimal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		value  string
		reason string
	}{
		{name: "ok", value: "12.50"},
		{name: "ok. max", value: "9999.99"},
		{name: "ok. integer", value: "1234"},
		{name: "ok. zero", value: "0"},
		{name: "err. too many digits", value: "1234.567", reason: "Ensure that there are no more than 6 digits in total."},
		{name: "err. too many places", value: "1.234", reason: "Ensure that there are no more than 2 decimal places."},
		{name: "err. trailing zeros count", value: "1.500e-3", reason: "Ensure that there are no more than 2 decimal places."},
		{name: "err. too many whole digits", value: "12345", reason: "Ensure that there are no more than 4 digits before the decimal point."},
		{name: "err. not a number", value: "abc", reason: "A valid number is required."},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.reason, validate.CheckDecimal(tt.value, 6, 2))
		})
	}
}

type item struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email" validate:"omitempty,email"`
	Link  string `json:"link" validate:"omitempty,url"`
	Price string `json:"price" validate:"required,decimal=6_2,non_negative"`
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()
	v := validate.NewCustomValidator()
	tests := []struct {
		name   string
		input  item
		fields map[string][]string
	}{
		{
			name:  "ok",
			input: item{Name: "a", Email: "a@b.co", Link: "https://example.com/a.png", Price: "1.00"},
		},
		{
			name:  "err. every field",
			input: item{Name: "toolong", Email: "nope", Link: "nope", Price: "-1"},
			fields: map[string][]string{
				"name":  {"Ensure this field has no more than 5 characters."},
				"email": {"Enter a valid email address."},
				"link":  {"Enter a valid URL."},
				"price": {"Ensure this value is greater than or equal to 0."},
			},
		},
		{
			name:  "err. required",
			input: item{},
			fields: map[string][]string{
				"name":  {"This field is required."},
				"price": {"This field is required."},
			},
		},
		{
			name:   "err. decimal",
			input:  item{Name: "a", Price: "100000.1"},
			fields: map[string][]string{"price": {"Ensure that there are no more than 6 digits in total."}},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.input)
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}
			fields, ok := validate.FieldErrors(err)
			require.True(t, ok)
			require.Equal(t, tt.fields, fields)
		})
	}
}

func TestFieldErrors_NotValidation(t *testing.T) {
	t.Parallel()
	_, ok := validate.FieldErrors(nil)
	require.False(t, ok)
}

func TestCustomValidator_HTTPURL(t *testing.T) {
	t.Parallel()
	type image struct {
		URL string `json:"image_url" validate:"omitempty,http_url"`
	}
	v := validate.NewCustomValidator()
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "ok. blank", value: "", valid: true},
		{name: "ok. https", value: "https://example.com/a.png", valid: true},
		{name: "ok. ftp", value: "ftp://files.example.com/a.png", valid: true},
		{name: "err. javascript", value: "javascript:alert(1)"},
		{name: "err. mailto", value: "mailto:a@b.co"},
		{name: "err. no host", value: "http://"},
		{name: "err. relative", value: "/static/a.png"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(image{URL: tt.value})
			if tt.valid {
				require.NoError(t, err)
				return
			}
			fields, ok := validate.FieldErrors(err)
			require.True(t, ok)
			require.Equal(t, map[string][]string{"image_url": {"Enter a valid URL."}}, fields)
		})
	}
}
