package model_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookstore-service/store/internal/model"
)

func TestPrice_JSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
		valid bool
	}{
		{name: "string", input: `"12.5"`, want: `"12.50"`, valid: true},
		{name: "number", input: `3`, want: `"3.00"`, valid: true},
		{name: "padded string", input: `" 7.1 "`, want: `"7.10"`, valid: true},
		{name: "null", input: `null`, want: `null`},
		{name: "not a number", input: `"abc"`, want: `null`},
		{name: "empty string", input: `""`, want: `null`},
		{name: "bool", input: `true`, want: `null`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var p model.Price
			require.NoError(t, json.Unmarshal([]byte(tt.input), &p))
			require.Equal(t, tt.valid, p.Valid)
			out, err := json.Marshal(p)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(out))
		})
	}
}

func TestPriceTypeFunc(t *testing.T) {
	t.Parallel()
	require.Equal(t, "1250e-2", model.PriceTypeFunc(reflect.ValueOf(model.MustPrice("12.50"))))
	require.Equal(t, "", model.PriceTypeFunc(reflect.ValueOf(model.Price{})))

	var bad model.Price
	require.NoError(t, json.Unmarshal([]byte(`"abc"`), &bad))
	require.Equal(t, "malformed", model.PriceTypeFunc(reflect.ValueOf(bad)))
}

func TestBook_JSON(t *testing.T) {
	t.Parallel()
	b := model.Book{ID: 1, Title: "Dune", Description: "Sand", Price: model.MustPrice("12.5"), AuthorID: 3}
	out, err := json.Marshal(b)
	require.NoError(t, err)
	require.Equal(t, `{"id":1,"title":"Dune","description":"Sand","price":"12.50","image_url":"","author":3}`, string(out))

	var missing model.Book
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Dune"}`), &missing))
	require.False(t, missing.Price.Valid)
}
