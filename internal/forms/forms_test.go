package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(errs Errors) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestRegisterForm_Valid(t *testing.T) {
	f := RegisterForm{Name: "Léa", Email: "lea@example.com", Password: "secret1"}
	assert.False(t, f.Validate().Has())
}

func TestRegisterForm_ShortName(t *testing.T) {
	f := RegisterForm{Name: "L", Email: "lea@example.com", Password: "secret1"}
	errs := f.Validate()
	require.True(t, errs.Has())
	assert.Contains(t, fieldNames(errs), "name")
}

func TestRegisterForm_BadEmail(t *testing.T) {
	for _, email := range []string{"", "not-an-email", "Léa <lea@example.com>"} {
		f := RegisterForm{Name: "Léa", Email: email, Password: "secret1"}
		errs := f.Validate()
		require.True(t, errs.Has(), "email %q should be rejected", email)
		assert.Contains(t, fieldNames(errs), "email")
	}
}

func TestRegisterForm_ShortPassword(t *testing.T) {
	f := RegisterForm{Name: "Léa", Email: "lea@example.com", Password: "12345"}
	errs := f.Validate()
	require.True(t, errs.Has())
	assert.Contains(t, fieldNames(errs), "password")
}

func TestLoginForm_Valid(t *testing.T) {
	f := LoginForm{Email: "lea@example.com", Password: "whatever"}
	assert.False(t, f.Validate().Has())
}

func TestLoginForm_MissingPassword(t *testing.T) {
	f := LoginForm{Email: "lea@example.com"}
	errs := f.Validate()
	require.True(t, errs.Has())
	assert.Contains(t, fieldNames(errs), "password")
}

func TestItemForm_Valid(t *testing.T) {
	f := ItemForm{Title: "Poussette bleue", Price: "25.50", ListingType: "sale"}
	assert.False(t, f.Validate().Has())

	price, err := f.PriceValue()
	require.NoError(t, err)
	assert.InDelta(t, 25.50, price, 0.001)
}

func TestItemForm_TitleRequired(t *testing.T) {
	f := ItemForm{Title: "   ", Price: "10", ListingType: "rent"}
	errs := f.Validate()
	require.True(t, errs.Has())
	assert.Contains(t, fieldNames(errs), "title")
}

func TestItemForm_TitleTooLong(t *testing.T) {
	f := ItemForm{Title: strings.Repeat("a", MaxTitleLen+1), Price: "10", ListingType: "sale"}
	errs := f.Validate()
	require.True(t, errs.Has())
	assert.Contains(t, fieldNames(errs), "title")
}

func TestItemForm_DescriptionTooLong(t *testing.T) {
	f := ItemForm{
		Title:       "Chaise haute",
		Description: strings.Repeat("b", MaxDescriptionLen+1),
		Price:       "10",
		ListingType: "sale",
	}
	errs := f.Validate()
	require.True(t, errs.Has())
	assert.Contains(t, fieldNames(errs), "description")
}

func TestItemForm_PriceRejected(t *testing.T) {
	for _, price := range []string{"", "abc", "-1", "-0.01"} {
		f := ItemForm{Title: "Lit parapluie", Price: price, ListingType: "sale"}
		errs := f.Validate()
		require.True(t, errs.Has(), "price %q should be rejected", price)
		assert.Contains(t, fieldNames(errs), "price")

		_, err := f.PriceValue()
		assert.ErrorIs(t, err, ErrInvalidPrice)
	}
}

func TestItemForm_ZeroPriceAccepted(t *testing.T) {
	f := ItemForm{Title: "Jouets offerts", Price: "0", ListingType: "sale"}
	assert.False(t, f.Validate().Has())
}

func TestItemForm_ListingType(t *testing.T) {
	f := ItemForm{Title: "Transat", Price: "5", ListingType: "auction"}
	errs := f.Validate()
	require.True(t, errs.Has())
	assert.Contains(t, fieldNames(errs), "listing_type")
}
