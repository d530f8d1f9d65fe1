package forms

import (
	"errors"
	"math"
	"testing"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterForm_Validate(t *testing.T) {
	valid := RegisterForm{Username: "alice", Email: "alice@example.com", Password: "secret", ConfirmPassword: "secret"}

	tests := []struct {
		name  string
		form  RegisterForm
		want  string
		field string
	}{
		{name: "valid", form: valid},
		{
			name:  "mismatch wins over length",
			form:  RegisterForm{Username: "alice", Email: "alice@example.com", Password: "abc", ConfirmPassword: "abd"},
			want:  MsgPasswordMismatch,
			field: "ConfirmPassword",
		},
		{
			name:  "five characters",
			form:  RegisterForm{Username: "alice", Email: "alice@example.com", Password: "12345", ConfirmPassword: "12345"},
			want:  MsgPasswordTooShort,
			field: "Password",
		},
		{
			name: "length wins over email",
			form: RegisterForm{Username: "alice", Email: "nope", Password: "12345", ConfirmPassword: "12345"},
			want: MsgPasswordTooShort,
		},
		{
			name:  "bad email",
			form:  RegisterForm{Username: "alice", Email: "nope", Password: "secret", ConfirmPassword: "secret"},
			want:  MsgInvalidEmail,
			field: "Email",
		},
		{
			name:  "missing username",
			form:  RegisterForm{Username: "  ", Email: "alice@example.com", Password: "secret", ConfirmPassword: "secret"},
			want:  MsgAllRequired,
			field: "Username",
		},
		{
			name: "all empty reports length",
			form: RegisterForm{},
			want: MsgPasswordTooShort,
		},
		{
			name: "six multibyte characters are enough",
			form: RegisterForm{Username: "ö", Email: "o@example.com", Password: "äöüßéè", ConfirmPassword: "äöüßéè"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.form
			err := f.Validate()
			if tt.want == "" {
				require.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.want, ve.Message)
			assert.Equal(t, tt.want, err.Error())
			if tt.field != "" {
				assert.Equal(t, tt.field, ve.Field)
			}
			assert.True(t, IsValidation(err))
		})
	}
}

func TestRegisterForm_TrimsIdentity(t *testing.T) {
	f := RegisterForm{Username: " alice ", Email: " alice@example.com\n", Password: "secret", ConfirmPassword: "secret"}
	require.NoError(t, f.Validate())
	assert.Equal(t, "alice", f.Username)
	assert.Equal(t, "alice@example.com", f.Email)
}

func TestLoginForm_Validate(t *testing.T) {
	require.NoError(t, (&LoginForm{Email: "a@b.co", Password: "x"}).Validate())

	for _, f := range []LoginForm{{Email: "a@b.co"}, {Password: "x"}, {Email: " ", Password: "x"}} {
		err := f.Validate()
		require.EqualError(t, err, MsgLoginRequired)
	}
}

func TestProductForm_Input(t *testing.T) {
	f := ProductForm{
		Name:        "  Desk ",
		Description: " Oak desk ",
		Price:       " 120.50 ",
		Categories:  []string{"c1", " ", " c2 "},
	}

	got, err := f.Input()
	require.NoError(t, err)

	want := models.ProductInput{Name: "Desk", Description: "Oak desk", Price: 120.5, Categories: []string{"c1", "c2"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("input mismatch (-want +got):\n%s", diff)
	}
}

func TestProductForm_Input_Errors(t *testing.T) {
	tests := []struct {
		name string
		form ProductForm
		want string
	}{
		{name: "no name", form: ProductForm{Price: "1"}, want: MsgProductNameRequired},
		{name: "name before price", form: ProductForm{Price: "x"}, want: MsgProductNameRequired},
		{name: "empty price", form: ProductForm{Name: "Desk"}, want: MsgPriceInvalid},
		{name: "negative price", form: ProductForm{Name: "Desk", Price: "-1"}, want: MsgPriceInvalid},
		{name: "text price", form: ProductForm{Name: "Desk", Price: "ten"}, want: MsgPriceInvalid},
		{name: "NaN", form: ProductForm{Name: "Desk", Price: "NaN"}, want: MsgPriceInvalid},
		{name: "Inf", form: ProductForm{Name: "Desk", Price: "+Inf"}, want: MsgPriceInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.form.Input()
			require.EqualError(t, err, tt.want)
		})
	}
}

func TestParsePrice(t *testing.T) {
	p, err := ParsePrice("0")
	require.NoError(t, err)
	assert.Zero(t, p)

	p, err = ParsePrice("19.99")
	require.NoError(t, err)
	assert.InDelta(t, 19.99, p, 1e-9)

	_, err = ParsePrice("-0.01")
	assert.Error(t, err)
}

func TestCheckProduct(t *testing.T) {
	require.NoError(t, CheckProduct(models.ProductInput{Name: "Desk", Price: 0}))
	require.EqualError(t, CheckProduct(models.ProductInput{Name: " ", Price: 1}), MsgProductNameRequired)
	require.EqualError(t, CheckProduct(models.ProductInput{Name: "Desk", Price: -3}), MsgPriceInvalid)
	require.EqualError(t, CheckProduct(models.ProductInput{Name: "Desk", Price: math.NaN()}), MsgPriceInvalid)
}

func TestCheckCategory(t *testing.T) {
	require.NoError(t, CheckCategory(models.CategoryInput{Name: "Office"}))
	require.EqualError(t, CheckCategory(models.CategoryInput{Description: "no name"}), MsgCategoryNameRequired)
}

func TestCheckProfile(t *testing.T) {
	require.NoError(t, CheckProfile(models.ProfileInput{Username: "bob", Email: "bob@example.com"}))
	require.EqualError(t, CheckProfile(models.ProfileInput{Email: "bob@example.com"}), MsgProfileRequired)
	require.EqualError(t, CheckProfile(models.ProfileInput{Username: "bob", Email: "bob"}), MsgInvalidEmail)
}

func TestIsValidation(t *testing.T) {
	assert.False(t, IsValidation(errors.New("network")))
	assert.False(t, IsValidation(nil))
}
