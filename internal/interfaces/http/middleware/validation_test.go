package middleware

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customerForm struct {
	Name     string `json:"name" validate:"required"`
	Document string `json:"document" validate:"required,document"`
	State    string `json:"state" validate:"omitempty,uf"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterValidations(v))
	return v
}

func TestRegisterValidations(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(customerForm{Name: "Acme", Document: "11.222.333/0001-81", State: "SP"}))
	assert.NoError(t, v.Struct(customerForm{Name: "Ana", Document: "529.982.247-25"}))

	err := v.Struct(customerForm{Name: "Acme", Document: "11.222.333/0001-80", State: "XX"})
	require.Error(t, err)

	resp := FormatValidationErrors(err, "req-1")
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ERR_VALIDATION", resp.Error.Code)
	assert.Equal(t, "req-1", resp.Error.RequestID)
	require.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "document", resp.Error.Details[0].Field)
	assert.Equal(t, "Invalid CNPJ or CPF", resp.Error.Details[0].Message)
	assert.Equal(t, "state", resp.Error.Details[1].Field)
	assert.Equal(t, "Invalid state code", resp.Error.Details[1].Message)
}

func TestFormatValidationErrors_Required(t *testing.T) {
	v := newValidator(t)
	err := v.Struct(customerForm{})
	resp := FormatValidationErrors(err, "")

	fields := make(map[string]string)
	for _, d := range resp.Error.Details {
		fields[d.Field] = d.Message
	}
	assert.Equal(t, "This field is required", fields["name"])
	assert.Equal(t, "This field is required", fields["document"])
}

func TestFormatValidationErrors_NonValidatorError(t *testing.T) {
	resp := FormatValidationErrors(assert.AnError, "r")
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Error.Details)
}
