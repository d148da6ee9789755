package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("full address", func(t *testing.T) {
		a, err := NewAddress("Rua XV de Novembro", "100", "Centro", "Curitiba", "pr",
			WithComplement("Sala 2"), WithZipCode("80020-310"))
		require.NoError(t, err)
		assert.Equal(t, "PR", a.State())
		assert.Equal(t, "80020310", a.ZipCode())
		assert.Equal(t, "Rua XV de Novembro, 100 - Sala 2 - Centro, Curitiba/PR - 80020-310", a.FullAddress())
	})

	t.Run("city and state only", func(t *testing.T) {
		a, err := NewAddress("", "", "", "Joinville", "SC")
		require.NoError(t, err)
		assert.Equal(t, "Joinville/SC", a.FullAddress())
	})

	t.Run("invalid state", func(t *testing.T) {
		_, err := NewAddress("Rua A", "1", "", "Lisboa", "XX")
		assert.Error(t, err)
	})

	t.Run("invalid zip", func(t *testing.T) {
		_, err := NewAddress("Rua A", "1", "", "Curitiba", "PR", WithZipCode("123"))
		assert.Error(t, err)
	})
}

func TestAddressDTO_RoundTrip(t *testing.T) {
	empty, err := AddressDTO{}.ToAddress()
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	dto := AddressDTO{Street: "Av. Brasil", Number: "55", City: "Maringá", State: "PR", ZipCode: "87013-000"}
	addr, err := dto.ToAddress()
	require.NoError(t, err)
	assert.Equal(t, "87013000", addr.ToDTO().ZipCode)
}
