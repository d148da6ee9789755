package partner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const customersCSV = `Razão Social;CNPJ/CPF;Cidade;UF;E-mail
Embalagens Sul Ltda;11.222.333/0001-81;Curitiba;pr;compras@embsul.com.br
Caixas Norte;11.111.111/1111-11;Belém;PA;
Rótulos Leste;11.444.777/0001-61;Vitória;ES;
Embalagens Sul Filial;11222333000181;Londrina;PR;
`

func TestCustomerService_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("creates valid rows and reports the rest", func(t *testing.T) {
		f := newCustomerFixture()
		f.customers.On("ExistsByDocument", ctx, "11222333000181").Return(false, nil)
		f.customers.On("ExistsByDocument", ctx, "11444777000161").Return(true, nil)
		f.customers.On("Save", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)
		f.events.On("Publish", ctx, mock.Anything).Return(nil)

		res, err := f.service.Import(ctx, strings.NewReader(customersCSV), CustomerImportOptions{})

		require.NoError(t, err)
		assert.Equal(t, 4, res.Rows)
		assert.Equal(t, 1, res.Imported)
		assert.Equal(t, 3, res.Failed)
		require.Len(t, res.Errors, 3)
		assert.Equal(t, 3, res.Errors[0].Line)
		assert.Equal(t, "INVALID_DOCUMENT", res.Errors[0].Code)
		assert.Equal(t, "ALREADY_EXISTS", res.Errors[1].Code)
		assert.Equal(t, "DUPLICATE_IN_FILE", res.Errors[2].Code)
		assert.Contains(t, res.Errors[2].Message, "line 2")
		f.customers.AssertNumberOfCalls(t, "Save", 1)
	})

	t.Run("skips registered documents when asked", func(t *testing.T) {
		f := newCustomerFixture()
		f.customers.On("ExistsByDocument", ctx, "11222333000181").Return(false, nil)
		f.customers.On("ExistsByDocument", ctx, "11444777000161").Return(true, nil)
		f.customers.On("Save", ctx, mock.Anything).Return(nil)
		f.events.On("Publish", ctx, mock.Anything).Return(nil)

		res, err := f.service.Import(ctx, strings.NewReader(customersCSV), CustomerImportOptions{SkipExisting: true})

		require.NoError(t, err)
		assert.Equal(t, 1, res.Imported)
		assert.Equal(t, 1, res.Skipped)
		assert.Equal(t, 2, res.Failed)
	})

	t.Run("dry run saves nothing", func(t *testing.T) {
		f := newCustomerFixture()
		f.customers.On("ExistsByDocument", ctx, "11222333000181").Return(false, nil)
		f.customers.On("ExistsByDocument", ctx, "11444777000161").Return(false, nil)

		res, err := f.service.Import(ctx, strings.NewReader(customersCSV), CustomerImportOptions{DryRun: true})

		require.NoError(t, err)
		assert.True(t, res.DryRun)
		assert.Equal(t, 2, res.Imported)
		assert.Equal(t, 2, res.Failed)
		f.customers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("invalid address is a row error", func(t *testing.T) {
		f := newCustomerFixture()
		f.customers.On("ExistsByDocument", ctx, "11222333000181").Return(false, nil)

		csv := "nome,cnpj,cidade,uf\nAcme,11222333000181,Curitiba,XX\n"
		res, err := f.service.Import(ctx, strings.NewReader(csv), CustomerImportOptions{DryRun: true})

		require.NoError(t, err)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "INVALID_ADDRESS", res.Errors[0].Code)
	})

	t.Run("repository failure aborts", func(t *testing.T) {
		f := newCustomerFixture()
		f.customers.On("ExistsByDocument", ctx, "11222333000181").Return(false, errors.New("connection reset"))

		_, err := f.service.Import(ctx, strings.NewReader(customersCSV), CustomerImportOptions{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("requires name and document columns", func(t *testing.T) {
		f := newCustomerFixture()

		_, err := f.service.Import(ctx, strings.NewReader("cidade;uf\nCuritiba;PR\n"), CustomerImportOptions{})

		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_FILE", de.Code)
		assert.Contains(t, de.Message, "razao_social")
		assert.Contains(t, de.Message, "cnpj_cpf")
	})
}
