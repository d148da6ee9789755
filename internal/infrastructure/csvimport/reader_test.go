package csvimport

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func readAll(t *testing.T, r *Reader) []Row {
	t.Helper()
	var rows []Row
	for {
		row, err := r.Next()
		if err == io.EOF {
			return rows
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}
}

func TestHeaderKey(t *testing.T) {
	tests := map[string]string{
		"Razão Social":   "razao_social",
		"razao_social":   "razao_social",
		" CNPJ/CPF ":     "cnpj_cpf",
		"Inscrição Est.": "inscricao_est",
		"E-mail":         "e_mail",
		"":               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, HeaderKey(in), in)
	}
}

func TestReader_SemicolonUTF8WithBOM(t *testing.T) {
	data := "\xEF\xBB\xBFRazão Social;CNPJ;Cidade\n" +
		"Embalagens Sul Ltda;11.222.333/0001-81;Curitiba\n" +
		";;\n" +
		"Caixas Norte;;Belém\n"

	r, err := NewReader(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, ';', r.Comma())
	assert.False(t, r.Latin1())
	assert.Equal(t, []string{"razao_social", "cnpj", "cidade"}, r.Headers())

	rows := readAll(t, r)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "Embalagens Sul Ltda", rows[0].Get("nome", "Razão Social"))
	assert.Equal(t, "11.222.333/0001-81", rows[0].Get("cnpj"))
	assert.Equal(t, 4, rows[1].Line, "blank line is skipped but still counted")
	assert.Equal(t, "Belém", rows[1].Get("cidade"))
	assert.Empty(t, rows[1].Get("cnpj"))
}

func TestReader_Windows1252(t *testing.T) {
	utf := "nome,cidade\nGráfica São João,São Paulo\n"
	encoded, err := charmap.Windows1252.NewEncoder().String(utf)
	require.NoError(t, err)

	r, err := NewReader(bytes.NewReader([]byte(encoded)))
	require.NoError(t, err)
	assert.True(t, r.Latin1())
	assert.Equal(t, ',', r.Comma())

	rows := readAll(t, r)
	require.Len(t, rows, 1)
	assert.Equal(t, "Gráfica São João", rows[0].Get("nome"))
	assert.Equal(t, "São Paulo", rows[0].Get("cidade"))
}

func TestReader_Windows1252AfterLongASCIIPrefix(t *testing.T) {
	var b strings.Builder
	b.WriteString("nome;cidade\n")
	for b.Len() < 5000 {
		b.WriteString("Embalagens Sul Ltda;Curitiba\n")
	}
	b.WriteString("Gráfica São João;Maringá\n")
	encoded, err := charmap.Windows1252.NewEncoder().String(b.String())
	require.NoError(t, err)

	r, err := NewReader(strings.NewReader(encoded))
	require.NoError(t, err)
	assert.True(t, r.Latin1())

	rows := readAll(t, r)
	last := rows[len(rows)-1]
	assert.Equal(t, "Gráfica São João", last.Get("nome"))
	assert.Equal(t, "Maringá", last.Get("cidade"))
	assert.True(t, utf8.ValidString(last.Get("nome")))
}

func TestReader_TooLarge(t *testing.T) {
	big := io.MultiReader(strings.NewReader("nome\n"), strings.NewReader(strings.Repeat("a", MaxFileSize)))
	_, err := NewReader(big)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestReader_ForcedComma(t *testing.T) {
	r, err := NewReader(strings.NewReader("a;b|c\n1;2|3\n"), WithComma('|'))
	require.NoError(t, err)
	assert.Equal(t, []string{"a;b", "c"}, r.Headers())
	assert.True(t, r.Has("C"))
	assert.False(t, r.Has("d"))
}

func TestReader_EmptyFile(t *testing.T) {
	_, err := NewReader(strings.NewReader("  \n"))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestReader_ShortRowsReadAsBlank(t *testing.T) {
	r, err := NewReader(strings.NewReader("nome,cidade,uf\nAcme\n"))
	require.NoError(t, err)
	rows := readAll(t, r)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0].Get("nome"))
	assert.Empty(t, rows[0].Get("uf"))
}

func TestErrors(t *testing.T) {
	errs := NewErrors(2)
	assert.Equal(t, "no errors", errs.String())

	errs.Add(RowError{Line: 2, Column: "cnpj", Code: "INVALID_DOCUMENT", Message: "invalid CNPJ"})
	errs.Add(RowError{Line: 3, Code: "ALREADY_EXISTS", Message: "duplicate"})
	errs.Add(RowError{Line: 4, Code: "ALREADY_EXISTS", Message: "duplicate"})

	assert.Len(t, errs.Items(), 2)
	assert.Equal(t, 3, errs.Total())
	assert.True(t, errs.Truncated())
	assert.Contains(t, errs.String(), `line 2, column "cnpj": invalid CNPJ`)
	assert.Contains(t, errs.String(), "showing the first 2")
}
