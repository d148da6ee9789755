package partner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/domain/shared/valueobject"
	"github.com/flexo/backend/internal/infrastructure/csvimport"
)

// Header aliases accepted for each customer column, Portuguese first
var (
	colName       = []string{"razao_social", "nome", "name"}
	colTradeName  = []string{"nome_fantasia", "fantasia", "trade_name"}
	colDocument   = []string{"cnpj_cpf", "cnpj", "cpf", "documento", "document"}
	colStateReg   = []string{"inscricao_estadual", "ie", "state_registration"}
	colEmail      = []string{"email", "e_mail"}
	colPhone      = []string{"telefone", "fone", "phone"}
	colContact    = []string{"contato", "contact_name", "contact"}
	colStreet     = []string{"logradouro", "endereco", "rua", "street"}
	colNumber     = []string{"numero", "number"}
	colComplement = []string{"complemento", "complement"}
	colDistrict   = []string{"bairro", "district"}
	colCity       = []string{"cidade", "municipio", "city"}
	colState      = []string{"uf", "estado", "state"}
	colZip        = []string{"cep", "zip_code", "zip"}
	colNotes      = []string{"observacoes", "obs", "notes"}
)

// CustomerImportOptions tunes an import run
type CustomerImportOptions struct {
	// DryRun validates every row without saving
	DryRun bool
	// SkipExisting counts rows whose document is already registered as
	// skipped instead of failed
	SkipExisting bool
	MaxErrors    int
}

// CustomerImportResult summarises an import run
type CustomerImportResult struct {
	Rows      int                  `json:"rows"`
	Imported  int                  `json:"imported"`
	Skipped   int                  `json:"skipped"`
	Failed    int                  `json:"failed"`
	DryRun    bool                 `json:"dryRun"`
	Errors    []csvimport.RowError `json:"errors,omitempty"`
	Truncated bool                 `json:"truncated,omitempty"`
}

// Import creates customers from a CSV export. Rows failing a domain rule
// are reported and the run continues; repository failures abort it.
func (s *CustomerService) Import(ctx context.Context, src io.Reader, opts CustomerImportOptions) (*CustomerImportResult, error) {
	reader, err := csvimport.NewReader(src)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_FILE", err.Error())
	}
	var missing []string
	for _, col := range [][]string{colName, colDocument} {
		if !reader.Has(col...) {
			missing = append(missing, col[0])
		}
	}
	if len(missing) > 0 {
		return nil, shared.NewDomainError("INVALID_FILE", "missing columns: "+strings.Join(missing, ", "))
	}

	res := &CustomerImportResult{DryRun: opts.DryRun}
	errs := csvimport.NewErrors(opts.MaxErrors)
	seen := make(map[string]int)

	for {
		row, err := reader.Next()
		if err == io.EOF {
			break
		}
		res.Rows++
		if err != nil {
			res.Failed++
			errs.Add(csvimport.RowError{Line: row.Line, Code: "MALFORMED_ROW", Message: err.Error()})
			continue
		}

		req := customerRequestFromRow(row)
		doc := valueobject.OnlyDigits(req.Document)
		if first, dup := seen[doc]; dup && doc != "" {
			res.Failed++
			errs.Add(csvimport.RowError{
				Line:    row.Line,
				Column:  colDocument[0],
				Code:    "DUPLICATE_IN_FILE",
				Message: fmt.Sprintf("document already used on line %d", first),
			})
			continue
		}
		seen[doc] = row.Line

		if err := s.importRow(ctx, req, opts.DryRun); err != nil {
			var de *shared.DomainError
			if !errors.As(err, &de) {
				return nil, fmt.Errorf("line %d: %w", row.Line, err)
			}
			if opts.SkipExisting && errors.Is(err, shared.ErrAlreadyExists) {
				res.Skipped++
				continue
			}
			res.Failed++
			errs.Add(csvimport.RowError{Line: row.Line, Code: de.Code, Message: de.Message})
			continue
		}
		res.Imported++
	}

	res.Errors = errs.Items()
	res.Truncated = errs.Truncated()
	return res, nil
}

func (s *CustomerService) importRow(ctx context.Context, req CustomerRequest, dryRun bool) error {
	if !dryRun {
		_, err := s.Create(ctx, req)
		return err
	}
	customer, err := partner.NewCustomer(req.Name, req.Document)
	if err != nil {
		return err
	}
	exists, err := s.customerRepo.ExistsByDocument(ctx, customer.Document)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("ALREADY_EXISTS", "A customer with this document already exists")
	}
	return s.apply(ctx, customer, req)
}

func customerRequestFromRow(row csvimport.Row) CustomerRequest {
	return CustomerRequest{
		Name:              row.Get(colName...),
		TradeName:         row.Get(colTradeName...),
		Document:          row.Get(colDocument...),
		StateRegistration: row.Get(colStateReg...),
		Email:             row.Get(colEmail...),
		Phone:             row.Get(colPhone...),
		ContactName:       row.Get(colContact...),
		Notes:             row.Get(colNotes...),
		Address: AddressRequest{
			Street:     row.Get(colStreet...),
			Number:     row.Get(colNumber...),
			Complement: row.Get(colComplement...),
			District:   row.Get(colDistrict...),
			City:       row.Get(colCity...),
			State:      strings.ToUpper(row.Get(colState...)),
			ZipCode:    row.Get(colZip...),
		},
	}
}
