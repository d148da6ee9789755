package printing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed templates/*.html
var templateFS embed.FS

// Sheet template names
const (
	TemplateServiceOrder = "service_order.html"
	TemplateInvoice      = "invoice.html"
)

// TemplateEngine renders the embedded sheet templates with pt-BR formatting
type TemplateEngine struct {
	templates *template.Template
}

// NewTemplateEngine parses the embedded templates
func NewTemplateEngine() (*TemplateEngine, error) {
	tmpl, err := template.New("sheets").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, NewRenderError(ErrCodeInvalidHTML, "failed to parse sheet templates", err)
	}
	return &TemplateEngine{templates: tmpl}, nil
}

// Render executes the named template
func (e *TemplateEngine) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "failed to execute template "+name, err)
	}
	return buf.String(), nil
}

// FuncMap returns the template helpers
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"brl":      FormatBRL,
		"num":      FormatNumber,
		"date":     FormatDate,
		"datetime": FormatDateTime,
		"title":    Title,
		"upper":    Upper,
		"orderNo":  FormatOrderNumber,
		"add":      func(a, b int) int { return a + b },
	}
}

// FormatBRL formats an amount as Brazilian reais, e.g. R$ 1.234,50
func FormatBRL(v decimal.Decimal) string {
	return "R$ " + FormatNumber(v.Round(2), 2)
}

// FormatNumber formats with pt-BR separators and a fixed number of decimals
func FormatNumber(v decimal.Decimal, places int) string {
	f, _ := v.Round(int32(places)).Float64()
	return message.NewPrinter(language.BrazilianPortuguese).Sprint(number.Decimal(f, number.Scale(places)))
}

// Title capitalizes each word with pt-BR rules. Casers are stateful, so
// one is built per call.
func Title(s string) string {
	return cases.Title(language.BrazilianPortuguese).String(s)
}

// Upper uppercases with pt-BR rules
func Upper(s string) string {
	return cases.Upper(language.BrazilianPortuguese).String(s)
}

// FormatDate formats a date as dd/mm/yyyy; nil and zero times print empty
func FormatDate(v any) string {
	t, ok := asTime(v)
	if !ok {
		return ""
	}
	return t.Format("02/01/2006")
}

// FormatDateTime formats a timestamp as dd/mm/yyyy hh:mm
func FormatDateTime(v any) string {
	t, ok := asTime(v)
	if !ok {
		return ""
	}
	return t.Format("02/01/2006 15:04")
}

// FormatOrderNumber pads a service order number to six digits
func FormatOrderNumber(n int64) string {
	return fmt.Sprintf("%06d", n)
}

// FormatDocument masks a CNPJ (14 digits) or CPF (11 digits); anything
// else is returned unchanged
func FormatDocument(digits string) string {
	switch len(digits) {
	case 14:
		return digits[0:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:]
	case 11:
		return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
	}
	return digits
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	}
	return time.Time{}, false
}
