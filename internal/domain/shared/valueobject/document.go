package valueobject

import (
	"errors"
	"strings"
)

// DocumentKind distinguishes company (CNPJ) from person (CPF) tax ids
type DocumentKind string

const (
	DocumentCNPJ DocumentKind = "cnpj"
	DocumentCPF  DocumentKind = "cpf"
)

// ErrInvalidDocument is returned when a tax id fails length or check-digit validation
var ErrInvalidDocument = errors.New("invalid CNPJ/CPF")

// Document is a Brazilian tax id (CNPJ or CPF) stored as digits only
type Document struct {
	digits string
	kind   DocumentKind
}

// NewDocument parses a CNPJ (14 digits) or CPF (11 digits), ignoring punctuation
func NewDocument(raw string) (Document, error) {
	digits := OnlyDigits(raw)
	switch len(digits) {
	case 14:
		if !validCNPJ(digits) {
			return Document{}, ErrInvalidDocument
		}
		return Document{digits: digits, kind: DocumentCNPJ}, nil
	case 11:
		if !validCPF(digits) {
			return Document{}, ErrInvalidDocument
		}
		return Document{digits: digits, kind: DocumentCPF}, nil
	default:
		return Document{}, ErrInvalidDocument
	}
}

// IsValidDocument reports whether raw is a valid CNPJ or CPF
func IsValidDocument(raw string) bool {
	_, err := NewDocument(raw)
	return err == nil
}

func (d Document) Digits() string {
	return d.digits
}

func (d Document) Kind() DocumentKind {
	return d.kind
}

func (d Document) IsEmpty() bool {
	return d.digits == ""
}

// Formatted returns the punctuated form (00.000.000/0000-00 or 000.000.000-00)
func (d Document) Formatted() string {
	s := d.digits
	switch d.kind {
	case DocumentCNPJ:
		return s[0:2] + "." + s[2:5] + "." + s[5:8] + "/" + s[8:12] + "-" + s[12:14]
	case DocumentCPF:
		return s[0:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:11]
	default:
		return s
	}
}

func (d Document) String() string {
	return d.Formatted()
}

// OnlyDigits strips every non-digit rune
func OnlyDigits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

func checkDigit(digits string, weights []int) byte {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rem := sum % 11
	if rem < 2 {
		return '0'
	}
	return byte('0' + 11 - rem)
}

func validCNPJ(s string) bool {
	if allSame(s) {
		return false
	}
	w1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	w2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	return checkDigit(s, w1) == s[12] && checkDigit(s, w2) == s[13]
}

func validCPF(s string) bool {
	if allSame(s) {
		return false
	}
	w1 := []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	w2 := []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	return checkDigit(s, w1) == s[9] && checkDigit(s, w2) == s[10]
}
