package csvimport

import (
	"fmt"
	"strings"
)

const defaultMaxErrors = 100

// RowError is a problem found on one line of the file
type RowError struct {
	Line    int    `json:"line"`
	Column  string `json:"column,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("line %d, column %q: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Errors keeps the first max row errors and counts the rest
type Errors struct {
	items []RowError
	max   int
	total int
}

// NewErrors creates a collection keeping at most max errors
func NewErrors(max int) *Errors {
	if max <= 0 {
		max = defaultMaxErrors
	}
	return &Errors{max: max}
}

// Add records an error
func (e *Errors) Add(err RowError) {
	e.total++
	if len(e.items) < e.max {
		e.items = append(e.items, err)
	}
}

// Items returns the kept errors
func (e *Errors) Items() []RowError { return e.items }

// Total counts every error added, kept or not
func (e *Errors) Total() int { return e.total }

// Truncated reports whether errors were dropped
func (e *Errors) Truncated() bool { return e.total > len(e.items) }

func (e *Errors) String() string {
	if e.total == 0 {
		return "no errors"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s)", e.total)
	if e.Truncated() {
		fmt.Fprintf(&sb, ", showing the first %d", len(e.items))
	}
	sb.WriteString(":\n")
	for _, item := range e.items {
		fmt.Fprintf(&sb, "  - %s\n", item.Error())
	}
	return sb.String()
}
