package report

import (
	"time"
)

// Content types of generated documents
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// =============================================================================
// Requests
// =============================================================================

// PeriodRequest selects a date range, both ends inclusive
type PeriodRequest struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// OrdersReportRequest filters the period order report
type OrdersReportRequest struct {
	PeriodRequest
	CustomerID  string `form:"customerId" binding:"omitempty,uuid"`
	ProductType string `form:"productType" binding:"omitempty,oneof=cliche_corrugated die_cut_block"`
}

// =============================================================================
// Responses
// =============================================================================

// Document is a generated file ready to be streamed
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
	// Cached is true when the bytes came from the document cache
	Cached bool
}

// ArchiveResponse points at an archived invoice PDF
type ArchiveResponse struct {
	ObjectKey   string    `json:"objectKey"`
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Size        int       `json:"size,omitempty"`
	Reused      bool      `json:"reused"`
}
