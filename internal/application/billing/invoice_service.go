package billing

import (
	"context"
	"sort"
	"time"

	"github.com/flexo/backend/internal/domain/billing"
	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerFinder loads the billed customer
type CustomerFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error)
}

// InvoiceService handles invoicing of finished service orders
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	orderRepo   production.ServiceOrderRepository
	customers   CustomerFinder
	txm         shared.TxManager
	events      shared.EventPublisher
	logger      *zap.Logger
	now         func() time.Time
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo billing.InvoiceRepository,
	orderRepo production.ServiceOrderRepository,
	customers CustomerFinder,
	txm shared.TxManager,
	events shared.EventPublisher,
	logger *zap.Logger,
) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		customers:   customers,
		txm:         txm,
		events:      events,
		logger:      logger,
		now:         time.Now,
	}
}

// Create bills the given orders. The invoice and the order links are
// written in one transaction.
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	if _, err := s.customers.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "dueDate must be YYYY-MM-DD")
	}

	var invoice *billing.Invoice
	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		orders, err := s.loadOrders(ctx, req.ServiceOrderIDs)
		if err != nil {
			return err
		}
		number, err := s.invoiceRepo.NextNumber(ctx)
		if err != nil {
			return err
		}
		invoice, err = billing.NewInvoice(number, req.CustomerID, orders, dueDate)
		if err != nil {
			return err
		}
		invoice.Notes = req.Notes
		if req.CreatedBy != nil {
			invoice.SetCreatedBy(*req.CreatedBy)
		}
		if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
			return err
		}
		return s.orderRepo.SaveAll(ctx, orders)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("invoice created",
		zap.Int64("number", invoice.Number),
		zap.String("customer_id", invoice.CustomerID.String()),
		zap.Int("orders", len(invoice.Items)),
		zap.String("total", invoice.Total.StringFixed(2)),
	)
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves invoices with filtering and pagination
func (s *InvoiceService) List(ctx context.Context, filter InvoiceListFilter) ([]InvoiceResponse, int64, error) {
	domainFilter := filter.Query.Filter()
	if filter.CustomerID != "" {
		id, err := uuid.Parse(filter.CustomerID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_FILTER", "customerId must be a UUID")
		}
		domainFilter.Filters["customer_id"] = id
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	invoices, err := s.invoiceRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.invoiceRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToInvoiceResponses(invoices), total, nil
}

// Update changes notes and due date of an open invoice
func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "dueDate must be YYYY-MM-DD")
	}
	if err := invoice.SetNotes(req.Notes, dueDate); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Issue marks an open invoice as sent
func (s *InvoiceService) Issue(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	return s.transition(ctx, id, func(i *billing.Invoice) error { return i.Issue(s.now()) })
}

// Pay records the payment of an issued invoice
func (s *InvoiceService) Pay(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	return s.transition(ctx, id, func(i *billing.Invoice) error { return i.Pay(s.now()) })
}

// Cancel voids an open or issued invoice and releases its orders
func (s *InvoiceService) Cancel(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	var invoice *billing.Invoice
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		invoice, err = s.invoiceRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		orders, err := s.loadOrders(ctx, invoice.OrderIDs())
		if err != nil {
			return err
		}
		if err := invoice.Cancel(orders); err != nil {
			return err
		}
		if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
			return err
		}
		return s.orderRepo.SaveAll(ctx, orders)
	})
	if err != nil {
		return nil, err
	}
	if err := shared.PublishAndClear(ctx, s.events, invoice); err != nil {
		return nil, err
	}
	s.logger.Info("invoice cancelled", zap.Int64("number", invoice.Number))
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

func (s *InvoiceService) transition(ctx context.Context, id uuid.UUID, apply func(*billing.Invoice) error) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(invoice); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	if err := shared.PublishAndClear(ctx, s.events, invoice); err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// loadOrders fetches the orders in number order, failing when any is missing
func (s *InvoiceService) loadOrders(ctx context.Context, ids []uuid.UUID) ([]*production.ServiceOrder, error) {
	found, err := s.orderRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	unique := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	if len(found) != len(unique) {
		return nil, shared.NotFound("Service order")
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Number < found[j].Number })

	orders := make([]*production.ServiceOrder, len(found))
	for i := range found {
		orders[i] = &found[i]
	}
	return orders, nil
}
