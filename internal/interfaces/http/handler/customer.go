package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	partnerapp "github.com/flexo/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImportFileSize = 5 << 20

// CustomerService is the part of partnerapp.CustomerService used over HTTP
type CustomerService interface {
	Create(ctx context.Context, req partnerapp.CustomerRequest) (*partnerapp.CustomerResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*partnerapp.CustomerResponse, error)
	List(ctx context.Context, filter partnerapp.CustomerListFilter) ([]partnerapp.CustomerResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req partnerapp.CustomerRequest) (*partnerapp.CustomerResponse, error)
	Activate(ctx context.Context, id uuid.UUID) (*partnerapp.CustomerResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*partnerapp.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Import(ctx context.Context, src io.Reader, opts partnerapp.CustomerImportOptions) (*partnerapp.CustomerImportResult, error)
}

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create godoc
// @ID           createCustomer
// @Summary      Create a new customer
// @Description  Document must be a valid CNPJ or CPF and unique
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.CustomerRequest true "Customer"
// @Success      201 {object} APIResponse[partnerapp.CustomerResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customer [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req partnerapp.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = createdBy(c)

	customer, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, customer)
}

// GetByID godoc
// @ID           getCustomer
// @Summary      Get customer by ID
// @Tags         customer
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.CustomerResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customer/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "customer")
		return
	}
	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Description  Paged list with free-text search over name, trade name, document, email and city
// @Tags         customer
// @Produce      json
// @Param        page        query int    false "Page number" default(1)
// @Param        limit       query int    false "Page size" default(10) maximum(100)
// @Param        search      query string false "Search text"
// @Param        sortKey     query string false "Sort field" Enums(name, tradeName, document, email, city, state, active, createdAt)
// @Param        sortValue   query string false "Sort direction" Enums(asc, desc)
// @Param        active      query bool   false "Active flag"
// @Param        city        query string false "City"
// @Param        state       query string false "UF"
// @Param        transportId query string false "Default carrier" format(uuid)
// @Success      200 {object} APIResponse[[]partnerapp.CustomerResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customer [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var filter partnerapp.CustomerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	customers, total, err := h.customerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page := filter.Query.Filter()
	h.SuccessWithMeta(c, customers, total, page.Page, page.Limit)
}

// Update godoc
// @ID           updateCustomer
// @Summary      Update a customer
// @Description  Replaces every field
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Customer ID" format(uuid)
// @Param        request body partnerapp.CustomerRequest true "Customer"
// @Success      200 {object} APIResponse[partnerapp.CustomerResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customer/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "customer")
		return
	}
	var req partnerapp.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	customer, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Activate godoc
// @ID           activateCustomer
// @Summary      Activate a customer
// @Tags         customer
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.CustomerResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customer/{id}/activate [post]
func (h *CustomerHandler) Activate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "customer")
		return
	}
	customer, err := h.customerService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Deactivate godoc
// @ID           deactivateCustomer
// @Summary      Deactivate a customer
// @Description  Inactive customers cannot receive new service orders
// @Tags         customer
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.CustomerResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customer/{id}/deactivate [post]
func (h *CustomerHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "customer")
		return
	}
	customer, err := h.customerService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Delete godoc
// @ID           deleteCustomer
// @Summary      Delete a customer
// @Description  Refused while printers, blocks, orders or invoices reference it
// @Tags         customer
// @Param        id path string true "Customer ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customer/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.InvalidID(c, "customer")
		return
	}
	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Import godoc
// @ID           importCustomers
// @Summary      Import customers from CSV
// @Description  Accepts ';' or ',' separated files in UTF-8 or Windows-1252. Rows breaking a rule are listed, the rest are created.
// @Tags         customer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "CSV file"
// @Param        dryRun query bool false "Validate without saving"
// @Param        skipExisting query bool false "Skip documents already registered"
// @Success      200 {object} APIResponse[partnerapp.CustomerImportResult]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      413 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customer/import [post]
func (h *CustomerHandler) Import(c *gin.Context) {
	var opts partnerapp.CustomerImportOptions
	for param, dst := range map[string]*bool{"dryRun": &opts.DryRun, "skipExisting": &opts.SkipExisting} {
		if v := c.Query(param); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				h.BadRequest(c, param+" must be true or false")
				return
			}
			*dst = b
		}
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	defer file.Close()
	if header.Size > maxImportFileSize {
		h.Error(c, http.StatusRequestEntityTooLarge, "ERR_FILE_TOO_LARGE", "file exceeds the 5MB limit")
		return
	}

	result, err := h.customerService.Import(c.Request.Context(), file, opts)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
