package production

import (
	"context"
	"sort"
	"strings"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReplacementService is the read side of reposições: service orders that
// redo a produced order and whose price is a loss
type ReplacementService struct {
	orderRepo production.ServiceOrderRepository
}

// NewReplacementService creates a new ReplacementService
func NewReplacementService(orderRepo production.ServiceOrderRepository) *ReplacementService {
	return &ReplacementService{orderRepo: orderRepo}
}

// List retrieves replacement orders with filtering and pagination
func (s *ReplacementService) List(ctx context.Context, filter ReplacementListFilter) ([]ServiceOrderResponse, int64, error) {
	domainFilter, err := filter.toDomain()
	if err != nil {
		return nil, 0, err
	}
	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToServiceOrderResponses(orders), total, nil
}

// Losses aggregates the replacements of a period by responsible party and
// by reason. Cancelled replacements were never produced and are skipped.
func (s *ReplacementService) Losses(ctx context.Context, filter ReplacementListFilter) (*LossesResponse, error) {
	domainFilter, err := filter.toDomain()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindAllUnpaginated(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	kept := make([]production.ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if o.Status != production.StatusCancelled && o.IsReplacement() {
			kept = append(kept, o)
		}
	}

	summary := pricing.Aggregate(lineTotals(kept))
	from, to, _ := filter.Period.Bounds()
	return &LossesResponse{
		From:          from,
		To:            to,
		Count:         len(kept),
		Total:         summary.Losses,
		ByResponsible: groupLosses(kept, func(o *production.ServiceOrder) string { return string(o.Replacement.Responsible) }),
		ByReason:      groupLosses(kept, func(o *production.ServiceOrder) string { return normalizeReason(o.Replacement.Reason) }),
		Summary:       ToSummaryResponse(summary),
	}, nil
}

// groupLosses sums the replacement amounts per key, largest loss first
func groupLosses(orders []production.ServiceOrder, key func(*production.ServiceOrder) string) []LossGroupResponse {
	lines := make(map[string][]pricing.LineTotal)
	for i := range orders {
		k := key(&orders[i])
		lines[k] = append(lines[k], orders[i].LineTotal())
	}

	groups := make([]LossGroupResponse, 0, len(lines))
	for k, l := range lines {
		groups = append(groups, LossGroupResponse{
			Key:    k,
			Count:  len(l),
			Amount: pricing.Aggregate(l).Losses,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		if c := groups[i].Amount.Cmp(groups[j].Amount); c != 0 {
			return c > 0
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// normalizeReason folds case and inner whitespace so free-text reasons
// typed slightly differently land in one group
func normalizeReason(reason string) string {
	return strings.ToLower(strings.Join(strings.Fields(reason), " "))
}

func (f ReplacementListFilter) toDomain() (shared.Filter, error) {
	domainFilter := f.Query.Filter().With(production.FilterReplacement, true)
	if f.CustomerID != "" {
		id, err := uuid.Parse(f.CustomerID)
		if err != nil {
			return domainFilter, shared.NewDomainError("INVALID_FILTER", "customerId must be a UUID")
		}
		domainFilter.Filters[production.FilterCustomerID] = id
	}
	if f.ProductType != "" {
		domainFilter.Filters[production.FilterProductType] = f.ProductType
	}
	return f.Period.Apply(domainFilter, production.FilterFrom, production.FilterTo)
}
