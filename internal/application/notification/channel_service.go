package notification

import (
	"context"
	"strings"

	"github.com/flexo/backend/internal/domain/notification"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ChannelService handles channel-related business operations
type ChannelService struct {
	channelRepo      notification.ChannelRepository
	notificationRepo notification.NotificationRepository
}

// NewChannelService creates a new ChannelService
func NewChannelService(channelRepo notification.ChannelRepository, notificationRepo notification.NotificationRepository) *ChannelService {
	return &ChannelService{
		channelRepo:      channelRepo,
		notificationRepo: notificationRepo,
	}
}

// Create creates a new channel. Names are unique, ignoring case.
func (s *ChannelService) Create(ctx context.Context, req ChannelRequest) (*ChannelResponse, error) {
	if err := s.ensureUniqueName(ctx, req.Name); err != nil {
		return nil, err
	}
	channel, err := notification.NewChannel(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if req.Active != nil {
		channel.SetActive(*req.Active)
	}
	if req.CreatedBy != nil {
		channel.SetCreatedBy(*req.CreatedBy)
	}
	if err := s.channelRepo.Save(ctx, channel); err != nil {
		return nil, err
	}
	response := ToChannelResponse(channel)
	return &response, nil
}

// GetByID retrieves a channel by ID
func (s *ChannelService) GetByID(ctx context.Context, id uuid.UUID) (*ChannelResponse, error) {
	channel, err := s.channelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToChannelResponse(channel)
	return &response, nil
}

// List retrieves channels with filtering and pagination
func (s *ChannelService) List(ctx context.Context, filter ChannelListFilter) ([]ChannelResponse, int64, error) {
	domainFilter := filter.Query.Filter()
	if filter.Active != nil {
		domainFilter.Filters["active"] = *filter.Active
	}
	channels, err := s.channelRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.channelRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToChannelResponses(channels), total, nil
}

// Update replaces the channel data
func (s *ChannelService) Update(ctx context.Context, id uuid.UUID, req ChannelRequest) (*ChannelResponse, error) {
	channel, err := s.channelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(req.Name), channel.Name) {
		if err := s.ensureUniqueName(ctx, req.Name); err != nil {
			return nil, err
		}
	}
	if err := channel.Update(req.Name, req.Description); err != nil {
		return nil, err
	}
	if req.Active != nil {
		channel.SetActive(*req.Active)
	}
	if err := s.channelRepo.Save(ctx, channel); err != nil {
		return nil, err
	}
	response := ToChannelResponse(channel)
	return &response, nil
}

// Delete removes a channel without notifications
func (s *ChannelService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.channelRepo.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := s.notificationRepo.CountByChannel(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return shared.InUse("Channel", "notifications")
	}
	return s.channelRepo.Delete(ctx, id)
}

func (s *ChannelService) ensureUniqueName(ctx context.Context, name string) error {
	exists, err := s.channelRepo.ExistsByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("ALREADY_EXISTS", "A channel with this name already exists")
	}
	return nil
}
