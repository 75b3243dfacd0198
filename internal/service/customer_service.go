package service

import (
	"context"

	"chatorder/internal/models"
	"chatorder/internal/repository"

	"go.uber.org/zap"
)

// CustomerService maintains the channel-identity to customer mapping. The
// channel-assigned identifier stands in for a password on both access
// channels, so every operation here is keyed by it.
type CustomerService interface {
	// Identify resolves a channel identifier to a customer, registering an
	// unnamed one on first contact.
	Identify(ctx context.Context, channelID string) (*models.Customer, error)
	// RegisterFollower upserts the customer with the display name reported
	// by the messaging platform.
	RegisterFollower(ctx context.Context, channelID, displayName string) (*models.Customer, error)
	// RemoveFollower deletes the customer when the channel relationship is
	// revoked; the cart and orders cascade with it.
	RemoveFollower(ctx context.Context, channelID string) error
}

type customerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCustomerService(repo *repository.Repository, log *zap.Logger) CustomerService {
	return &customerService{repo: repo, log: log}
}

func (s *customerService) Identify(ctx context.Context, channelID string) (*models.Customer, error) {
	if channelID == "" {
		return nil, ErrCustomerNotFound
	}
	return s.repo.Customers.UpsertByChannelID(ctx, channelID, "")
}

func (s *customerService) RegisterFollower(ctx context.Context, channelID, displayName string) (*models.Customer, error) {
	c, err := s.repo.Customers.UpsertByChannelID(ctx, channelID, displayName)
	if err != nil {
		return nil, err
	}
	s.log.Info("follower registered", zap.String("channel_id", channelID), zap.String("name", displayName))
	return c, nil
}

func (s *customerService) RemoveFollower(ctx context.Context, channelID string) error {
	n, err := s.repo.Customers.DeleteByChannelID(ctx, channelID)
	if err != nil {
		return err
	}
	if n == 0 {
		s.log.Warn("unfollow for unknown customer", zap.String("channel_id", channelID))
		return nil
	}
	s.log.Info("follower removed", zap.String("channel_id", channelID))
	return nil
}
