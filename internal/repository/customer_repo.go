package repository

import (
	"context"
	"errors"

	"chatorder/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	GetByChannelID(ctx context.Context, channelID string) (*models.Customer, error)
	// UpsertByChannelID creates the customer on first contact or refreshes
	// the display name on re-follow; either way it returns the stored row.
	UpsertByChannelID(ctx context.Context, channelID, name string) (*models.Customer, error)
	DeleteByChannelID(ctx context.Context, channelID string) (int64, error)
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) CustomerRepo { return &customerRepo{db: db} }

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var c models.Customer
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *customerRepo) GetByChannelID(ctx context.Context, channelID string) (*models.Customer, error) {
	var c models.Customer
	err := r.db.WithContext(ctx).First(&c, "channel_id = ?", channelID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *customerRepo) UpsertByChannelID(ctx context.Context, channelID, name string) (*models.Customer, error) {
	c := models.Customer{ChannelID: channelID, Name: name}
	conflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "channel_id"}},
		DoNothing: true,
	}
	if name != "" {
		conflict = clause.OnConflict{
			Columns:   []clause.Column{{Name: "channel_id"}},
			DoUpdates: clause.Assignments(map[string]any{"name": name}),
		}
	}
	if err := r.db.WithContext(ctx).Clauses(conflict).Create(&c).Error; err != nil {
		return nil, err
	}
	// Re-read so the caller always sees the persisted row, whichever side
	// of the conflict we landed on.
	return r.GetByChannelID(ctx, channelID)
}

func (r *customerRepo) DeleteByChannelID(ctx context.Context, channelID string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("channel_id = ?", channelID).Delete(&models.Customer{})
	return tx.RowsAffected, tx.Error
}
