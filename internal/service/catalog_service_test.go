package service_test

import (
	"context"
	"testing"

	"chatorder/internal/models"
	"chatorder/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_GetProduct(t *testing.T) {
	latte := &models.Product{ID: uuid.New(), Name: "Latte", Price: 500}
	products := &MockProductRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Product, error) {
			if id == latte.ID {
				return latte, nil
			}
			return nil, nil
		},
	}
	svc := service.NewCatalogService(newRepository(nil, products, nil, nil, nil, nil))

	got, err := svc.GetProduct(context.Background(), latte.ID)
	require.NoError(t, err)
	assert.Equal(t, "Latte", got.Name)

	_, err = svc.GetProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestCatalogService_GetActiveShop_NotFound(t *testing.T) {
	svc := service.NewCatalogService(newRepository(&MockShopRepo{}, nil, nil, nil, nil, nil))

	_, err := svc.GetActiveShop(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrShopNotFound)
}
