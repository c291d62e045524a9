package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/minegocio/pos-web/internal/domain/model"
	apperrors "github.com/minegocio/pos-web/internal/errors"
	"github.com/minegocio/pos-web/internal/mocks"
)

func TestBulkPriceService_Apply(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockPricingAPI(ctrl)
		svc := NewBulkPriceService(BulkPriceServiceOptions{API: api})
		ctx := context.Background()

		api.EXPECT().BulkPriceUpdate(ctx, "tok", model.BulkPriceUpdate{
			ProductIDs:   []int64{1, 2, 3},
			Percentage:   "12.5",
			UpdateTarget: model.BulkPriceSale,
		}).Return("3 productos actualizados.", nil)

		message, err := svc.Apply(ctx, "tok", []int64{1, 2, 3}, "12.5", model.BulkPriceSale)
		require.NoError(t, err)
		assert.Equal(t, "3 productos actualizados.", message)
	})

	t.Run("empty selection is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewBulkPriceService(BulkPriceServiceOptions{API: mocks.NewMockPricingAPI(ctrl)})

		_, err := svc.Apply(context.Background(), "tok", nil, "10", model.BulkPriceBoth)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unknown target is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewBulkPriceService(BulkPriceServiceOptions{API: mocks.NewMockPricingAPI(ctrl)})

		_, err := svc.Apply(context.Background(), "tok", []int64{1}, "10", "wholesale")
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("percentage must parse", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewBulkPriceService(BulkPriceServiceOptions{API: mocks.NewMockPricingAPI(ctrl)})

		_, err := svc.Apply(context.Background(), "tok", []int64{1}, "ten", model.BulkPriceCost)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("percentage at or below -100 is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewBulkPriceService(BulkPriceServiceOptions{API: mocks.NewMockPricingAPI(ctrl)})

		_, err := svc.Apply(context.Background(), "tok", []int64{1}, "-100", model.BulkPriceBoth)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("negative percentage above -100 lowers prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockPricingAPI(ctrl)
		svc := NewBulkPriceService(BulkPriceServiceOptions{API: api})
		ctx := context.Background()

		api.EXPECT().BulkPriceUpdate(ctx, "tok", model.BulkPriceUpdate{
			ProductIDs:   []int64{4},
			Percentage:   "-15",
			UpdateTarget: model.BulkPriceCost,
		}).Return("1 producto actualizado.", nil)

		_, err := svc.Apply(ctx, "tok", []int64{4}, "-15", model.BulkPriceCost)
		require.NoError(t, err)
	})
}
