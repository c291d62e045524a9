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

func TestResourceService_ListPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockResourceAPI(ctrl)
	svc := NewResourceService(ResourceServiceOptions{API: api})
	ctx := context.Background()

	query := model.PageQuery{Page: 2, PageSize: 10, Filters: map[string]string{"name": "cafe"}}
	api.EXPECT().ListPage(ctx, "tok", "products", query).Return(model.PageResult[map[string]any]{
		Count:   21,
		Results: []map[string]any{{"id": float64(11)}},
	}, nil)

	res, err := svc.ListPage(ctx, "tok", "products", query)
	require.NoError(t, err)
	assert.Equal(t, 21, res.Count)
	assert.Len(t, res.Results, 1)
}

func TestResourceService_UnknownResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockResourceAPI(ctrl)
	svc := NewResourceService(ResourceServiceOptions{API: api})
	ctx := context.Background()

	// No API expectations: nothing may reach the backend.
	_, err := svc.ListPage(ctx, "tok", "secrets", model.PageQuery{})
	assert.True(t, apperrors.IsNotFound(err))

	err = svc.Create(ctx, "tok", "../token", map[string]any{})
	assert.True(t, apperrors.IsNotFound(err))

	err = svc.Update(ctx, "tok", "", 1, map[string]any{})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.Delete(ctx, "tok", "admin", 1)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestResourceService_CreateUpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockResourceAPI(ctrl)
	svc := NewResourceService(ResourceServiceOptions{API: api})
	ctx := context.Background()

	body := map[string]any{"name": "Café molido", "sale_price": "10.00"}
	api.EXPECT().Create(ctx, "tok", "products", body).Return(nil)
	require.NoError(t, svc.Create(ctx, "tok", "products", body))

	api.EXPECT().Update(ctx, "tok", "products", int64(11), body).Return(nil)
	require.NoError(t, svc.Update(ctx, "tok", "products", 11, body))

	api.EXPECT().Delete(ctx, "tok", "products", int64(11)).Return("Producto desactivado.", nil)
	detail, err := svc.Delete(ctx, "tok", "products", 11)
	require.NoError(t, err)
	assert.Equal(t, "Producto desactivado.", detail)
}

func TestResourceService_DeleteConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockResourceAPI(ctrl)
	svc := NewResourceService(ResourceServiceOptions{API: api})
	ctx := context.Background()

	api.EXPECT().Delete(ctx, "tok", "categories", int64(4)).
		Return("", apperrors.Conflict("La categoría tiene productos asociados."))

	_, err := svc.Delete(ctx, "tok", "categories", 4)
	assert.True(t, apperrors.IsConflict(err))
}
