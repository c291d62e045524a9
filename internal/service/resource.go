package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/minegocio/pos-web/internal/domain/model"
	apperrors "github.com/minegocio/pos-web/internal/errors"
	"github.com/minegocio/pos-web/internal/ports"
)

// ResourceServiceOptions groups dependencies for ResourceService.
type ResourceServiceOptions struct {
	API    ports.ResourceAPI
	Logger *slog.Logger
}

// ResourceService is the generic CRUD pass-through behind the admin screens.
// Every admin collection shares the same list/create/update/delete shape; the
// per-resource differences live in the HTTP layer's schemas.
type ResourceService struct {
	api    ports.ResourceAPI
	logger *slog.Logger
}

// NewResourceService constructs a ResourceService.
func NewResourceService(opts ResourceServiceOptions) *ResourceService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ResourceService{
		api:    opts.API,
		logger: logger,
	}
}

// adminResources are the collections the admin screens may touch. Anything
// else in the URL is rejected before it reaches the backend.
var adminResources = map[string]bool{
	"products":        true,
	"categories":      true,
	"providers":       true,
	"clients":         true,
	"users":           true,
	"groups":          true,
	"payment-methods": true,
	"sales":           true,
}

func checkResource(resource string) error {
	if !adminResources[resource] {
		return apperrors.NotFoundf("Unknown resource %q.", resource)
	}
	return nil
}

// ListPage fetches one page of a resource collection.
func (s *ResourceService) ListPage(
	ctx context.Context,
	token, resource string,
	q model.PageQuery,
) (model.PageResult[map[string]any], error) {
	if err := checkResource(resource); err != nil {
		return model.PageResult[map[string]any]{}, err
	}
	return s.api.ListPage(ctx, token, resource, q)
}

// Create adds a row to a resource collection.
func (s *ResourceService) Create(ctx context.Context, token, resource string, body map[string]any) error {
	if err := checkResource(resource); err != nil {
		return err
	}
	if err := s.api.Create(ctx, token, resource, body); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "resource created", "resource", resource)
	return nil
}

// Update replaces a row in a resource collection.
func (s *ResourceService) Update(ctx context.Context, token, resource string, id int64, body map[string]any) error {
	if err := checkResource(resource); err != nil {
		return err
	}
	if err := s.api.Update(ctx, token, resource, id, body); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "resource updated", "resource", resource, "id", id)
	return nil
}

// Delete removes a row from a resource collection. The returned detail, when
// the backend sends one, tells the user what actually happened (products with
// sales are deactivated rather than deleted).
func (s *ResourceService) Delete(ctx context.Context, token, resource string, id int64) (string, error) {
	if err := checkResource(resource); err != nil {
		return "", err
	}
	detail, err := s.api.Delete(ctx, token, resource, id)
	if err != nil {
		return "", fmt.Errorf("delete %s %d: %w", resource, id, err)
	}
	s.logger.InfoContext(ctx, "resource deleted", "resource", resource, "id", id)
	return detail, nil
}
