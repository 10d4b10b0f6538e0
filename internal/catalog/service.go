package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/velamart/saferoute-bridge/pkg/db/models"
	pkgerrors "github.com/velamart/saferoute-bridge/pkg/errors"
)

// Service resolves the catalog data each cart line needs.
type Service interface {
	Product(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Attributes(ctx context.Context, productID uuid.UUID) (AttributeSet, error)
}

type service struct {
	repo Repository
}

// NewService constructs a catalog service.
func NewService(repo Repository) (*service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog repo required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Product(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

func (s *service) Attributes(ctx context.Context, productID uuid.UUID) (AttributeSet, error) {
	groups, err := s.repo.GetAttributeGroups(ctx, productID)
	if err != nil {
		return AttributeSet{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product attributes")
	}
	return ResolveAttributes(groups), nil
}
