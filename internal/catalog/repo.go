package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velamart/saferoute-bridge/pkg/db/models"
)

// Repository exposes the catalog reads the serializer depends on.
type Repository interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetAttributeGroups(ctx context.Context, productID uuid.UUID) ([]AttributeGroup, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) GetAttributeGroups(ctx context.Context, productID uuid.UUID) ([]AttributeGroup, error) {
	var rows []models.ProductAttribute
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("group_sort ASC, sort ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	groups := []AttributeGroup{}
	for _, row := range rows {
		if len(groups) == 0 || groups[len(groups)-1].Name != row.GroupName {
			groups = append(groups, AttributeGroup{Name: row.GroupName})
		}
		last := &groups[len(groups)-1]
		last.Attributes = append(last.Attributes, Attribute{Name: row.Name, Text: row.Text})
	}
	return groups, nil
}
