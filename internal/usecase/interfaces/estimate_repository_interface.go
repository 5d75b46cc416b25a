package interfaces

import (
	"context"

	"rvroofworks/internal/domain/entities"
)

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/estimate_repository_mock.go -package=mock_interfaces

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
type IEstimateRepository interface {
	List(ctx context.Context) ([]entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) (bool, error)
}
