package interfaces

import (
	"context"

	"rvroofworks/internal/domain/entities"
)

//go:generate mockgen -source=advisor_repository_interface.go -destination=mocks/advisor_repository_mock.go -package=mock_interfaces

// IAdvisorRepository abstracts DynamoDB persistence for Advisor.
type IAdvisorRepository interface {
	List(ctx context.Context) ([]entities.Advisor, error)
	GetByID(ctx context.Context, id string) (entities.Advisor, error)
	Create(ctx context.Context, a entities.Advisor) (entities.Advisor, error)
	Update(ctx context.Context, a entities.Advisor) (entities.Advisor, error)
	Delete(ctx context.Context, id string) (bool, error)
}
