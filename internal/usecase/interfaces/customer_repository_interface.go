package interfaces

import (
	"context"

	"rvroofworks/internal/domain/entities"
)

//go:generate mockgen -source=customer_repository_interface.go -destination=mocks/customer_repository_mock.go -package=mock_interfaces

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// Lookup conventions (shared by every repository in this package):
//   - GetByID returns a zero-value entity, not an error, when no row matches.
//   - Update returns a zero-value entity when the row does not exist.
//   - Delete reports whether a row was actually removed.
type ICustomerRepository interface {
	List(ctx context.Context) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}
