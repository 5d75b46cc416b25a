package interfaces

import (
	"context"

	"rvroofworks/internal/domain/entities"
)

//go:generate mockgen -source=pre_configured_job_repository_interface.go -destination=mocks/pre_configured_job_repository_mock.go -package=mock_interfaces

// IPreConfiguredJobRepository abstracts DynamoDB persistence for
// PreConfiguredJob.
//
// GetByJobCode resolves the template by its business key (job_code GSI); it
// backs both the uniqueness check on create and the estimate prefill lookup.
type IPreConfiguredJobRepository interface {
	List(ctx context.Context) ([]entities.PreConfiguredJob, error)
	GetByID(ctx context.Context, id string) (entities.PreConfiguredJob, error)
	GetByJobCode(ctx context.Context, jobCode string) (entities.PreConfiguredJob, error)
	Create(ctx context.Context, j entities.PreConfiguredJob) (entities.PreConfiguredJob, error)
	Update(ctx context.Context, j entities.PreConfiguredJob) (entities.PreConfiguredJob, error)
	Delete(ctx context.Context, id string) (bool, error)
}
