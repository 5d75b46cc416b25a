package usecase

import (
	"context"
	"errors"
	"strings"

	"rvroofworks/internal/adapter/persistence/cache"
	"rvroofworks/internal/domain/entities"
	"rvroofworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidJobID    = errors.New("invalid job id")
	ErrInvalidJobCode  = errors.New("invalid job code")
	ErrJobNotFound     = errors.New("pre-configured job not found")
	ErrJobMissingField = errors.New("missing required job fields")
	ErrJobCodeTaken    = errors.New("job code already in use")
)

const jobsCacheEntity = "pre_configured_jobs"

// IPreConfiguredJobUseCase exposes the repair-template operations backing the
// jobs-configuration screen. Templates are also resolved by job code when
// prefilling estimates.
type IPreConfiguredJobUseCase interface {
	List(ctx context.Context) ([]entities.PreConfiguredJob, error)
	GetByID(ctx context.Context, id string) (entities.PreConfiguredJob, error)
	GetByJobCode(ctx context.Context, jobCode string) (entities.PreConfiguredJob, error)
	Create(ctx context.Context, j entities.PreConfiguredJob) (entities.PreConfiguredJob, error)
	Update(ctx context.Context, j entities.PreConfiguredJob) (entities.PreConfiguredJob, error)
	Delete(ctx context.Context, id string) error
}

type PreConfiguredJobUseCase struct {
	repo  interfaces.IPreConfiguredJobRepository
	cache *cache.Store
}

var _ IPreConfiguredJobUseCase = (*PreConfiguredJobUseCase)(nil)

func NewPreConfiguredJobUseCase(repo interfaces.IPreConfiguredJobRepository, store *cache.Store) *PreConfiguredJobUseCase {
	return &PreConfiguredJobUseCase{repo: repo, cache: store}
}

func (u *PreConfiguredJobUseCase) List(ctx context.Context) ([]entities.PreConfiguredJob, error) {
	return cache.Fetch(ctx, u.cache, cache.CollectionKey(jobsCacheEntity), u.repo.List)
}

func (u *PreConfiguredJobUseCase) GetByID(ctx context.Context, id string) (entities.PreConfiguredJob, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PreConfiguredJob{}, ErrInvalidJobID
	}

	return cache.Fetch(ctx, u.cache, cache.ItemKey(jobsCacheEntity, id), func(ctx context.Context) (entities.PreConfiguredJob, error) {
		j, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.PreConfiguredJob{}, err
		}
		if j.ID == "" {
			return entities.PreConfiguredJob{}, ErrJobNotFound
		}
		return j, nil
	})
}

func (u *PreConfiguredJobUseCase) GetByJobCode(ctx context.Context, jobCode string) (entities.PreConfiguredJob, error) {
	jobCode = strings.TrimSpace(jobCode)
	if jobCode == "" {
		return entities.PreConfiguredJob{}, ErrInvalidJobCode
	}

	j, err := u.repo.GetByJobCode(ctx, jobCode)
	if err != nil {
		return entities.PreConfiguredJob{}, err
	}
	if j.ID == "" {
		return entities.PreConfiguredJob{}, ErrJobNotFound
	}
	return j, nil
}

func (u *PreConfiguredJobUseCase) Create(ctx context.Context, j entities.PreConfiguredJob) (entities.PreConfiguredJob, error) {
	if err := validateJob(j); err != nil {
		return entities.PreConfiguredJob{}, err
	}

	j.JobCode = strings.TrimSpace(j.JobCode)
	if existing, err := u.repo.GetByJobCode(ctx, j.JobCode); err != nil {
		return entities.PreConfiguredJob{}, err
	} else if existing.ID != "" {
		return entities.PreConfiguredJob{}, ErrJobCodeTaken
	}

	j.ID = uuid.NewString()

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		return entities.PreConfiguredJob{}, err
	}
	u.cache.InvalidateEntity(jobsCacheEntity)
	return created, nil
}

func (u *PreConfiguredJobUseCase) Update(ctx context.Context, j entities.PreConfiguredJob) (entities.PreConfiguredJob, error) {
	j.ID = strings.TrimSpace(j.ID)
	if j.ID == "" {
		return entities.PreConfiguredJob{}, ErrInvalidJobID
	}
	if err := validateJob(j); err != nil {
		return entities.PreConfiguredJob{}, err
	}

	// job_code stays unique across templates, including after a rename.
	j.JobCode = strings.TrimSpace(j.JobCode)
	if existing, err := u.repo.GetByJobCode(ctx, j.JobCode); err != nil {
		return entities.PreConfiguredJob{}, err
	} else if existing.ID != "" && existing.ID != j.ID {
		return entities.PreConfiguredJob{}, ErrJobCodeTaken
	}

	updated, err := u.repo.Update(ctx, j)
	if err != nil {
		return entities.PreConfiguredJob{}, err
	}
	if updated.ID == "" {
		return entities.PreConfiguredJob{}, ErrJobNotFound
	}
	u.cache.InvalidateItem(jobsCacheEntity, j.ID)
	return updated, nil
}

func (u *PreConfiguredJobUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidJobID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrJobNotFound
	}
	u.cache.InvalidateItem(jobsCacheEntity, id)
	return nil
}

func validateJob(j entities.PreConfiguredJob) error {
	if strings.TrimSpace(j.JobCode) == "" || strings.TrimSpace(j.JobName) == "" {
		return ErrJobMissingField
	}
	return nil
}
