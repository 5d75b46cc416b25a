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
	ErrInvalidAdvisorID   = errors.New("invalid advisor id")
	ErrAdvisorNotFound    = errors.New("advisor not found")
	ErrAdvisorMissingName = errors.New("missing advisor name")
)

const advisorsCacheEntity = "advisors"

// IAdvisorUseCase exposes the advisor reference-data operations.
type IAdvisorUseCase interface {
	List(ctx context.Context) ([]entities.Advisor, error)
	GetByID(ctx context.Context, id string) (entities.Advisor, error)
	Create(ctx context.Context, a entities.Advisor) (entities.Advisor, error)
	Update(ctx context.Context, a entities.Advisor) (entities.Advisor, error)
	Delete(ctx context.Context, id string) error
}

type AdvisorUseCase struct {
	repo  interfaces.IAdvisorRepository
	cache *cache.Store
}

var _ IAdvisorUseCase = (*AdvisorUseCase)(nil)

func NewAdvisorUseCase(repo interfaces.IAdvisorRepository, store *cache.Store) *AdvisorUseCase {
	return &AdvisorUseCase{repo: repo, cache: store}
}

func (u *AdvisorUseCase) List(ctx context.Context) ([]entities.Advisor, error) {
	return cache.Fetch(ctx, u.cache, cache.CollectionKey(advisorsCacheEntity), u.repo.List)
}

func (u *AdvisorUseCase) GetByID(ctx context.Context, id string) (entities.Advisor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Advisor{}, ErrInvalidAdvisorID
	}

	return cache.Fetch(ctx, u.cache, cache.ItemKey(advisorsCacheEntity, id), func(ctx context.Context) (entities.Advisor, error) {
		a, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Advisor{}, err
		}
		if a.ID == "" {
			return entities.Advisor{}, ErrAdvisorNotFound
		}
		return a, nil
	})
}

func (u *AdvisorUseCase) Create(ctx context.Context, a entities.Advisor) (entities.Advisor, error) {
	if strings.TrimSpace(a.Name) == "" {
		return entities.Advisor{}, ErrAdvisorMissingName
	}

	a.ID = uuid.NewString()

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.Advisor{}, err
	}
	u.cache.InvalidateEntity(advisorsCacheEntity)
	return created, nil
}

func (u *AdvisorUseCase) Update(ctx context.Context, a entities.Advisor) (entities.Advisor, error) {
	a.ID = strings.TrimSpace(a.ID)
	if a.ID == "" {
		return entities.Advisor{}, ErrInvalidAdvisorID
	}
	if strings.TrimSpace(a.Name) == "" {
		return entities.Advisor{}, ErrAdvisorMissingName
	}

	updated, err := u.repo.Update(ctx, a)
	if err != nil {
		return entities.Advisor{}, err
	}
	if updated.ID == "" {
		return entities.Advisor{}, ErrAdvisorNotFound
	}
	u.cache.InvalidateItem(advisorsCacheEntity, a.ID)
	return updated, nil
}

func (u *AdvisorUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAdvisorID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrAdvisorNotFound
	}
	u.cache.InvalidateItem(advisorsCacheEntity, id)
	return nil
}
