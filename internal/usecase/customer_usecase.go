package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"rvroofworks/internal/adapter/persistence/cache"
	"rvroofworks/internal/domain/entities"
	"rvroofworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerMissingFields = errors.New("missing required customer fields")
)

const customersCacheEntity = "customers"

// ICustomerUseCase exposes the customer CRUD operations backing the
// manage-customers screen.
type ICustomerUseCase interface {
	List(ctx context.Context) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo  interfaces.ICustomerRepository
	cache *cache.Store
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, store *cache.Store) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, cache: store}
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return cache.Fetch(ctx, u.cache, cache.CollectionKey(customersCacheEntity), u.repo.List)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	return cache.Fetch(ctx, u.cache, cache.ItemKey(customersCacheEntity, id), func(ctx context.Context) (entities.Customer, error) {
		c, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Customer{}, err
		}
		if c.ID == "" {
			return entities.Customer{}, ErrCustomerNotFound
		}
		return c, nil
	})
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	if err := validateCustomer(c); err != nil {
		return entities.Customer{}, err
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	u.cache.InvalidateEntity(customersCacheEntity)
	return created, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	if err := validateCustomer(c); err != nil {
		return entities.Customer{}, err
	}

	existing, err := u.repo.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	u.cache.InvalidateItem(customersCacheEntity, c.ID)
	return updated, nil
}

// Delete removes the customer row only. Estimates referencing the customer
// keep their denormalized name and phone copies; no cascade is attempted.
func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCustomerID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrCustomerNotFound
	}
	u.cache.InvalidateItem(customersCacheEntity, id)
	return nil
}

func validateCustomer(c entities.Customer) error {
	if strings.TrimSpace(c.FirstName) == "" ||
		strings.TrimSpace(c.LastName) == "" ||
		strings.TrimSpace(c.PhoneNumber) == "" {
		return ErrCustomerMissingFields
	}
	return nil
}
