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
	ErrInvalidEstimateID      = errors.New("invalid estimate id")
	ErrEstimateNotFound       = errors.New("estimate not found")
	ErrEstimateMissingFields  = errors.New("missing required estimate fields")
	ErrPrefillCustomerMissing = errors.New("prefill customer not found")
	ErrPrefillJobMissing      = errors.New("prefill job not found")
)

const estimatesCacheEntity = "estimates"

// EstimateDetail is an estimate enriched with the advisor display name, which
// is stored only as a foreign key on the row.
type EstimateDetail struct {
	entities.Estimate
	AdvisorName string `json:"advisor_name,omitempty"`
}

// IEstimateUseCase exposes the estimate operations: the CRUD set behind the
// manage-estimates screen plus the draft prefill used by the estimate form
// when a customer or job template is selected.
type IEstimateUseCase interface {
	List(ctx context.Context) ([]EstimateDetail, error)
	GetByID(ctx context.Context, id string) (EstimateDetail, error)
	Create(ctx context.Context, e entities.Estimate) (EstimateDetail, error)
	Update(ctx context.Context, e entities.Estimate) (EstimateDetail, error)
	Delete(ctx context.Context, id string) error
	Prefill(ctx context.Context, draft entities.Estimate, customerID, jobCode string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo         interfaces.IEstimateRepository
	customerRepo interfaces.ICustomerRepository
	advisorRepo  interfaces.IAdvisorRepository
	jobRepo      interfaces.IPreConfiguredJobRepository
	cache        *cache.Store
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	customerRepo interfaces.ICustomerRepository,
	advisorRepo interfaces.IAdvisorRepository,
	jobRepo interfaces.IPreConfiguredJobRepository,
	store *cache.Store,
) *EstimateUseCase {
	return &EstimateUseCase{
		repo:         repo,
		customerRepo: customerRepo,
		advisorRepo:  advisorRepo,
		jobRepo:      jobRepo,
		cache:        store,
	}
}

func (u *EstimateUseCase) List(ctx context.Context) ([]EstimateDetail, error) {
	estimates, err := cache.Fetch(ctx, u.cache, cache.CollectionKey(estimatesCacheEntity), u.repo.List)
	if err != nil {
		return nil, err
	}

	names, err := u.advisorNames(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]EstimateDetail, 0, len(estimates))
	for _, e := range estimates {
		details = append(details, EstimateDetail{Estimate: e, AdvisorName: names[e.AdvisorID]})
	}
	return details, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (EstimateDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return EstimateDetail{}, ErrInvalidEstimateID
	}

	e, err := cache.Fetch(ctx, u.cache, cache.ItemKey(estimatesCacheEntity, id), func(ctx context.Context) (entities.Estimate, error) {
		e, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Estimate{}, err
		}
		if e.ID == "" {
			return entities.Estimate{}, ErrEstimateNotFound
		}
		return e, nil
	})
	if err != nil {
		return EstimateDetail{}, err
	}
	return u.withAdvisorName(ctx, e)
}

func (u *EstimateUseCase) Create(ctx context.Context, e entities.Estimate) (EstimateDetail, error) {
	if err := u.applyCustomerIfPresent(ctx, &e); err != nil {
		return EstimateDetail{}, err
	}
	if err := validateEstimate(e); err != nil {
		return EstimateDetail{}, err
	}

	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return EstimateDetail{}, err
	}
	u.cache.InvalidateEntity(estimatesCacheEntity)
	return u.withAdvisorName(ctx, created)
}

// Update replaces the row with the submitted draft (last write wins, no
// version check). created_at is preserved from the stored row.
func (u *EstimateUseCase) Update(ctx context.Context, e entities.Estimate) (EstimateDetail, error) {
	e.ID = strings.TrimSpace(e.ID)
	if e.ID == "" {
		return EstimateDetail{}, ErrInvalidEstimateID
	}

	existing, err := u.repo.GetByID(ctx, e.ID)
	if err != nil {
		return EstimateDetail{}, err
	}
	if existing.ID == "" {
		return EstimateDetail{}, ErrEstimateNotFound
	}

	if err := u.applyCustomerIfPresent(ctx, &e); err != nil {
		return EstimateDetail{}, err
	}
	if err := validateEstimate(e); err != nil {
		return EstimateDetail{}, err
	}

	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return EstimateDetail{}, err
	}
	if updated.ID == "" {
		return EstimateDetail{}, ErrEstimateNotFound
	}
	u.cache.InvalidateItem(estimatesCacheEntity, e.ID)
	return u.withAdvisorName(ctx, updated)
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrEstimateNotFound
	}
	u.cache.InvalidateItem(estimatesCacheEntity, id)
	return nil
}

// Prefill applies customer and/or job-template lookups to a draft without
// persisting anything. The estimate form calls it when a selection is made;
// with a zero draft it produces the create-mode starting point. Unlike the
// write paths, a dangling reference here is an error since the id was just
// picked from a list.
func (u *EstimateUseCase) Prefill(ctx context.Context, draft entities.Estimate, customerID, jobCode string) (entities.Estimate, error) {
	if customerID = strings.TrimSpace(customerID); customerID != "" {
		c, err := u.customerRepo.GetByID(ctx, customerID)
		if err != nil {
			return entities.Estimate{}, err
		}
		if c.ID == "" {
			return entities.Estimate{}, ErrPrefillCustomerMissing
		}
		draft.ApplyCustomer(c)
	}

	if jobCode = strings.TrimSpace(jobCode); jobCode != "" {
		j, err := u.jobRepo.GetByJobCode(ctx, jobCode)
		if err != nil {
			return entities.Estimate{}, err
		}
		if j.ID == "" {
			return entities.Estimate{}, ErrPrefillJobMissing
		}
		draft.ApplyJobTemplate(j)
	}

	return draft, nil
}

// applyCustomerIfPresent re-resolves the customer-owned name and phone fields
// on every write so manual edits to them never stick while a customer is
// attached. A dangling customer_id is tolerated: the store never enforced the
// reference and the denormalized copies remain the display values.
func (u *EstimateUseCase) applyCustomerIfPresent(ctx context.Context, e *entities.Estimate) error {
	e.CustomerID = strings.TrimSpace(e.CustomerID)
	if e.CustomerID == "" {
		return nil
	}

	c, err := u.customerRepo.GetByID(ctx, e.CustomerID)
	if err != nil {
		return err
	}
	if c.ID != "" {
		e.ApplyCustomer(c)
	}
	return nil
}

func (u *EstimateUseCase) withAdvisorName(ctx context.Context, e entities.Estimate) (EstimateDetail, error) {
	detail := EstimateDetail{Estimate: e}
	if e.AdvisorID == "" {
		return detail, nil
	}

	a, err := u.advisorRepo.GetByID(ctx, e.AdvisorID)
	if err != nil {
		return EstimateDetail{}, err
	}
	detail.AdvisorName = a.Name
	return detail, nil
}

func (u *EstimateUseCase) advisorNames(ctx context.Context) (map[string]string, error) {
	advisors, err := cache.Fetch(ctx, u.cache, cache.CollectionKey(advisorsCacheEntity), u.advisorRepo.List)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(advisors))
	for _, a := range advisors {
		names[a.ID] = a.Name
	}
	return names, nil
}

func validateEstimate(e entities.Estimate) error {
	if strings.TrimSpace(e.EstimateNumber) == "" ||
		strings.TrimSpace(e.FirstName) == "" ||
		strings.TrimSpace(e.LastName) == "" ||
		strings.TrimSpace(e.PhoneNumber) == "" ||
		strings.TrimSpace(e.UnitDescription) == "" ||
		strings.TrimSpace(e.RepairDescription) == "" {
		return ErrEstimateMissingFields
	}
	return nil
}
