package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rvroofworks/internal/adapter/persistence/cache"
	"rvroofworks/internal/domain/entities"
	mock_interfaces "rvroofworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type estimateMocks struct {
	repo         *mock_interfaces.MockIEstimateRepository
	customerRepo *mock_interfaces.MockICustomerRepository
	advisorRepo  *mock_interfaces.MockIAdvisorRepository
	jobRepo      *mock_interfaces.MockIPreConfiguredJobRepository
}

func newEstimateUseCaseForTest(t *testing.T) (*EstimateUseCase, estimateMocks) {
	ctrl := gomock.NewController(t)
	m := estimateMocks{
		repo:         mock_interfaces.NewMockIEstimateRepository(ctrl),
		customerRepo: mock_interfaces.NewMockICustomerRepository(ctrl),
		advisorRepo:  mock_interfaces.NewMockIAdvisorRepository(ctrl),
		jobRepo:      mock_interfaces.NewMockIPreConfiguredJobRepository(ctrl),
	}
	uc := NewEstimateUseCase(m.repo, m.customerRepo, m.advisorRepo, m.jobRepo, cache.NewStore())
	return uc, m
}

func validEstimateDraft() entities.Estimate {
	return entities.Estimate{
		EstimateNumber:    "EST-100",
		FirstName:         "Jane",
		LastName:          "Doe",
		PhoneNumber:       "555-1234",
		UnitDescription:   "2019 Keystone Montana",
		RepairDescription: "Full roof reseal",
	}
}

func TestEstimateUseCase_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc, _ := newEstimateUseCaseForTest(t)
		_, err := uc.Create(context.Background(), entities.Estimate{EstimateNumber: "EST-1"})
		if !errors.Is(err, ErrEstimateMissingFields) {
			t.Fatalf("expected ErrEstimateMissingFields, got %v", err)
		}
	})

	t.Run("create success assigns id and timestamps", func(t *testing.T) {
		uc, m := newEstimateUseCaseForTest(t)

		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected id and timestamps: %+v", e)
				}
				return e, nil
			},
		)

		created, err := uc.Create(context.Background(), validEstimateDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("attached customer owns the name fields", func(t *testing.T) {
		uc, m := newEstimateUseCaseForTest(t)

		m.customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{
			ID:          "cust-1",
			FirstName:   "Alice",
			LastName:    "Smith",
			PhoneNumber: "555-0000",
		}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.FirstName != "Alice" || e.LastName != "Smith" || e.PhoneNumber != "555-0000" {
					t.Fatalf("manual edits overrode customer fields: %+v", e)
				}
				return e, nil
			},
		)

		draft := validEstimateDraft()
		draft.CustomerID = "cust-1"
		// Keystrokes in the disabled fields must not stick.
		draft.FirstName = "typed over"
		draft.LastName = "typed over"

		if _, err := uc.Create(context.Background(), draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("dangling customer reference is tolerated", func(t *testing.T) {
		uc, m := newEstimateUseCaseForTest(t)

		m.customerRepo.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Customer{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.FirstName != "Jane" {
					t.Fatalf("denormalized fields should survive: %+v", e)
				}
				return e, nil
			},
		)

		draft := validEstimateDraft()
		draft.CustomerID = "gone"
		if _, err := uc.Create(context.Background(), draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_Prefill(t *testing.T) {
	t.Run("customer selection copies name fields", func(t *testing.T) {
		uc, m := newEstimateUseCaseForTest(t)

		m.customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{
			ID: "cust-1", FirstName: "Jane", LastName: "Doe", PhoneNumber: "555-1234",
		}, nil)

		draft, err := uc.Prefill(context.Background(), entities.Estimate{}, "cust-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.CustomerID != "cust-1" || draft.FirstName != "Jane" || draft.LastName != "Doe" {
			t.Fatalf("unexpected draft: %+v", draft)
		}
	})

	t.Run("job selection copies template fields and total", func(t *testing.T) {
		uc, m := newEstimateUseCaseForTest(t)

		m.jobRepo.EXPECT().GetByJobCode(gomock.Any(), "RK-01").Return(entities.PreConfiguredJob{
			ID:             "j1",
			JobCode:        "RK-01",
			JobDescription: "Full roof kit replacement",
			Hrs:            12,
			LaborPerHr:     95,
			JobPrice:       2890,
		}, nil)

		draft := entities.Estimate{RepairDescription: "manual", TotalEstimate: 1}
		draft, err := uc.Prefill(context.Background(), draft, "", "RK-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.RepairDescription != "Full roof kit replacement" || draft.Hrs != 12 ||
			draft.LaborPerHr != 95 || draft.TotalEstimate != 2890 {
			t.Fatalf("template not applied: %+v", draft)
		}
	})

	t.Run("unknown customer fails", func(t *testing.T) {
		uc, m := newEstimateUseCaseForTest(t)
		m.customerRepo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Customer{}, nil)

		_, err := uc.Prefill(context.Background(), entities.Estimate{}, "nope", "")
		if !errors.Is(err, ErrPrefillCustomerMissing) {
			t.Fatalf("expected ErrPrefillCustomerMissing, got %v", err)
		}
	})

	t.Run("unknown job code fails", func(t *testing.T) {
		uc, m := newEstimateUseCaseForTest(t)
		m.jobRepo.EXPECT().GetByJobCode(gomock.Any(), "ZZ-99").Return(entities.PreConfiguredJob{}, nil)

		_, err := uc.Prefill(context.Background(), entities.Estimate{}, "", "ZZ-99")
		if !errors.Is(err, ErrPrefillJobMissing) {
			t.Fatalf("expected ErrPrefillJobMissing, got %v", err)
		}
	})
}

func TestEstimateUseCase_List(t *testing.T) {
	uc, m := newEstimateUseCaseForTest(t)

	m.repo.EXPECT().List(gomock.Any()).Return([]entities.Estimate{
		{ID: "e1", AdvisorID: "a1"},
		{ID: "e2"},
	}, nil)
	m.advisorRepo.EXPECT().List(gomock.Any()).Return([]entities.Advisor{
		{ID: "a1", Name: "Pat"},
	}, nil)

	details, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 estimates, got %d", len(details))
	}
	if details[0].AdvisorName != "Pat" {
		t.Fatalf("advisor name not resolved: %+v", details[0])
	}
	if details[1].AdvisorName != "" {
		t.Fatalf("unexpected advisor name: %+v", details[1])
	}
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newEstimateUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("resolves advisor name", func(t *testing.T) {
		uc, m := newEstimateUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estimate{ID: "e1", AdvisorID: "a1"}, nil)
		m.advisorRepo.EXPECT().GetByID(gomock.Any(), "a1").Return(entities.Advisor{ID: "a1", Name: "Pat"}, nil)

		detail, err := uc.GetByID(context.Background(), "e1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.AdvisorName != "Pat" {
			t.Fatalf("advisor name not resolved: %+v", detail)
		}
	})
}

func TestEstimateUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newEstimateUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Estimate{}, nil)

		draft := validEstimateDraft()
		draft.ID = "gone"
		_, err := uc.Update(context.Background(), draft)
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("full draft replaces row, created_at preserved", func(t *testing.T) {
		uc, m := newEstimateUseCaseForTest(t)

		createdAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
		m.repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estimate{ID: "e1", CreatedAt: createdAt}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if !e.CreatedAt.Equal(createdAt) {
					t.Fatalf("created_at not preserved: %v", e.CreatedAt)
				}
				if e.TotalEstimate != 999 {
					t.Fatalf("draft fields not carried: %+v", e)
				}
				return e, nil
			},
		)

		draft := validEstimateDraft()
		draft.ID = "e1"
		draft.TotalEstimate = 999
		if _, err := uc.Update(context.Background(), draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newEstimateUseCaseForTest(t)
		m.repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

		if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		uc, m := newEstimateUseCaseForTest(t)
		m.repo.EXPECT().Delete(gomock.Any(), "e1").Return(true, nil)

		if err := uc.Delete(context.Background(), "e1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
