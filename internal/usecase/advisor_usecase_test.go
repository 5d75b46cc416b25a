package usecase

import (
	"context"
	"errors"
	"testing"

	"rvroofworks/internal/adapter/persistence/cache"
	"rvroofworks/internal/domain/entities"
	mock_interfaces "rvroofworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAdvisorUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewAdvisorUseCase(nil, cache.NewStore())
		_, err := uc.Create(context.Background(), entities.Advisor{Name: "  "})
		if !errors.Is(err, ErrAdvisorMissingName) {
			t.Fatalf("expected ErrAdvisorMissingName, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdvisorRepository(ctrl)
		uc := NewAdvisorUseCase(repo, cache.NewStore())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Advisor) (entities.Advisor, error) {
				if a.ID == "" || a.Name != "Pat" {
					t.Fatalf("unexpected advisor: %+v", a)
				}
				return a, nil
			},
		)

		if _, err := uc.Create(context.Background(), entities.Advisor{Name: "Pat"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAdvisorUseCase_ListCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIAdvisorRepository(ctrl)
	uc := NewAdvisorUseCase(repo, cache.NewStore())

	repo.EXPECT().List(gomock.Any()).Return([]entities.Advisor{{ID: "a1", Name: "Pat"}}, nil)

	for i := 0; i < 2; i++ {
		got, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Name != "Pat" {
			t.Fatalf("unexpected advisors: %+v", got)
		}
	}
}

func TestAdvisorUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIAdvisorRepository(ctrl)
	uc := NewAdvisorUseCase(repo, cache.NewStore())

	repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

	if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrAdvisorNotFound) {
		t.Fatalf("expected ErrAdvisorNotFound, got %v", err)
	}
}
