package usecase

import (
	"context"
	"errors"
	"testing"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/usecase/interfaces"
	mock_interfaces "console_comercial/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLeadUseCase_Create(t *testing.T) {
	t.Run("normalizes and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		feed := mock_interfaces.NewMockIChangeFeed(ctrl)
		uc := NewLeadUseCase(repo, feed)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Lead{})).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.ID == "" || l.CreatedAt.IsZero() {
					t.Fatalf("id and created_at must be set: %+v", l)
				}
				if l.Email != "ana@example.com" || l.Name != "Ana" {
					t.Fatalf("lead not normalized: %+v", l)
				}
				if l.Status != entities.LeadStatusNovo {
					t.Fatalf("expected status novo, got %s", l.Status)
				}
				return l, nil
			},
		)
		feed.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(interfaces.ChangeEvent{})).DoAndReturn(
			func(_ context.Context, ev interfaces.ChangeEvent) error {
				if ev.Collection != CollectionLeads {
					t.Fatalf("unexpected collection %q", ev.Collection)
				}
				return nil
			},
		)

		res, err := uc.Create(context.Background(), CreateLeadInput{Name: " Ana ", Email: " ANA@Example.com "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected id")
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateLeadInput{Name: "Ana", Email: "not-an-email"})
		if !errors.Is(err, ErrInvalidLead) {
			t.Fatalf("expected ErrInvalidLead, got %v", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateLeadInput{Email: "ana@example.com"})
		if !errors.Is(err, ErrInvalidLead) {
			t.Fatalf("expected ErrInvalidLead, got %v", err)
		}
	})

	t.Run("publish failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		feed := mock_interfaces.NewMockIChangeFeed(ctrl)
		uc := NewLeadUseCase(repo, feed)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) { return l, nil },
		)
		feed.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		if _, err := uc.Create(context.Background(), CreateLeadInput{Name: "Ana", Email: "ana@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Lead{}, errors.New("db"))

		_, err := uc.Create(context.Background(), CreateLeadInput{Name: "Ana", Email: "ana@example.com"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestLeadUseCase_GetAndUpdateStatus(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidLeadID) {
			t.Fatalf("expected ErrInvalidLeadID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "l1").Return(entities.Lead{}, nil)

		if _, err := uc.GetByID(context.Background(), " l1 "); !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("UpdateStatus empty", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil)
		if _, err := uc.UpdateStatus(context.Background(), "l1", "  "); !errors.Is(err, ErrInvalidLeadStatus) {
			t.Fatalf("expected ErrInvalidLeadStatus, got %v", err)
		}
	})

	t.Run("UpdateStatus lowercases", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "l1", entities.LeadStatusContatado).
			Return(entities.Lead{ID: "l1", Status: entities.LeadStatusContatado}, nil)

		res, err := uc.UpdateStatus(context.Background(), "l1", "Contatado")
		if err != nil || res.Status != entities.LeadStatusContatado {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("UpdateStatus not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "l1", entities.LeadStatusPerdido).Return(entities.Lead{}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "l1", entities.LeadStatusPerdido); !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})
}
