package petshop

import (
	"context"
	"errors"
	"testing"

	"github.com/PennyPaws/petengine-go/internal/catalog"
	"github.com/PennyPaws/petengine-go/internal/db/repositories/user_pet"
	"github.com/PennyPaws/petengine-go/internal/db/repositories/user_pet/mocks"
	"go.uber.org/mock/gomock"
)

const testUser = "6f1d2c3a-0000-0000-0000-000000000001"

func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]catalog.AvailablePet{
		{ID: "tabby-cat", Type: "cat", Breed: "tabby", Name: "Tabby Cat", Emoji: "🐱", XPCost: 0},
		{ID: "shiba-dog", Type: "dog", Breed: "shiba", Name: "Shiba Pup", Emoji: "🐶", XPCost: 500},
	})
}

func TestPurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserPetRepository(ctrl)
	svc := NewService(repo, fixtureCatalog())
	ctx := context.Background()

	repo.EXPECT().
		PurchaseWithXP(ctx, testUser, 500, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ int, pet *user_pet.UserPet) error {
			if pet.Type != "dog" || pet.Breed != "shiba" {
				t.Errorf("pet cloned wrong template: %+v", pet)
			}
			if pet.IsActive {
				t.Error("purchased pet must start inactive")
			}
			if pet.ID == "" {
				t.Error("pet needs an id before insert")
			}
			return nil
		})

	pet, err := svc.Purchase(ctx, testUser, "shiba-dog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pet.UserID != testUser {
		t.Errorf("pet.UserID = %q, want %q", pet.UserID, testUser)
	}
}

func TestPurchase_InsufficientXP(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserPetRepository(ctrl)
	svc := NewService(repo, fixtureCatalog())
	ctx := context.Background()

	repo.EXPECT().
		PurchaseWithXP(ctx, testUser, 500, gomock.Any()).
		Return(&user_pet.InsufficientXPError{Need: 500, Have: 499})

	_, err := svc.Purchase(ctx, testUser, "shiba-dog")

	var insufficient *user_pet.InsufficientXPError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientXPError, got %v", err)
	}
	if insufficient.Need != 500 || insufficient.Have != 499 {
		t.Errorf("shortfall = need %d have %d, want 500/499", insufficient.Need, insufficient.Have)
	}
}

func TestPurchase_UnknownTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserPetRepository(ctrl)
	svc := NewService(repo, fixtureCatalog())

	_, err := svc.Purchase(context.Background(), testUser, "nonexistent")
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestSwitchActivePet(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserPetRepository(ctrl)
	svc := NewService(repo, fixtureCatalog())
	ctx := context.Background()

	repo.EXPECT().SwitchActive(ctx, testUser, "pet-1").Return(nil)

	if err := svc.SwitchActivePet(ctx, testUser, "pet-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSwitchActivePet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserPetRepository(ctrl)
	svc := NewService(repo, fixtureCatalog())
	ctx := context.Background()

	repo.EXPECT().SwitchActive(ctx, testUser, "stranger").Return(user_pet.ErrPetNotFound)

	err := svc.SwitchActivePet(ctx, testUser, "stranger")
	if !errors.Is(err, user_pet.ErrPetNotFound) {
		t.Errorf("expected ErrPetNotFound, got %v", err)
	}
}

func TestCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserPetRepository(ctrl)
	svc := NewService(repo, fixtureCatalog())

	list := svc.Catalog()
	if len(list) != 2 {
		t.Errorf("catalog size = %d, want 2", len(list))
	}
}

func TestOwnedPets(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserPetRepository(ctrl)
	svc := NewService(repo, fixtureCatalog())
	ctx := context.Background()

	repo.EXPECT().ListByUser(ctx, testUser).Return([]*user_pet.UserPet{
		{ID: "pet-1", UserID: testUser, IsActive: true},
	}, nil)

	pets, err := svc.OwnedPets(ctx, testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pets) != 1 || !pets[0].IsActive {
		t.Errorf("unexpected pets: %+v", pets)
	}
}
