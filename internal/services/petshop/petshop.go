package petshop

import (
	"context"
	"errors"

	"github.com/PennyPaws/petengine-go/internal/catalog"
	"github.com/PennyPaws/petengine-go/internal/db/repositories/user_pet"
	"github.com/google/uuid"
)

// ErrUnknownTemplate is returned when a purchase references a template
// id that is not in the catalog.
var ErrUnknownTemplate = errors.New("unknown pet template")

type Service interface {
	Catalog() []catalog.AvailablePet
	OwnedPets(ctx context.Context, userID string) ([]*user_pet.UserPet, error)

	// Purchase deducts the template's XP cost and creates the pet as a
	// single transaction. The new pet starts inactive.
	Purchase(ctx context.Context, userID, templateID string) (*user_pet.UserPet, error)

	// SwitchActivePet leaves exactly one owned pet flagged active.
	SwitchActivePet(ctx context.Context, userID, petID string) error
}

type Impl struct {
	pets user_pet.UserPetRepository
	cat  *catalog.Catalog
}

func NewService(pets user_pet.UserPetRepository, cat *catalog.Catalog) Service {
	return &Impl{pets: pets, cat: cat}
}

func (s *Impl) Catalog() []catalog.AvailablePet {
	return s.cat.List()
}

func (s *Impl) OwnedPets(ctx context.Context, userID string) ([]*user_pet.UserPet, error) {
	return s.pets.ListByUser(ctx, userID)
}

func (s *Impl) Purchase(ctx context.Context, userID, templateID string) (*user_pet.UserPet, error) {
	tmpl, ok := s.cat.FindByID(templateID)
	if !ok {
		return nil, ErrUnknownTemplate
	}

	pet := &user_pet.UserPet{
		ID:       uuid.NewString(),
		UserID:   userID,
		Type:     tmpl.Type,
		Breed:    tmpl.Breed,
		Name:     tmpl.Name,
		Emoji:    tmpl.Emoji,
		IsActive: false,
	}

	if err := s.pets.PurchaseWithXP(ctx, userID, tmpl.XPCost, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *Impl) SwitchActivePet(ctx context.Context, userID, petID string) error {
	return s.pets.SwitchActive(ctx, userID, petID)
}
