package user_pet

import (
	"context"
	"errors"
	"fmt"

	"github.com/PennyPaws/petengine-go/internal/db"
	"github.com/PennyPaws/petengine-go/internal/db/repositories/pet_state"
	"github.com/PennyPaws/petengine-go/internal/services/progression"
	"gorm.io/gorm"
)

// ErrPetNotFound is returned when a pet id is not in the user's owned set.
var ErrPetNotFound = errors.New("pet not found")

// ErrStateNotFound is returned when the user has no pet state row yet.
var ErrStateNotFound = errors.New("pet state not found")

// InsufficientXPError reports a purchase shortfall without mutating state.
type InsufficientXPError struct {
	Need int
	Have int
}

func (e *InsufficientXPError) Error() string {
	return fmt.Sprintf("insufficient xp: need %d, have %d", e.Need, e.Have)
}

/*
REPOSITORY INTERFACE
*/

//go:generate mockgen -source=pet_repository.go -destination=mocks/pet_repository_mock.go -package=mocks

type UserPetRepository interface {
	GetByID(ctx context.Context, userID, petID string) (*UserPet, error)
	ListByUser(ctx context.Context, userID string) ([]*UserPet, error)
	Create(ctx context.Context, pet *UserPet) error

	// SwitchActive flips the active flag to exactly one owned pet in a
	// single transaction and stamps the state's active_pet_id.
	SwitchActive(ctx context.Context, userID, petID string) error

	// PurchaseWithXP deducts cost from the user's XP and inserts the
	// pet as one transaction. The conditional deduction fails with
	// InsufficientXPError when xp < cost, leaving nothing mutated.
	PurchaseWithXP(ctx context.Context, userID string, cost int, pet *UserPet) error
}

/*
REPOSITORY IMPL
*/

type UserPetRepositoryImpl struct {
	db *db.DB
}

func NewUserPetRepository(database *db.DB) UserPetRepository {
	return &UserPetRepositoryImpl{db: database}
}

func (r *UserPetRepositoryImpl) GetByID(ctx context.Context, userID, petID string) (*UserPet, error) {
	var pet UserPet
	err := r.db.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", petID, userID).
		First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *UserPetRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*UserPet, error) {
	var pets []*UserPet
	if err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *UserPetRepositoryImpl) Create(ctx context.Context, pet *UserPet) error {
	return r.db.DB.WithContext(ctx).Create(pet).Error
}

func (r *UserPetRepositoryImpl) SwitchActive(ctx context.Context, userID, petID string) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pet UserPet
		err := tx.Where("id = ? AND user_id = ?", petID, userID).First(&pet).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPetNotFound
			}
			return err
		}

		if err := tx.Model(&UserPet{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		if err := tx.Model(&UserPet{}).
			Where("id = ?", pet.ID).
			Update("is_active", true).Error; err != nil {
			return err
		}

		return tx.Model(&pet_state.PetState{}).
			Where("user_id = ?", userID).
			Update("active_pet_id", pet.ID).Error
	})
}

func (r *UserPetRepositoryImpl) PurchaseWithXP(ctx context.Context, userID string, cost int, pet *UserPet) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&pet_state.PetState{}).
			Where("user_id = ? AND xp >= ?", userID, cost).
			Updates(map[string]interface{}{
				"xp":      gorm.Expr("xp - ?", cost),
				"version": gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var state pet_state.PetState
			err := tx.Where("user_id = ?", userID).First(&state).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrStateNotFound
				}
				return err
			}
			return &InsufficientXPError{Need: cost, Have: state.XP}
		}

		// Keep the cached level at or below the level implied by the
		// reduced XP total.
		var state pet_state.PetState
		if err := tx.Where("user_id = ?", userID).First(&state).Error; err != nil {
			return err
		}
		if derived := progression.LevelFromXP(state.XP).Level; derived < state.Level {
			if err := tx.Model(&pet_state.PetState{}).
				Where("id = ?", state.ID).
				Update("level", derived).Error; err != nil {
				return err
			}
		}

		return tx.Create(pet).Error
	})
}
