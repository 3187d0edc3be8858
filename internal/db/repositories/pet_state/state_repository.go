package pet_state

import (
	"context"
	"errors"

	"github.com/PennyPaws/petengine-go/internal/db"
	"gorm.io/gorm"
)

// ErrVersionConflict is returned when a conditional write observes a
// stale version. Callers reload the record and retry.
var ErrVersionConflict = errors.New("pet state version conflict")

/*
REPOSITORY INTERFACE
*/

//go:generate mockgen -source=state_repository.go -destination=mocks/state_repository_mock.go -package=mocks

type PetStateRepository interface {
	GetByUserID(ctx context.Context, userID string) (*PetState, error)
	Create(ctx context.Context, state *PetState) error

	// UpdateWithVersion writes mood/xp/level guarded by the version
	// stamp the state was loaded with. On success the version on the
	// passed struct is bumped to the stored value.
	UpdateWithVersion(ctx context.Context, state *PetState) error
}

/*
REPOSITORY IMPL
*/

type PetStateRepositoryImpl struct {
	db *db.DB
}

func NewPetStateRepository(database *db.DB) PetStateRepository {
	return &PetStateRepositoryImpl{db: database}
}

func (r *PetStateRepositoryImpl) GetByUserID(ctx context.Context, userID string) (*PetState, error) {
	var state PetState
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (r *PetStateRepositoryImpl) Create(ctx context.Context, state *PetState) error {
	return r.db.DB.WithContext(ctx).Create(state).Error
}

func (r *PetStateRepositoryImpl) UpdateWithVersion(ctx context.Context, state *PetState) error {
	res := r.db.DB.WithContext(ctx).
		Model(&PetState{}).
		Where("id = ? AND version = ?", state.ID, state.Version).
		Updates(map[string]interface{}{
			"mood":        state.Mood,
			"xp":          state.XP,
			"level":       state.Level,
			"last_fed_at": state.LastFedAt,
			"version":     state.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	state.Version++
	return nil
}
