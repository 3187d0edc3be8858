package petstate

import (
	"context"
	"errors"
	"time"

	"github.com/PennyPaws/petengine-go/internal/catalog"
	"github.com/PennyPaws/petengine-go/internal/db/repositories/pet_state"
	"github.com/PennyPaws/petengine-go/internal/db/repositories/user_pet"
	"github.com/PennyPaws/petengine-go/internal/services/progression"
	"github.com/google/uuid"
)

// Writes retry on version conflicts this many times before giving up.
const maxWriteRetries = 3

// Status is the current state plus derived level-curve position.
type Status struct {
	State    *pet_state.PetState
	Progress progression.Progress
}

type GrantOutcome struct {
	State         *pet_state.PetState
	XPGained      int
	LeveledUp     bool
	LevelsGained  int
	BlockedByMood bool
}

type InteractOutcome struct {
	State        *pet_state.PetState
	MoodGained   int
	XPGained     int
	LeveledUp    bool
	LevelsGained int
}

type HitOutcome struct {
	State       *pet_state.PetState
	MoodLost    int
	XPLost      int
	LeveledDown bool
	LevelsLost  int
}

type Service interface {
	// EnsureState creates the initial record (mood=50, xp=0, level=1)
	// and the free starter pet on first touch; it is idempotent.
	EnsureState(ctx context.Context, userID string) (*pet_state.PetState, error)
	GetStatus(ctx context.Context, userID string) (*Status, error)
	GrantXP(ctx context.Context, userID string, amount int) (*GrantOutcome, error)
	Pet(ctx context.Context, userID string) (*InteractOutcome, error)
	Hit(ctx context.Context, userID string) (*HitOutcome, error)
}

type Impl struct {
	states pet_state.PetStateRepository
	pets   user_pet.UserPetRepository
	cat    *catalog.Catalog
}

func NewService(states pet_state.PetStateRepository, pets user_pet.UserPetRepository, cat *catalog.Catalog) Service {
	return &Impl{states: states, pets: pets, cat: cat}
}

func (s *Impl) EnsureState(ctx context.Context, userID string) (*pet_state.PetState, error) {
	state, err := s.states.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		initial := progression.NewState()
		now := time.Now()

		state = &pet_state.PetState{
			ID:        uuid.NewString(),
			UserID:    userID,
			Mood:      initial.Mood,
			XP:        initial.XP,
			Level:     initial.Level,
			LastFedAt: &now,
		}
		if err := s.states.Create(ctx, state); err != nil {
			// Lost a creation race; the row that landed wins.
			existing, gerr := s.states.GetByUserID(ctx, userID)
			if gerr != nil || existing == nil {
				return nil, err
			}
			state = existing
		}
	}

	// ActivePetID is stamped only once the starter row exists, so a
	// nil pointer means initialization has not finished yet and gets
	// retried here.
	if state.ActivePetID == nil {
		if err := s.ensureStarter(ctx, state); err != nil {
			return nil, err
		}
	}

	return state, nil
}

// ensureStarter grants the free starter pet and marks it active. It is
// the recovery path as well: a state row whose starter creation failed
// earlier is completed on the next call.
func (s *Impl) ensureStarter(ctx context.Context, state *pet_state.PetState) error {
	owned, err := s.pets.ListByUser(ctx, state.UserID)
	if err != nil {
		return err
	}
	if len(owned) == 0 {
		tmpl, ok := s.cat.FindByID(catalog.StarterTemplateID)
		if !ok {
			return nil
		}
		starter := &user_pet.UserPet{
			ID:     uuid.NewString(),
			UserID: state.UserID,
			Type:   tmpl.Type,
			Breed:  tmpl.Breed,
			Name:   tmpl.Name,
			Emoji:  tmpl.Emoji,
		}
		if err := s.pets.Create(ctx, starter); err != nil {
			return err
		}
		owned = []*user_pet.UserPet{starter}
	}

	if err := s.pets.SwitchActive(ctx, state.UserID, owned[0].ID); err != nil {
		return err
	}
	state.ActivePetID = &owned[0].ID
	return nil
}

func (s *Impl) GetStatus(ctx context.Context, userID string) (*Status, error) {
	state, err := s.EnsureState(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Status{
		State:    state,
		Progress: progression.LevelFromXP(state.XP),
	}, nil
}

func (s *Impl) GrantXP(ctx context.Context, userID string, amount int) (*GrantOutcome, error) {
	var res progression.GrantResult
	state, err := s.withRetry(ctx, userID, func(state *pet_state.PetState) {
		res = progression.ApplyGrant(snapshot(state), amount)
		writeBack(state, res.State)
	})
	if err != nil {
		return nil, err
	}
	return &GrantOutcome{
		State:         state,
		XPGained:      res.XPGained,
		LeveledUp:     res.LeveledUp,
		LevelsGained:  res.LevelsGained,
		BlockedByMood: res.BlockedByMood,
	}, nil
}

func (s *Impl) Pet(ctx context.Context, userID string) (*InteractOutcome, error) {
	var res progression.PetResult
	state, err := s.withRetry(ctx, userID, func(state *pet_state.PetState) {
		res = progression.ApplyPet(snapshot(state), progression.DefaultPetMoodGain)
		writeBack(state, res.State)
	})
	if err != nil {
		return nil, err
	}
	return &InteractOutcome{
		State:        state,
		MoodGained:   res.MoodGained,
		XPGained:     res.XPGained,
		LeveledUp:    res.LeveledUp,
		LevelsGained: res.LevelsGained,
	}, nil
}

func (s *Impl) Hit(ctx context.Context, userID string) (*HitOutcome, error) {
	var res progression.HitResult
	state, err := s.withRetry(ctx, userID, func(state *pet_state.PetState) {
		res = progression.ApplyHit(snapshot(state), progression.DefaultHitMoodLoss)
		writeBack(state, res.State)
	})
	if err != nil {
		return nil, err
	}
	return &HitOutcome{
		State:       state,
		MoodLost:    res.MoodLost,
		XPLost:      res.XPLost,
		LeveledDown: res.LeveledDown,
		LevelsLost:  res.LevelsLost,
	}, nil
}

// withRetry runs the read-modify-write cycle, reloading and reapplying
// the transition whenever the conditional write loses a race.
func (s *Impl) withRetry(ctx context.Context, userID string, apply func(*pet_state.PetState)) (*pet_state.PetState, error) {
	var lastErr error
	for attempt := 0; attempt < maxWriteRetries; attempt++ {
		state, err := s.EnsureState(ctx, userID)
		if err != nil {
			return nil, err
		}

		apply(state)

		err = s.states.UpdateWithVersion(ctx, state)
		if err == nil {
			return state, nil
		}
		if !errors.Is(err, pet_state.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func snapshot(state *pet_state.PetState) progression.State {
	return progression.State{Mood: state.Mood, XP: state.XP, Level: state.Level}
}

func writeBack(state *pet_state.PetState, next progression.State) {
	state.Mood = next.Mood
	state.XP = next.XP
	state.Level = next.Level
}
