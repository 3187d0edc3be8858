package petstate

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/PennyPaws/petengine-go/internal/catalog"
	"github.com/PennyPaws/petengine-go/internal/db/repositories/pet_state"
	state_mocks "github.com/PennyPaws/petengine-go/internal/db/repositories/pet_state/mocks"
	"github.com/PennyPaws/petengine-go/internal/db/repositories/user_pet"
	pet_mocks "github.com/PennyPaws/petengine-go/internal/db/repositories/user_pet/mocks"
	"go.uber.org/mock/gomock"
)

// mockStateRepo is a simple in-memory mock with real version checking
type mockStateRepo struct {
	mu     sync.RWMutex
	states map[string]*pet_state.PetState

	// forceConflicts makes the next N writes fail with a version conflict
	forceConflicts int
}

func newMockStateRepo() *mockStateRepo {
	return &mockStateRepo{states: make(map[string]*pet_state.PetState)}
}

func (m *mockStateRepo) GetByUserID(ctx context.Context, userID string) (*pet_state.PetState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.states[userID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (m *mockStateRepo) Create(ctx context.Context, state *pet_state.PetState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.states[state.UserID]; ok {
		return errors.New("duplicate key")
	}
	cp := *state
	m.states[state.UserID] = &cp
	return nil
}

func (m *mockStateRepo) UpdateWithVersion(ctx context.Context, state *pet_state.PetState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forceConflicts > 0 {
		m.forceConflicts--
		return pet_state.ErrVersionConflict
	}
	stored, ok := m.states[state.UserID]
	if !ok || stored.Version != state.Version {
		return pet_state.ErrVersionConflict
	}
	cp := *state
	cp.Version++
	m.states[state.UserID] = &cp
	state.Version++
	return nil
}

// mockPetRepo records created pets and mirrors the real repository's
// SwitchActive semantics against the paired state repo.
type mockPetRepo struct {
	mu     sync.Mutex
	pets   []*user_pet.UserPet
	states *mockStateRepo

	// createErrs makes the next N Create calls fail
	createErrs int
}

func newMockPetRepo(states *mockStateRepo) *mockPetRepo {
	return &mockPetRepo{states: states}
}

func (m *mockPetRepo) GetByID(ctx context.Context, userID, petID string) (*user_pet.UserPet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.pets {
		if p.ID == petID && p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockPetRepo) ListByUser(ctx context.Context, userID string) ([]*user_pet.UserPet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*user_pet.UserPet
	for _, p := range m.pets {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockPetRepo) Create(ctx context.Context, pet *user_pet.UserPet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErrs > 0 {
		m.createErrs--
		return errors.New("create failed")
	}
	cp := *pet
	m.pets = append(m.pets, &cp)
	return nil
}

func (m *mockPetRepo) SwitchActive(ctx context.Context, userID, petID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var target *user_pet.UserPet
	for _, p := range m.pets {
		if p.ID == petID && p.UserID == userID {
			target = p
			break
		}
	}
	if target == nil {
		return user_pet.ErrPetNotFound
	}
	for _, p := range m.pets {
		if p.UserID == userID {
			p.IsActive = false
		}
	}
	target.IsActive = true

	m.states.mu.Lock()
	defer m.states.mu.Unlock()
	if stored, ok := m.states.states[userID]; ok {
		id := target.ID
		stored.ActivePetID = &id
	}
	return nil
}

func (m *mockPetRepo) PurchaseWithXP(ctx context.Context, userID string, cost int, pet *user_pet.UserPet) error {
	return nil
}

func newService(states *mockStateRepo, pets *mockPetRepo) Service {
	return NewService(states, pets, catalog.Default())
}

const testUser = "6f1d2c3a-0000-0000-0000-000000000001"

func TestEnsureState_CreatesInitialStateAndStarter(t *testing.T) {
	states := newMockStateRepo()
	pets := newMockPetRepo(states)
	svc := newService(states, pets)
	ctx := context.Background()

	state, err := svc.EnsureState(ctx, testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if state.Mood != 50 || state.XP != 0 || state.Level != 1 {
		t.Errorf("initial state = mood %d xp %d level %d, want 50/0/1", state.Mood, state.XP, state.Level)
	}
	if state.ActivePetID == nil {
		t.Error("active pet id should point at the starter")
	}

	owned, _ := pets.ListByUser(ctx, testUser)
	if len(owned) != 1 {
		t.Fatalf("expected exactly one starter pet, got %d", len(owned))
	}
	if !owned[0].IsActive {
		t.Error("starter pet should be active")
	}
}

func TestEnsureState_Idempotent(t *testing.T) {
	states := newMockStateRepo()
	pets := newMockPetRepo(states)
	svc := newService(states, pets)
	ctx := context.Background()

	first, _ := svc.EnsureState(ctx, testUser)
	second, err := svc.EnsureState(ctx, testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Error("repeated EnsureState must return the same record")
	}
	owned, _ := pets.ListByUser(ctx, testUser)
	if len(owned) != 1 {
		t.Errorf("starter pet must not be duplicated, got %d", len(owned))
	}
}

func TestEnsureState_RecoversFromFailedStarterCreate(t *testing.T) {
	states := newMockStateRepo()
	pets := newMockPetRepo(states)
	pets.createErrs = 1
	svc := newService(states, pets)
	ctx := context.Background()

	if _, err := svc.EnsureState(ctx, testUser); err == nil {
		t.Fatal("expected error while starter creation fails")
	}

	state, err := svc.EnsureState(ctx, testUser)
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}

	owned, _ := pets.ListByUser(ctx, testUser)
	if len(owned) != 1 {
		t.Fatalf("expected the starter pet after retry, got %d pets", len(owned))
	}
	if !owned[0].IsActive {
		t.Error("starter pet should be active")
	}
	if state.ActivePetID == nil || *state.ActivePetID != owned[0].ID {
		t.Error("active pet id must point at the starter that actually exists")
	}
	stored, _ := states.GetByUserID(ctx, testUser)
	if stored.ActivePetID == nil || *stored.ActivePetID != owned[0].ID {
		t.Error("stored active pet id must point at the starter")
	}
}

func TestEnsureState_MissingStarterTemplate(t *testing.T) {
	states := newMockStateRepo()
	pets := newMockPetRepo(states)
	svc := NewService(states, pets, catalog.New(nil))
	ctx := context.Background()

	state, err := svc.EnsureState(ctx, testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.ActivePetID != nil {
		t.Error("active pet id must stay unset when no starter template exists")
	}
	owned, _ := pets.ListByUser(ctx, testUser)
	if len(owned) != 0 {
		t.Errorf("no pet should be created without a starter template, got %d", len(owned))
	}
}

func TestGrantXP_LevelUpAtMaxMood(t *testing.T) {
	states := newMockStateRepo()
	pets := newMockPetRepo(states)
	svc := newService(states, pets)
	ctx := context.Background()

	state, _ := svc.EnsureState(ctx, testUser)
	state.Mood = 100
	if err := states.UpdateWithVersion(ctx, state); err != nil {
		t.Fatalf("setup write failed: %v", err)
	}

	out, err := svc.GrantXP(ctx, testUser, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.LeveledUp || out.LevelsGained != 1 {
		t.Errorf("expected level-up, got %+v", out)
	}
	if out.State.Level != 2 || out.State.XP != 100 {
		t.Errorf("state = level %d xp %d, want 2/100", out.State.Level, out.State.XP)
	}
}

func TestGrantXP_BlockedByMoodPersistsXP(t *testing.T) {
	states := newMockStateRepo()
	pets := newMockPetRepo(states)
	svc := newService(states, pets)
	ctx := context.Background()

	svc.EnsureState(ctx, testUser)

	out, err := svc.GrantXP(ctx, testUser, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.BlockedByMood {
		t.Error("mood 50 should block the crossing")
	}

	stored, _ := states.GetByUserID(ctx, testUser)
	if stored.XP != 150 {
		t.Errorf("banked xp = %d, want 150", stored.XP)
	}
	if stored.Level != 1 {
		t.Errorf("level = %d, want 1", stored.Level)
	}
}

func TestGrantXP_RetriesOnVersionConflict(t *testing.T) {
	states := newMockStateRepo()
	pets := newMockPetRepo(states)
	svc := newService(states, pets)
	ctx := context.Background()

	svc.EnsureState(ctx, testUser)
	states.forceConflicts = 2

	out, err := svc.GrantXP(ctx, testUser, 10)
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if out.State.XP != 10 {
		t.Errorf("xp = %d, want 10", out.State.XP)
	}
}

func TestGrantXP_GivesUpAfterRepeatedConflicts(t *testing.T) {
	states := newMockStateRepo()
	pets := newMockPetRepo(states)
	svc := newService(states, pets)
	ctx := context.Background()

	svc.EnsureState(ctx, testUser)
	states.forceConflicts = 10

	_, err := svc.GrantXP(ctx, testUser, 10)
	if !errors.Is(err, pet_state.ErrVersionConflict) {
		t.Errorf("expected version conflict error, got %v", err)
	}
}

func TestPet_RaisesMood(t *testing.T) {
	states := newMockStateRepo()
	pets := newMockPetRepo(states)
	svc := newService(states, pets)
	ctx := context.Background()

	svc.EnsureState(ctx, testUser)

	out, err := svc.Pet(ctx, testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.MoodGained != 5 || out.State.Mood != 55 {
		t.Errorf("expected mood 55 (+5), got %+v", out)
	}
	if out.XPGained != 0 {
		t.Errorf("no XP below the cap, got %d", out.XPGained)
	}
}

func TestPet_AtMaxMoodGrantsXP(t *testing.T) {
	states := newMockStateRepo()
	pets := newMockPetRepo(states)
	svc := newService(states, pets)
	ctx := context.Background()

	state, _ := svc.EnsureState(ctx, testUser)
	state.Mood = 100
	states.UpdateWithVersion(ctx, state)

	out, err := svc.Pet(ctx, testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State.Mood != 100 || out.MoodGained != 0 {
		t.Errorf("mood must stay pinned at 100, got %+v", out)
	}
	if out.XPGained != 5 {
		t.Errorf("XPGained = %d, want 5", out.XPGained)
	}
}

func TestHit_LowersMood(t *testing.T) {
	states := newMockStateRepo()
	pets := newMockPetRepo(states)
	svc := newService(states, pets)
	ctx := context.Background()

	svc.EnsureState(ctx, testUser)

	out, err := svc.Hit(ctx, testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.MoodLost != 10 || out.State.Mood != 40 {
		t.Errorf("expected mood 40 (-10), got %+v", out)
	}
}

func TestHit_AtZeroMoodDeductsXP(t *testing.T) {
	states := newMockStateRepo()
	pets := newMockPetRepo(states)
	svc := newService(states, pets)
	ctx := context.Background()

	state, _ := svc.EnsureState(ctx, testUser)
	state.Mood = 0
	state.XP = 5
	states.UpdateWithVersion(ctx, state)

	out, err := svc.Hit(ctx, testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.XPLost != 5 {
		t.Errorf("XPLost = %d, want 5 (floored)", out.XPLost)
	}
	if out.State.XP != 0 {
		t.Errorf("xp = %d, want 0", out.State.XP)
	}
	if out.State.Mood != 0 {
		t.Errorf("mood = %d, want unchanged 0", out.State.Mood)
	}
}

// Blocked level-ups cascade once mood reaches the cap again.
func TestBlockedLevelsCatchUp(t *testing.T) {
	states := newMockStateRepo()
	pets := newMockPetRepo(states)
	svc := newService(states, pets)
	ctx := context.Background()

	svc.EnsureState(ctx, testUser)

	// Bank two level-ups at mood 50.
	out, _ := svc.GrantXP(ctx, testUser, 250)
	if !out.BlockedByMood || out.State.Level != 1 {
		t.Fatalf("setup grant should be blocked, got %+v", out)
	}

	// Pet up to 100 mood (50 -> 100 in ten steps of 5).
	for i := 0; i < 10; i++ {
		if _, err := svc.Pet(ctx, testUser); err != nil {
			t.Fatalf("pet %d failed: %v", i, err)
		}
	}

	caught, err := svc.GrantXP(ctx, testUser, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !caught.LeveledUp || caught.LevelsGained != 2 {
		t.Errorf("expected both banked levels at once, got %+v", caught)
	}
	if caught.State.Level != 3 {
		t.Errorf("level = %d, want 3", caught.State.Level)
	}
}

func TestEnsureState_StorageErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	states := state_mocks.NewMockPetStateRepository(ctrl)
	pets := pet_mocks.NewMockUserPetRepository(ctrl)
	svc := NewService(states, pets, catalog.Default())

	states.EXPECT().
		GetByUserID(gomock.Any(), testUser).
		Return(nil, errors.New("connection reset"))

	if _, err := svc.EnsureState(context.Background(), testUser); err == nil {
		t.Fatal("storage error must propagate")
	}
}

func TestGrantXP_NonConflictWriteErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	states := state_mocks.NewMockPetStateRepository(ctrl)
	pets := pet_mocks.NewMockUserPetRepository(ctrl)
	svc := NewService(states, pets, catalog.Default())

	petID := "pet-1"
	stored := &pet_state.PetState{ID: "state-1", UserID: testUser, Mood: 50, Level: 1, ActivePetID: &petID}
	states.EXPECT().
		GetByUserID(gomock.Any(), testUser).
		Return(stored, nil)
	states.EXPECT().
		UpdateWithVersion(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	if _, err := svc.GrantXP(context.Background(), testUser, 10); err == nil {
		t.Fatal("non-conflict write errors must not be retried away")
	}
}

func TestGetStatus(t *testing.T) {
	states := newMockStateRepo()
	pets := newMockPetRepo(states)
	svc := newService(states, pets)
	ctx := context.Background()

	status, err := svc.GetStatus(ctx, testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Progress.Level != 1 || status.Progress.XPForNextLevel != 100 {
		t.Errorf("progress = %+v, want level 1, next at 100", status.Progress)
	}
}
