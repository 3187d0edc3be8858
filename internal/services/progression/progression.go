package progression

const (
	MinMood     = 0
	MaxMood     = 100
	InitialMood = 50

	// Mood bonus applied per level gained on a successful level-up.
	LevelUpMoodBonus = 10

	// Defaults for the two interaction kinds.
	DefaultPetMoodGain = 5
	DefaultHitMoodLoss = 10

	// Fallback rewards when mood is already pinned at a bound.
	PetXPReward  = 5
	HitXPPenalty = 10
)

// State is a plain snapshot of the progression triple. It carries no
// identity or persistence concerns; callers load it from storage,
// apply a transition and write the result back.
type State struct {
	Mood  int
	XP    int
	Level int
}

// NewState returns the state every account starts with.
func NewState() State {
	return State{Mood: InitialMood, XP: 0, Level: 1}
}

// Progress describes where a cumulative XP total sits on the level curve.
type Progress struct {
	Level          int
	CurrentLevelXP int
	XPForNextLevel int
}

// GrantResult reports the outcome of an XP grant.
type GrantResult struct {
	State         State
	XPGained      int
	LeveledUp     bool
	LevelsGained  int
	BlockedByMood bool
}

// PetResult reports the outcome of a positive interaction.
type PetResult struct {
	State        State
	MoodGained   int
	XPGained     int
	LeveledUp    bool
	LevelsGained int
}

// HitResult reports the outcome of a negative interaction.
type HitResult struct {
	State       State
	MoodLost    int
	XPLost      int
	LeveledDown bool
	LevelsLost  int
}

// ClampMood bounds a mood value to [MinMood, MaxMood].
func ClampMood(mood int) int {
	if mood < MinMood {
		return MinMood
	}
	if mood > MaxMood {
		return MaxMood
	}
	return mood
}

// XPRequiredForLevel returns the XP needed to advance from level n to n+1.
func XPRequiredForLevel(level int) int {
	return 50*level + 50
}

// TotalXPForLevel returns the cumulative XP consumed to reach level n
// starting from level 1.
func TotalXPForLevel(level int) int {
	total := 0
	for i := 1; i < level; i++ {
		total += XPRequiredForLevel(i)
	}
	return total
}

// LevelFromXP derives the level implied by a cumulative XP total by
// consuming thresholds greedily from level 1. CurrentLevelXP is the
// remainder inside the current band; XPForNextLevel is the threshold
// not yet crossed.
func LevelFromXP(totalXP int) Progress {
	if totalXP < 0 {
		totalXP = 0
	}
	level := 1
	remaining := totalXP
	for remaining >= XPRequiredForLevel(level) {
		remaining -= XPRequiredForLevel(level)
		level++
	}
	return Progress{
		Level:          level,
		CurrentLevelXP: remaining,
		XPForNextLevel: XPRequiredForLevel(level),
	}
}

// ApplyGrant adds XP and advances the level only while mood sits at
// MaxMood. A crossing with mood below the cap banks the XP and flags
// BlockedByMood; the level is recomputed fresh from total XP on every
// call, so blocked level-ups apply in bulk once the gate opens.
func ApplyGrant(s State, amount int) GrantResult {
	if amount < 0 {
		amount = 0
	}

	next := s
	next.XP = s.XP + amount

	result := GrantResult{XPGained: amount}

	calculated := LevelFromXP(next.XP).Level
	if calculated > s.Level {
		if s.Mood >= MaxMood {
			gained := calculated - s.Level
			next.Level = calculated
			next.Mood = ClampMood(s.Mood + LevelUpMoodBonus*gained)
			result.LeveledUp = true
			result.LevelsGained = gained
		} else {
			result.BlockedByMood = true
		}
	}

	result.State = next
	return result
}

// ApplyPet raises mood by amount, clamped at MaxMood. When mood is
// already at the cap the interaction grants PetXPReward XP instead,
// routed through the same gate as ApplyGrant (open by definition here).
func ApplyPet(s State, amount int) PetResult {
	if s.Mood >= MaxMood {
		grant := ApplyGrant(s, PetXPReward)
		return PetResult{
			State:        grant.State,
			XPGained:     grant.XPGained,
			LeveledUp:    grant.LeveledUp,
			LevelsGained: grant.LevelsGained,
		}
	}

	next := s
	next.Mood = ClampMood(s.Mood + amount)
	return PetResult{
		State:      next,
		MoodGained: next.Mood - s.Mood,
	}
}

// ApplyHit lowers mood by amount, floored at MinMood. When mood is
// already at the floor it deducts HitXPPenalty XP instead (never below
// zero) and recomputes the level downward. Level-down is unconditional;
// only upward movement is mood-gated.
func ApplyHit(s State, amount int) HitResult {
	if s.Mood <= MinMood {
		lost := HitXPPenalty
		if lost > s.XP {
			lost = s.XP
		}

		next := s
		next.XP = s.XP - lost

		result := HitResult{XPLost: lost}
		if calculated := LevelFromXP(next.XP).Level; calculated < s.Level {
			result.LeveledDown = true
			result.LevelsLost = s.Level - calculated
			next.Level = calculated
		}
		result.State = next
		return result
	}

	next := s
	next.Mood = ClampMood(s.Mood - amount)
	return HitResult{
		State:    next,
		MoodLost: s.Mood - next.Mood,
	}
}
