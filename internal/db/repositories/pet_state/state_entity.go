package pet_state

import (
	"time"
)

// PetState is the singleton progression record for one user. Version is
// the optimistic-concurrency stamp checked on every write.
type PetState struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	UserID string `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`

	Mood  int `gorm:"column:mood;type:int;not null;default:50" json:"mood"`
	XP    int `gorm:"column:xp;type:int;not null;default:0" json:"xp"`
	Level int `gorm:"column:level;type:int;not null;default:1" json:"level"`

	LastFedAt   *time.Time `gorm:"column:last_fed_at" json:"last_fed_at"`
	ActivePetID *string    `gorm:"column:active_pet_id;type:uuid" json:"active_pet_id"`

	Version int `gorm:"column:version;type:int;not null;default:0" json:"-"`
}

// set table name
func (PetState) TableName() string {
	return "pet_states"
}
