package user_pet

import (
	"time"
)

// UserPet is one owned pet instance. At most one row per user carries
// is_active = true.
type UserPet struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	UserID string `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	Type  string `gorm:"column:pet_type;type:text;not null" json:"type"`
	Breed string `gorm:"column:breed;type:text;not null" json:"breed"`
	Name  string `gorm:"column:name;type:text;not null" json:"name"`
	Emoji string `gorm:"column:emoji;type:text;not null" json:"emoji"`

	IsActive bool `gorm:"column:is_active;not null;default:false" json:"is_active"`
}

// set table name
func (UserPet) TableName() string {
	return "user_pets"
}
