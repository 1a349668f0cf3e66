package models

import "time"

// One Meal, tagged as diet-compliant or not.
// UserID and CreatedAt are fixed at creation; updates may only touch
// Name, Description and IsDietCompliant. CreatedAt is the canonical
// ordering key for metrics.
type Meal struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;index;not null" json:"user_id"` // FK → users.id
	// Seq is assigned by the database and grows in insertion order; it
	// breaks created_at ties when listing. Never written by the
	// application.
	Seq             int64     `gorm:"->;type:bigserial" json:"-"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	IsDietCompliant bool      `gorm:"not null" json:"is_diet_compliant"`
	CreatedAt       time.Time `json:"created_at"`
}
