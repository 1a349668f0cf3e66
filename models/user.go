package models

import "time"

// User is created on first registration with a given email and never
// changes afterwards. SessionToken is the only credential a client holds.
type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	SessionToken string    `gorm:"type:uuid;uniqueIndex;not null" json:"-"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}
