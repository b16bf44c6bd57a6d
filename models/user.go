package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Username  string    `gorm:"uniqueIndex;not null;size:100" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
}

// Foreman is the roster view of a user exposed to the client.
type Foreman struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
