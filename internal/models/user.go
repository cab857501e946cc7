package models

import "time"

type User struct {
	BaseModel
	Username  string     `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Password  string     `gorm:"not null" json:"-"`
	IsActive  bool       `gorm:"not null" json:"is_active"`
	IsAdmin   bool       `gorm:"not null" json:"is_admin"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
