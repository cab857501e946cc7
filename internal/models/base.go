// internal/models/base.go
package models

import "time"

// BaseModel mirrors gorm.Model without DeletedAt. Rows are removed for real so
// the ON DELETE CASCADE constraints fire.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All lists every persisted model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Club{},
		&Player{},
		&Match{},
		&Prediction{},
		&News{},
		&ClubComment{},
		&FavoritePlayer{},
	}
}
