package models

type Player struct {
	BaseModel
	Name           string `gorm:"size:100;not null;uniqueIndex:idx_player_name_club" json:"name"`
	Position       string `gorm:"size:50" json:"position"`
	ClubID         uint   `gorm:"not null;uniqueIndex:idx_player_name_club" json:"club_id"`
	Club           Club   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Citizenship    string `gorm:"size:100" json:"citizenship"`
	Age            int    `json:"age"`
	Goals          int    `gorm:"not null" json:"goals"`
	Assists        int    `gorm:"not null" json:"assists"`
	MatchesPlayed  int    `gorm:"not null" json:"matches_played"`
	CleanSheets    int    `gorm:"not null" json:"clean_sheets"`
	ProfilePicture string `gorm:"size:255" json:"profile_picture"`
}

// FavoritePlayer is one user's bookmark of one player.
type FavoritePlayer struct {
	BaseModel
	UserID   uint   `gorm:"not null;uniqueIndex:idx_favorite_user_player" json:"user_id"`
	User     User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PlayerID uint   `gorm:"not null;uniqueIndex:idx_favorite_user_player" json:"player_id"`
	Player   Player `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Reason   string `gorm:"size:150" json:"reason"`
}

const MaxFavoriteReason = 150
