package models

import "time"

type MatchStatus string

const (
	MatchUpcoming MatchStatus = "upcoming"
	MatchLive     MatchStatus = "live"
	MatchFinished MatchStatus = "finished"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchUpcoming, MatchLive, MatchFinished:
		return true
	}
	return false
}

type Match struct {
	BaseModel
	HomeClubID uint        `gorm:"not null;index" json:"home_club_id"`
	HomeClub   Club        `gorm:"foreignKey:HomeClubID;constraint:OnDelete:CASCADE" json:"-"`
	AwayClubID uint        `gorm:"not null;index" json:"away_club_id"`
	AwayClub   Club        `gorm:"foreignKey:AwayClubID;constraint:OnDelete:CASCADE" json:"-"`
	HomeScore  int         `gorm:"not null" json:"home_score"`
	AwayScore  int         `gorm:"not null" json:"away_score"`
	Week       int         `gorm:"not null;index" json:"week"`
	Date       time.Time   `gorm:"not null;index" json:"date"`
	Status     MatchStatus `gorm:"size:20;not null;index" json:"status"`
}

// Prediction is a user's guess at the final score of an upcoming match.
type Prediction struct {
	BaseModel
	UserID    uint  `gorm:"not null;uniqueIndex:idx_prediction_user_match" json:"user_id"`
	User      User  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	MatchID   uint  `gorm:"not null;uniqueIndex:idx_prediction_user_match" json:"match_id"`
	Match     Match `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	HomeScore int   `gorm:"not null" json:"home_score"`
	AwayScore int   `gorm:"not null" json:"away_score"`
}
