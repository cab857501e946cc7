package models

// Club holds the season record of a team. Points and TotalMatches are
// derived from the counters and never stored.
type Club struct {
	BaseModel
	Name   string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Wins   int    `gorm:"not null;check:wins >= 0" json:"wins"`
	Draws  int    `gorm:"not null;check:draws >= 0" json:"draws"`
	Losses int    `gorm:"not null;check:losses >= 0" json:"losses"`
	Logo   string `gorm:"size:255" json:"logo"`
}

func (c Club) Points() int {
	return c.Wins*3 + c.Draws
}

func (c Club) TotalMatches() int {
	return c.Wins + c.Draws + c.Losses
}

type ClubComment struct {
	BaseModel
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ClubID  uint   `gorm:"not null;index" json:"club_id"`
	Club    Club   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Content string `gorm:"type:text;not null" json:"content"`
}
