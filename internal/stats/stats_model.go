package stats

import "time"

const (
	OrderGoals         = "goals"
	OrderAssists       = "assists"
	OrderCleanSheets   = "clean_sheets"
	OrderMatchesPlayed = "matches_played"
)

// orderColumns whitelists the counters players can be ranked by.
var orderColumns = map[string]string{
	OrderGoals:         "players.goals",
	OrderAssists:       "players.assists",
	OrderCleanSheets:   "players.clean_sheets",
	OrderMatchesPlayed: "players.matches_played",
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ClubStat struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Logo         string `json:"logo"`
	Points       int    `json:"points"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	TotalMatches int    `json:"total_matches"`
}

type PlayerStat struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	Club           string `json:"club"`
	ClubLogo       string `json:"club_logo"`
	Goals          int    `json:"goals"`
	Assists        int    `json:"assists"`
	CleanSheets    int    `json:"clean_sheets"`
	MatchesPlayed  int    `json:"matches_played"`
	ProfilePicture string `json:"profile_picture"`
}

type FavoriteRequest struct {
	PlayerID uint   `json:"player_id" binding:"required"`
	Reason   string `json:"reason" binding:"max=150"`
}

type UpdateFavoriteRequest struct {
	Reason string `json:"reason" binding:"max=150"`
}

type FavoriteResponse struct {
	ID        uint       `json:"id"`
	PlayerID  uint       `json:"player_id"`
	Player    PlayerStat `json:"player"`
	Reason    string     `json:"reason"`
	CreatedAt time.Time  `json:"created_at"`
}
