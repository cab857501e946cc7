package club

import (
	"time"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/pkg/utils"
)

// ClubResponse is the public view of a club with its derived counters.
type ClubResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Logo         string `json:"logo"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	Points       int    `json:"points"`
	TotalMatches int    `json:"total_matches"`
}

type PlayerSummary struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	Age            int    `json:"age"`
	Citizenship    string `json:"citizenship"`
	Goals          int    `json:"goals"`
	Assists        int    `json:"assists"`
	ProfilePicture string `json:"profile_picture"`
}

// FixtureResponse is a match seen from one club's side.
type FixtureResponse struct {
	ID        uint               `json:"id"`
	Week      int                `json:"week"`
	Date      time.Time          `json:"date"`
	Status    models.MatchStatus `json:"status"`
	HomeClub  string             `json:"home_club"`
	AwayClub  string             `json:"away_club"`
	HomeScore int                `json:"home_score"`
	AwayScore int                `json:"away_score"`
	IsHome    bool               `json:"is_home"`
}

type ClubDetailResponse struct {
	Club        ClubResponse      `json:"club"`
	Players     []PlayerSummary   `json:"players"`
	Fixtures    []FixtureResponse `json:"fixtures"`
	HomeMatches int               `json:"home_matches"`
	AwayMatches int               `json:"away_matches"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	ClubID    uint      `json:"club_id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	IsOwner   bool      `json:"is_owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RecomputeResponse struct {
	ClubsUpdated int `json:"clubs_updated"`
}

func toClubResponse(c models.Club, mediaURL string) ClubResponse {
	return ClubResponse{
		ID:           c.ID,
		Name:         c.Name,
		Logo:         utils.MediaURL(mediaURL, c.Logo),
		Wins:         c.Wins,
		Draws:        c.Draws,
		Losses:       c.Losses,
		Points:       c.Points(),
		TotalMatches: c.TotalMatches(),
	}
}

func toCommentResponse(cm models.ClubComment, viewerID uint) CommentResponse {
	return CommentResponse{
		ID:        cm.ID,
		ClubID:    cm.ClubID,
		UserID:    cm.UserID,
		Username:  cm.User.Username,
		Content:   cm.Content,
		IsOwner:   viewerID != 0 && viewerID == cm.UserID,
		CreatedAt: cm.CreatedAt,
		UpdatedAt: cm.UpdatedAt,
	}
}
