package match

import (
	"strconv"
	"time"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/internal/standings"
	"github.com/DhavalSuthar-24/eplradar/pkg/utils"
)

type MatchResponse struct {
	ID         uint               `json:"id"`
	Week       int                `json:"week"`
	Date       time.Time          `json:"date"`
	Status     models.MatchStatus `json:"status"`
	HomeClubID uint               `json:"home_club_id"`
	HomeClub   string             `json:"home_club"`
	HomeLogo   string             `json:"home_logo"`
	AwayClubID uint               `json:"away_club_id"`
	AwayClub   string             `json:"away_club"`
	AwayLogo   string             `json:"away_logo"`
	HomeScore  int                `json:"home_score"`
	AwayScore  int                `json:"away_score"`
}

// WeekView is one page of the fixture list plus the current table.
type WeekView struct {
	CurrentWeek int             `json:"current_week"`
	PrevWeek    int             `json:"prev_week"`
	NextWeek    int             `json:"next_week"`
	HasPrev     bool            `json:"has_prev"`
	HasNext     bool            `json:"has_next"`
	MinWeek     int             `json:"min_week"`
	MaxWeek     int             `json:"max_week"`
	WeekRange   []int           `json:"week_range"`
	Matches     []MatchResponse `json:"matches"`
	Clubs       []standings.Row `json:"clubs"`
}

// UpdateMatchRequest is the admin payload. Omitted fields stay unchanged.
type UpdateMatchRequest struct {
	HomeScore *int    `json:"home_score" binding:"omitempty,gte=0"`
	AwayScore *int    `json:"away_score" binding:"omitempty,gte=0"`
	Status    *string `json:"status" binding:"omitempty,oneof=upcoming live finished"`
}

type PredictionRequest struct {
	MatchID   uint `json:"match_id" binding:"required"`
	HomeScore *int `json:"home_score" binding:"required,gte=0"`
	AwayScore *int `json:"away_score" binding:"required,gte=0"`
}

type UpdatePredictionRequest struct {
	HomeScore *int `json:"home_score" binding:"required,gte=0"`
	AwayScore *int `json:"away_score" binding:"required,gte=0"`
}

type Outcome string

const (
	OutcomePending Outcome = "pending"
	OutcomeExact   Outcome = "exact"
	OutcomeResult  Outcome = "outcome"
	OutcomeMiss    Outcome = "miss"
)

const (
	ExactPoints   = 3
	OutcomePoints = 1
)

type PredictionResponse struct {
	ID        uint          `json:"id"`
	MatchID   uint          `json:"match_id"`
	HomeScore int           `json:"home_score"`
	AwayScore int           `json:"away_score"`
	Match     MatchResponse `json:"match"`
	Outcome   Outcome       `json:"outcome"`
	Points    int           `json:"points"`
	CreatedAt time.Time     `json:"created_at"`
}

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	Points      int    `json:"points"`
	Exact       int    `json:"exact"`
	Outcomes    int    `json:"outcomes"`
	Predictions int    `json:"predictions"`
}

// LiveMessage is what websocket subscribers receive.
type LiveMessage struct {
	Type    string          `json:"type"`
	Matches []MatchResponse `json:"matches"`
}

const (
	LiveSnapshot = "snapshot"
	LiveUpdate   = "update"
)

// ClampWeek resolves the requested week. Missing or unparsable input falls
// back to maxWeek, anything else is clamped into [minWeek, maxWeek].
func ClampWeek(raw string, minWeek, maxWeek int) int {
	if raw == "" {
		return maxWeek
	}
	w, err := strconv.Atoi(raw)
	if err != nil {
		return maxWeek
	}
	if w < minWeek {
		return minWeek
	}
	if w > maxWeek {
		return maxWeek
	}
	return w
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// Score grades a prediction against a match. Only finished matches score.
func Score(p models.Prediction, m models.Match) (Outcome, int) {
	if m.Status != models.MatchFinished {
		return OutcomePending, 0
	}
	if p.HomeScore == m.HomeScore && p.AwayScore == m.AwayScore {
		return OutcomeExact, ExactPoints
	}
	if sign(p.HomeScore-p.AwayScore) == sign(m.HomeScore-m.AwayScore) {
		return OutcomeResult, OutcomePoints
	}
	return OutcomeMiss, 0
}

func toMatchResponse(m models.Match, mediaURL string) MatchResponse {
	return MatchResponse{
		ID:         m.ID,
		Week:       m.Week,
		Date:       m.Date,
		Status:     m.Status,
		HomeClubID: m.HomeClubID,
		HomeClub:   m.HomeClub.Name,
		HomeLogo:   utils.MediaURL(mediaURL, m.HomeClub.Logo),
		AwayClubID: m.AwayClubID,
		AwayClub:   m.AwayClub.Name,
		AwayLogo:   utils.MediaURL(mediaURL, m.AwayClub.Logo),
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
	}
}

func toPredictionResponse(p models.Prediction, mediaURL string) PredictionResponse {
	outcome, points := Score(p, p.Match)
	return PredictionResponse{
		ID:        p.ID,
		MatchID:   p.MatchID,
		HomeScore: p.HomeScore,
		AwayScore: p.AwayScore,
		Match:     toMatchResponse(p.Match, mediaURL),
		Outcome:   outcome,
		Points:    points,
		CreatedAt: p.CreatedAt,
	}
}
