package match

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/internal/standings"
	"github.com/DhavalSuthar-24/eplradar/pkg/responses"
	"github.com/DhavalSuthar-24/eplradar/pkg/utils"
	"github.com/DhavalSuthar-24/eplradar/pkg/validator"
)

// MatchController handles match-related HTTP requests
type MatchController struct {
	repo      MatchRepository
	table     standings.Repository
	appConfig *config.Config
	hub       *LiveHub
	notify    notifier
}

func NewMatchController(repo MatchRepository, table standings.Repository, appConfig *config.Config, n notifier) *MatchController {
	return &MatchController{
		repo:      repo,
		table:     table,
		appConfig: appConfig,
		hub:       n.hub,
		notify:    n,
	}
}

func (mc *MatchController) responses(matches []models.Match) []MatchResponse {
	out := make([]MatchResponse, len(matches))
	for i, m := range matches {
		out[i] = toMatchResponse(m, mc.appConfig.App.MediaURL)
	}
	return out
}

func (mc *MatchController) standings(ctx context.Context) ([]standings.Row, error) {
	table, err := standings.Load(ctx, mc.table)
	if err != nil {
		return nil, err
	}
	for i := range table {
		table[i].Logo = utils.MediaURL(mc.appConfig.App.MediaURL, table[i].Logo)
	}
	return table, nil
}

// @Summary      Matches by week
// @Description  Fixtures for one week plus the league table. A missing or invalid week shows the latest week, out of range values are clamped.
// @Tags         Matches
// @Produce      json
// @Param        week  query  int  false  "Week number"
// @Success      200  {object}  responses.SuccessResponse{data=WeekView}
// @Router       /matches [get]
func (mc *MatchController) GetWeek(c *gin.Context) {
	ctx := c.Request.Context()

	minWeek, maxWeek, err := mc.repo.WeekBounds(ctx)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}
	current := ClampWeek(c.Query("week"), minWeek, maxWeek)

	matches, err := mc.repo.ByWeek(ctx, current)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}
	table, err := mc.standings(ctx)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}

	weeks := make([]int, 0, maxWeek-minWeek+1)
	for w := minWeek; w <= maxWeek; w++ {
		weeks = append(weeks, w)
	}

	responses.SendSuccess(c, http.StatusOK, "Matches retrieved", WeekView{
		CurrentWeek: current,
		PrevWeek:    current - 1,
		NextWeek:    current + 1,
		HasPrev:     current > minWeek,
		HasNext:     current < maxWeek,
		MinWeek:     minWeek,
		MaxWeek:     maxWeek,
		WeekRange:   weeks,
		Matches:     mc.responses(matches),
		Clubs:       table,
	})
}

// @Summary      All matches
// @Tags         Matches
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=[]MatchResponse}
// @Router       /matches/all [get]
func (mc *MatchController) ListAll(c *gin.Context) {
	matches, err := mc.repo.All(c.Request.Context())
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Matches retrieved", mc.responses(matches))
}

// @Summary      Match detail
// @Tags         Matches
// @Produce      json
// @Param        id  path  int  true  "Match ID"
// @Success      200  {object}  responses.SuccessResponse{data=MatchResponse}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /matches/{id} [get]
func (mc *MatchController) GetMatch(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}
	m, err := mc.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Match", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved", toMatchResponse(*m, mc.appConfig.App.MediaURL))
}

// @Summary      League table
// @Tags         Matches
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=[]standings.Row}
// @Router       /standings [get]
func (mc *MatchController) Standings(c *gin.Context) {
	table, err := mc.standings(c.Request.Context())
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Standings retrieved", table)
}

// @Summary      Update match result
// @Description  Set score and/or status. Subscribers of the live feed receive the change.
// @Tags         Admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id     path  int                 true  "Match ID"
// @Param        match  body  UpdateMatchRequest  true  "Fields to change"
// @Success      200  {object}  responses.SuccessResponse{data=MatchResponse}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /admin/matches/{id} [patch]
func (mc *MatchController) AdminUpdate(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, "Invalid match update", validator.ParseError(err))
		return
	}

	fields := map[string]interface{}{}
	if req.HomeScore != nil {
		fields["home_score"] = *req.HomeScore
	}
	if req.AwayScore != nil {
		fields["away_score"] = *req.AwayScore
	}
	if req.Status != nil {
		fields["status"] = models.MatchStatus(*req.Status)
	}
	if len(fields) == 0 {
		responses.BadRequest(c, "Nothing to update")
		return
	}

	m, err := mc.repo.UpdateResult(c.Request.Context(), id, fields)
	if err != nil {
		responses.FromError(c, "Match", err)
		return
	}

	mc.notify.matchesChanged(c.Request.Context(), []models.Match{*m})
	responses.SendSuccess(c, http.StatusOK, "Match updated", toMatchResponse(*m, mc.appConfig.App.MediaURL))
}

// @Summary      Live match feed
// @Description  Websocket. The first message is a snapshot of live matches, later messages carry updates.
// @Tags         Matches
// @Success      101  {object}  LiveMessage
// @Router       /matches/live [get]
func (mc *MatchController) Live(c *gin.Context) {
	live, err := mc.repo.ByStatus(c.Request.Context(), models.MatchLive)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}
	snapshot, err := json.Marshal(LiveMessage{Type: LiveSnapshot, Matches: mc.responses(live)})
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Debug().Err(err).Msg("live: upgrade failed")
		return
	}
	if err := mc.hub.join(conn, snapshot); err != nil {
		_ = conn.Close()
		return
	}
	defer mc.hub.leave(conn)

	// the feed is one way; reading only detects the client going away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
