package stats

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/internal/middleware"
	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/pkg/apperr"
	"github.com/DhavalSuthar-24/eplradar/pkg/responses"
	"github.com/DhavalSuthar-24/eplradar/pkg/utils"
	"github.com/DhavalSuthar-24/eplradar/pkg/validator"
)

type StatsController struct {
	repo      StatsRepository
	appConfig *config.Config
}

func NewStatsController(repo StatsRepository, appConfig *config.Config) *StatsController {
	return &StatsController{repo: repo, appConfig: appConfig}
}

func (sc *StatsController) playerStat(p models.Player) PlayerStat {
	media := sc.appConfig.App.MediaURL
	return PlayerStat{
		ID:             p.ID,
		Name:           p.Name,
		Position:       p.Position,
		Club:           p.Club.Name,
		ClubLogo:       utils.MediaURL(media, p.Club.Logo),
		Goals:          p.Goals,
		Assists:        p.Assists,
		CleanSheets:    p.CleanSheets,
		MatchesPlayed:  p.MatchesPlayed,
		ProfilePicture: utils.MediaURL(media, p.ProfilePicture),
	}
}

func (sc *StatsController) favoriteResponse(f models.FavoritePlayer) FavoriteResponse {
	return FavoriteResponse{
		ID:        f.ID,
		PlayerID:  f.PlayerID,
		Player:    sc.playerStat(f.Player),
		Reason:    f.Reason,
		CreatedAt: f.CreatedAt,
	}
}

// @Summary      Club stats
// @Description  Clubs ordered by wins.
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=[]ClubStat}
// @Router       /stats/clubs [get]
func (sc *StatsController) ClubStats(c *gin.Context) {
	clubs, err := sc.repo.ClubsByWins(c.Request.Context())
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}

	out := make([]ClubStat, len(clubs))
	for i, cl := range clubs {
		out[i] = ClubStat{
			ID:           cl.ID,
			Name:         cl.Name,
			Logo:         utils.MediaURL(sc.appConfig.App.MediaURL, cl.Logo),
			Points:       cl.Points(),
			Wins:         cl.Wins,
			Draws:        cl.Draws,
			Losses:       cl.Losses,
			TotalMatches: cl.TotalMatches(),
		}
	}
	responses.SendSuccess(c, http.StatusOK, "Club stats retrieved", out)
}

// @Summary      Player stats
// @Tags         Stats
// @Produce      json
// @Param        order_by  query  string  false  "goals | assists | clean_sheets | matches_played"
// @Param        page      query  int     false  "Page, from 1"
// @Param        limit     query  int     false  "Page size, at most 100"
// @Success      200  {object}  responses.PaginatedResponse{data=[]PlayerStat}
// @Router       /stats/players [get]
func (sc *StatsController) PlayerStats(c *gin.Context) {
	page := utils.QueryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	size := utils.QueryInt(c, "limit", defaultPageSize)
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	players, total, err := sc.repo.Players(c.Request.Context(), c.DefaultQuery("order_by", OrderGoals), page, size)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}

	out := make([]PlayerStat, len(players))
	for i, p := range players {
		out[i] = sc.playerStat(p)
	}
	responses.SendPaginated(c, "Player stats retrieved", out, total, page, size)
}

// @Summary      My favourite players
// @Tags         Favorites
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=[]FavoriteResponse}
// @Router       /favorites [get]
func (sc *StatsController) ListFavorites(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	favs, err := sc.repo.Favorites(c.Request.Context(), userID)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}

	out := make([]FavoriteResponse, len(favs))
	for i, f := range favs {
		out[i] = sc.favoriteResponse(f)
	}
	responses.SendSuccess(c, http.StatusOK, "Favorites retrieved", out)
}

// @Summary      Add a favourite player
// @Tags         Favorites
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        favorite  body  FavoriteRequest  true  "Player and reason"
// @Success      201  {object}  responses.SuccessResponse{data=FavoriteResponse}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Router       /favorites [post]
func (sc *StatsController) AddFavorite(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, "Invalid favorite", validator.ParseError(err))
		return
	}

	fav := &models.FavoritePlayer{UserID: userID, PlayerID: req.PlayerID, Reason: strings.TrimSpace(req.Reason)}
	if err := sc.repo.CreateFavorite(c.Request.Context(), fav); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			responses.Conflict(c, "Player is already in your favorites")
			return
		}
		responses.FromError(c, "Player", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Favorite added", sc.favoriteResponse(*fav))
}

// @Summary      Change favourite reason
// @Tags         Favorites
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id        path  int                    true  "Favorite ID"
// @Param        favorite  body  UpdateFavoriteRequest  true  "Reason"
// @Success      200  {object}  responses.SuccessResponse{data=FavoriteResponse}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /favorites/{id} [put]
func (sc *StatsController) UpdateFavorite(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var req UpdateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, "Invalid favorite", validator.ParseError(err))
		return
	}

	fav, err := sc.repo.UpdateFavorite(c.Request.Context(), id, userID, strings.TrimSpace(req.Reason))
	if err != nil {
		responses.FromError(c, "Favorite", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Favorite updated", sc.favoriteResponse(*fav))
}

// @Summary      Remove a favourite player
// @Tags         Favorites
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Favorite ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /favorites/{id} [delete]
func (sc *StatsController) DeleteFavorite(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	if err := sc.repo.DeleteFavorite(c.Request.Context(), id, userID); err != nil {
		responses.FromError(c, "Favorite", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Favorite removed", nil)
}
