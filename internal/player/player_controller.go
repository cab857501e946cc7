package player

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/pkg/responses"
	"github.com/DhavalSuthar-24/eplradar/pkg/utils"
)

type PlayerController struct {
	repo      PlayerRepository
	appConfig *config.Config
}

func NewPlayerController(repo PlayerRepository, appConfig *config.Config) *PlayerController {
	return &PlayerController{repo: repo, appConfig: appConfig}
}

func (pc *PlayerController) toResponse(p models.Player) PlayerResponse {
	media := pc.appConfig.App.MediaURL
	return PlayerResponse{
		ID:             p.ID,
		Name:           p.Name,
		Position:       p.Position,
		ClubID:         p.ClubID,
		Club:           p.Club.Name,
		ClubLogo:       utils.MediaURL(media, p.Club.Logo),
		Citizenship:    p.Citizenship,
		Age:            p.Age,
		Goals:          p.Goals,
		Assists:        p.Assists,
		MatchesPlayed:  p.MatchesPlayed,
		CleanSheets:    p.CleanSheets,
		ProfilePicture: utils.MediaURL(media, p.ProfilePicture),
	}
}

// @Summary      List players
// @Tags         Players
// @Produce      json
// @Param        club      query  string  false  "Club name"
// @Param        position  query  string  false  "Position"
// @Param        q         query  string  false  "Name contains"
// @Success      200  {object}  responses.SuccessResponse{data=[]PlayerResponse}
// @Router       /players [get]
func (pc *PlayerController) ListPlayers(c *gin.Context) {
	filter := PlayerFilter{
		Club:     strings.TrimSpace(c.Query("club")),
		Position: strings.TrimSpace(c.Query("position")),
		Query:    strings.TrimSpace(c.Query("q")),
	}

	players, err := pc.repo.List(c.Request.Context(), filter)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}

	out := make([]PlayerResponse, len(players))
	for i, p := range players {
		out[i] = pc.toResponse(p)
	}
	responses.SendSuccess(c, http.StatusOK, "Players retrieved", out)
}

// @Summary      Player detail
// @Tags         Players
// @Produce      json
// @Param        id  path  int  true  "Player ID"
// @Success      200  {object}  responses.SuccessResponse{data=PlayerResponse}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /players/{id} [get]
func (pc *PlayerController) GetPlayer(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	p, err := pc.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Player", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player retrieved", pc.toResponse(*p))
}
